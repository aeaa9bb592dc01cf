// Package migrations embeds the recent-document SQLite schema.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
