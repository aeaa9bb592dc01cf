// Package recent keeps the most-recently-opened document list and persists
// it through a Store.
package recent
