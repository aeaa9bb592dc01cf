// Package workbench is the typeout application shell: a welcome screen with
// the recent-document list, a file picker, and the reveal editor with its tab
// header and status bar.
package workbench
