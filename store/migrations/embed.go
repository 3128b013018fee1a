package migrations

import "embed"

// FS contains embedded SQLite migrations for the patch library.
//
//go:embed *.sql
var FS embed.FS
