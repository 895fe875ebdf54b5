package migrations

import "embed"

// FS holds one directory of migrations per dialect: postgres, mysql, sqlite3.
//
//go:embed postgres mysql sqlite3
var FS embed.FS
