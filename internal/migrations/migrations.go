// Package migrations embeds the SQL schema of the SQLite user directory.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
