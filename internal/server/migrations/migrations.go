// Package migrations contains the embedded Postgres schema.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
