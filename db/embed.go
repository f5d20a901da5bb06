// Package db embeds the SQL migrations of the RHQ schema.
package db

import "embed"

//go:embed migrations/*.sql
var Migrations embed.FS
