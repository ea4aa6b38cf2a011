// Package migrations embeds the schema files for each supported store.
package migrations

import "embed"

//go:embed postgres/*.sql
var Postgres embed.FS

//go:embed mysql/*.sql
var MySQL embed.FS
