// Package migrations embeds the goose SQL migrations so a single binary
// can bring the schema up to date at startup.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
