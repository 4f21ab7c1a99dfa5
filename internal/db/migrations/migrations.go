// Package migrations embeds goose SQL migrations of the catalog schema.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
