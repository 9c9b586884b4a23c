// Package migrations holds the goose SQL migrations of the boards schema.
package migrations

import "embed"

// FS contains every *.sql migration, applied in version order by goose.
//
//go:embed *.sql
var FS embed.FS
