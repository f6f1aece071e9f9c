// Package migrations embeds the goose SQL migrations so the server and the
// migrate command can apply them without a migrations directory on disk.
package migrations

import "embed"

// FS contains all *.sql migration files embedded at compile time.
//
//go:embed *.sql
var FS embed.FS
