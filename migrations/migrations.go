// Package migrations embeds the versioned SQL schema applied by
// golang-migrate (cmd/migrate and the admin migrate endpoint).
package migrations

import "embed"

// FS holds the *.up.sql / *.down.sql files.
//
//go:embed *.sql
var FS embed.FS
