// Package migrations embeds the SQL schema so it ships inside the binary.
package migrations

import "embed"

// FS holds the versioned golang-migrate files.
//
//go:embed *.sql
var FS embed.FS
