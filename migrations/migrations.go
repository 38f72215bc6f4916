// Package migrations embeds the versioned schema so menuctl and the e2e
// suite apply the same files.
package migrations

import "embed"

//go:embed *.sql atlas.sum
var FS embed.FS
