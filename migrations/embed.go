// Package migrations embebe los scripts SQL del schema.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
