// Package root exposes files embedded at the repository root, currently the
// goose SQL migrations consumed by the migrate command and the test setup.
package root

import "embed"

// Migrations contains the goose migration files for the service schema.
//
//go:embed migrations/*.sql
var Migrations embed.FS
