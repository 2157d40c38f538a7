// Package migrations embeds the goose SQL migrations: the catalog and
// itinerary schema plus the seeded cities and attractions.
package migrations

import "embed"

// FS holds every *.sql migration. The server applies it through a goose
// provider when MIGRATE_ON_START is set; integration tests apply it in TestMain.
//
//go:embed *.sql
var FS embed.FS
