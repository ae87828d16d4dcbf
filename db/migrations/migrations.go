package migrations

import "embed"

// FS embeds the SQL migrations of both catalog drivers. Each driver reads
// its own subdirectory through the iofs source.
//
//go:embed postgres/*.sql sqlite/*.sql
var FS embed.FS

const (
	PostgresDir = "postgres"
	SQLiteDir   = "sqlite"
)

const Version = 1
