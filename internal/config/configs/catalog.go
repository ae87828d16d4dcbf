package configs

// Catalog driver names.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Catalog selects the storage backend for ads, slider ads and headline
// occupancy.
type Catalog struct {
	Driver string `env:"DRIVER" envDefault:"postgres"`
}
