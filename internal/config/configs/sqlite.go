package configs

// SQLite configures the embedded catalog used when CATALOG_DRIVER=sqlite.
type SQLite struct {
	// Path of the database file. ":memory:" is accepted for throwaway runs.
	Path string `env:"PATH" envDefault:"slot-engine.db"`
	// RunMigrations applies the embedded schema on startup.
	RunMigrations bool `env:"RUN_MIGRATIONS" envDefault:"true"`
}
