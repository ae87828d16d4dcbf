package configs

import "time"

// Reconcile tunes how headline reorders are persisted.
type Reconcile struct {
	// Concurrency bounds the number of slot reads and writes in flight for
	// a single reorder.
	Concurrency int `env:"CONCURRENCY" envDefault:"4"`
	// WriteTimeout caps each individual slot write.
	WriteTimeout time.Duration `env:"WRITE_TIMEOUT" envDefault:"5s"`
}
