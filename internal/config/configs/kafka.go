package configs

import "time"

// Kafka configures the engagement stream. No brokers disables it.
type Kafka struct {
	Brokers      []string      `env:"BROKERS" envSeparator:","`
	Topic        string        `env:"TOPIC" envDefault:"ad-engagements"`
	BatchTimeout time.Duration `env:"BATCH_TIMEOUT" envDefault:"100ms"`
}
