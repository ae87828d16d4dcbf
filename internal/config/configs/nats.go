package configs

// NATS configures headline change notifications. An empty URL disables
// them.
type NATS struct {
	URL     string `env:"URL"`
	Subject string `env:"SUBJECT" envDefault:"headline.changed"`
}
