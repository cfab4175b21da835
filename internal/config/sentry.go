package config

type Sentry struct {
	// Error reporting is disabled when empty
	DSN         string `env:"DSN"`
	Environment string `env:"ENVIRONMENT" envDefault:"production"`
}
