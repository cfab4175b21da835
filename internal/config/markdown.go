package config

type Markdown struct {
	// Unsafe lets raw HTML embedded in posts through to the rendered pages.
	Unsafe bool `env:"UNSAFE,expand" envDefault:"false"`
}
