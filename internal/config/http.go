package config

import "time"

type HTTP struct {
	BaseURL   string    `env:"BASE_URL,expand" envDefault:"http://localhost:3002"`
	Address   string    `env:"ADDRESS,expand" envDefault:":3002"`
	Admin     Admin     `envPrefix:"ADMIN_"`
	Session   Session   `envPrefix:"SESSION_"`
	Authn     Authn     `envPrefix:"AUTHN_"`
	CORS      CORS      `envPrefix:"CORS_"`
	RateLimit RateLimit `envPrefix:"RATE_LIMIT_"`
}

type Admin struct {
	Email string `env:"EMAIL,expand"`
}

type Session struct {
	Keys   []string `env:"KEYS,expand"`
	Cookie Cookie   `envPrefix:"COOKIE_"`
}

type Cookie struct {
	Path     string        `env:"PATH,expand" envDefault:"/"`
	HTTPOnly bool          `env:"HTTP_ONLY,expand" envDefault:"true"`
	Secure   bool          `env:"SECURE,expand" envDefault:"false"`
	MaxAge   time.Duration `env:"MAX_AGE,expand" envDefault:"24h"`
}

type Authn struct {
	Providers AuthProviders `envPrefix:"PROVIDERS_"`
}

type AuthProviders struct {
	Google OAuth2Provider `envPrefix:"GOOGLE_"`
	Github OAuth2Provider `envPrefix:"GITHUB_"`
	Gitea  GiteaProvider  `envPrefix:"GITEA_"`
	OIDC   OIDCProvider   `envPrefix:"OIDC_"`
}

type OAuth2Provider struct {
	Key    string   `env:"KEY,expand"`
	Secret string   `env:"SECRET,expand"`
	Scopes []string `env:"SCOPES,expand" envDefault:"email"`
}

type GiteaProvider struct {
	OAuth2Provider
	TokenURL   string `env:"TOKEN_URL,expand"`
	AuthURL    string `env:"AUTH_URL,expand"`
	ProfileURL string `env:"PROFILE_URL,expand"`
	Label      string `env:"LABEL,expand" envDefault:"Gitea"`
}

type OIDCProvider struct {
	OAuth2Provider
	DiscoveryURL string `env:"DISCOVERY_URL,expand"`
	Icon         string `env:"ICON,expand" envDefault:"fa-openid"`
	Label        string `env:"LABEL,expand" envDefault:"OpenID Connect"`
}

type CORS struct {
	AllowedOrigins []string `env:"ALLOWED_ORIGINS,expand" envDefault:"*"`
}

type RateLimit struct {
	Enabled      bool          `env:"ENABLED,expand" envDefault:"true"`
	Interval     time.Duration `env:"INTERVAL,expand" envDefault:"10s"`
	MaxBurst     int           `env:"MAX_BURST,expand" envDefault:"5"`
	CacheSize    int           `env:"CACHE_SIZE,expand" envDefault:"1024"`
	CacheTTL     time.Duration `env:"CACHE_TTL,expand" envDefault:"10m"`
	TrustHeaders bool          `env:"TRUST_HEADERS,expand" envDefault:"false"`
}
