package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is the typed view of configs/config.yml plus environment overrides.
// Environment variables use the key path with "." replaced by "_", e.g. JWT_SECRET.
type Config struct {
	Port     string         `mapstructure:"port"`
	Log      LogConfig      `mapstructure:"log"`
	Server   ServerConfig   `mapstructure:"server"`
	DB       DBConfig       `mapstructure:"db"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	Frontend FrontendConfig `mapstructure:"frontend"`
	CORS     CORSConfig     `mapstructure:"cors"`
	OAuth2   OAuth2Config   `mapstructure:"oauth2"`
	SMTP     SMTPConfig     `mapstructure:"smtp"`
	Static   StaticConfig   `mapstructure:"static"`
	Seed     SeedConfig     `mapstructure:"seed"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // console | json
}

type ServerConfig struct {
	ReadHeaderTimeout time.Duration `mapstructure:"read_header_timeout"`
	WriteTimeout      time.Duration `mapstructure:"write_timeout"`
	IdleTimeout       time.Duration `mapstructure:"idle_timeout"`
	ShutdownTimeout   time.Duration `mapstructure:"shutdown_timeout"`
}

type DBConfig struct {
	Driver string `mapstructure:"driver"` // sqlite | postgres
	DSN    string `mapstructure:"dsn"`
}

type JWTConfig struct {
	Secret       string        `mapstructure:"secret"`
	Expiration   time.Duration `mapstructure:"expiration"`
	CookieName   string        `mapstructure:"cookie_name"`
	CookieSecure bool          `mapstructure:"cookie_secure"`
}

type FrontendConfig struct {
	URL string `mapstructure:"url"`
}

type CORSConfig struct {
	AllowedOrigins   []string      `mapstructure:"allowed_origins"`
	AllowedMethods   []string      `mapstructure:"allowed_methods"`
	AllowedHeaders   []string      `mapstructure:"allowed_headers"`
	ExposedHeaders   []string      `mapstructure:"exposed_headers"`
	AllowCredentials bool          `mapstructure:"allow_credentials"`
	MaxAge           time.Duration `mapstructure:"max_age"`
}

type OAuth2Config struct {
	Google        ProviderConfig `mapstructure:"google"`
	StateTTL      time.Duration  `mapstructure:"state_ttl"`
	PurgeSchedule string         `mapstructure:"purge_schedule"`
}

// ProviderConfig holds client registration values for one OAuth2 provider.
// A provider with an empty ClientID is not registered.
type ProviderConfig struct {
	ClientID     string   `mapstructure:"client_id"`
	ClientSecret string   `mapstructure:"client_secret"`
	RedirectURL  string   `mapstructure:"redirect_url"`
	Scopes       []string `mapstructure:"scopes"`
}

// Enabled reports whether the provider has client credentials.
func (p ProviderConfig) Enabled() bool {
	return p.ClientID != "" && p.ClientSecret != ""
}

type SMTPConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	From     string `mapstructure:"from"`
	// Timeout caps one delivery: dial plus the whole SMTP exchange.
	Timeout time.Duration `mapstructure:"timeout"`
}

type StaticConfig struct {
	Dir string `mapstructure:"dir"`
}

type SeedConfig struct {
	Users []SeedUser `mapstructure:"users"`
}

type SeedUser struct {
	Username string `mapstructure:"username"`
	Email    string `mapstructure:"email"`
	Password string `mapstructure:"password"`
	Role     string `mapstructure:"role"`
}

var (
	ErrMissingSecret   = errors.New("jwt.secret must be set")
	ErrUnknownDriver   = errors.New("db.driver must be sqlite or postgres")
	ErrMissingFrontend = errors.New("frontend.url must be set")
)

// Load reads config from dir/config.yml (a missing file is not an error),
// applies defaults and environment overrides, and validates the result.
func Load(dir string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.AddConfigPath(dir)
	v.SetConfigName("config")
	v.SetConfigType("yml")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if strings.TrimSpace(c.JWT.Secret) == "" {
		return ErrMissingSecret
	}
	switch c.DB.Driver {
	case "sqlite", "postgres":
	default:
		return fmt.Errorf("%w: got %q", ErrUnknownDriver, c.DB.Driver)
	}
	if strings.TrimSpace(c.Frontend.URL) == "" {
		return ErrMissingFrontend
	}
	return nil
}

// Addr returns the listen address for Port.
func (c *Config) Addr() string {
	if strings.HasPrefix(c.Port, ":") {
		return c.Port
	}
	return ":" + c.Port
}

// String masks secrets.
func (c *Config) String() string {
	return fmt.Sprintf("Config{port: %s, db: %s, frontend: %s, google: %t, smtp: %t, jwt: *** (masked) ***}",
		c.Port, c.DB.Driver, c.Frontend.URL, c.OAuth2.Google.Enabled(), c.SMTP.Host != "")
}
