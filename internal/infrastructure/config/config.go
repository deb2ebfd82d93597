package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config contém todas as configurações da aplicação
type Config struct {
	Env      string
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Auth     AuthConfig
	Policy   PolicyConfig
	Logging  LoggingConfig
	CORS     CORSConfig
	I18n     I18nConfig
	Seed     SeedConfig
}

type ServerConfig struct {
	Port    string
	Host    string
	BaseURL string // URL base da API para construir URIs RFC 7807
}

type DatabaseConfig struct {
	Driver      string // postgres | sqlite
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
	SQLitePath  string
	MaxConns    int
	MinConns    int
	MaxIdleTime int
	AutoMigrate bool
}

type RedisConfig struct {
	URL      string
	CacheTTL time.Duration
}

// AuthConfig descreve o provedor de identidade que emite os tokens
type AuthConfig struct {
	Issuer       string
	Audience     string
	HS256Secret  string
	RSAPublicKey string // PEM
}

// PolicyConfig agrupa decisões de autorização configuráveis
type PolicyConfig struct {
	ReviewDeleteRequiresAdmin bool
}

type LoggingConfig struct {
	Level  string
	Format string // json | console
}

type CORSConfig struct {
	AllowedOrigins string
}

type I18nConfig struct {
	LocalesDir      string // vazio usa os arquivos embutidos
	DefaultLanguage string
}

type SeedConfig struct {
	Enabled    bool
	AdminEmail string
}

var (
	ErrMissingAuthKey   = errors.New("one of AUTH_HS256_SECRET or AUTH_RSA_PUBLIC_KEY is required")
	ErrUnknownDBDriver  = errors.New("DB_DRIVER must be postgres or sqlite")
	ErrInvalidLogFormat = errors.New("LOG_FORMAT must be json or console")
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", "development")
	v.SetDefault("HOST", "0.0.0.0")
	v.SetDefault("PORT", "8080")
	v.SetDefault("API_BASE_URL", "http://localhost:8080")
	v.SetDefault("DB_DRIVER", "postgres")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_NAME", "casellese")
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("DB_SQLITE_PATH", "casellese.db")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("DB_MIN_CONNS", 2)
	v.SetDefault("DB_MAX_IDLE_TIME", 300)
	v.SetDefault("DB_AUTO_MIGRATE", true)
	v.SetDefault("CACHE_TTL", "5m")
	v.SetDefault("REVIEW_DELETE_REQUIRES_ADMIN", false)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:5173,http://localhost:3000")
	v.SetDefault("I18N_LOCALES_DIR", "")
	v.SetDefault("I18N_DEFAULT_LANGUAGE", "en")
	v.SetDefault("SEED_DATA", false)
}

// Load carrega as configurações do ambiente (e do arquivo .env, se existir)
func Load() (*Config, error) {
	// .env é opcional; variáveis já exportadas têm prioridade
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	config := &Config{
		Env: v.GetString("ENV"),
		Server: ServerConfig{
			Port:    v.GetString("PORT"),
			Host:    v.GetString("HOST"),
			BaseURL: v.GetString("API_BASE_URL"),
		},
		Database: DatabaseConfig{
			Driver:      strings.ToLower(v.GetString("DB_DRIVER")),
			Host:        v.GetString("DB_HOST"),
			Port:        v.GetInt("DB_PORT"),
			User:        v.GetString("DB_USER"),
			Password:    v.GetString("DB_PASS"),
			DBName:      v.GetString("DB_NAME"),
			SSLMode:     v.GetString("DB_SSL_MODE"),
			SQLitePath:  v.GetString("DB_SQLITE_PATH"),
			MaxConns:    v.GetInt("DB_MAX_CONNS"),
			MinConns:    v.GetInt("DB_MIN_CONNS"),
			MaxIdleTime: v.GetInt("DB_MAX_IDLE_TIME"),
			AutoMigrate: v.GetBool("DB_AUTO_MIGRATE"),
		},
		Redis: RedisConfig{
			URL:      v.GetString("REDIS_URL"),
			CacheTTL: v.GetDuration("CACHE_TTL"),
		},
		Auth: AuthConfig{
			Issuer:       v.GetString("AUTH_ISSUER"),
			Audience:     v.GetString("AUTH_AUDIENCE"),
			HS256Secret:  v.GetString("AUTH_HS256_SECRET"),
			RSAPublicKey: v.GetString("AUTH_RSA_PUBLIC_KEY"),
		},
		Policy: PolicyConfig{
			ReviewDeleteRequiresAdmin: v.GetBool("REVIEW_DELETE_REQUIRES_ADMIN"),
		},
		Logging: LoggingConfig{
			Level:  v.GetString("LOG_LEVEL"),
			Format: strings.ToLower(v.GetString("LOG_FORMAT")),
		},
		CORS: CORSConfig{
			AllowedOrigins: v.GetString("CORS_ALLOWED_ORIGINS"),
		},
		I18n: I18nConfig{
			LocalesDir:      v.GetString("I18N_LOCALES_DIR"),
			DefaultLanguage: v.GetString("I18N_DEFAULT_LANGUAGE"),
		},
		Seed: SeedConfig{
			Enabled:    v.GetBool("SEED_DATA"),
			AdminEmail: v.GetString("SEED_ADMIN_EMAIL"),
		},
	}

	return config, nil
}

// Validate rejeita combinações inutilizáveis
func (c *Config) Validate() error {
	if c.Auth.HS256Secret == "" && c.Auth.RSAPublicKey == "" {
		return ErrMissingAuthKey
	}

	switch c.Database.Driver {
	case "postgres", "sqlite":
	default:
		return fmt.Errorf("%w: %q", ErrUnknownDBDriver, c.Database.Driver)
	}

	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidLogFormat, c.Logging.Format)
	}

	if c.Server.Port == "" {
		return errors.New("PORT is required")
	}

	return nil
}

// IsProduction indica ambiente de produção
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// Origins retorna as origens CORS já separadas
func (c *CORSConfig) Origins() []string {
	var origins []string
	for _, o := range strings.Split(c.AllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

// DSN retorna a connection string do PostgreSQL
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}
