package config

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"path/filepath"
	"time"
	"unicode/utf8"

	"github.com/caarlos0/env/v11"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type Config struct {
	Server      ServerConfig
	Database    DatabaseConfig
	Seed        SeedConfig
	Files       FilesConfig
	Certificate CertificateConfig
}

type ServerConfig struct {
	Host               string        `env:"SERVER_HOST" envDefault:"0.0.0.0"`
	Port               string        `env:"SERVER_PORT" envDefault:"5000"`
	Environment        string        `env:"APP_ENV" envDefault:"development"`
	ReadTimeout        time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"15s"`
	WriteTimeout       time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"15s"`
	RateLimitPerSecond int           `env:"RATE_LIMIT_PER_SECOND" envDefault:"10"`
	RateLimitBurst     int           `env:"RATE_LIMIT_BURST" envDefault:"20"`
}

type DatabaseConfig struct {
	Driver          string        `env:"DB_DRIVER" envDefault:"sqlite"`
	Path            string        `env:"DB_PATH" envDefault:"data/predial.db"`
	Host            string        `env:"DB_HOST" envDefault:"localhost"`
	Port            string        `env:"DB_PORT" envDefault:"5432"`
	User            string        `env:"DB_USER" envDefault:"predial"`
	Password        string        `env:"DB_PASSWORD" envDefault:"predial"`
	Name            string        `env:"DB_NAME" envDefault:"predial"`
	SSLMode         string        `env:"DB_SSL_MODE" envDefault:"disable"`
	MaxConnections  int           `env:"DB_MAX_CONNECTIONS" envDefault:"10"`
	MaxIdleConns    int           `env:"DB_MAX_IDLE_CONNS" envDefault:"2"`
	ConnMaxLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME" envDefault:"1h"`
}

type SeedConfig struct {
	Enabled   bool   `env:"SEED_ENABLED" envDefault:"true"`
	Path      string `env:"SEED_PATH" envDefault:"data/sample.csv"`
	Delimiter string `env:"SEED_DELIMITER" envDefault:","`
}

type FilesConfig struct {
	// DownloadURLTemplate must contain the {id} placeholder.
	DownloadURLTemplate string `env:"DOWNLOAD_URL_TEMPLATE" envDefault:"https://drive.google.com/uc?export=download&id={id}"`
}

type CertificateConfig struct {
	Issuer   string        `env:"CERTIFICATE_ISSUER" envDefault:"predial-consulta"`
	TokenTTL time.Duration `env:"CERTIFICATE_TOKEN_TTL" envDefault:"2160h"`

	privateKey *rsa.PrivateKey
	publicKey  *rsa.PublicKey
}

// Load reads the configuration from the environment.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	privateKey, publicKey, err := cfg.loadCertificateKeys()
	if err != nil {
		return nil, fmt.Errorf("failed to load certificate keys: %w", err)
	}
	cfg.Certificate.privateKey = privateKey
	cfg.Certificate.publicKey = publicKey

	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Database.Driver {
	case DriverSQLite, DriverPostgres:
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.Database.Driver)
	}

	if utf8.RuneCountInString(c.Seed.Delimiter) != 1 {
		return fmt.Errorf("SEED_DELIMITER must be a single character, got %q", c.Seed.Delimiter)
	}

	return nil
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

func (c *Config) IsTesting() bool {
	return c.Server.Environment == "testing"
}

func (s *ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, s.Port)
}

// DSN returns the connection string for the configured driver.
func (c *DatabaseConfig) DSN() string {
	if c.Driver == DriverPostgres {
		return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
	}
	return c.Path
}

// SQLDriverName is the database/sql driver registered for the configured backend.
func (c *DatabaseConfig) SQLDriverName() string {
	if c.Driver == DriverPostgres {
		return "postgres"
	}
	return "sqlite3"
}

// DataDir is the directory that holds the sqlite file, empty for postgres.
func (c *DatabaseConfig) DataDir() string {
	if c.Driver != DriverSQLite {
		return ""
	}
	return filepath.Dir(c.Path)
}

func (s *SeedConfig) Comma() rune {
	r, _ := utf8.DecodeRuneInString(s.Delimiter)
	return r
}

func (c *CertificateConfig) PrivateKey() *rsa.PrivateKey {
	return c.privateKey
}

func (c *CertificateConfig) PublicKey() *rsa.PublicKey {
	return c.publicKey
}

// SetKeys overrides the signing keys, used by tests and tooling.
func (c *CertificateConfig) SetKeys(privateKey *rsa.PrivateKey, publicKey *rsa.PublicKey) {
	c.privateKey = privateKey
	c.publicKey = publicKey
}

// loadCertificateKeys loads the RSA keys used to sign certificate tokens
// Priority order:
// 1. CERTIFICATE_PRIVATE_KEY and CERTIFICATE_PUBLIC_KEY env vars (base64 PEM)
// 2. production without env vars fails
// 3. any other environment generates a keypair for the lifetime of the process
func (c *Config) loadCertificateKeys() (*rsa.PrivateKey, *rsa.PublicKey, error) {
	keys := struct {
		Private string `env:"CERTIFICATE_PRIVATE_KEY"`
		Public  string `env:"CERTIFICATE_PUBLIC_KEY"`
	}{}
	if err := env.Parse(&keys); err != nil {
		return nil, nil, err
	}

	if keys.Private != "" && keys.Public != "" {
		slog.Info("loading certificate keypair from environment variables")
		return loadKeysFromBase64(keys.Private, keys.Public)
	}

	if c.IsProduction() {
		return nil, nil, errors.New("CERTIFICATE_PRIVATE_KEY and CERTIFICATE_PUBLIC_KEY must be set in production")
	}

	slog.Warn("generating an ephemeral certificate keypair; tokens will not verify after a restart")
	return GenerateRSAKeyPair()
}

func loadKeysFromBase64(privateKeyB64, publicKeyB64 string) (*rsa.PrivateKey, *rsa.PublicKey, error) {
	privateKeyBytes, err := base64.StdEncoding.DecodeString(privateKeyB64)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to decode CERTIFICATE_PRIVATE_KEY: %w", err)
	}

	publicKeyBytes, err := base64.StdEncoding.DecodeString(publicKeyB64)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to decode CERTIFICATE_PUBLIC_KEY: %w", err)
	}

	privateKey, err := loadRSAPrivateKey(privateKeyBytes)
	if err != nil {
		return nil, nil, err
	}

	publicKey, err := loadRSAPublicKey(publicKeyBytes)
	if err != nil {
		return nil, nil, err
	}

	return privateKey, publicKey, nil
}

// GenerateRSAKeyPair generates a new RSA key pair
func GenerateRSAKeyPair() (*rsa.PrivateKey, *rsa.PublicKey, error) {
	privateKey, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to generate RSA key pair: %w", err)
	}

	return privateKey, &privateKey.PublicKey, nil
}

func loadRSAPrivateKey(pemData []byte) (*rsa.PrivateKey, error) {
	block, _ := pem.Decode(pemData)
	if block == nil {
		return nil, errors.New("failed to parse PEM block containing the private key")
	}

	if privateKey, err := x509.ParsePKCS1PrivateKey(block.Bytes); err == nil {
		return privateKey, nil
	}

	key, err := x509.ParsePKCS8PrivateKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse private key: %w", err)
	}

	privateKey, ok := key.(*rsa.PrivateKey)
	if !ok {
		return nil, errors.New("not an RSA private key")
	}

	return privateKey, nil
}

func loadRSAPublicKey(pemData []byte) (*rsa.PublicKey, error) {
	block, _ := pem.Decode(pemData)
	if block == nil {
		return nil, errors.New("failed to parse PEM block containing the public key")
	}

	publicKey, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse public key: %w", err)
	}

	rsaPublicKey, ok := publicKey.(*rsa.PublicKey)
	if !ok {
		return nil, errors.New("not an RSA public key")
	}

	return rsaPublicKey, nil
}
