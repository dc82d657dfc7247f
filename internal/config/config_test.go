package config

import (
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "testing")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:5000", cfg.Server.Addr())
	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, "data/predial.db", cfg.Database.DSN())
	assert.Equal(t, "sqlite3", cfg.Database.SQLDriverName())
	assert.Equal(t, "data", cfg.Database.DataDir())
	assert.Equal(t, "data/sample.csv", cfg.Seed.Path)
	assert.True(t, cfg.Seed.Enabled)
	assert.Equal(t, ',', cfg.Seed.Comma())
	assert.Contains(t, cfg.Files.DownloadURLTemplate, "{id}")
	assert.Equal(t, 90*24*time.Hour, cfg.Certificate.TokenTTL)
	assert.NotNil(t, cfg.Certificate.PrivateKey())
	assert.NotNil(t, cfg.Certificate.PublicKey())
	assert.True(t, cfg.IsTesting())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("APP_ENV", "testing")
	t.Setenv("SERVER_PORT", "8081")
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("DB_HOST", "db")
	t.Setenv("SEED_DELIMITER", ";")
	t.Setenv("SERVER_READ_TIMEOUT", "3s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8081", cfg.Server.Addr())
	assert.Equal(t, 3*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "postgres", cfg.Database.SQLDriverName())
	assert.Contains(t, cfg.Database.DSN(), "host=db")
	assert.Empty(t, cfg.Database.DataDir())
	assert.Equal(t, ';', cfg.Seed.Comma())
}

func TestLoad_InvalidDriver(t *testing.T) {
	t.Setenv("DB_DRIVER", "mysql")

	_, err := Load()
	assert.ErrorContains(t, err, "unsupported DB_DRIVER")
}

func TestLoad_InvalidDelimiter(t *testing.T) {
	t.Setenv("SEED_DELIMITER", ";;")

	_, err := Load()
	assert.ErrorContains(t, err, "SEED_DELIMITER")
}

func TestLoad_ProductionRequiresKeys(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("CERTIFICATE_PRIVATE_KEY", "")
	t.Setenv("CERTIFICATE_PUBLIC_KEY", "")

	_, err := Load()
	assert.ErrorContains(t, err, "must be set in production")
}

func TestLoad_KeysFromEnvironment(t *testing.T) {
	privateKey, publicKey, err := GenerateRSAKeyPair()
	require.NoError(t, err)

	publicDER, err := x509.MarshalPKIXPublicKey(publicKey)
	require.NoError(t, err)

	privatePEM := pem.EncodeToMemory(&pem.Block{Type: "RSA PRIVATE KEY", Bytes: x509.MarshalPKCS1PrivateKey(privateKey)})
	publicPEM := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: publicDER})

	t.Setenv("APP_ENV", "production")
	t.Setenv("CERTIFICATE_PRIVATE_KEY", base64.StdEncoding.EncodeToString(privatePEM))
	t.Setenv("CERTIFICATE_PUBLIC_KEY", base64.StdEncoding.EncodeToString(publicPEM))

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, privateKey.Equal(cfg.Certificate.PrivateKey()))
	assert.True(t, publicKey.Equal(cfg.Certificate.PublicKey()))
}

func TestLoad_InvalidBase64Key(t *testing.T) {
	t.Setenv("CERTIFICATE_PRIVATE_KEY", "not-base64!!")
	t.Setenv("CERTIFICATE_PUBLIC_KEY", "not-base64!!")

	_, err := Load()
	assert.ErrorContains(t, err, "failed to decode CERTIFICATE_PRIVATE_KEY")
}
