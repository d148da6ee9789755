package storage

import (
	"context"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/flexo/backend/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
)

func minioConfig() *config.StorageConfig {
	return &config.StorageConfig{
		Bucket:          "flexo-test",
		AccessKeyID:     "test-key",
		SecretAccessKey: "test-secret",
		Region:          "sa-east-1",
		Endpoint:        "localhost:9000",
		UsePathStyle:    true,
		KeyPrefix:       "/documents/",
	}
}

func TestNewArchive(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*config.StorageConfig)
		wantErr error
	}{
		{"missing bucket", func(c *config.StorageConfig) { c.Bucket = "" }, ErrNoBucket},
		{"key id without secret", func(c *config.StorageConfig) { c.SecretAccessKey = "" }, ErrHalfCredential},
		{"default credential chain", func(c *config.StorageConfig) { c.AccessKeyID, c.SecretAccessKey = "", "" }, nil},
		{"aws endpoint", func(c *config.StorageConfig) { c.Endpoint = "" }, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := minioConfig()
			tt.mutate(cfg)
			a, err := NewArchive(cfg)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "flexo-test", a.Bucket())
		})
	}

	t.Run("nil config", func(t *testing.T) {
		_, err := NewArchive(nil)
		assert.ErrorIs(t, err, ErrNoConfig)
	})

	t.Run("bad endpoint", func(t *testing.T) {
		cfg := minioConfig()
		cfg.Endpoint = "http://"
		_, err := NewArchive(cfg)
		assert.ErrorContains(t, err, "invalid storage endpoint")
	})
}

func TestNewArchive_LinkTTL(t *testing.T) {
	a, err := NewArchive(minioConfig())
	require.NoError(t, err)
	assert.Equal(t, defaultLinkTTL, a.linkTTL)

	cfg := minioConfig()
	cfg.PresignExpiry = time.Hour
	a, err = NewArchive(cfg)
	require.NoError(t, err)
	assert.Equal(t, time.Hour, a.linkTTL)

	log := zaptest.NewLogger(t)
	a, err = NewArchive(cfg, WithLogger(log), WithLinkTTL(30*time.Minute))
	require.NoError(t, err)
	assert.Same(t, log, a.log)
	assert.Equal(t, 30*time.Minute, a.linkTTL)
}

func TestArchive_Key(t *testing.T) {
	a, err := NewArchive(minioConfig())
	require.NoError(t, err)
	assert.Equal(t, "documents/invoices/12.pdf", a.Key("invoices/12.pdf"))
	assert.Equal(t, "documents/invoices/12.pdf", a.Key("/invoices/12.pdf"))

	cfg := minioConfig()
	cfg.KeyPrefix = ""
	bare, err := NewArchive(cfg)
	require.NoError(t, err)
	assert.Equal(t, "invoices/12.pdf", bare.Key("invoices/12.pdf"))
}

func TestArchive_SignedURL(t *testing.T) {
	a, err := NewArchive(minioConfig())
	require.NoError(t, err)
	ctx := context.Background()

	_, _, err = a.SignedURL(ctx, "", time.Minute)
	assert.ErrorIs(t, err, ErrEmptyKey)

	before := time.Now()
	link, expiresAt, err := a.SignedURL(ctx, "documents/invoices/12.pdf", 10*time.Minute)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(link, "http://localhost:9000/flexo-test/documents/invoices/12.pdf"), link)
	assert.Contains(t, link, "X-Amz-Signature=")
	assert.WithinDuration(t, before.Add(10*time.Minute), expiresAt, 5*time.Second)

	_, expiresAt, err = a.SignedURL(ctx, "a.pdf", 0)
	require.NoError(t, err)
	assert.WithinDuration(t, before.Add(defaultLinkTTL), expiresAt, 5*time.Second)
}

func TestArchive_EmptyKeys(t *testing.T) {
	a, err := NewArchive(minioConfig())
	require.NoError(t, err)
	ctx := context.Background()

	_, err = a.Put(ctx, "  ", "application/pdf", []byte("%PDF"))
	assert.ErrorIs(t, err, ErrEmptyKey)
	_, err = a.Exists(ctx, "")
	assert.ErrorIs(t, err, ErrEmptyKey)
	assert.ErrorIs(t, a.Delete(ctx, ""), ErrEmptyKey)
}

// Needs MinIO or RustFS on localhost:9000 and INTEGRATION_TEST=1
func TestArchive_RoundTrip(t *testing.T) {
	if os.Getenv("INTEGRATION_TEST") != "1" {
		t.Skip("set INTEGRATION_TEST=1 with MinIO on localhost:9000")
	}
	ctx := context.Background()
	a, err := NewArchive(&config.StorageConfig{
		Bucket:          "flexo-integration",
		AccessKeyID:     "minioadmin",
		SecretAccessKey: "minioadmin",
		Endpoint:        "http://localhost:9000",
		UsePathStyle:    true,
		KeyPrefix:       "test",
	}, WithLogger(zap.NewNop()))
	require.NoError(t, err)
	require.NoError(t, a.EnsureBucket(ctx))

	objectKey, err := a.Put(ctx, "invoices/1.pdf", "application/pdf", []byte("%PDF-1.4"))
	require.NoError(t, err)
	assert.Equal(t, "test/invoices/1.pdf", objectKey)

	ok, err := a.Exists(ctx, objectKey)
	require.NoError(t, err)
	assert.True(t, ok)

	link, _, err := a.SignedURL(ctx, objectKey, time.Minute)
	require.NoError(t, err)
	assert.NotEmpty(t, link)

	require.NoError(t, a.Delete(ctx, objectKey))
	ok, err = a.Exists(ctx, objectKey)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, a.EnsureBucket(ctx))
}
