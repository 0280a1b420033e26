package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"

	"campusdocs/internal/config"
)

func TestNewMinIO_RequiresSettings(t *testing.T) {
	full := config.MinIOConfig{Endpoint: "localhost:9000", AccessKey: "ak", SecretKey: "sk", Bucket: "campusdocs"}

	tests := []struct {
		name   string
		mutate func(c *config.MinIOConfig)
		want   string
	}{
		{name: "endpoint", mutate: func(c *config.MinIOConfig) { c.Endpoint = "" }, want: "endpoint"},
		{name: "credentials", mutate: func(c *config.MinIOConfig) { c.SecretKey = "" }, want: "credentials"},
		{name: "bucket", mutate: func(c *config.MinIOConfig) { c.Bucket = "" }, want: "bucket"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := full
			tt.mutate(&cfg)

			store, err := NewMinIO(context.Background(), cfg)
			assert.ErrorContains(t, err, tt.want)
			assert.Nil(t, store)
		})
	}
}

func TestMapMinIOError(t *testing.T) {
	assert.NoError(t, mapMinIOError(nil))
	assert.ErrorIs(t, mapMinIOError(minio.ErrorResponse{Code: "NoSuchKey"}), ErrNotFound)
	assert.ErrorIs(t, mapMinIOError(minio.ErrorResponse{Code: "NoSuchBucket"}), ErrNotFound)

	denied := minio.ErrorResponse{Code: "AccessDenied"}
	assert.NotErrorIs(t, mapMinIOError(denied), ErrNotFound)

	other := errors.New("connection reset")
	assert.Equal(t, other, mapMinIOError(other))
}
