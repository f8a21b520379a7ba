package cache

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNoop(t *testing.T) {
	var c Noop
	c.Put(context.Background(), "key", []byte("value"))
	got, ok := c.Get(context.Background(), "key")
	assert.False(t, ok)
	assert.Nil(t, got)
}

func TestObjectKey(t *testing.T) {
	tests := []struct {
		name string
		key  string
		want string
	}{
		{name: "plain", key: "nearby/30.2672,-97.7431/r8046/opentrue/k/p", want: "nearby/30.2672,-97.7431/r8046/opentrue/k/p.json"},
		{name: "spaces replaced", key: "a key with spaces", want: "a-key-with-spaces.json"},
		{name: "lowercased", key: "Nearby/PAGE", want: "nearby/page.json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, objectKey(tt.key))
		})
	}
}

func TestNewS3Cache_MissingSettings(t *testing.T) {
	tests := []struct {
		name string
		cfg  S3Config
	}{
		{name: "empty", cfg: S3Config{}},
		{name: "no bucket", cfg: S3Config{Endpoint: "localhost:9000", AccessKey: "ak", SecretKey: "sk"}},
		{name: "no credentials", cfg: S3Config{Endpoint: "localhost:9000", Bucket: "decider-cache"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewS3Cache(context.Background(), tt.cfg, zap.NewNop().Sugar())
			require.Error(t, err)
			assert.Contains(t, err.Error(), "missing")
		})
	}
}
