package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/saransh1220/artist-console/internal/modules/auth/infrastructure/jwt"
	"github.com/saransh1220/artist-console/internal/shared/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() { rootCmd.SetArgs([]string{}) })
	err := rootCmd.Execute()
	return out.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "artist-console version v")
}

func TestDecodeTokenCommand(t *testing.T) {
	token, err := jwt.GenerateToken("k", time.Hour, 3, "artist", "ana@x.io")
	require.NoError(t, err)

	out, err := execute(t, "decode-token", token)
	require.NoError(t, err)
	assert.Contains(t, out, `"Role": "artist"`)
	assert.Contains(t, out, `"UserID": 3`)
	assert.Contains(t, out, `"IsAuthenticated": true`)

	_, err = execute(t, "decode-token", "not-a-token")
	assert.Error(t, err)
}

func TestCacheStore(t *testing.T) {
	cfg := config.Config{Cache: config.CacheConfig{Driver: "memory"}}
	store, closeStore, err := cacheStore(cfg, zap.NewNop())
	require.NoError(t, err)
	assert.NotNil(t, store)
	closeStore()

	cfg.Cache.Driver = "memcached"
	_, _, err = cacheStore(cfg, zap.NewNop())
	assert.Error(t, err)
}

func TestBuild(t *testing.T) {
	cfg := config.Config{
		API:   config.APIConfig{BaseURL: "http://127.0.0.1:1/api/"},
		Cache: config.CacheConfig{Driver: "memory", TTL: time.Minute},
	}
	handler, closeStore, err := build(cfg, zap.NewNop())
	require.NoError(t, err)
	defer closeStore()
	assert.NotNil(t, handler)
}
