package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestApplyDefaults_FillsMissingSections(t *testing.T) {
	cfg := &Config{}

	applyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, "postgres", cfg.Store.Provider)
	assert.Equal(t, "local", cfg.Auth.Provider)
	assert.Equal(t, defaultTokenTTL, cfg.Auth.TokenTTL)
	assert.Equal(t, defaultTempPasswordLength, cfg.Auth.TempPasswordLength)
	assert.Equal(t, "mem://", cfg.Storage.BucketURL)
	assert.Equal(t, defaultMaxUploadSize, cfg.Storage.MaxUploadSize)
	assert.Equal(t, "partner_", cfg.Notifier.PartnerTopicPrefix)
	assert.Equal(t, "reviewers", cfg.Notifier.ReviewerTopic)
	assert.Nil(t, cfg.Redis)
	assert.Nil(t, cfg.Metrics)
}

func TestApplyDefaults_KeepsConfiguredValues(t *testing.T) {
	cfg := &Config{
		Store: StoreConfig{Provider: "firestore"},
		Auth:  &AuthConfig{Provider: "firebase", TokenTTL: time.Hour},
		Redis: &RedisConfig{Addr: "localhost:6379"},
		Metrics: &MetricsConfig{
			Enabled: true,
		},
	}

	applyDefaults(cfg)

	assert.Equal(t, "firestore", cfg.Store.Provider)
	assert.Equal(t, "firebase", cfg.Auth.Provider)
	assert.Equal(t, time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, defaultIdempotencyTTL, cfg.Redis.IdempotencyTTL)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
}
