package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeEnvKey(t *testing.T) {
	loaded := map[string]any{
		"analytics": map[string]any{
			"enabled": true,
			"dataDir": "./data/analytics",
			"geoipDb": "",
		},
		"store": map[string]any{
			"gatewayUrl": "",
		},
		"secretKey": map[string]any{
			"unlock": "",
		},
	}

	tests := map[string]string{
		"ANALYTICS_DATADIR":   "analytics.dataDir",
		"ANALYTICS_GEOIPDB":   "analytics.geoipDb",
		"ANALYTICS_ENABLED":   "analytics.enabled",
		"STORE_GATEWAYURL":    "store.gatewayUrl",
		"SECRETKEY_UNLOCK":    "secretKey.unlock",
		"STORE__GATEWAYURL":   "store.gatewayUrl",
		"STORE_UNKNOWN_FIELD": "store.unknown.field",
		"RATELIMIT_BURST":     "ratelimit.burst",
	}

	for envKey, want := range tests {
		t.Run(envKey, func(t *testing.T) {
			assert.Equal(t, want, canonicalizeEnvKey(envKey, loaded))
		})
	}
}
