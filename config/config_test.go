package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("LAUNCHKIT_TEST_VALUE", "set")
	assert.Equal(t, "set", getEnv("LAUNCHKIT_TEST_VALUE", "default"))
	assert.Equal(t, "default", getEnv("LAUNCHKIT_TEST_MISSING", "default"))
}

func TestGetEnvAsInt(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected int
	}{
		{name: "valid number", value: "42", expected: 42},
		{name: "empty", value: "", expected: 7},
		{name: "not a number", value: "many", expected: 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("LAUNCHKIT_TEST_INT", tt.value)
			assert.Equal(t, tt.expected, getEnvAsInt("LAUNCHKIT_TEST_INT", 7))
		})
	}
}

func TestGetEnvAsDuration(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected time.Duration
	}{
		{name: "valid duration", value: "30s", expected: 30 * time.Second},
		{name: "empty", value: "", expected: time.Minute},
		{name: "garbage", value: "soon", expected: time.Minute},
		{name: "negative", value: "-5m", expected: time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("LAUNCHKIT_TEST_DURATION", tt.value)
			assert.Equal(t, tt.expected, getEnvAsDuration("LAUNCHKIT_TEST_DURATION", time.Minute))
		})
	}
}

func TestLoadAppliesOverrides(t *testing.T) {
	oldPort, oldName, oldMax := ServerPort, SiteName, ServerRateLimitMax
	t.Cleanup(func() {
		ServerPort, SiteName, ServerRateLimitMax = oldPort, oldName, oldMax
	})

	t.Setenv("PORT", "9090")
	t.Setenv("SITE_NAME", "Acme")
	t.Setenv("RATE_LIMIT_MAX", "10")

	Load()

	assert.Equal(t, "9090", ServerPort)
	assert.Equal(t, "Acme", SiteName)
	assert.Equal(t, 10, ServerRateLimitMax)
}
