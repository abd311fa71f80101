package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllowedOrigins(t *testing.T) {
	prev := AppConfig
	t.Cleanup(func() { AppConfig = prev })

	AppConfig.CORSOrigins = "https://care.xyz, http://localhost:3000 ,"
	assert.Equal(t, []string{"https://care.xyz", "http://localhost:3000"}, AllowedOrigins())

	AppConfig.CORSOrigins = ""
	assert.Equal(t, []string{"*"}, AllowedOrigins())
}

func TestIsProduction(t *testing.T) {
	prev := AppConfig
	t.Cleanup(func() { AppConfig = prev })

	AppConfig.Env = "production"
	assert.True(t, IsProduction())
	AppConfig.Env = "development"
	assert.False(t, IsProduction())
}
