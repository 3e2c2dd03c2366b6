package configs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() Config {
	var c Config
	c.App.HTTPAddr = ":8080"
	c.Admin.Password = "admin123"
	c.Admin.JWTSecret = "secret"
	c.Cart.Key = "cart"
	return c
}

func TestValidate(t *testing.T) {
	require.NoError(t, validConfig().Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{name: "missing http addr", mutate: func(c *Config) { c.App.HTTPAddr = "" }},
		{name: "missing admin password", mutate: func(c *Config) { c.Admin.Password = "" }},
		{name: "missing jwt secret", mutate: func(c *Config) { c.Admin.JWTSecret = "" }},
		{name: "missing cart key", mutate: func(c *Config) { c.Cart.Key = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validConfig()
			tt.mutate(&c)
			assert.Error(t, c.Validate())
		})
	}
}
