package config

import (
	"testing"

	"github.com/rileyhilliard/simplelogin/internal/errors"
	"github.com/rileyhilliard/simplelogin/internal/ui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*Config)
		wantErr  bool
		contains string
	}{
		{
			name:   "defaults are valid",
			mutate: func(c *Config) {},
		},
		{
			name: "empty pattern disables validation",
			mutate: func(c *Config) {
				c.Username.Pattern = ""
				c.Password.Pattern = ""
			},
		},
		{
			name:     "future version",
			mutate:   func(c *Config) { c.Version = CurrentConfigVersion + 1 },
			wantErr:  true,
			contains: "from the future",
		},
		{
			name:     "missing app name",
			mutate:   func(c *Config) { c.AppName = "" },
			wantErr:  true,
			contains: "AppName is required",
		},
		{
			name:     "missing password label",
			mutate:   func(c *Config) { c.Password.Label = "" },
			wantErr:  true,
			contains: "Password.Label is required",
		},
		{
			name:     "bad color mode",
			mutate:   func(c *Config) { c.Output.Color = "sometimes" },
			wantErr:  true,
			contains: "Output.Color must be one of",
		},
		{
			name:     "username pattern does not compile",
			mutate:   func(c *Config) { c.Username.Pattern = "[a-z" },
			wantErr:  true,
			contains: "username pattern",
		},
		{
			name:     "password pattern does not compile",
			mutate:   func(c *Config) { c.Password.Pattern = "(unclosed" },
			wantErr:  true,
			contains: "password pattern",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := Validate(cfg)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.True(t, errors.IsCode(err, errors.ErrConfig))
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}

func TestValidateMatchesScreenPatterns(t *testing.T) {
	// Validate must accept exactly the patterns the login screen can compile.
	patterns := []string{
		DefaultUsernamePattern,
		DefaultPasswordPattern,
		"a|b",
		"[a-z",
		"(unclosed",
		`\p{L}+`,
		`x{2,1}`,
	}

	for _, p := range patterns {
		t.Run(p, func(t *testing.T) {
			_, compileErr := ui.CompilePattern(p)

			cfg := DefaultConfig()
			cfg.Username.Pattern = p
			err := Validate(cfg)

			assert.Equal(t, compileErr != nil, err != nil, "Validate and ui.CompilePattern disagree on %q", p)
		})
	}
}
