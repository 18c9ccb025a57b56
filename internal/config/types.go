package config

// CurrentConfigVersion is the schema version for the config file.
// Increment when making breaking changes to the config structure.
const CurrentConfigVersion = 1

// Built-in field patterns.
const (
	// DefaultUsernamePattern accepts identifiers: a letter or underscore,
	// then letters, digits, and underscores.
	DefaultUsernamePattern = `^[a-zA-Z_][a-zA-Z0-9_]*$`

	// DefaultPasswordPattern accepts ASCII letters, digits, space, and !@#$%^&*()_+.
	DefaultPasswordPattern = `^[a-zA-Z0-9 !@#$%^&*()_+]+$`
)

// Config represents the complete simplelogin.yaml configuration file.
type Config struct {
	Version  int          `yaml:"version" mapstructure:"version"`
	AppName  string       `yaml:"app_name" mapstructure:"app_name" validate:"required"`
	Tagline  string       `yaml:"tagline" mapstructure:"tagline"`
	Username FieldConfig  `yaml:"username" mapstructure:"username"`
	Password FieldConfig  `yaml:"password" mapstructure:"password"`
	Output   OutputConfig `yaml:"output" mapstructure:"output"`
}

// FieldConfig configures one of the two login inputs.
type FieldConfig struct {
	// Label shown above the input.
	Label string `yaml:"label" mapstructure:"label" validate:"required"`

	// Pattern is a regular expression the whole input must match.
	// Empty disables validation for the field.
	Pattern string `yaml:"pattern" mapstructure:"pattern"`
}

// OutputConfig controls terminal output.
type OutputConfig struct {
	// Color mode: "auto", "always", or "never".
	// "auto" lets the terminal decide.
	Color string `yaml:"color" mapstructure:"color" validate:"omitempty,oneof=auto always never"`

	// Logo toggles the ASCII logo at the top of the screen.
	Logo bool `yaml:"logo" mapstructure:"logo"`
}

// DefaultConfig returns a Config with the built-in login screen.
func DefaultConfig() *Config {
	return &Config{
		Version: CurrentConfigVersion,
		AppName: "SimpleLogin",
		Tagline: "The best experience you've ever had!",
		Username: FieldConfig{
			Label:   "Username",
			Pattern: DefaultUsernamePattern,
		},
		Password: FieldConfig{
			Label:   "Password",
			Pattern: DefaultPasswordPattern,
		},
		Output: OutputConfig{
			Color: "auto",
			Logo:  true,
		},
	}
}
