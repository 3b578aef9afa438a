package config

type Config struct {
	Database   DatabaseConfig `mapstructure:"database"`
	Defaults   DefaultsConfig `mapstructure:"defaults"`
	Log        LogConfig      `mapstructure:"log"`
	ConfigPath string         `mapstructure:"-"`
}

type DatabaseConfig struct {
	// Backend selects the ledger storage: "sqlite" or "memory".
	Backend string `mapstructure:"backend"`
	Path    string `mapstructure:"path"`
}

type DefaultsConfig struct {
	// Type is the transaction type preselected in the add form.
	Type string `mapstructure:"type"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

func NewDefault() *Config {
	return &Config{
		Database: DatabaseConfig{Backend: "sqlite", Path: ""},
		Defaults: DefaultsConfig{Type: "expense"},
		Log:      LogConfig{Level: "warn"},
	}
}
