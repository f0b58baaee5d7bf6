package config

const (
	defaultPalette    = "colors.json"
	defaultSQLitePath = "colorvp.db"
	defaultTable      = "colors"
)

// NewDefaultConfig returns a Config with defaults for all fields.
func NewDefaultConfig() *Config {
	return &Config{
		Palette:    defaultPalette,
		SQLitePath: defaultSQLitePath,
		Table:      defaultTable,
	}
}
