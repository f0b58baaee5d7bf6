// Package config holds colorvp settings loaded from colorvp.toml, COLORVP_
// environment variables and command flags.
package config

// Config represents the persistent colorvp configuration stored as colorvp.toml.
type Config struct {
	// Palette is the afs URL of the JSON palette ({"#rrggbb": "name"}).
	Palette string `toml:"palette,omitempty" mapstructure:"palette"`
	// SQLitePath is the palette database used by import and stats.
	SQLitePath string `toml:"sqlite_path,omitempty" mapstructure:"sqlite_path"`
	// Table is the palette table name.
	Table string `toml:"table,omitempty" mapstructure:"table"`
	// Seed drives vantage point selection.
	Seed  uint64 `toml:"seed" mapstructure:"seed"`
	Debug bool   `toml:"debug,omitempty" mapstructure:"debug"`
	JSON  bool   `toml:"json,omitempty" mapstructure:"json"`
}
