package config

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Viper keys.
const (
	KeyPalette    = "palette"
	KeySQLitePath = "sqlite_path"
	KeyTable      = "table"
	KeySeed       = "seed"
	KeyDebug      = "debug"
	KeyJSON       = "json"
)

// Flag describes a CLI flag bound to a viper key.
type Flag struct {
	Name        string
	Shorthand   string
	ViperKey    string
	Description string
}

// FlagSet maps registry keys to flags.
type FlagSet map[string]Flag

// Flag registry keys.
const (
	FlagPalette = "palette"
	FlagSQLite  = "sqlite"
	FlagTable   = "table"
	FlagSeed    = "seed"
	FlagDebug   = "debug"
	FlagJSON    = "json"
)

// Flags is the registry shared by all colorvp commands.
var Flags = FlagSet{
	FlagPalette: {Name: "palette", Shorthand: "p", ViperKey: KeyPalette, Description: "Palette URL (JSON object of hex to name)"},
	FlagSQLite:  {Name: "sqlite", Shorthand: "s", ViperKey: KeySQLitePath, Description: "Path to SQLite palette database"},
	FlagTable:   {Name: "table", ViperKey: KeyTable, Description: "Palette table name"},
	FlagSeed:    {Name: "seed", ViperKey: KeySeed, Description: "Vantage point selection seed"},
	FlagDebug:   {Name: "debug", Shorthand: "d", ViperKey: KeyDebug, Description: "Enable debug logging"},
	FlagJSON:    {Name: "json", ViperKey: KeyJSON, Description: "Log as JSON"},
}

// AddStringFlag registers a string flag on cmd from the given FlagSet.
func AddStringFlag(cmd *cobra.Command, fs FlagSet, key string, target *string) {
	def, ok := fs[key]
	if !ok {
		return
	}
	defaultVal := defaults().GetString(def.ViperKey)
	cmd.PersistentFlags().StringVarP(target, def.Name, def.Shorthand, defaultVal, def.Description)
}

// AddUint64Flag registers a uint64 flag on cmd from the given FlagSet.
func AddUint64Flag(cmd *cobra.Command, fs FlagSet, key string, target *uint64) {
	def, ok := fs[key]
	if !ok {
		return
	}
	defaultVal := defaults().GetUint64(def.ViperKey)
	cmd.PersistentFlags().Uint64VarP(target, def.Name, def.Shorthand, defaultVal, def.Description)
}

// AddBoolFlag registers a bool flag on cmd from the given FlagSet.
func AddBoolFlag(cmd *cobra.Command, fs FlagSet, key string, target *bool) {
	def, ok := fs[key]
	if !ok {
		return
	}
	defaultVal := defaults().GetBool(def.ViperKey)
	cmd.PersistentFlags().BoolVarP(target, def.Name, def.Shorthand, defaultVal, def.Description)
}

// BindRegisteredFlags binds already-registered flags to viper so that
// flag > env > config file > default.
func BindRegisteredFlags(v *viper.Viper, cmd *cobra.Command, fs FlagSet, keys []string) {
	for _, key := range keys {
		def, ok := fs[key]
		if !ok {
			continue
		}
		f := cmd.Flags().Lookup(def.Name)
		if f == nil {
			continue
		}
		_ = v.BindPFlag(def.ViperKey, f)
	}
}

func defaults() *viper.Viper {
	v := viper.New()
	setViperDefaults(v)
	return v
}
