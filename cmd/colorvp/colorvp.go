// Package colorvpcmder provides the colorvp command line.
package colorvpcmder

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/viant/colorvp/config"
	"github.com/viant/colorvp/engine"
	"github.com/viant/colorvp/logger"
	"github.com/viant/colorvp/palette"
	"github.com/viant/colorvp/store"
)

const colorvpLongDesc string = `colorvp maps arbitrary colors to the nearest entry of a named palette
using a vantage-point tree.

Palettes are JSON documents of the form {"#rrggbb": "name"} read from any
afs URL (local path, mem://, s3://, gs://), or a SQLite table populated with
"colorvp import".

Settings come from flags, COLORVP_ environment variables, colorvp.toml in
--config-dir, then defaults.

Examples:
  colorvp quantize '#ff3860' '#0f5e80'
  colorvp shades '#0e5d83' --max 8 --lerp luminance
  colorvp import --sqlite palette.db
  colorvp match '#ff3860' --sqlite palette.db
  colorvp stats --sqlite palette.db`

const colorvpShortDesc string = "Named-color palette quantization"

// commonFlags lists every registry flag bound on the root command.
var commonFlags = []string{
	config.FlagPalette,
	config.FlagSQLite,
	config.FlagTable,
	config.FlagSeed,
	config.FlagDebug,
	config.FlagJSON,
}

type colorvpCommander struct {
	configDir string
	flags     config.Config

	cfg    *config.Config
	logger *slog.Logger
}

// NewColorvpCmd creates the root command.
func NewColorvpCmd() *cobra.Command {
	cmder := &colorvpCommander{}

	cmd := &cobra.Command{
		Use:          "colorvp",
		Short:        colorvpShortDesc,
		Long:         colorvpLongDesc,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return cmder.init(cmd)
		},
	}

	cmd.PersistentFlags().StringVar(&cmder.configDir, "config-dir", "", "Directory holding colorvp.toml")
	config.AddStringFlag(cmd, config.Flags, config.FlagPalette, &cmder.flags.Palette)
	config.AddStringFlag(cmd, config.Flags, config.FlagSQLite, &cmder.flags.SQLitePath)
	config.AddStringFlag(cmd, config.Flags, config.FlagTable, &cmder.flags.Table)
	config.AddUint64Flag(cmd, config.Flags, config.FlagSeed, &cmder.flags.Seed)
	config.AddBoolFlag(cmd, config.Flags, config.FlagDebug, &cmder.flags.Debug)
	config.AddBoolFlag(cmd, config.Flags, config.FlagJSON, &cmder.flags.JSON)

	cmd.AddCommand(newQuantizeCmd(cmder))
	cmd.AddCommand(newShadesCmd(cmder))
	cmd.AddCommand(newImportCmd(cmder))
	cmd.AddCommand(newMatchCmd(cmder))
	cmd.AddCommand(newStatsCmd(cmder))
	cmd.AddCommand(newConfigCmd(cmder))

	return cmd
}

func (c *colorvpCommander) init(cmd *cobra.Command) error {
	v, err := config.InitViper(c.configDir)
	if err != nil {
		return err
	}
	config.BindRegisteredFlags(v, cmd, config.Flags, commonFlags)
	c.cfg, err = config.Load(v)
	if err != nil {
		return err
	}
	c.logger = logger.New(
		logger.WithDebug(c.cfg.Debug),
		logger.WithJSON(c.cfg.JSON),
		logger.WithPretty(!c.cfg.JSON),
		logger.WithWriter(cmd.ErrOrStderr()),
	)
	c.logger.Debug("configuration resolved",
		"palette", c.cfg.Palette,
		"sqlite", c.cfg.SQLitePath,
		"table", c.cfg.Table,
		"seed", c.cfg.Seed,
	)
	return nil
}

func (c *colorvpCommander) paletteOptions() []palette.Option {
	return []palette.Option{palette.WithLogger(c.logger), palette.WithSeed(c.cfg.Seed)}
}

// loadPalette reads the palette from SQLite when fromDB is set, otherwise
// from the configured palette URL.
func (c *colorvpCommander) loadPalette(ctx context.Context, fromDB bool) (*palette.Palette, error) {
	if !fromDB {
		return palette.Load(ctx, nil, c.cfg.Palette, c.paletteOptions()...)
	}
	db, st, err := c.openStore()
	if err != nil {
		return nil, err
	}
	defer db.Close()
	return st.Palette(ctx, c.paletteOptions()...)
}

func (c *colorvpCommander) openStore() (*sql.DB, *store.SQLiteStore, error) {
	db, err := engine.Open(c.cfg.SQLitePath)
	if err != nil {
		return nil, nil, fmt.Errorf("opening %v: %w", c.cfg.SQLitePath, err)
	}
	st, err := store.NewSQLiteStore(db, c.cfg.Table)
	if err != nil {
		db.Close()
		return nil, nil, err
	}
	c.logger.Debug("using SQLite storage", "path", c.cfg.SQLitePath, "table", st.Table())
	return db, st, nil
}
