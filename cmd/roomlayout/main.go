// RoomLayout places furniture in rectangular rooms around point obstacles.
//
// Build:
//   go build -o roomlayout ./cmd/roomlayout
//
// Examples:
//   roomlayout place --room 12x10 --furniture Bed,Chair --obstacles 6,5 --pdf layout.pdf
//   roomlayout compare --request bedroom.yaml
//   roomlayout serve --config config.yaml

package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/piwi3910/RoomLayout/internal/config"
	"github.com/piwi3910/RoomLayout/internal/engine"
	"github.com/piwi3910/RoomLayout/internal/logging"
	"github.com/piwi3910/RoomLayout/internal/model"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// app carries what every subcommand needs once the root command has run.
type app struct {
	configPath string
	logLevel   string

	cfg     *config.Config
	catalog model.Catalog
	logger  zerolog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{catalog: model.DefaultCatalog()}

	rootCmd := &cobra.Command{
		Use:           "roomlayout",
		Short:         "Furniture placement engine",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}
	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (default $"+config.PathEnvVar+" or ./roomlayout.yaml)")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "override logging.level")

	rootCmd.AddCommand(placeCmd(a))
	rootCmd.AddCommand(compareCmd(a))
	rootCmd.AddCommand(capacityCmd(a))
	rootCmd.AddCommand(catalogCmd(a))
	rootCmd.AddCommand(serveCmd(a))
	rootCmd.AddCommand(templatesCmd(a))
	rootCmd.AddCommand(backupCmd(a))

	return rootCmd
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Logging.Level = a.logLevel
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
		Output: cmd.ErrOrStderr(),
	})

	a.cfg = cfg
	a.logger = logging.Component("cli")
	return nil
}

// optimizer builds an optimizer for settings using the configured
// predictor and seed.
func (a *app) optimizer(settings model.Settings) (*engine.Optimizer, error) {
	p, err := a.cfg.Predictor.Build()
	if err != nil {
		return nil, err
	}
	opts := []engine.Option{engine.WithLogger(a.logger)}
	if a.cfg.Layout.Seed != 0 {
		opts = append(opts, engine.WithSeed(a.cfg.Layout.Seed))
	}
	return engine.New(settings, a.catalog, p, opts...), nil
}
