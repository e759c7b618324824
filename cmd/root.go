// Package cmd implements the wxcmap command-line interface.
package cmd

import (
	"os"

	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"hstin/wxcmap/internal/config"
	"hstin/wxcmap/internal/logging"
)

// app carries the configuration shared by the subcommands of one run.
type app struct {
	v   *viper.Viper
	cfg *config.Config
}

// flagKeys binds command flags to their configuration keys. Flags are only
// bound on the commands that define them.
var flagKeys = map[string]string{
	"verbose":      config.KeyVerbose,
	"log-level":    config.KeyLogLevel,
	"log-json":     config.KeyLogJSON,
	"palette-dir":  config.KeyPaletteDir,
	"workers":      config.KeyWorkers,
	"quality":      config.KeyQuality,
	"lossless":     config.KeyLossless,
	"strip-height": config.KeyStripHeight,
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	rootCmd := &cobra.Command{
		Use:   "wxcmap",
		Short: "Discrete color scales for weather maps",
		Long: "wxcmap lists, inspects and exports the discrete color scales used for\n" +
			"precipitation, temperature, precipitable water and radar fields.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	rootCmd.PersistentFlags().String("config", "", "Config file (default ./wxcmap.toml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Show detailed progress")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().Bool("log-json", false, "Log in JSON format")
	rootCmd.PersistentFlags().String("palette-dir", "", "Directory of custom palette files to register")

	rootCmd.AddCommand(
		a.listCmd(),
		a.showCmd(),
		a.lookupCmd(),
		a.exportCmd(),
		a.importCmd(),
	)
	return rootCmd
}

func (a *app) setup(cmd *cobra.Command) error {
	for name, key := range flagKeys {
		if f := cmd.Flags().Lookup(name); f != nil {
			if err := a.v.BindPFlag(key, f); err != nil {
				return err
			}
		}
	}

	if err := config.Setup(a.v, lo.Must(cmd.Flags().GetString("config"))); err != nil {
		return err
	}
	cfg, err := config.Load(a.v)
	if err != nil {
		return err
	}
	logging.Setup(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogJSON)
	a.cfg = cfg

	return registerDir(cfg.PaletteDir)
}

// Execute runs the command line and exits non-zero on failure.
func Execute() {
	rootCmd := newRootCmd()
	rootCmd.SetOut(os.Stdout)
	handleErr(rootCmd.Execute())
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
