package cmd

import (
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"hstin/wxcmap/internal/config"
	"hstin/wxcmap/internal/render"
)

func (a *app) exportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export <catalog.sqlite>",
		Short: "Write palettes and their WebP lookup strips to a SQLite catalog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := *a.cfg
			cfg.OutputFile = args[0]
			cfg.Palettes = lo.Must(cmd.Flags().GetStringSlice("palette"))
			return render.Generate(&cfg)
		},
	}

	cmd.Flags().StringSliceP("palette", "p", nil, "Palettes to export (default all)")
	cmd.Flags().Int("workers", config.Default[config.KeyWorkers].(int), "Number of parallel workers")
	cmd.Flags().Int("quality", config.Default[config.KeyQuality].(int), "WebP quality (1-100) for lossy strips")
	cmd.Flags().Bool("lossless", config.Default[config.KeyLossless].(bool), "Encode strips losslessly")
	cmd.Flags().Int("strip-height", config.Default[config.KeyStripHeight].(int), "Strip height in pixels")
	return cmd
}
