package cmd

import (
	"strconv"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"hstin/wxcmap/colormap"
)

func (a *app) showCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:               "show <name>",
		Short:             "Print a palette as a color map file or a normalized array",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completePaletteNames,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := colormap.Get(args[0], optionsFromFlags(cmd))
			if err != nil {
				return err
			}

			if lo.Must(cmd.Flags().GetBool("array")) {
				for _, row := range p.Array() {
					cmd.Println(strings.Join(lo.Map(row, func(v float64, _ int) string {
						return strconv.FormatFloat(v, 'f', 4, 64)
					}), " "))
				}
				return nil
			}

			channels := "rgb"
			if p.Alpha {
				channels = "rgba"
			}
			cmd.Printf("# %s: %d bins, %s\n", p.Name, len(p.Colors), channels)
			for i, label := range p.TickLabels {
				if i < len(p.Ticks) {
					cmd.Printf("# %g %s\n", p.Ticks[i], label)
				}
			}
			return colormap.Write(cmd.OutOrStdout(), p)
		},
	}

	addOptionFlags(cmd)
	cmd.Flags().Bool("array", false, "Print colors normalized to [0, 1], one bin per line")
	return cmd
}
