package cmd

import (
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"hstin/wxcmap/colormap"
)

func (a *app) listCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the registered palettes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			long := lo.Must(cmd.Flags().GetBool("long"))

			for _, name := range colormap.Names() {
				if !long {
					cmd.Println(name)
					continue
				}

				p, err := colormap.Get(name, colormap.Options{})
				if err != nil {
					return err
				}
				cmd.Printf("%-24s %4d bins  %g to %g\n", name, len(p.Colors), p.Levels[0], p.Levels[len(p.Levels)-1])
			}
			return nil
		},
	}

	cmd.Flags().BoolP("long", "l", false, "Show the bin count and level range")
	return cmd
}
