package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"hstin/wxcmap/colormap"
)

func (a *app) lookupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lookup [flags] <name> <value>...",
		Short: "Print the color each value maps to",
		Long: "Print the color each value maps to as #rrggbbaa, or \"none\" when the\n" +
			"value is left unrendered. Flags must come before the palette name.",
		Args:              cobra.MinimumNArgs(2),
		ValidArgsFunction: completePaletteNames,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := colormap.Get(args[0], optionsFromFlags(cmd))
			if err != nil {
				return err
			}

			for _, arg := range args[1:] {
				v, err := strconv.ParseFloat(arg, 64)
				if err != nil {
					return fmt.Errorf("invalid value %q: %w", arg, err)
				}

				c, ok := p.Lookup(v)
				if !ok {
					cmd.Printf("%s none\n", arg)
					continue
				}
				cmd.Printf("%s %s\n", arg, hex(c))
			}
			return nil
		},
	}

	// negative values must not be parsed as flags
	cmd.Flags().SetInterspersed(false)
	addOptionFlags(cmd)
	return cmd
}
