package cmd

import (
	"bytes"
	"errors"
	"path/filepath"

	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"hstin/wxcmap/colormap"
	"hstin/wxcmap/internal/filesystem"
)

func (a *app) importCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file>...",
		Short: "Validate custom palette files and optionally install them",
		Long: "Validate custom palette files. With --install the normalized file is\n" +
			"written to the palette directory, where later runs register it.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			install := lo.Must(cmd.Flags().GetBool("install"))
			if install && a.cfg.PaletteDir == "" {
				return errors.New("--install needs a palette directory (--palette-dir or palettes.dir)")
			}

			for _, path := range args {
				p, err := readPaletteFile(path)
				if err != nil {
					return err
				}
				cmd.Printf("%s: %d bins, %g to %g\n", p.Name, len(p.Colors), p.Levels[0], p.Levels[len(p.Levels)-1])

				if lo.Must(cmd.Flags().GetBool("print")) {
					if err := colormap.Write(cmd.OutOrStdout(), p); err != nil {
						return err
					}
				}

				if install {
					if err := installPalette(a.cfg.PaletteDir, p); err != nil {
						return err
					}
				}
			}
			return nil
		},
	}

	cmd.Flags().Bool("print", false, "Print the normalized palette")
	cmd.Flags().Bool("install", false, "Copy the palette into the palette directory")
	return cmd
}

func installPalette(dir string, p *colormap.Palette) error {
	var buf bytes.Buffer
	if err := colormap.Write(&buf, p); err != nil {
		return err
	}

	fs := filesystem.API()
	if err := fs.MkdirAll(dir, 0755); err != nil {
		return err
	}
	path := filepath.Join(dir, p.Name+paletteExt)
	if err := fs.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return err
	}

	log.WithFields(log.Fields{"palette": p.Name, "file": path}).Info("installed palette")
	return nil
}
