package cmd

import (
	"fmt"
	"image/color"
	"path/filepath"
	"slices"
	"strings"

	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"hstin/wxcmap/colormap"
	"hstin/wxcmap/internal/filesystem"
)

// paletteExt marks custom palette files in the palette directory.
const paletteExt = ".txt"

// registerDir registers every palette file in dir under its base name.
func registerDir(dir string) error {
	if dir == "" {
		return nil
	}

	// a directory not created yet registers nothing; import --install makes it
	exists, err := filesystem.API().Exists(dir)
	if err != nil {
		return fmt.Errorf("failed to check palette directory: %w", err)
	}
	if !exists {
		log.WithField("dir", dir).Debug("palette directory does not exist")
		return nil
	}

	entries, err := filesystem.API().ReadDir(dir)
	if err != nil {
		return fmt.Errorf("failed to read palette directory: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != paletteExt {
			continue
		}

		p, err := readPaletteFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return err
		}
		if slices.Contains(colormap.Names(), p.Name) {
			log.WithField("palette", p.Name).Warn("custom palette replaces a registered one")
		}
		colormap.Register(p.Name, fileConstructor(p))

		log.WithFields(log.Fields{
			"palette": p.Name,
			"bins":    len(p.Colors),
		}).Debug("registered custom palette")
	}
	return nil
}

func readPaletteFile(path string) (*colormap.Palette, error) {
	f, err := filesystem.API().Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open palette file: %w", err)
	}
	defer f.Close()

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	p, err := colormap.Read(name, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// fileConstructor serves copies of a palette read from disk. A levels
// override replaces the file's thresholds.
func fileConstructor(p *colormap.Palette) colormap.Constructor {
	return func(opts colormap.Options) (*colormap.Palette, error) {
		if opts.Levels != nil {
			return p.WithLevels(opts.Levels)
		}
		return p.WithLevels(p.Levels)
	}
}

func addOptionFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Slice("levels", nil, "Override the palette levels (comma separated)")
	cmd.Flags().Bool("keep-trace", false, "Keep the white trace bin of precipitation palettes")
	cmd.Flags().Bool("keep-white", false, "Keep the white zero band of diverging palettes opaque")
}

func optionsFromFlags(cmd *cobra.Command) colormap.Options {
	opts := colormap.Options{
		KeepTrace: lo.Must(cmd.Flags().GetBool("keep-trace")),
		KeepWhite: lo.Must(cmd.Flags().GetBool("keep-white")),
	}
	if cmd.Flags().Changed("levels") {
		opts.Levels = lo.Must(cmd.Flags().GetFloat64Slice("levels"))
	}
	return opts
}

func completePaletteNames(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return colormap.Names(), cobra.ShellCompDirectiveNoFileComp
}

func hex(c color.NRGBA) string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}
