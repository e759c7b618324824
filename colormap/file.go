package colormap

import (
	"bufio"
	"fmt"
	"image/color"
	"io"
	"math"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"
)

// Read parses a color map file into a palette. Each non-comment line is
//
//	threshold r g b a
//
// and paints values >= threshold up to the next line's threshold. A leading
// "-inf" threshold sets the Under color and the last line sets Over.
// Malformed lines are skipped with a warning.
func Read(name string, r io.Reader) (*Palette, error) {
	var (
		levels []float64
		colors []color.NRGBA
		under  *color.NRGBA
	)

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		threshold, c, err := parseEntry(line)
		if err != nil {
			log.WithFields(log.Fields{"palette": name, "line": lineNo}).Warn(err)
			continue
		}

		if math.IsInf(threshold, -1) {
			if len(levels) > 0 || under != nil {
				log.WithFields(log.Fields{"palette": name, "line": lineNo}).Warn("-inf threshold after the first entry")
				continue
			}
			under = ptr(c)
			continue
		}

		levels = append(levels, threshold)
		colors = append(colors, c)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading color map file: %w", err)
	}

	if len(levels) < 2 {
		return nil, fmt.Errorf("%s: need at least two finite thresholds, found %d: %w", name, len(levels), ErrInvalidEntry)
	}

	p, err := New(name, colors[:len(colors)-1], levels)
	if err != nil {
		return nil, err
	}
	p.Under = under
	p.Over = ptr(colors[len(colors)-1])
	return p, nil
}

func parseEntry(line string) (float64, color.NRGBA, error) {
	fields := strings.Fields(line)
	if len(fields) < 5 {
		return 0, color.NRGBA{}, fmt.Errorf("invalid line format %q: %w", line, ErrInvalidEntry)
	}

	var threshold float64
	if fields[0] == "-inf" {
		threshold = math.Inf(-1)
	} else {
		val, err := strconv.ParseFloat(fields[0], 64)
		if err != nil || math.IsNaN(val) || math.IsInf(val, 0) {
			return 0, color.NRGBA{}, fmt.Errorf("invalid threshold value %q: %w", fields[0], ErrInvalidEntry)
		}
		threshold = val
	}

	var ch [4]uint8
	for i := range ch {
		v, err := strconv.ParseUint(fields[i+1], 10, 8)
		if err != nil {
			return 0, color.NRGBA{}, fmt.Errorf("invalid channel value %q: %w", fields[i+1], ErrInvalidEntry)
		}
		ch[i] = uint8(v)
	}
	return threshold, color.NRGBA{ch[0], ch[1], ch[2], ch[3]}, nil
}

// Write emits p in the format understood by Read.
func Write(w io.Writer, p *Palette) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# %s\n", p.Name)
	if p.Under != nil {
		writeEntry(bw, "-inf", *p.Under)
	}
	for i, c := range p.Colors {
		writeEntry(bw, formatLevel(p.Levels[i]), c)
	}
	over := p.Colors[len(p.Colors)-1]
	if p.Over != nil {
		over = *p.Over
	}
	writeEntry(bw, formatLevel(p.Levels[len(p.Levels)-1]), over)
	return bw.Flush()
}

func writeEntry(w io.Writer, threshold string, c color.NRGBA) {
	fmt.Fprintf(w, "%s %d %d %d %d\n", threshold, c.R, c.G, c.B, c.A)
}

func formatLevel(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
