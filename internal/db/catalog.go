package db

import (
	"database/sql"
	"fmt"
	"image/color"
	"os"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"hstin/wxcmap/colormap"
	"hstin/wxcmap/internal/config"
)

func InitDB(dbPath string) (*sql.DB, error) {
	os.Remove(dbPath)

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, err
	}

	_, err = db.Exec(`
		CREATE TABLE palettes (
			name TEXT,
			alpha INTEGER,
			under_color TEXT,
			over_color TEXT,
			PRIMARY KEY (name)
		);
		CREATE TABLE levels (
			palette TEXT,
			idx INTEGER,
			value REAL,
			PRIMARY KEY (palette, idx)
		);
		CREATE TABLE colors (
			palette TEXT,
			idx INTEGER,
			red INTEGER,
			green INTEGER,
			blue INTEGER,
			alpha INTEGER,
			tick REAL,
			label TEXT,
			PRIMARY KEY (palette, idx)
		);
		CREATE TABLE strips (
			palette TEXT,
			strip_data BLOB,
			PRIMARY KEY (palette)
		);
		CREATE TABLE metadata (
			name TEXT,
			value TEXT,
			PRIMARY KEY (name)
		);
	`)
	if err != nil {
		db.Close()
		return nil, err
	}

	_, err = db.Exec(`
		INSERT INTO metadata VALUES
		('name', 'Weather Color Maps'),
		('version', '1.0'),
		('description', 'Discrete color scales for meteorological fields'),
		('format', ?),
		('palettes', '?'),
		('created', '?');
	`, config.StripFormat)
	if err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

func UpdateMetadata(db *sql.DB, count int) error {
	_, err := db.Exec("UPDATE metadata SET value = ? WHERE name = 'palettes'", count)
	if err != nil {
		return err
	}
	_, err = db.Exec("UPDATE metadata SET value = ? WHERE name = 'created'", time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return err
	}
	return nil
}

func Metadata(db *sql.DB) (map[string]string, error) {
	rows, err := db.Query("SELECT name, value FROM metadata")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	meta := map[string]string{}
	for rows.Next() {
		var name, value string
		if err := rows.Scan(&name, &value); err != nil {
			return nil, err
		}
		meta[name] = value
	}
	return meta, rows.Err()
}

// InsertPalette stores p and its encoded strip in one transaction.
func InsertPalette(db *sql.DB, p *colormap.Palette, strip []byte) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.Exec("INSERT INTO palettes (name, alpha, under_color, over_color) VALUES (?, ?, ?, ?)",
		p.Name, p.Alpha, encodeColor(p.Under), encodeColor(p.Over))
	if err != nil {
		return fmt.Errorf("failed to insert palette %s: %w", p.Name, err)
	}

	for i, l := range p.Levels {
		if _, err := tx.Exec("INSERT INTO levels (palette, idx, value) VALUES (?, ?, ?)", p.Name, i, l); err != nil {
			return fmt.Errorf("failed to insert level %d of %s: %w", i, p.Name, err)
		}
	}

	stmt, err := tx.Prepare("INSERT INTO colors (palette, idx, red, green, blue, alpha, tick, label) VALUES (?, ?, ?, ?, ?, ?, ?, ?)")
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, c := range p.Colors {
		var tick sql.NullFloat64
		var label sql.NullString
		if i < len(p.Ticks) {
			tick = sql.NullFloat64{Float64: p.Ticks[i], Valid: true}
		}
		if i < len(p.TickLabels) {
			label = sql.NullString{String: p.TickLabels[i], Valid: true}
		}
		if _, err := stmt.Exec(p.Name, i, c.R, c.G, c.B, c.A, tick, label); err != nil {
			return fmt.Errorf("failed to insert color %d of %s: %w", i, p.Name, err)
		}
	}

	if strip != nil {
		if _, err := tx.Exec("INSERT INTO strips (palette, strip_data) VALUES (?, ?)", p.Name, strip); err != nil {
			return fmt.Errorf("failed to insert strip of %s: %w", p.Name, err)
		}
	}

	return tx.Commit()
}

// LoadPalette reads a stored palette back and validates it.
func LoadPalette(db *sql.DB, name string) (*colormap.Palette, error) {
	p := &colormap.Palette{Name: name}

	var under, over sql.NullString
	err := db.QueryRow("SELECT alpha, under_color, over_color FROM palettes WHERE name = ?", name).
		Scan(&p.Alpha, &under, &over)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%q: %w", name, colormap.ErrUnknownPalette)
	}
	if err != nil {
		return nil, err
	}
	if p.Under, err = decodeColor(under); err != nil {
		return nil, err
	}
	if p.Over, err = decodeColor(over); err != nil {
		return nil, err
	}

	rows, err := db.Query("SELECT value FROM levels WHERE palette = ? ORDER BY idx", name)
	if err != nil {
		return nil, err
	}
	for rows.Next() {
		var v float64
		if err := rows.Scan(&v); err != nil {
			rows.Close()
			return nil, err
		}
		p.Levels = append(p.Levels, v)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	rows, err = db.Query("SELECT red, green, blue, alpha, tick, label FROM colors WHERE palette = ? ORDER BY idx", name)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var c color.NRGBA
		var tick sql.NullFloat64
		var label sql.NullString
		if err := rows.Scan(&c.R, &c.G, &c.B, &c.A, &tick, &label); err != nil {
			return nil, err
		}
		p.Colors = append(p.Colors, c)
		if tick.Valid {
			p.Ticks = append(p.Ticks, tick.Float64)
		}
		if label.Valid {
			p.TickLabels = append(p.TickLabels, label.String)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Strip returns the encoded strip stored for a palette.
func Strip(db *sql.DB, name string) ([]byte, error) {
	var data []byte
	err := db.QueryRow("SELECT strip_data FROM strips WHERE palette = ?", name).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%q: %w", name, colormap.ErrUnknownPalette)
	}
	return data, err
}

func ListPalettes(db *sql.DB) ([]string, error) {
	rows, err := db.Query("SELECT name FROM palettes ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

func encodeColor(c *color.NRGBA) sql.NullString {
	if c == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: fmt.Sprintf("%02x%02x%02x%02x", c.R, c.G, c.B, c.A), Valid: true}
}

func decodeColor(s sql.NullString) (*color.NRGBA, error) {
	if !s.Valid {
		return nil, nil
	}
	var c color.NRGBA
	if _, err := fmt.Sscanf(s.String, "%02x%02x%02x%02x", &c.R, &c.G, &c.B, &c.A); err != nil {
		return nil, fmt.Errorf("invalid stored color %q: %w", s.String, err)
	}
	return &c, nil
}
