// Package state persists last-used output settings and a conversion
// history between runs.
package state

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	_ "modernc.org/sqlite" // SQLite driver
)

const (
	appName    = "ledforge"
	dbFileName = "ledforge.db"
)

type Manager struct {
	db *sql.DB
}

// Open opens (or creates) the state database under the XDG data dir.
func Open() (*Manager, error) {
	dbPath, err := getDBPath()
	if err != nil {
		return nil, err
	}
	return OpenPath(dbPath)
}

// OpenPath opens a state database at an explicit path. Tests use this.
func OpenPath(dbPath string) (*Manager, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}

	if err := initSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	return &Manager{db: db}, nil
}

func (m *Manager) Close() error {
	return m.db.Close()
}

func getDBPath() (string, error) {
	return xdg.DataFile(filepath.Join(appName, dbFileName))
}

// Settings are the output parameters remembered from the previous run.
type Settings struct {
	Width      int
	Height     int
	Brightness int
	FPS        int
	Mode       string
	Format     string
}

// GetSettings returns the saved settings, or nil if none were saved yet.
func (m *Manager) GetSettings() (*Settings, error) {
	row := m.db.QueryRow(`
		SELECT width, height, brightness, fps, mode, format
		FROM output_settings WHERE id = 1
	`)
	var s Settings
	err := row.Scan(&s.Width, &s.Height, &s.Brightness, &s.FPS, &s.Mode, &s.Format)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query settings: %w", err)
	}
	return &s, nil
}

// SaveSettings stores the settings of the current run.
func (m *Manager) SaveSettings(s Settings) error {
	_, err := m.db.Exec(`
		INSERT INTO output_settings (id, width, height, brightness, fps, mode, format)
		VALUES (1, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			width = excluded.width,
			height = excluded.height,
			brightness = excluded.brightness,
			fps = excluded.fps,
			mode = excluded.mode,
			format = excluded.format
	`, s.Width, s.Height, s.Brightness, s.FPS, s.Mode, s.Format)
	if err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

// Conversion is one line in the history: where an artifact came from and
// where it was written.
type Conversion struct {
	Name       string
	Format     string
	Frames     int
	Width      int
	Height     int
	OutputPath string
	CreatedAt  time.Time
}

// RecordConversion appends a conversion to the history.
func (m *Manager) RecordConversion(c Conversion) error {
	_, err := m.db.Exec(`
		INSERT INTO conversions (name, format, frames, width, height, output_path, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, c.Name, c.Format, c.Frames, c.Width, c.Height, c.OutputPath, c.CreatedAt.Unix())
	if err != nil {
		return fmt.Errorf("record conversion: %w", err)
	}
	return nil
}

// RecentConversions returns the newest conversions, most recent first.
func (m *Manager) RecentConversions(limit int) ([]Conversion, error) {
	rows, err := m.db.Query(`
		SELECT name, format, frames, width, height, output_path, created_at
		FROM conversions
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("query conversions: %w", err)
	}
	defer rows.Close()

	var out []Conversion
	for rows.Next() {
		var c Conversion
		var created int64
		if err := rows.Scan(&c.Name, &c.Format, &c.Frames, &c.Width, &c.Height,
			&c.OutputPath, &created); err != nil {
			return nil, fmt.Errorf("scan conversion: %w", err)
		}
		c.CreatedAt = time.Unix(created, 0)
		out = append(out, c)
	}
	return out, rows.Err()
}
