package state

import "database/sql"

func initSchema(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS output_settings (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			width INTEGER NOT NULL,
			height INTEGER NOT NULL,
			brightness INTEGER NOT NULL,
			fps INTEGER NOT NULL,
			mode TEXT NOT NULL,
			format TEXT NOT NULL
		);

		CREATE TABLE IF NOT EXISTS conversions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			format TEXT NOT NULL,
			frames INTEGER NOT NULL,
			width INTEGER NOT NULL,
			height INTEGER NOT NULL,
			output_path TEXT NOT NULL,
			created_at INTEGER NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_conversions_created_at ON conversions(created_at);
	`)
	return err
}
