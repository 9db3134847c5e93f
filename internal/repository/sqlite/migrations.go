package sqlite

import (
	"database/sql"
)

const createEmployeesTable = `
CREATE TABLE IF NOT EXISTS employees (
    id INTEGER PRIMARY KEY,
    name TEXT NOT NULL,
    chat_id INTEGER NOT NULL,
    role TEXT NOT NULL
);
`

const createImportsTable = `
CREATE TABLE IF NOT EXISTS imports (
    id TEXT PRIMARY KEY,
    employee_id INTEGER NOT NULL,
    source TEXT NOT NULL,
    checksum TEXT NOT NULL,
    created_at TEXT NOT NULL,
    UNIQUE (employee_id, checksum)
);
`

const createShiftsTable = `
CREATE TABLE IF NOT EXISTS shifts (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    employee_id INTEGER NOT NULL,
    import_id TEXT NOT NULL REFERENCES imports(id),
    date TEXT NOT NULL,
    start_time TEXT NOT NULL,
    end_time TEXT NOT NULL,
    shift_type TEXT NOT NULL,
    rate REAL NOT NULL,
    hours REAL NOT NULL,
    amount REAL NOT NULL,
    paid BOOLEAN NOT NULL DEFAULT 0
);
`

const createShiftsIndex = `CREATE INDEX IF NOT EXISTS idx_shifts_employee_date ON shifts(employee_id, date);`

func Migrate(db *sql.DB) error {
	for _, stmt := range []string{createEmployeesTable, createImportsTable, createShiftsTable, createShiftsIndex} {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}
