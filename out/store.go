// Copyright 2018 The Gowater Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// Run holds the summary of one stored table
type Run struct {
	ID      string `db:"id" json:"id"`
	Desc    string `db:"description" json:"desc"`
	Thermo  string `db:"thermo" json:"thermo"`
	Electro string `db:"electro" json:"electro"`
	Created string `db:"created_at" json:"created"`
	Npoints int    `db:"npoints" json:"npoints"`
	Nerrors int    `db:"nerrors" json:"nerrors"`
}

// Store persists tables in a SQLite database
type Store struct {
	conn *sqlx.DB
}

// OpenStore opens or creates a SQLite database at path. Use ":memory:" for a temporary database.
func OpenStore(path string) (*Store, error) {
	dsn := path
	if path != ":memory:" {
		dsn += "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
	}
	conn, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if path == ":memory:" {
		conn.SetMaxOpenConns(1)
	}

	s := &Store{conn: conn}
	if err := s.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

// Close closes the database connection
func (s *Store) Close() error {
	return s.conn.Close()
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		description TEXT NOT NULL,
		thermo TEXT NOT NULL,
		electro TEXT NOT NULL,
		created_at TEXT NOT NULL,
		npoints INTEGER NOT NULL,
		nerrors INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS points (
		run_id TEXT NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
		t REAL NOT NULL,
		p REAL NOT NULL,
		density REAL NOT NULL,
		epsilon REAL NOT NULL,
		error TEXT NOT NULL,
		props_json TEXT NOT NULL,
		PRIMARY KEY (run_id, p, t)
	);
	`
	_, err := s.conn.Exec(schema)
	return err
}

// SaveTable writes a table and all its rows
func (s *Store) SaveTable(tbl *Table) error {
	tx, err := s.conn.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.Exec(`INSERT INTO runs (id, description, thermo, electro, created_at, npoints, nerrors)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		tbl.ID.String(), tbl.Desc, tbl.Thermo, tbl.Electro, tbl.Created.Format(time.RFC3339Nano), len(tbl.Rows), tbl.NumErrors())
	if err != nil {
		return fmt.Errorf("insert run %s: %w", tbl.ID, err)
	}

	stmt, err := tx.Preparex(`INSERT INTO points (run_id, t, p, density, epsilon, error, props_json)
		VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, r := range tbl.Rows {
		props, err := json.Marshal(r.Props)
		if err != nil {
			return fmt.Errorf("marshal props at T=%g P=%g: %w", r.T, r.P, err)
		}
		_, err = stmt.Exec(tbl.ID.String(), r.T, r.P, r.Props.Thermo.Density, r.Props.Electro.Epsilon, r.Err, string(props))
		if err != nil {
			return fmt.Errorf("insert point T=%g P=%g: %w", r.T, r.P, err)
		}
	}
	return tx.Commit()
}

// LoadTable reads the table with the given identifier
func (s *Store) LoadTable(id uuid.UUID) (*Table, error) {
	var run Run
	err := s.conn.Get(&run, `SELECT * FROM runs WHERE id = ?`, id.String())
	if err != nil {
		return nil, fmt.Errorf("load run %s: %w", id, err)
	}
	tbl := &Table{ID: id, Desc: run.Desc, Thermo: run.Thermo, Electro: run.Electro}
	tbl.Created, err = time.Parse(time.RFC3339Nano, run.Created)
	if err != nil {
		return nil, fmt.Errorf("parse creation time of run %s: %w", id, err)
	}

	var rows []struct {
		T         float64 `db:"t"`
		P         float64 `db:"p"`
		Err       string  `db:"error"`
		PropsJSON string  `db:"props_json"`
	}
	err = s.conn.Select(&rows, `SELECT t, p, error, props_json FROM points WHERE run_id = ? ORDER BY p, t`, id.String())
	if err != nil {
		return nil, fmt.Errorf("load points of run %s: %w", id, err)
	}
	tbl.Rows = make([]Row, len(rows))
	for i, r := range rows {
		tbl.Rows[i] = Row{T: r.T, P: r.P, Err: r.Err}
		if err := json.Unmarshal([]byte(r.PropsJSON), &tbl.Rows[i].Props); err != nil {
			return nil, fmt.Errorf("unmarshal props of run %s: %w", id, err)
		}
	}
	return tbl, nil
}

// Runs returns the summaries of all stored tables, newest first
func (s *Store) Runs() ([]Run, error) {
	runs := []Run{}
	err := s.conn.Select(&runs, `SELECT * FROM runs ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	return runs, nil
}

// DeleteRun removes a table and its rows
func (s *Store) DeleteRun(id uuid.UUID) error {
	tx, err := s.conn.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()
	if _, err := tx.Exec(`DELETE FROM points WHERE run_id = ?`, id.String()); err != nil {
		return fmt.Errorf("delete points of run %s: %w", id, err)
	}
	res, err := tx.Exec(`DELETE FROM runs WHERE id = ?`, id.String())
	if err != nil {
		return fmt.Errorf("delete run %s: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("delete run %s: not found", id)
	}
	return tx.Commit()
}
