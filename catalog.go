package ppmview

import (
	"database/sql"
	"fmt"

	"github.com/bodgit/ppmview/netpbm"
	_ "github.com/mattn/go-sqlite3"
)

// Entry is what the catalog remembers about an image file.
type Entry struct {
	Path     string
	SHA1     string
	Format   netpbm.Format
	Width    int
	Height   int
	MaxColor int
	Scale    int
}

type Catalog struct {
	db *sql.DB
}

func NewCatalog(file string) (*Catalog, error) {
	db, err := sql.Open("sqlite3", fmt.Sprintf("%s?_busy_timeout=5000", file))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(10)

	if _, err = db.Exec("CREATE TABLE IF NOT EXISTS image (id INTEGER PRIMARY KEY NOT NULL, path TEXT NOT NULL UNIQUE, sha1 TEXT NOT NULL, format TEXT NOT NULL, width INTEGER NOT NULL, height INTEGER NOT NULL, max_color INTEGER NOT NULL, scale INTEGER NOT NULL)"); err != nil {
		db.Close()
		return nil, err
	}

	return &Catalog{
		db: db,
	}, nil
}

func (c *Catalog) Close() error {
	return c.db.Close()
}

// Record stores e, replacing any existing entry for the same path.
func (c *Catalog) Record(e Entry) error {
	if _, err := c.db.Exec("INSERT OR REPLACE INTO image (path, sha1, format, width, height, max_color, scale) VALUES (?, ?, ?, ?, ?, ?, ?)", e.Path, e.SHA1, e.Format.Magic(), e.Width, e.Height, e.MaxColor, e.Scale); err != nil {
		return err
	}
	return nil
}

type scanner interface {
	Scan(...interface{}) error
}

func scanEntry(row scanner) (Entry, error) {
	var e Entry
	var magic string
	if err := row.Scan(&e.Path, &e.SHA1, &magic, &e.Width, &e.Height, &e.MaxColor, &e.Scale); err != nil {
		return e, err
	}
	switch magic {
	case netpbm.MonochromeASCII.Magic():
		e.Format = netpbm.MonochromeASCII
	case netpbm.ColorASCII.Magic():
		e.Format = netpbm.ColorASCII
	case netpbm.ColorBinary.Magic():
		e.Format = netpbm.ColorBinary
	default:
		return e, fmt.Errorf("catalog: unknown format %q for %s", magic, e.Path)
	}
	return e, nil
}

// Lookup returns the entry for path, or nil if there is none.
func (c *Catalog) Lookup(path string) (*Entry, error) {
	e, err := scanEntry(c.db.QueryRow("SELECT path, sha1, format, width, height, max_color, scale FROM image WHERE path = ?", path))
	switch err {
	case sql.ErrNoRows:
		return nil, nil
	case nil:
		return &e, nil
	default:
		return nil, err
	}
}

// List returns every entry ordered by path.
func (c *Catalog) List() ([]Entry, error) {
	rows, err := c.db.Query("SELECT path, sha1, format, width, height, max_color, scale FROM image ORDER BY path")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
