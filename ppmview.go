/*
Package ppmview is a library for viewing portable bitmap and pixmap images
and keeping a catalog of the ones seen.
*/
package ppmview

import "log"

type Viewer struct {
	catalog *Catalog
	logger  *log.Logger
}

// New returns a viewer recording into the catalog stored in file.
func New(file string, logger *log.Logger) (*Viewer, error) {
	catalog, err := NewCatalog(file)
	if err != nil {
		return nil, err
	}
	return &Viewer{
		catalog: catalog,
		logger:  logger,
	}, nil
}

// Catalog returns the viewer's catalog.
func (v *Viewer) Catalog() *Catalog {
	return v.catalog
}

func (v *Viewer) Close() error {
	return v.catalog.Close()
}
