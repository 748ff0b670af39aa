package ppmview

import (
	"context"
	"crypto/sha1"
	"fmt"
	"hash"
	"io"
	"os"

	"github.com/bodgit/ppmview/netpbm"
	"github.com/bodgit/ppmview/scale"
	"github.com/bodgit/ppmview/surface"
)

// sum drains whatever the decoder left unread into h so the digest always
// covers the whole file.
func sum(h hash.Hash, r io.Reader) (string, error) {
	if _, err := io.Copy(h, r); err != nil {
		return "", err
	}
	return fmt.Sprintf("%X", h.Sum(nil)), nil
}

func open(file string) (*os.File, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, &netpbm.Error{Kind: netpbm.UnreadableInput, Err: err}
	}
	return f, nil
}

func newEntry(file, sha string, h netpbm.Header) Entry {
	return Entry{
		Path:     file,
		SHA1:     sha,
		Format:   h.Format,
		Width:    h.Width,
		Height:   h.Height,
		MaxColor: h.MaxColor,
		Scale:    scale.IdealPixelSize(h.Width, h.Height),
	}
}

// Load decodes file and records it in the catalog. A file that fails to
// open is reported as netpbm.ErrUnreadableInput. Failing to record the file
// is logged but is not an error.
func (v *Viewer) Load(file string) (netpbm.Header, *netpbm.Grid, error) {
	f, err := open(file)
	if err != nil {
		return netpbm.Header{}, nil, err
	}
	defer f.Close()

	h := sha1.New()
	header, grid, err := netpbm.DecodeGrid(io.TeeReader(f, h))
	if err != nil {
		return header, nil, err
	}
	v.logger.Printf("Header is %s (%s)\n", header.Format.Magic(), header.Format)
	v.logger.Printf("Image is %dx%d, max color value is %d\n", header.Width, header.Height, header.MaxColor)

	sha, err := sum(h, f)
	if err != nil {
		return header, nil, &netpbm.Error{Kind: netpbm.UnreadableInput, Err: err}
	}

	if err := v.catalog.Record(newEntry(file, sha, header)); err != nil {
		v.logger.Printf("Unable to record \"%s\": %v\n", file, err)
	}

	return header, grid, nil
}

// Info returns the catalog entry for file computed from its header alone.
func (v *Viewer) Info(file string) (Entry, error) {
	f, err := open(file)
	if err != nil {
		return Entry{}, err
	}
	defer f.Close()

	h := sha1.New()
	header, err := netpbm.DecodeHeader(io.TeeReader(f, h))
	if err != nil {
		return Entry{}, err
	}

	sha, err := sum(h, f)
	if err != nil {
		return Entry{}, &netpbm.Error{Kind: netpbm.UnreadableInput, Err: err}
	}
	return newEntry(file, sha, header), nil
}

// View decodes file and shows it on d, titled with the file name, until d
// is closed. Nothing is shown unless the whole file decodes.
func (v *Viewer) View(ctx context.Context, file string, d surface.Display) error {
	_, grid, err := v.Load(file)
	if err != nil {
		return err
	}
	v.logger.Printf("Pixel size is %d\n", scale.IdealPixelSize(grid.Width, grid.Height))

	_, err = surface.Show(ctx, d, file, grid)
	return err
}
