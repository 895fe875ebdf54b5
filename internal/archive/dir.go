package archive

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// DirWriter writes a package as plain files under a directory.
type DirWriter struct {
	fs      afero.Fs
	dir     string
	entries []Entry
}

func NewDirWriter(fs afero.Fs, dir string) *DirWriter {
	return &DirWriter{fs: fs, dir: dir}
}

func (d *DirWriter) AddCSV(name string, header []string, rows [][]string) error {
	content, err := EncodeCSV(header, rows)
	if err != nil {
		return err
	}
	return d.add(name, len(rows), content)
}

func (d *DirWriter) AddFile(name string, content []byte) error {
	return d.add(name, 0, content)
}

func (d *DirWriter) add(name string, rows int, content []byte) error {
	if err := d.fs.MkdirAll(d.dir, 0o755); err != nil {
		return fmt.Errorf("create directory %s: %w", d.dir, err)
	}
	path := filepath.Join(d.dir, name)
	if err := afero.WriteFile(d.fs, path, content, os.FileMode(0o644)); err != nil {
		return fmt.Errorf("failed to write file %s: %w", path, err)
	}
	d.entries = append(d.entries, newEntry(name, rows, content))
	return nil
}

func (d *DirWriter) Entries() []Entry {
	return d.entries
}

func (d *DirWriter) Close() error {
	return nil
}
