package archive

import (
	"fmt"
	"io"

	"github.com/klauspost/compress/zip"
)

// ZipWriter writes a package as a zip archive. Entries carry no timestamp
// so equal content yields byte-identical archives.
type ZipWriter struct {
	zw      *zip.Writer
	entries []Entry
}

func NewZipWriter(w io.Writer) *ZipWriter {
	return &ZipWriter{zw: zip.NewWriter(w)}
}

func (z *ZipWriter) AddCSV(name string, header []string, rows [][]string) error {
	content, err := EncodeCSV(header, rows)
	if err != nil {
		return err
	}
	return z.add(name, len(rows), content)
}

func (z *ZipWriter) AddFile(name string, content []byte) error {
	return z.add(name, 0, content)
}

func (z *ZipWriter) add(name string, rows int, content []byte) error {
	f, err := z.zw.CreateHeader(&zip.FileHeader{Name: name, Method: zip.Deflate})
	if err != nil {
		return fmt.Errorf("create zip entry %s: %w", name, err)
	}
	if _, err := f.Write(content); err != nil {
		return fmt.Errorf("write zip entry %s: %w", name, err)
	}
	z.entries = append(z.entries, newEntry(name, rows, content))
	return nil
}

func (z *ZipWriter) Entries() []Entry {
	return z.entries
}

// Close finishes the archive. It does not close the underlying writer.
func (z *ZipWriter) Close() error {
	return z.zw.Close()
}
