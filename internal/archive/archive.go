// Package archive writes export packages: named CSV files plus the loader
// descriptor, either into a zip archive or a directory.
package archive

import (
	"bytes"
	"encoding/csv"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/blake2b"
)

// Writer receives the files of one package.
type Writer interface {
	AddCSV(name string, header []string, rows [][]string) error
	AddFile(name string, content []byte) error
	Entries() []Entry
	Close() error
}

// Entry describes a file written to a package.
type Entry struct {
	Name   string `json:"name"`
	Rows   int    `json:"rows"`
	Size   int    `json:"size"`
	Digest string `json:"digest"` // hex blake2b-256 of the content
}

// EncodeCSV renders header and rows. Rows are padded or cut to the header length.
func EncodeCSV(header []string, rows [][]string) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}
	for i, row := range rows {
		normalized := make([]string, len(header))
		copy(normalized, row)
		if err := w.Write(normalized); err != nil {
			return nil, fmt.Errorf("failed to write CSV row %d: %w", i, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush CSV writer: %w", err)
	}
	return buf.Bytes(), nil
}

func newEntry(name string, rows int, content []byte) Entry {
	sum := blake2b.Sum256(content)
	return Entry{Name: name, Rows: rows, Size: len(content), Digest: hex.EncodeToString(sum[:])}
}
