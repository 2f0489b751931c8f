package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"designkb/internal/domain"
)

// Loader reads domain datasets from CSV files under a data directory. The
// first row is the header; every data row becomes a Record preserving the
// header's column order.
type Loader struct {
	root   string
	walker *Walker
}

func NewLoader(root string, includes, excludes []string) *Loader {
	return &Loader{
		root:   root,
		walker: NewWalker(includes, excludes),
	}
}

// Root returns the data directory the loader reads from.
func (l *Loader) Root() string {
	return l.root
}

// Available lists the dataset files present under the data directory.
func (l *Loader) Available() ([]string, error) {
	return l.walker.Walk(l.root)
}

// LoadFile reads one dataset file. A missing file is a valid degenerate
// state and yields an empty dataset, not an error.
func (l *Loader) LoadFile(name string) ([]domain.Record, error) {
	path := filepath.Join(l.root, name)

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to open dataset %s: %w", name, err)
	}
	defer f.Close()

	records, err := readRecords(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse dataset %s: %w", name, err)
	}
	return records, nil
}

func readRecords(r io.Reader) ([]domain.Record, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, err
	}

	var records []domain.Record
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		fields := make([]domain.Field, 0, len(header))
		for i, name := range header {
			value := ""
			if i < len(row) {
				value = row[i]
			}
			fields = append(fields, domain.Field{Name: name, Value: value})
		}
		records = append(records, domain.NewRecord(fields))
	}

	return records, nil
}
