package seed

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// record is one data line of a fixture file keyed by header name.
type record struct {
	line   int
	fields map[string]string
}

func (r record) get(key string) string {
	return strings.TrimSpace(r.fields[key])
}

func (r record) int(key string) (int, error) {
	v := r.get(key)
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("line %d: column %s: %q is not a number", r.line, key, v)
	}
	return n, nil
}

// ints parses several numeric columns, stopping at the first bad cell.
func (r record) ints(keys ...string) ([]int, error) {
	out := make([]int, len(keys))
	for i, k := range keys {
		n, err := r.int(k)
		if err != nil {
			return nil, err
		}
		out[i] = n
	}
	return out, nil
}

func (r record) blank() bool {
	for _, v := range r.fields {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

// readCSV loads a headed CSV file. A leading byte order mark is dropped
// before parsing and required columns must all be present in the header.
func readCSV(path string, required ...string) ([]record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(transform.NewReader(f, unicode.BOMOverride(unicode.UTF8.NewDecoder())))
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true
	r.LazyQuotes = true

	header, err := r.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%s: empty file", path)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: reading header: %w", path, err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	have := make(map[string]bool, len(header))
	for _, h := range header {
		have[h] = true
	}
	for _, col := range required {
		if !have[col] {
			return nil, fmt.Errorf("%s: missing column %s", path, col)
		}
	}

	var records []record
	line := 1
	for {
		cells, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("%s: line %d: %w", path, line, err)
		}

		fields := make(map[string]string, len(header))
		for i, h := range header {
			fields[h] = ""
			if i < len(cells) {
				fields[h] = cells[i]
			}
		}
		records = append(records, record{line: line, fields: fields})
	}
	return records, nil
}

func hasColumn(records []record, col string) bool {
	if len(records) == 0 {
		return false
	}
	_, ok := records[0].fields[col]
	return ok
}
