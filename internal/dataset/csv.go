package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"net/http"
	"os"
	"strconv"
	"strings"
)

func missingCell(s string) bool {
	s = strings.TrimSpace(s)
	return s == "" || s == "NA" || s == "NaN"
}

// ReadCSV parses a headered CSV stream into a table. A column is numeric
// when every non-missing cell parses as a float and at least one does.
func ReadCSV(r io.Reader, name string) (*Table, error) {
	cr := csv.NewReader(r)
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv %q: %w", name, err)
	}
	if len(records) < 1 {
		return nil, fmt.Errorf("csv %q has no header", name)
	}

	header := records[0]
	t := &Table{Name: name}
	for _, h := range header {
		t.Columns = append(t.Columns, &Column{Name: strings.TrimSpace(h)})
	}

	for i, rec := range records[1:] {
		if len(rec) != len(header) {
			return nil, fmt.Errorf("csv %q row %d has %d fields, want %d", name, i+2, len(rec), len(header))
		}
		for j, cell := range rec {
			c := t.Columns[j]
			cell = strings.TrimSpace(cell)
			c.Values = append(c.Values, cell)
			c.Missing = append(c.Missing, missingCell(cell))
		}
	}

	for _, c := range t.Columns {
		inferKind(c)
	}
	return t, nil
}

func inferKind(c *Column) {
	numeric := false
	floats := make([]float64, len(c.Values))
	for i, v := range c.Values {
		if c.Missing[i] {
			floats[i] = math.NaN()
			continue
		}
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			c.Kind = Categorical
			return
		}
		floats[i] = f
		numeric = true
	}
	if numeric {
		c.Kind = Numeric
		c.Floats = floats
	} else {
		c.Kind = Categorical
	}
}

// LoadFile reads a CSV table from disk.
func LoadFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadCSV(f, path)
}

// LoadURL fetches a CSV table over http(s).
func LoadURL(url string) (*Table, error) {
	resp, err := http.Get(url)
	if err != nil {
		return nil, fmt.Errorf("fetch %q: %w", url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %q: status %s", url, resp.Status)
	}
	return ReadCSV(resp.Body, url)
}

// Load resolves a source to an embedded dataset name, a URL, or a file path,
// in that order.
func Load(source string) (*Table, error) {
	if t, err := Open(source); err == nil {
		return t, nil
	}
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		return LoadURL(source)
	}
	return LoadFile(source)
}
