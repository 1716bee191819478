package dataset

import (
	"fmt"
	"math"
	"sort"
)

// ColumnKind distinguishes how a column's cells are interpreted.
type ColumnKind string

const (
	Numeric     ColumnKind = "numeric"
	Categorical ColumnKind = "categorical"
)

// Column is one named column of a table. Values always holds the raw cell
// text; Floats is populated for numeric columns, with NaN where a cell is
// missing. Missing marks empty and "NA" cells for both kinds.
type Column struct {
	Name    string
	Kind    ColumnKind
	Values  []string
	Floats  []float64
	Missing []bool
}

// Levels returns the sorted distinct non-missing values of a column.
func (c *Column) Levels() []string {
	seen := make(map[string]bool)
	for i, v := range c.Values {
		if c.Missing[i] {
			continue
		}
		seen[v] = true
	}
	levels := make([]string, 0, len(seen))
	for v := range seen {
		levels = append(levels, v)
	}
	sort.Strings(levels)
	return levels
}

// Table is a rectangular table of named columns.
type Table struct {
	Name    string
	Columns []*Column
}

func (t *Table) NRows() int {
	if len(t.Columns) == 0 {
		return 0
	}
	return len(t.Columns[0].Values)
}

func (t *Table) NCols() int { return len(t.Columns) }

func (t *Table) ColumnNames() []string {
	names := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		names[i] = c.Name
	}
	return names
}

// Column looks a column up by name.
func (t *Table) Column(name string) (*Column, error) {
	for _, c := range t.Columns {
		if c.Name == name {
			return c, nil
		}
	}
	return nil, fmt.Errorf("dataset %q has no column %q", t.Name, name)
}

// Numeric returns the parsed values of a numeric column, NaN where missing.
func (t *Table) Numeric(name string) ([]float64, error) {
	c, err := t.Column(name)
	if err != nil {
		return nil, err
	}
	if c.Kind != Numeric {
		return nil, fmt.Errorf("column %q is not numeric", name)
	}
	out := make([]float64, len(c.Floats))
	copy(out, c.Floats)
	return out, nil
}

// NumericComplete returns the values of a numeric column with missing
// cells dropped.
func (t *Table) NumericComplete(name string) ([]float64, error) {
	c, err := t.Column(name)
	if err != nil {
		return nil, err
	}
	if c.Kind != Numeric {
		return nil, fmt.Errorf("column %q is not numeric", name)
	}
	out := make([]float64, 0, len(c.Floats))
	for i, v := range c.Floats {
		if c.Missing[i] || math.IsNaN(v) {
			continue
		}
		out = append(out, v)
	}
	return out, nil
}

// Filter returns a new table keeping the rows for which keep returns true.
// The predicate receives the row index into the receiver.
func (t *Table) Filter(keep func(row int) bool) *Table {
	out := &Table{Name: t.Name}
	for _, c := range t.Columns {
		out.Columns = append(out.Columns, &Column{Name: c.Name, Kind: c.Kind})
	}
	for i := 0; i < t.NRows(); i++ {
		if !keep(i) {
			continue
		}
		for j, c := range t.Columns {
			oc := out.Columns[j]
			oc.Values = append(oc.Values, c.Values[i])
			oc.Missing = append(oc.Missing, c.Missing[i])
			if c.Kind == Numeric {
				oc.Floats = append(oc.Floats, c.Floats[i])
			}
		}
	}
	return out
}

// Select returns a new table with only the named columns, in order.
func (t *Table) Select(names ...string) (*Table, error) {
	out := &Table{Name: t.Name}
	for _, name := range names {
		c, err := t.Column(name)
		if err != nil {
			return nil, err
		}
		out.Columns = append(out.Columns, c)
	}
	return out, nil
}

// CompleteRows returns row-major values for the named numeric columns,
// dropping any row where one of them is missing.
func (t *Table) CompleteRows(names ...string) ([][]float64, error) {
	cols := make([]*Column, len(names))
	for i, name := range names {
		c, err := t.Column(name)
		if err != nil {
			return nil, err
		}
		if c.Kind != Numeric {
			return nil, fmt.Errorf("column %q is not numeric", name)
		}
		cols[i] = c
	}
	rows := make([][]float64, 0, t.NRows())
	for r := 0; r < t.NRows(); r++ {
		ok := true
		for _, c := range cols {
			if c.Missing[r] || math.IsNaN(c.Floats[r]) {
				ok = false
				break
			}
		}
		if !ok {
			continue
		}
		row := make([]float64, len(cols))
		for i, c := range cols {
			row[i] = c.Floats[r]
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// Group is one slice of a table sharing a value of the grouping column.
type Group struct {
	Level string
	Table *Table
}

// GroupBy splits the table by the distinct values of a column, in sorted
// level order. Rows where the grouping cell is missing are dropped.
func (t *Table) GroupBy(name string) ([]Group, error) {
	c, err := t.Column(name)
	if err != nil {
		return nil, err
	}
	groups := make([]Group, 0)
	for _, level := range c.Levels() {
		sub := t.Filter(func(row int) bool {
			return !c.Missing[row] && c.Values[row] == level
		})
		groups = append(groups, Group{Level: level, Table: sub})
	}
	return groups, nil
}
