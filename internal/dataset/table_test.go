package dataset

import (
	"strings"
	"testing"
)

func TestReadCSVKindInference(t *testing.T) {
	csv := "id,species,weight\n1,DM,44\n2,NL,NA\n3,PE,22\n"
	tbl, err := ReadCSV(strings.NewReader(csv), "test")
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}

	if tbl.NRows() != 3 {
		t.Errorf("expected 3 rows, got %d", tbl.NRows())
	}

	id, _ := tbl.Column("id")
	if id.Kind != Numeric {
		t.Errorf("id should be numeric, got %s", id.Kind)
	}
	sp, _ := tbl.Column("species")
	if sp.Kind != Categorical {
		t.Errorf("species should be categorical, got %s", sp.Kind)
	}
	w, _ := tbl.Column("weight")
	if w.Kind != Numeric {
		t.Errorf("weight should be numeric despite NA, got %s", w.Kind)
	}
	if !w.Missing[1] {
		t.Error("NA cell should be marked missing")
	}
}

func TestReadCSVRaggedRow(t *testing.T) {
	csv := "a,b\n1,2\n3\n"
	_, err := ReadCSV(strings.NewReader(csv), "bad")
	if err == nil {
		t.Fatal("expected error for ragged row")
	}
}

func TestNumericComplete(t *testing.T) {
	csv := "x\n1\nNA\n3\n"
	tbl, err := ReadCSV(strings.NewReader(csv), "test")
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	xs, err := tbl.NumericComplete("x")
	if err != nil {
		t.Fatalf("numeric failed: %v", err)
	}
	if len(xs) != 2 {
		t.Errorf("expected 2 complete values, got %d", len(xs))
	}
}

func TestFilterAndGroupBy(t *testing.T) {
	tbl, err := Open("surveys")
	if err != nil {
		t.Fatalf("open surveys: %v", err)
	}

	sex, _ := tbl.Column("sex")
	males := tbl.Filter(func(row int) bool { return sex.Values[row] == "M" })
	if males.NRows() == 0 || males.NRows() >= tbl.NRows() {
		t.Errorf("filter produced %d of %d rows", males.NRows(), tbl.NRows())
	}

	groups, err := tbl.GroupBy("sex")
	if err != nil {
		t.Fatalf("groupby: %v", err)
	}
	if len(groups) != 2 {
		t.Fatalf("expected 2 sex groups, got %d", len(groups))
	}
	if groups[0].Level != "F" || groups[1].Level != "M" {
		t.Errorf("groups should come in sorted level order, got %s, %s", groups[0].Level, groups[1].Level)
	}
	total := groups[0].Table.NRows() + groups[1].Table.NRows()
	if total != tbl.NRows() {
		t.Errorf("groups cover %d rows, table has %d", total, tbl.NRows())
	}
}

func TestEmbeddedDatasets(t *testing.T) {
	names := Names()
	if len(names) < 2 {
		t.Fatalf("expected embedded datasets, got %v", names)
	}
	for _, name := range names {
		tbl, err := Open(name)
		if err != nil {
			t.Errorf("open %s: %v", name, err)
			continue
		}
		if tbl.NRows() == 0 {
			t.Errorf("dataset %s is empty", name)
		}
	}

	if _, err := Open("nope"); err == nil {
		t.Error("expected error for unknown dataset")
	}
}

func TestCompleteRowsDropsPairwise(t *testing.T) {
	tbl, err := Open("surveys")
	if err != nil {
		t.Fatalf("open surveys: %v", err)
	}
	rows, err := tbl.CompleteRows("weight", "hindfoot_length")
	if err != nil {
		t.Fatalf("complete rows: %v", err)
	}
	// 40 rows, 2 missing weights and 1 missing hindfoot in distinct rows.
	if len(rows) != 37 {
		t.Errorf("expected 37 complete rows, got %d", len(rows))
	}
}
