package dataset

import (
	"embed"
	"fmt"
	"sort"
	"strings"
)

//go:embed datasets/*.csv
var embeddedFS embed.FS

// Names lists the embedded teaching datasets.
func Names() []string {
	entries, err := embeddedFS.ReadDir("datasets")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".csv"))
	}
	sort.Strings(names)
	return names
}

// Open loads an embedded teaching dataset by name.
func Open(name string) (*Table, error) {
	f, err := embeddedFS.Open("datasets/" + name + ".csv")
	if err != nil {
		return nil, fmt.Errorf("unknown dataset %q", name)
	}
	defer f.Close()
	return ReadCSV(f, name)
}
