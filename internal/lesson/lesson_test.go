package lesson

import (
	"bytes"
	"strings"
	"testing"
)

func TestRegistryListsAllLessons(t *testing.T) {
	reg := NewRegistry()
	lessons := reg.List()
	if len(lessons) != 6 {
		t.Fatalf("expected 6 lessons, got %d", len(lessons))
	}
	for i := 1; i < len(lessons); i++ {
		if lessons[i-1].Name >= lessons[i].Name {
			t.Errorf("lessons not sorted: %s before %s", lessons[i-1].Name, lessons[i].Name)
		}
	}
}

func TestRegistryGet(t *testing.T) {
	reg := NewRegistry()
	l, err := reg.Get("predator-prey")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if l.Run == nil {
		t.Error("lesson should carry a Run function")
	}
	if _, err := reg.Get("nope"); err == nil {
		t.Error("expected error for unknown lesson")
	}
}

func TestEveryLessonRuns(t *testing.T) {
	reg := NewRegistry()
	for _, l := range reg.List() {
		l := l
		t.Run(l.Name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := l.Run(&buf); err != nil {
				t.Fatalf("run: %v", err)
			}
			if buf.Len() == 0 {
				t.Error("lesson produced no output")
			}
		})
	}
}

func TestRegressionLessonOutput(t *testing.T) {
	reg := NewRegistry()
	l, err := reg.Get("regression")
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := l.Run(&buf); err != nil {
		t.Fatalf("run: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"(Intercept)", "sexM", "hindfoot_length"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestPredatorPreyLessonOutput(t *testing.T) {
	reg := NewRegistry()
	l, err := reg.Get("predator-prey")
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := l.Run(&buf); err != nil {
		t.Fatalf("run: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "saddle") {
		t.Error("output should classify the origin as a saddle")
	}
	if !strings.Contains(out, "stable spiral") {
		t.Error("output should classify coexistence as a stable spiral")
	}
}
