// Package lesson turns each section of the course notes into a runnable,
// self-contained demonstration. A lesson prints its narrative and the
// computed results; nothing is shared between lessons beyond the example
// datasets, which are loaded fresh each time.
package lesson

import (
	"fmt"
	"io"
	"sort"
)

// Lesson is one teaching unit: a title, a short summary for listings, and
// a Run that writes the full worked demonstration.
type Lesson struct {
	Name    string
	Title   string
	Summary string
	Run     func(w io.Writer) error
}

// Registry maps lesson names to lessons.
type Registry struct {
	lessons map[string]Lesson
}

func NewRegistry() *Registry {
	r := &Registry{lessons: make(map[string]Lesson)}
	for _, l := range courseLessons() {
		r.lessons[l.Name] = l
	}
	return r
}

func (r *Registry) Get(name string) (Lesson, error) {
	l, ok := r.lessons[name]
	if !ok {
		return Lesson{}, fmt.Errorf("unknown lesson: %s", name)
	}
	return l, nil
}

// List returns all lessons in name order.
func (r *Registry) List() []Lesson {
	out := make([]Lesson, 0, len(r.lessons))
	for _, l := range r.lessons {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
