package experiment

import (
	"reflect"
	"strings"
	"testing"
)

func TestRegistryLookups(t *testing.T) {
	reg := NewRegistry()

	sys, err := reg.GetSystem("predprey")
	if err != nil {
		t.Fatalf("get system: %v", err)
	}
	if sys.StateDim() != 2 {
		t.Errorf("predprey should be planar, got dim %d", sys.StateDim())
	}

	if _, err := reg.GetStepper("rk4"); err != nil {
		t.Errorf("get stepper: %v", err)
	}
	if _, err := reg.GetStepper("rk99"); err == nil {
		t.Error("expected error for unknown integrator")
	}
}

func TestRegistryUnknownSystemNamesAlternatives(t *testing.T) {
	reg := NewRegistry()
	_, err := reg.GetSystem("lorenz")
	if err == nil {
		t.Fatal("expected error for unknown system")
	}
	// The error should name what is available.
	if !strings.Contains(err.Error(), "logistic") {
		t.Errorf("error should list known systems, got %q", err)
	}
}

func TestListSystemsSorted(t *testing.T) {
	names := NewRegistry().ListSystems()
	want := []string{"exponential", "harvested", "logistic", "predprey"}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("systems: got %v, want %v", names, want)
	}
}
