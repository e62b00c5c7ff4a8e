package sim

import (
	"slices"
	"testing"

	"github.com/vovakirdan/sanddrop/internal/core"
)

func TestRegistryRemovePreservesOrder(t *testing.T) {
	var r Registry
	r.Insert(1, 1)
	r.Insert(2, 2)
	r.Insert(3, 3)
	r.Insert(4, 4)

	r.Remove(1)

	want := []core.Coord{core.C(1, 1), core.C(3, 3), core.C(4, 4)}
	if got := r.Coords(); !slices.Equal(got, want) {
		t.Errorf("after Remove(1) got %v, want %v", got, want)
	}

	r.Remove(2)
	r.Remove(0)
	if got := r.Coords(); !slices.Equal(got, []core.Coord{core.C(3, 3)}) {
		t.Errorf("after removing ends got %v", got)
	}
}

func TestRegistryUpdateAndReset(t *testing.T) {
	var r Registry
	r.Insert(0, 0)
	r.Update(0, 5, 6)
	if got := r.At(0); got != core.C(5, 6) {
		t.Errorf("At(0) = %v, want (5,6)", got)
	}

	coords := r.Coords()
	coords[0] = core.C(9, 9)
	if r.At(0) != core.C(5, 6) {
		t.Error("Coords should return a copy")
	}

	r.Reset()
	if r.Len() != 0 {
		t.Errorf("Len after Reset = %d", r.Len())
	}
	r.Insert(1, 1)
	if r.Len() != 1 {
		t.Errorf("Len after reinsert = %d", r.Len())
	}
}
