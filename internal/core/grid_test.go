package core

import (
	"slices"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
)

func TestFloatGridOps(t *testing.T) {
	g := NewFloatGrid(3, 2)
	if len(g.Cells()) != 6 {
		t.Fatalf("cells = %d, want 6", len(g.Cells()))
	}
	g.Set(1, 2, 0.8)
	if g.At(1, 2) != 0.8 || g.Cells()[g.Index(1, 2)] != 0.8 {
		t.Fatal("Set/At disagree with row-major indexing")
	}
	if !g.InBounds(1, 2) || g.InBounds(2, 0) || g.InBounds(0, -1) {
		t.Fatal("InBounds wrong")
	}

	c := g.Clone()
	c.Set(0, 0, 1)
	if g.At(0, 0) != 0 {
		t.Fatal("Clone shares storage")
	}

	g.Scale(0.5)
	if g.At(1, 2) != 0.4 {
		t.Fatalf("Scale: got %f, want 0.4", g.At(1, 2))
	}

	g.MaxInto(c)
	if want := []float64{1, 0, 0, 0, 0, 0.8}; !slices.Equal(g.Cells(), want) {
		t.Fatalf("MaxInto: got %v, want %v", g.Cells(), want)
	}

	g.Clear()
	if !slices.Equal(g.Cells(), make([]float64, 6)) {
		t.Fatal("Clear left values behind")
	}

	g.CopyFrom(c)
	if !slices.Equal(g.Cells(), c.Cells()) {
		t.Fatal("CopyFrom mismatch")
	}
}

func TestNewFloatGridNegative(t *testing.T) {
	g := NewFloatGrid(-2, 4)
	if g.W != 0 || len(g.Cells()) != 0 {
		t.Fatalf("negative width produced %dx%d with %d cells", g.W, g.H, len(g.Cells()))
	}
}

func TestFixedStep(t *testing.T) {
	clock := clockwork.NewFakeClock()
	fs := NewFixedStepWithClock(10, clock)

	// The accumulator starts full so the first poll steps immediately.
	if !fs.ShouldStep() {
		t.Fatal("first poll should step")
	}
	clock.Advance(50 * time.Millisecond)
	if fs.ShouldStep() {
		t.Fatal("stepped before the tick elapsed")
	}
	clock.Advance(50 * time.Millisecond)
	if !fs.ShouldStep() {
		t.Fatal("did not step after a full tick")
	}

	fs.SetTPS(0) // falls back to 60
	clock.Advance(20 * time.Millisecond)
	if !fs.ShouldStep() {
		t.Fatal("did not step after the default tick")
	}
}

func TestRegistry(t *testing.T) {
	Register("", func(map[string]string) (Sim, error) { return nil, nil })
	Register("nil-factory", nil)
	if _, ok := Sims()[""]; ok {
		t.Fatal("empty name registered")
	}
	if _, ok := Sims()["nil-factory"]; ok {
		t.Fatal("nil factory registered")
	}
}
