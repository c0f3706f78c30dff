package fresnel

import (
	"testing"

	"github.com/df07/go-fresnel/pkg/core"
)

func TestArena_AllocationsSurviveGrowth(t *testing.T) {
	// Allocate past the block size so the arena grows; earlier instances
	// must keep their parameters (growth must not move live values)
	arena := NewArena()

	count := poolBlockSize*2 + 7
	instances := make([]*Conductor, count)
	for i := 0; i < count; i++ {
		eta := core.NewVec3Uniform(0.1 + float64(i)*0.01)
		instances[i] = NewConductor(arena, eta, core.NewVec3Uniform(3))
	}

	for i, c := range instances {
		expected := 0.1 + float64(i)*0.01
		if c.Eta.X != expected {
			t.Fatalf("Instance %d lost its parameters after growth: expected eta %f, got %f", i, expected, c.Eta.X)
		}
	}
}

func TestArena_ResetRecyclesStorage(t *testing.T) {
	arena := NewArena()

	first := NewConductor(arena, core.NewVec3Uniform(0.2), core.NewVec3Uniform(3))
	arena.Reset()
	second := NewConductor(arena, core.NewVec3Uniform(0.5), core.NewVec3Uniform(2))

	// After reset the arena hands out the same slot again
	if first != second {
		t.Error("Reset should recycle the first slot instead of growing")
	}
	if second.Eta.X != 0.5 {
		t.Errorf("Recycled slot should hold the new parameters, got eta %f", second.Eta.X)
	}
}

func TestArena_PoolsAreIndependentPerVariant(t *testing.T) {
	arena := NewArena()

	c := NewConductor(arena, core.NewVec3Uniform(0.2), core.NewVec3Uniform(3))
	s := NewSchlick(arena, core.NewVec3Uniform(0.04), core.NewVec3Uniform(1))
	a := NewArtisticConductor(arena, core.NewVec3Uniform(0.9), core.NewVec3Uniform(1))

	// Constructing one variant must not disturb another
	if c.Eta.X != 0.2 {
		t.Errorf("Conductor parameters disturbed: %v", c.Eta)
	}
	if s.R.X != 0.04 {
		t.Errorf("Schlick parameters disturbed: %v", s.R)
	}
	if a.R.X != 0.9 {
		t.Errorf("Artistic parameters disturbed: %v", a.R)
	}
}

func TestArena_NilArenaFallsBackToHeap(t *testing.T) {
	// Tests and tooling construct without an arena
	c := NewConductor(nil, core.NewVec3Uniform(0.2), core.NewVec3Uniform(3))
	if c == nil {
		t.Fatal("Nil arena should heap-allocate")
	}
	if got := c.Evaluate(1.0); got.X <= 0.9 {
		t.Errorf("Heap-allocated instance should evaluate normally, got %v", got)
	}
}

func TestArena_ConcurrentEvaluationOnDistinctInstances(t *testing.T) {
	// Instances are immutable after construction, so concurrent Evaluate
	// calls are race-free even across variants
	arena := NewArena()
	instances := []Fresnel{
		NewConductor(arena, core.NewVec3Uniform(0.2), core.NewVec3Uniform(3)),
		NewSchlick(arena, core.NewVec3Uniform(0.04), core.NewVec3Uniform(1)),
		NewArtisticConductor(arena, core.NewVec3Uniform(0.9), core.NewVec3Uniform(1)),
	}

	done := make(chan core.Vec3, len(instances)*8)
	for g := 0; g < 8; g++ {
		for _, f := range instances {
			go func(f Fresnel) {
				v := f.Evaluate(0.5)
				for i := 0; i < 1000; i++ {
					v = f.Evaluate(0.5)
				}
				done <- v
			}(f)
		}
	}
	for i := 0; i < len(instances)*8; i++ {
		v := <-done
		if v.MaxComponent() < 0 || v.MaxComponent() > 1 {
			t.Errorf("Concurrent evaluation produced out-of-range value %v", v)
		}
	}
}
