package fresnel

// Arena bump-allocates Fresnel instances for one shading evaluation. Instances
// are never freed individually; Reset recycles every allocation at once when
// the shading sample completes. Allocated blocks are retained across Reset so
// a reused arena stops allocating after warmup.
//
// An Arena must not be shared between goroutines; each shading sample owns its
// own. Instances allocated from it are safe for concurrent Evaluate calls
// because they are never mutated after construction.
type Arena struct {
	conductors pool[Conductor]
	spectrals  pool[SpectralConductor]
	schlicks   pool[Schlick]
	artistics  pool[ArtisticConductor]
}

// NewArena creates an empty arena
func NewArena() *Arena {
	return &Arena{}
}

// Reset recycles all allocations. Previously returned instances become invalid.
func (a *Arena) Reset() {
	a.conductors.reset()
	a.spectrals.reset()
	a.schlicks.reset()
	a.artistics.reset()
}

// poolBlockSize is the number of instances per slab. Blocks are fixed-size so
// growth never moves values out from under live pointers.
const poolBlockSize = 64

type pool[T any] struct {
	blocks [][]T
	used   int
}

func (p *pool[T]) alloc() *T {
	block := p.used / poolBlockSize
	if block == len(p.blocks) {
		p.blocks = append(p.blocks, make([]T, poolBlockSize))
	}
	item := &p.blocks[block][p.used%poolBlockSize]
	p.used++
	return item
}

func (p *pool[T]) reset() {
	p.used = 0
}

// The alloc helpers accept a nil arena and fall back to the heap, which keeps
// tests and one-off tooling free of arena bookkeeping.

func allocConductor(a *Arena) *Conductor {
	if a == nil {
		return new(Conductor)
	}
	return a.conductors.alloc()
}

func allocSpectralConductor(a *Arena) *SpectralConductor {
	if a == nil {
		return new(SpectralConductor)
	}
	return a.spectrals.alloc()
}

func allocSchlick(a *Arena) *Schlick {
	if a == nil {
		return new(Schlick)
	}
	return a.schlicks.alloc()
}

func allocArtisticConductor(a *Arena) *ArtisticConductor {
	if a == nil {
		return new(ArtisticConductor)
	}
	return a.artistics.alloc()
}
