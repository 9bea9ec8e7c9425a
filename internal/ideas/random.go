package ideas

import "math/rand"

// Source supplies the randomness used for template selection and duration
// jitter. *rand.Rand satisfies it; pass rand.New(rand.NewSource(seed)) for
// reproducible output.
type Source interface {
	Intn(n int) int
	Float64() float64
}

type globalSource struct{}

func (globalSource) Intn(n int) int   { return rand.Intn(n) }
func (globalSource) Float64() float64 { return rand.Float64() }

// DefaultSource returns a Source backed by the top-level math/rand
// functions, which are safe for concurrent use.
func DefaultSource() Source {
	return globalSource{}
}

// NewSeededSource returns a deterministic Source. It is not safe for
// concurrent use.
func NewSeededSource(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}

func pick[T any](src Source, items []T) T {
	return items[src.Intn(len(items))]
}
