package sim

// MinResolution is the smallest usable lattice resolution. Fewer than two
// points per axis degenerates the spacing step, so smaller requests clamp up
// rather than error, mirroring how other config defaults in this package
// behave.
const MinResolution = 2

// Lattice is the fixed set of evenly spaced base coordinates from which all
// particles derive. It is immutable once generated; resolution or mode
// changes regenerate it wholesale.
type Lattice struct {
	Mode       Mode
	Resolution int
	// Points holds the base coordinates in enumeration order: nested axis
	// iteration with X outermost, then Y, Z, and (4D mode only) W innermost.
	// Cube-mode points leave W at zero.
	Points []Vec4
}

// GenerateLattice produces the base coordinate set for a mode: n^4 points for
// ModeWave4D, n^3 for ModeIndrasNet, each axis linearly spaced over [-1, 1].
// Resolutions below MinResolution clamp to it. The enumeration order is
// deterministic, so index i maps to the same coordinate on every call with
// identical arguments.
func GenerateLattice(mode Mode, n int) *Lattice {
	if n < MinResolution {
		n = MinResolution
	}

	// Dividing per sample (rather than accumulating a step) keeps the
	// endpoints at exactly ±1 for every n.
	axis := make([]float64, n)
	for i := 0; i < n; i++ {
		axis[i] = -1 + 2*float64(i)/float64(n-1)
	}

	l := &Lattice{Mode: mode, Resolution: n}

	switch mode {
	case ModeIndrasNet:
		l.Points = make([]Vec4, 0, n*n*n)
		for _, x := range axis {
			for _, y := range axis {
				for _, z := range axis {
					l.Points = append(l.Points, Vec4{X: x, Y: y, Z: z})
				}
			}
		}
	default:
		l.Points = make([]Vec4, 0, n*n*n*n)
		for _, x := range axis {
			for _, y := range axis {
				for _, z := range axis {
					for _, w := range axis {
						l.Points = append(l.Points, Vec4{X: x, Y: y, Z: z, W: w})
					}
				}
			}
		}
	}
	return l
}

// Count returns the number of base coordinates.
func (l *Lattice) Count() int {
	return len(l.Points)
}
