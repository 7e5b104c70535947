package evaluator

// Table is the precomputed square-scoring base, indexed by which of a
// square's four corners hold the color being scored (a,b,c,d) and which
// of those corners are fixed (fa,fb,fc,fd). There are only 2^8 = 256
// combinations, so the base is memoized once at startup from Weights;
// the (size+4) multiplier is size-dependent and is folded in at the call
// site instead of into the table (see spec Design Notes).
type Table struct {
	weights Weights
	base    [256]int
}

func packIndex(a, b, c, d, fa, fb, fc, fd bool) int {
	idx := 0
	if a {
		idx |= 1 << 0
	}
	if b {
		idx |= 1 << 1
	}
	if c {
		idx |= 1 << 2
	}
	if d {
		idx |= 1 << 3
	}
	if fa {
		idx |= 1 << 4
	}
	if fb {
		idx |= 1 << 5
	}
	if fc {
		idx |= 1 << 6
	}
	if fd {
		idx |= 1 << 7
	}
	return idx
}

// NewTable builds the 256-entry memo table from w.
func NewTable(w Weights) *Table {
	t := &Table{weights: w}
	for a := 0; a < 2; a++ {
		for b := 0; b < 2; b++ {
			for c := 0; c < 2; c++ {
				for d := 0; d < 2; d++ {
					for fa := 0; fa < 2; fa++ {
						for fb := 0; fb < 2; fb++ {
							for fc := 0; fc < 2; fc++ {
								for fd := 0; fd < 2; fd++ {
									idx := packIndex(a != 0, b != 0, c != 0, d != 0, fa != 0, fb != 0, fc != 0, fd != 0)
									t.base[idx] = squareBase(w, a != 0, b != 0, c != 0, d != 0, fa != 0, fb != 0, fc != 0, fd != 0)
								}
							}
						}
					}
				}
			}
		}
	}
	return t
}

// squareBase implements the scoring table from the spec: the first
// matching pattern wins, unmatched scores zero.
func squareBase(w Weights, a, b, c, d, fa, fb, fc, fd bool) int {
	nf := numFixed(fa, fb, fc, fd)
	switch {
	case a && b && c && d:
		return w.Base4 + w.Fixed4*nf
	case (a && b && c && !fd) || (a && b && d && !fc) || (a && c && d && !fb) || (b && c && d && !fa):
		return w.Base3 + w.Fixed3*nf
	case (a && b && !fc && !fd) || (a && c && !fb && !fd) || (a && d && !fb && !fc) ||
		(b && c && !fa && !fd) || (b && d && !fa && !fc) || (c && d && !fa && !fb):
		return w.Base2 + w.Fixed2*nf
	default:
		return 0
	}
}

func numFixed(fa, fb, fc, fd bool) int {
	n := 0
	for _, f := range [4]bool{fa, fb, fc, fd} {
		if f {
			n++
		}
	}
	return n
}

// Base1 and Fixed1 are the single-cell (side-0) contributions.
func (t *Table) Base1() int  { return t.weights.Base1 }
func (t *Table) Fixed1() int { return t.weights.Fixed1 }

// SquareBase returns the memoized pattern base for a square with corner
// color matches a,b,c,d and fixed flags fa,fb,fc,fd, before the
// size-dependent multiplier is applied.
func (t *Table) SquareBase(a, b, c, d, fa, fb, fc, fd bool) int {
	return t.base[packIndex(a, b, c, d, fa, fb, fc, fd)]
}
