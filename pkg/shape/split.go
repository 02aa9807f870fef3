package shape

import "fmt"

const sizeEps = 1e-9

// SizeMode says how a split size entry is interpreted.
type SizeMode uint8

const (
	// Relative sizes share the length left over by absolute entries,
	// in proportion to their values.
	Relative SizeMode = iota
	// Absolute sizes consume a fixed length.
	Absolute
)

// Size is one entry of a split specification.
type Size struct {
	Mode  SizeMode
	Value float64
}

// Rel returns a relative size entry.
func Rel(v float64) Size {
	return Size{Mode: Relative, Value: v}
}

// Abs returns an absolute size entry.
func Abs(v float64) Size {
	return Size{Mode: Absolute, Value: v}
}

// SplitSpec is the ordered list of sizes for one split call.
type SplitSpec []Size

// Cut pairs a cut parameter in (0, 1] with the rectangle that ends at
// it. CalcSplit leaves Shape nil; Rect.Split fills it in.
type Cut struct {
	Param float64
	Shape *Rect
}

// CalcSplit resolves a split specification against the total edge
// length. It returns one cut per size entry with strictly increasing
// parameters; the final parameter is exactly 1.
func CalcSplit(sizes SplitSpec, total float64) ([]Cut, error) {
	if len(sizes) == 0 {
		return nil, fmt.Errorf("%w: empty split spec", ErrDegenerateShape)
	}
	if total <= 0 {
		return nil, fmt.Errorf("%w: non-positive split length %g", ErrDegenerateShape, total)
	}

	var fixed, weights float64
	for _, s := range sizes {
		if s.Value <= 0 {
			return nil, fmt.Errorf("%w: non-positive size %g", ErrDegenerateShape, s.Value)
		}
		if s.Mode == Absolute {
			fixed += s.Value
		} else {
			weights += s.Value
		}
	}

	free := total - fixed
	switch {
	case free < -sizeEps*total:
		return nil, fmt.Errorf("%w: absolute sizes %g exceed split length %g", ErrDegenerateShape, fixed, total)
	case weights == 0 && free > sizeEps*total:
		return nil, fmt.Errorf("%w: absolute sizes %g leave %g uncovered", ErrDegenerateShape, fixed, free)
	case weights > 0 && free <= sizeEps*total:
		return nil, fmt.Errorf("%w: no length left for relative sizes", ErrDegenerateShape)
	}

	cuts := make([]Cut, len(sizes))
	pos := 0.0
	for i, s := range sizes {
		if s.Mode == Absolute {
			pos += s.Value
		} else {
			pos += s.Value / weights * free
		}
		cuts[i].Param = pos / total
	}
	cuts[len(cuts)-1].Param = 1
	return cuts, nil
}
