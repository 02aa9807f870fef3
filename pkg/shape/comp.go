package shape

import "math"

// HorizontalThreshold is the default bound on the vertical component
// of a unit normal above which the normal counts as vertical and its
// face as horizontal. The value is sqrt(0.5), rounded.
const HorizontalThreshold = 0.70711

// Selector names an orientation bucket of the face classifier.
type Selector uint8

const (
	// Front matches faces whose local normal points along +X.
	Front Selector = iota + 1
	// Back matches faces whose local normal points along -X.
	Back
	// Left matches faces whose local normal points along -Y.
	Left
	// Right matches faces whose local normal points along +Y.
	Right
	// Top matches horizontal faces pointing up.
	Top
	// Bottom matches horizontal faces pointing down.
	Bottom
	// Side catches vertical faces whose direction bucket was not
	// requested.
	Side
	// All catches every face left over by the other selectors.
	All
)

// String returns the selector name.
func (s Selector) String() string {
	switch s {
	case Front:
		return "front"
	case Back:
		return "back"
	case Left:
		return "left"
	case Right:
		return "right"
	case Top:
		return "top"
	case Bottom:
		return "bottom"
	case Side:
		return "side"
	case All:
		return "all"
	}
	return "unknown"
}

// Comp partitions the constituent faces among the requested selectors
// by the orientation of their normals in the volume frame. Direction
// buckets win over Side, which wins over All; a face whose buckets
// were not requested is dropped. Buckets keep constituent order, and
// every returned key matched at least one face.
func (v *Shape3D) Comp(selectors ...Selector) (map[Selector][]Planar, error) {
	frame, err := v.Frame()
	if err != nil {
		return nil, err
	}

	requested := make(map[Selector]bool, len(selectors))
	for _, sel := range selectors {
		requested[sel] = true
	}

	result := make(map[Selector][]Planar)
	for _, sh := range v.shapes {
		n := frame.TransformDirection(sh.Face().Normal())

		var sel Selector
		vertical := false
		switch {
		case n.Z > v.threshold:
			sel = Top
		case n.Z < -v.threshold:
			sel = Bottom
		default:
			vertical = true
			if math.Abs(n.X) > math.Abs(n.Y) {
				sel = Back
				if n.X > 0 {
					sel = Front
				}
			} else {
				sel = Left
				if n.Y > 0 {
					sel = Right
				}
			}
		}

		switch {
		case requested[sel]:
			result[sel] = append(result[sel], sh)
		case vertical && requested[Side]:
			result[Side] = append(result[Side], sh)
		case requested[All]:
			result[All] = append(result[All], sh)
		}
	}
	return result, nil
}
