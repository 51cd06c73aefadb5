package geom

import "errors"

// Containment is the tri-state result of a volume-versus-volume query.
type Containment int

const (
	Disjoint Containment = iota
	Intersects
	Contains
)

func (c Containment) String() string {
	switch c {
	case Disjoint:
		return "Disjoint"
	case Intersects:
		return "Intersects"
	case Contains:
		return "Contains"
	}
	return "Containment(?)"
}

// Overlaps reports whether the volumes share any point.
func (c Containment) Overlaps() bool {
	return c != Disjoint
}

// PlaneIntersection classifies a point or volume against a plane.
type PlaneIntersection int

const (
	Back PlaneIntersection = iota
	Front
	Intersecting
)

func (p PlaneIntersection) String() string {
	switch p {
	case Back:
		return "Back"
	case Front:
		return "Front"
	case Intersecting:
		return "Intersecting"
	}
	return "PlaneIntersection(?)"
}

// SegmentPart tells which region of a segment a projected point falls in.
type SegmentPart int

const (
	SegmentStart SegmentPart = iota
	SegmentMiddle
	SegmentEnd
)

func (p SegmentPart) String() string {
	switch p {
	case SegmentStart:
		return "Start"
	case SegmentMiddle:
		return "Middle"
	case SegmentEnd:
		return "End"
	}
	return "SegmentPart(?)"
}

// ErrUnsupported is returned by Classify for shape pairs with no containment test.
var ErrUnsupported = errors.New("geom: containment test not supported")
