package attrs

type Vertex int

func (v Vertex) Offset() int {
	return int(v)
}

type Cell struct {
	Index int
}

func (c Cell) Offset() int {
	return c.Index
}

// Segment elements are addressed by pointer.
type Segment struct {
	Index int
}

func (s *Segment) Offset() int {
	return s.Index
}

type Potential struct {
	Value float64
	Unit  string
}
