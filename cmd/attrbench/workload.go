package main

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/oliverbestmann/attrs"
	"github.com/oliverbestmann/attrs/internal/bench"
	"github.com/oliverbestmann/attrs/internal/mesh"
)

const (
	keyPotential = "potential"
	keyDoping    = "doping"
	keyRole      = "role"
)

// Color is attached to cells for the visualization layer.
type Color struct {
	R, G, B uint8
}

type colorKey struct{}

// Report summarizes one workload run.
type Report struct {
	Vertices int
	Cells    int

	// sum of all vertex potentials after the last round
	PotentialSum float64

	Storage attrs.Stats
	Timings *bench.Stats
}

// workload attaches, copies and erases attributes on a quad mesh the same way
// a device simulation refines and post-processes it.
type workload struct {
	cfg     Config
	logger  *slog.Logger
	storage *attrs.Storage
	timings *bench.Stats

	potential *attrs.Attribute[string, float64, mesh.Vertex]
	doping    *attrs.Attribute[string, float64, mesh.Vertex]
}

func newWorkload(cfg Config, logger *slog.Logger, policies *attrs.Policies) *workload {
	storage := attrs.NewStorage(policies)

	return &workload{
		cfg:     cfg,
		logger:  logger,
		storage: storage,
		timings: bench.NewStats(),

		potential: attrs.AttributeOf[string, float64, mesh.Vertex](storage, keyPotential),
		doping:    attrs.AttributeOf[string, float64, mesh.Vertex](storage, keyDoping),
	}
}

func (w *workload) Run() (Report, error) {
	var m *mesh.Mesh

	for round := range w.cfg.Rounds {
		w.storage.Clear()

		var err error
		m, err = mesh.Grid(mesh.RectWithPoints(mesh.VecZero, mesh.Vec{X: 1, Y: 1}), w.cfg.NX, w.cfg.NY)
		if err != nil {
			return Report{}, fmt.Errorf("build mesh: %w", err)
		}

		w.measure("attach", func() { w.attach(m) })
		w.measure("split", func() { w.split(m) })
		w.measure("contacts", func() { w.releaseContacts(m) })

		var sum float64
		w.measure("sweep", func() { sum = w.sweep(m) })

		w.logger.Debug(
			"Round finished",
			slog.Int("round", round),
			slog.Int("cells", m.CellCount()),
			slog.Float64("potential", sum),
		)
	}

	for _, entry := range w.storage.UnmatchedPolicies() {
		w.logger.Warn("Container policy matched no attribute", slog.String("entry", entry))
	}

	return Report{
		Vertices:     m.VertexCount(),
		Cells:        m.CellCount(),
		PotentialSum: w.sweep(m),
		Storage:      w.storage.Stats(),
		Timings:      w.timings,
	}, nil
}

func (w *workload) measure(phase string, fn func()) {
	sw := w.timings.Measure(phase)
	defer sw.Stop()

	fn()
}

// attach sets the initial attributes of every vertex, cell and segment.
func (w *workload) attach(m *mesh.Mesh) {
	attrs.Reserve[string, float64, mesh.Vertex](w.storage, keyPotential, m.VertexCount())
	attrs.Reserve[string, float64, mesh.Vertex](w.storage, keyDoping, m.VertexCount())

	for v := range m.Vertices() {
		pos := m.Position(v)

		w.potential.Set(v, pos.X)
		w.doping.Set(v, 1e16*math.Exp(-10*pos.Y))
	}

	for c := range m.Cells() {
		segment := m.SegmentOf(c)

		attrs.Set(w.storage, keyRole, c, segment.Name)
		attrs.Set(w.storage, colorKey{}, c, Color{R: uint8(255 * m.Center(c).X)})
	}

	for _, segment := range m.Segments() {
		attrs.Set(w.storage, keyRole, segment, "semiconductor")
	}
}

// split refines every n-th cell. The new cell inherits all attributes of its
// parent, new vertices interpolate the attributes of their neighbours.
func (w *workload) split(m *mesh.Mesh) {
	cells := m.CellCount()

	for idx := 0; idx < cells; idx += w.cfg.SplitEvery {
		parent := mesh.Cell(idx)
		corners := m.Corners(parent)

		child, midpoints := m.Split(parent)
		attrs.CopyAllFromElement(w.storage, parent, child)

		w.interpolate(midpoints[0], corners[0], corners[1])
		w.interpolate(midpoints[1], corners[3], corners[2])
	}
}

func (w *workload) interpolate(target, a, b mesh.Vertex) {
	attrs.CopyAllFromElement(w.storage, a, target)

	for _, attribute := range []*attrs.Attribute[string, float64, mesh.Vertex]{w.potential, w.doping} {
		va, okA := attribute.Get(a)
		vb, okB := attribute.Get(b)
		if okA && okB {
			attribute.Set(target, (va+vb)/2)
		}
	}
}

// releaseContacts drops everything attached to boundary vertices, as done
// when the contacts are handed over to the boundary condition solver.
func (w *workload) releaseContacts(m *mesh.Mesh) {
	for v := range m.Vertices() {
		if m.OnBoundary(v) {
			attrs.EraseAllFromElement(w.storage, v)
		}
	}
}

func (w *workload) sweep(m *mesh.Mesh) float64 {
	var sum float64
	for v := range m.Vertices() {
		if value := w.potential.Find(v); value != nil {
			sum += *value
		}
	}

	return sum
}
