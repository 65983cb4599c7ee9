package services

import (
	"math"
	"math/rand"

	"github.com/dkimh/Cybernetic-Design-Network/domain/core/aggregates"
	"github.com/dkimh/Cybernetic-Design-Network/domain/core/valueobjects"
)

// LayoutConfig carries the force-simulation tunables
type LayoutConfig struct {
	RepulsionStrength  float64
	AttractionStrength float64
	Damping            float64
	Epsilon            float64
	Iterations         int // steps for the deterministic circle start
	RandomIterations   int // steps when starting from random placement
	TargetSpan         float64
	CircleRadius       float64
}

// DefaultLayoutConfig returns the simulation constants the network was
// tuned with
func DefaultLayoutConfig() LayoutConfig {
	return LayoutConfig{
		RepulsionStrength:  0.5,
		AttractionStrength: 0.02,
		Damping:            0.85,
		Epsilon:            0.01,
		Iterations:         100,
		RandomIterations:   200,
		TargetSpan:         8.0,
		CircleRadius:       3.5,
	}
}

// LayoutService computes 2D coordinates for all nodes with an iterative
// force-directed relaxation: pairwise repulsion, attraction along edges,
// velocity damping, then normalization of the result to a fixed span.
// The simulation runs a fixed step budget and always produces a layout;
// no convergence threshold is checked.
type LayoutService struct {
	cfg LayoutConfig
	rng *rand.Rand
}

// NewLayoutService creates a layout service. The random source is only
// consulted when Layout is called with randomize=true.
func NewLayoutService(cfg LayoutConfig, rng *rand.Rand) *LayoutService {
	return &LayoutService{cfg: cfg, rng: rng}
}

// body is the per-node mutable simulation state. It is scoped to one
// Layout call so callers never observe partially-converged coordinates.
type body struct {
	id           valueobjects.NodeID
	x, y, vx, vy float64
}

// Layout runs the simulation and returns a freshly built position map.
// With randomize=false the run is fully deterministic: nodes start
// evenly spaced on a circle and no random source is consulted. With
// randomize=true nodes start at random polar positions with a small
// random velocity, the run gets twice the step budget, and uniform
// jitter is injected during the first third of the steps to shake the
// layout out of early local minima.
func (s *LayoutService) Layout(
	nodeIDs []valueobjects.NodeID,
	edges []aggregates.Edge,
	randomize bool,
) map[valueobjects.NodeID]valueobjects.Position {
	n := len(nodeIDs)
	positions := make(map[valueobjects.NodeID]valueobjects.Position, n)
	if n == 0 {
		return positions
	}

	bodies := make([]body, n)
	index := make(map[valueobjects.NodeID]int, n)
	for i, id := range nodeIDs {
		if randomize {
			angle := s.rng.Float64() * 2 * math.Pi
			radius := 2 + s.rng.Float64()*3
			bodies[i] = body{
				id: id,
				x:  radius * math.Cos(angle),
				y:  radius * math.Sin(angle),
				vx: s.rng.Float64()*0.1 - 0.05,
				vy: s.rng.Float64()*0.1 - 0.05,
			}
		} else {
			angle := 2 * math.Pi * float64(i) / float64(n)
			bodies[i] = body{
				id: id,
				x:  s.cfg.CircleRadius * math.Cos(angle),
				y:  s.cfg.CircleRadius * math.Sin(angle),
			}
		}
		index[id] = i
	}

	steps := s.cfg.Iterations
	if randomize {
		steps = s.cfg.RandomIterations
	}

	for step := 0; step < steps; step++ {
		s.applyRepulsion(bodies)
		s.applyAttraction(bodies, index, edges)

		for i := range bodies {
			bodies[i].x += bodies[i].vx
			bodies[i].y += bodies[i].vy
			bodies[i].vx *= s.cfg.Damping
			bodies[i].vy *= s.cfg.Damping

			if randomize && step < steps/3 {
				bodies[i].x += s.rng.Float64()*0.05 - 0.025
				bodies[i].y += s.rng.Float64()*0.05 - 0.025
			}
		}
	}

	s.normalize(bodies)

	for i := range bodies {
		positions[bodies[i].id] = valueobjects.Position{
			X:  bodies[i].x,
			Y:  bodies[i].y,
			VX: bodies[i].vx,
			VY: bodies[i].vy,
		}
	}
	return positions
}

// applyRepulsion pushes every node away from every other node with a
// force falling off with squared distance
func (s *LayoutService) applyRepulsion(bodies []body) {
	for i := range bodies {
		for j := range bodies {
			if i == j {
				continue
			}
			dx := bodies[i].x - bodies[j].x
			dy := bodies[i].y - bodies[j].y
			distSq := dx*dx + dy*dy
			dist := math.Sqrt(distSq)
			if dist < 1e-9 {
				// coincident nodes have no separation direction;
				// jitter or other forces will split them apart
				continue
			}
			force := s.cfg.RepulsionStrength / (distSq + s.cfg.Epsilon)
			bodies[i].vx += force * dx / dist
			bodies[i].vy += force * dy / dist
		}
	}
}

// applyAttraction pulls each edge's endpoints together symmetrically,
// with force growing linearly with distance. Edges referencing unknown
// nodes are skipped.
func (s *LayoutService) applyAttraction(
	bodies []body,
	index map[valueobjects.NodeID]int,
	edges []aggregates.Edge,
) {
	for _, edge := range edges {
		si, ok := index[edge.SourceID]
		if !ok {
			continue
		}
		ti, ok := index[edge.TargetID]
		if !ok {
			continue
		}
		dx := bodies[ti].x - bodies[si].x
		dy := bodies[ti].y - bodies[si].y
		dist := math.Sqrt(dx*dx + dy*dy)
		if dist < 1e-9 {
			continue
		}
		force := dist * s.cfg.AttractionStrength
		bodies[si].vx += force * dx / dist
		bodies[si].vy += force * dy / dist
		bodies[ti].vx -= force * dx / dist
		bodies[ti].vy -= force * dy / dist
	}
}

// normalize rescales the converged layout so the larger bounding-box
// dimension spans TargetSpan, then recenters the node centroid on the
// origin. Raw simulation coordinates are not meaningful without this.
func (s *LayoutService) normalize(bodies []body) {
	minX, maxX := bodies[0].x, bodies[0].x
	minY, maxY := bodies[0].y, bodies[0].y
	for i := range bodies {
		minX = math.Min(minX, bodies[i].x)
		maxX = math.Max(maxX, bodies[i].x)
		minY = math.Min(minY, bodies[i].y)
		maxY = math.Max(maxY, bodies[i].y)
	}

	span := math.Max(maxX-minX, maxY-minY)
	scale := 1.0
	if span > 1e-9 {
		scale = s.cfg.TargetSpan / span
	}

	var sumX, sumY float64
	for i := range bodies {
		bodies[i].x *= scale
		bodies[i].y *= scale
		sumX += bodies[i].x
		sumY += bodies[i].y
	}

	meanX := sumX / float64(len(bodies))
	meanY := sumY / float64(len(bodies))
	for i := range bodies {
		bodies[i].x -= meanX
		bodies[i].y -= meanY
	}
}
