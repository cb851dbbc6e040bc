package generator

import (
	"math/rand"
	"sort"

	"delve/pkg/engine/geom"
	"delve/pkg/engine/world"
)

// Edge is a candidate connection between two rooms: the unordered ID pair
// (kept with A < B), the Manhattan gap distance between the rooms, and how
// their rectangles relate (which decides straight vs. L-shaped carving).
type Edge struct {
	A        int
	B        int
	Distance int
	Rel      geom.Relation
}

// RoomConnector decides which room pairs get corridors. The notes this
// generator grew from sketched several competing strategies (nearest
// neighbor, line of sight), so the strategy is an interface; the sorted-edge
// union-find variant below is the default.
type RoomConnector interface {
	Name() string
	Connect(rooms []world.Room, ds *DisjointSet, rng *rand.Rand) ([]Edge, error)
}

// SortedEdgeConnector links rooms along the shortest available pairs: it
// sorts every pair by gap distance and accepts an edge whenever it joins two
// components, until one component remains.
type SortedEdgeConnector struct {
	// MinConnectionDistance filters redundant extra links: once the level
	// is connected, only pairs farther apart than this are worth doubling.
	MinConnectionDistance int

	// ExtraConnections keeps scanning after full connectivity instead of
	// stopping at the spanning set.
	ExtraConnections bool
}

// Name returns the name of this connection strategy
func (c *SortedEdgeConnector) Name() string {
	return "Sorted Edges"
}

// Connect returns the accepted edges in carving order (ascending distance).
// If the pair list is exhausted with more than one component left, the room
// geometry is pathological and ErrDisconnectedLevel is returned.
func (c *SortedEdgeConnector) Connect(rooms []world.Room, ds *DisjointSet, rng *rand.Rand) ([]Edge, error) {
	edges := allEdges(rooms)

	var accepted []Edge
	for _, e := range edges {
		if ds.Union(e.A, e.B) {
			accepted = append(accepted, e)
			if ds.Count() == 1 && !c.ExtraConnections {
				break
			}
			continue
		}
		// Same component already. Redundant links are only worth it once
		// the whole level is connected, and only when the pair is far
		// enough apart that the corridor adds a real shortcut.
		if c.ExtraConnections && ds.Count() == 1 && e.Distance > c.MinConnectionDistance {
			accepted = append(accepted, e)
		}
	}

	if ds.Count() > 1 {
		return nil, ErrDisconnectedLevel
	}
	return accepted, nil
}

// allEdges builds every unordered room pair, sorted ascending by distance
// with ties broken by the ID pair for determinism.
func allEdges(rooms []world.Room) []Edge {
	var edges []Edge
	for i := 0; i < len(rooms); i++ {
		for j := i + 1; j < len(rooms); j++ {
			in := rooms[i].Bounds.Intersect(rooms[j].Bounds)
			edges = append(edges, Edge{
				A:        rooms[i].ID,
				B:        rooms[j].ID,
				Distance: in.Distance(),
				Rel:      in.Rel,
			})
		}
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].Distance != edges[j].Distance {
			return edges[i].Distance < edges[j].Distance
		}
		if edges[i].A != edges[j].A {
			return edges[i].A < edges[j].A
		}
		return edges[i].B < edges[j].B
	})
	return edges
}
