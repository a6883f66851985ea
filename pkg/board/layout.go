package board

import "github.com/chazu/hexgarden/pkg/hex"

// Feature is a node of a dependency graph to be laid out on the board.
// A locked feature with a position keeps it.
type Feature struct {
	ID     string    `json:"id" toml:"id"`
	Name   string    `json:"name" toml:"name"`
	Hex    *hex.Cube `json:"hex,omitempty" toml:"hex,omitempty"`
	Locked bool      `json:"locked,omitempty" toml:"locked"`
}

// Dependency is a directed edge: From must be laid out before To.
type Dependency struct {
	From string `json:"from" toml:"from"`
	To   string `json:"to" toml:"to"`
}

// PlanLayout assigns a cell to every feature. Features are layered
// breadth-first from those with no incoming dependency; each layer becomes
// a row and each feature a column within it, mapped to cube coordinates as
// odd-r offsets. Features on cycles are appended as a final layer. Locked
// features keep their cell, and a cell already taken pushes the next
// feature to the right until it finds a free one.
func PlanLayout(features []Feature, deps []Dependency) map[string]hex.Cube {
	byID := make(map[string]Feature, len(features))
	indeg := make(map[string]int, len(features))
	out := make(map[string][]string, len(features))
	for _, f := range features {
		byID[f.ID] = f
		indeg[f.ID] = 0
	}
	for _, d := range deps {
		_, okFrom := byID[d.From]
		_, okTo := byID[d.To]
		if !okFrom || !okTo {
			continue
		}
		indeg[d.To]++
		out[d.From] = append(out[d.From], d.To)
	}

	var queue []string
	for _, f := range features {
		if indeg[f.ID] == 0 {
			queue = append(queue, f.ID)
		}
	}
	visited := make(map[string]bool, len(features))
	var layers [][]string
	for len(queue) > 0 {
		size := len(queue)
		var layer []string
		for i := 0; i < size; i++ {
			u := queue[0]
			queue = queue[1:]
			if visited[u] {
				continue
			}
			visited[u] = true
			layer = append(layer, u)
			for _, v := range out[u] {
				indeg[v]--
				if indeg[v] == 0 {
					queue = append(queue, v)
				}
			}
		}
		if len(layer) > 0 {
			layers = append(layers, layer)
		}
	}
	var rest []string
	for _, f := range features {
		if !visited[f.ID] {
			rest = append(rest, f.ID)
		}
	}
	if len(rest) > 0 {
		layers = append(layers, rest)
	}

	taken := make(map[hex.Cube]bool)
	for _, f := range features {
		if f.Locked && f.Hex != nil {
			taken[*f.Hex] = true
		}
	}

	pos := make(map[string]hex.Cube, len(features))
	for row, layer := range layers {
		for col, id := range layer {
			f := byID[id]
			if f.Locked && f.Hex != nil {
				pos[id] = *f.Hex
				continue
			}
			h := hex.FromOffset(hex.OddR, hex.OffsetCoord{Col: col, Row: row})
			for taken[h] {
				h = h.Add(hex.Direction(0))
			}
			taken[h] = true
			pos[id] = h
		}
	}
	return pos
}
