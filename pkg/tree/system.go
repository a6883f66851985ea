package tree

import (
	"log/slog"
	"math"
	"math/rand/v2"
	"slices"

	"github.com/chazu/hexgarden/pkg/board"
	v2 "github.com/deadsy/sdfx/vec/v2"
	v3 "github.com/deadsy/sdfx/vec/v3"
	"github.com/samber/lo"
	"github.com/tanema/gween/ease"
)

// Options configures a System. Zero-valued fields take their defaults.
type Options struct {
	Physics Physics
	Spawn   Spawn
	Growth  Growth
	Gizmo   Gizmo
	Rand    *rand.Rand
	Logger  *slog.Logger
}

// System owns the trees shown on the board, keyed by hex key.
type System struct {
	physics Physics
	spawn   Spawn
	growth  Growth
	gizmo   Gizmo
	rng     *rand.Rand
	log     *slog.Logger

	trees map[string]*Tree
	drag  *dragState
}

// NewSystem returns an empty System.
func NewSystem(opts Options) *System {
	s := &System{
		physics: opts.Physics,
		spawn:   opts.Spawn,
		growth:  opts.Growth,
		gizmo:   opts.Gizmo,
		rng:     opts.Rand,
		log:     opts.Logger,
		trees:   make(map[string]*Tree),
	}
	if s.physics == (Physics{}) {
		s.physics = DefaultPhysics()
	}
	if s.spawn == (Spawn{}) {
		s.spawn = DefaultSpawn()
	}
	if s.growth == (Growth{}) {
		s.growth = DefaultGrowth()
	}
	if s.gizmo == nil {
		s.gizmo = &Handle{}
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if s.log == nil {
		s.log = slog.New(slog.DiscardHandler)
	}
	return s
}

// ShowTree grows a tree above item. It is a no-op, reporting false, when a
// tree is already shown for the item's key or the item is not activated.
func (s *System) ShowTree(item *board.Item) bool {
	if item == nil || !item.Activated() {
		return false
	}
	if _, ok := s.trees[item.Key]; ok {
		return false
	}

	t := newTree(item.Key, s.physics)
	name := lo.CoalesceOrEmpty(item.FunctionName, item.Label, "Root")
	t.addNode(&Node{
		ID:     RootID,
		Name:   name,
		Pinned: true,
		Mass:   1,
		Anchor: item.Anchor,
	})

	sp := s.spawn
	count := sp.MinChildren
	if sp.MaxChildren > sp.MinChildren {
		count += s.rng.IntN(sp.MaxChildren - sp.MinChildren + 1)
	}
	level1 := s.spawnChildren(t, t.Root(), count)
	span := max(1, sp.MaxGrandchildren-sp.MinGrandchildren+1)
	for i, n := range level1 {
		if s.rng.Float64() < sp.GrandchildChance {
			s.spawnChildren(t, n, sp.MinGrandchildren+i%span)
		}
	}

	t.RebuildEdges()
	s.playGrowth(t)
	s.trees[item.Key] = t
	s.log.Debug("tree shown", "key", item.Key, "nodes", len(t.nodes), "edges", len(t.edges))
	return true
}

// spawnChildren adds count children under parent, spread around it on a
// circle whose radius grows with depth and lifted above it. Children start
// invisible and are revealed by the growth animation.
func (s *System) spawnChildren(t *Tree, parent *Node, count int) []*Node {
	sp := s.spawn
	depth := parent.Depth + 1
	radius := (sp.BaseRadius + float64(depth)*sp.RadiusPerDepth) * sp.Spread
	origin := parent.Position()

	created := make([]*Node, 0, count)
	for i := 0; i < count; i++ {
		name := ChildName(i, depth)
		ang := (float64(i) + s.rng.Float64()*sp.AngleJitter) / float64(max(1, count)) * 2 * math.Pi
		lift := (sp.BaseLift + float64(depth)*sp.LiftPerDepth + s.rng.Float64()*sp.LiftJitter) * sp.Spread

		n := &Node{
			ID:       ChildID(parent.ID, i),
			Name:     name,
			Depth:    depth,
			Mass:     1,
			ParentID: parent.ID,
			Anchor: &board.Anchor{
				Position: v3.Vec{
					X: origin.X + math.Cos(ang)*radius,
					Y: origin.Y + lift,
					Z: origin.Z + math.Sin(ang)*radius,
				},
				Text:    name,
				Visible: true,
			},
			TargetScale: board.LabelSize(name),
		}
		t.addNode(n)
		t.edges = append(t.edges, &Edge{
			ParentID: parent.ID,
			ChildID:  n.ID,
			Points:   make([]v3.Vec, sp.Segments+1),
		})
		created = append(created, n)
	}
	return created
}

// playGrowth schedules the edge reveal in depth order. Each edge starts a
// little after the previous ones, deeper edges wait longer, and every few
// edges an extra pause makes the reveal come in waves. When an edge is
// fully grown its child scales in with a slight overshoot.
func (s *System) playGrowth(t *Tree) {
	g := s.growth
	edges := slices.Clone(t.edges)
	slices.SortStableFunc(edges, func(a, b *Edge) int {
		return t.byID[a.ChildID].Depth - t.byID[b.ChildID].Depth
	})

	acc := 0.0
	for idx, e := range edges {
		child := t.byID[e.ChildID]
		depth := float64(child.Depth)
		dur := g.BaseDuration + depth*g.DurationPerDepth
		delay := acc + math.Min(g.MaxDepthDelay, depth*g.DelayPerDepth) + float64(idx%3)*g.IndexStagger

		t.timeline.Tween(delay, dur, 0, 1, ease.OutCubic,
			func() { e.Started = true },
			func(v float64) { e.Progress = v },
			func() { s.scaleIn(t, child) },
		)
		if g.WaveEvery > 0 && idx%g.WaveEvery == g.WaveEvery-1 {
			acc += g.WaveDelay
		}
	}
}

func (s *System) scaleIn(t *Tree, n *Node) {
	g := s.growth
	t.timeline.Tween(0, g.ScaleDuration, 0, 1, ease.OutBack, nil,
		func(v float64) {
			k := math.Max(g.MinScale, v)
			if n.Anchor != nil {
				n.Anchor.Scale = v2.Vec{X: k * n.TargetScale.X, Y: k * n.TargetScale.Y}
			}
		}, nil)
}

// DisposeTree drops the tree shown for key. The gizmo is detached first if
// it holds one of the tree's nodes. The root anchor is left to the board.
func (s *System) DisposeTree(key string) {
	t, ok := s.trees[key]
	if !ok {
		return
	}
	if t.Contains(s.gizmo.Attached()) {
		s.gizmo.Detach()
		s.drag = nil
	}
	delete(s.trees, key)
	t.release()
	s.log.Debug("tree disposed", "key", key)
}

// Update advances every tree by dt seconds. Animation always advances;
// physics and edge curves only when havePrev is set, since the first frame
// has no meaningful elapsed time.
func (s *System) Update(dt float64, havePrev bool) {
	keys := s.Keys()
	for _, k := range keys {
		s.trees[k].timeline.Advance(dt)
	}
	if !havePrev {
		return
	}
	for _, k := range keys {
		s.trees[k].Step(dt)
	}
	for _, k := range keys {
		s.trees[k].RebuildEdges()
	}
}

// Tree returns the tree shown for key.
func (s *System) Tree(key string) (*Tree, bool) {
	t, ok := s.trees[key]
	return t, ok
}

// Len returns the number of shown trees.
func (s *System) Len() int {
	return len(s.trees)
}

// Keys returns the keys of shown trees in sorted order.
func (s *System) Keys() []string {
	keys := lo.Keys(s.trees)
	slices.Sort(keys)
	return keys
}
