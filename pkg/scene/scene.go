// Package scene wires the grid, board, interaction and tree packages into
// a single frame-driven canvas.
//
// A Scene is driven from one loop: pointer events are fed in as they
// arrive and Frame is called once per display frame. Nothing in a Scene is
// safe for concurrent use.
package scene

import (
	"fmt"
	"log/slog"
	"math"
	"math/rand/v2"
	"time"

	"github.com/chazu/hexgarden/pkg/board"
	"github.com/chazu/hexgarden/pkg/config"
	"github.com/chazu/hexgarden/pkg/grid"
	"github.com/chazu/hexgarden/pkg/hex"
	"github.com/chazu/hexgarden/pkg/interact"
	"github.com/chazu/hexgarden/pkg/tree"
)

// Renderer draws a frame.
type Renderer interface {
	Render(f *Snapshot)
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(f *Snapshot)

// Render calls fn(f).
func (fn RendererFunc) Render(f *Snapshot) { fn(f) }

// Options supplies a Scene's collaborators. All fields are optional.
type Options struct {
	Prisms    board.PrismBuilder
	Renderer  Renderer
	Listeners interact.Listeners
	Gizmo     tree.Gizmo
	Rand      *rand.Rand
	Logger    *slog.Logger
}

// Scene is the interactive hex canvas.
type Scene struct {
	Layout     hex.Layout
	Grid       *grid.Grid
	Store      *board.Store
	Namer      *board.Namer
	Controller *interact.Controller
	Trees      *tree.System
	Camera     *interact.OrthoCamera

	cfg      *config.Config
	renderer Renderer
	rng      *rand.Rand
	log      *slog.Logger
	maxStep  float64
	last     time.Time
	havePrev bool
	frames   uint64
}

// New builds a scene from cfg.
func New(cfg *config.Config, opts Options) (*Scene, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	layout, err := cfg.HexLayout()
	if err != nil {
		return nil, err
	}
	g, err := grid.Build(layout, cfg.Layout.Radius)
	if err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	rng := opts.Rand
	if rng == nil {
		if cfg.Seed.Random != 0 {
			rng = rand.New(rand.NewPCG(cfg.Seed.Random, cfg.Seed.Random))
		} else {
			rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
		}
	}

	ic := cfg.Interaction
	cam := interact.NewOrthoCamera(ic.Width, ic.Height)
	cam.FrustumSize = ic.FrustumSize
	cam.MinZoom = ic.MinZoom
	cam.MaxZoom = ic.MaxZoom

	s := &Scene{
		Layout:   layout,
		Grid:     g,
		Camera:   cam,
		cfg:      cfg,
		renderer: opts.Renderer,
		rng:      rng,
		log:      logger,
		maxStep:  cfg.Frame.MaxStepMS / 1000,
	}
	s.Store = board.NewStore(layout, opts.Prisms, logger.With("component", "board"))
	s.Namer = board.NewNamer(s.Store)
	s.Trees = tree.NewSystem(tree.Options{
		Physics: cfg.Physics,
		Spawn:   cfg.Spawn,
		Growth:  cfg.Growth,
		Gizmo:   opts.Gizmo,
		Rand:    rng,
		Logger:  logger.With("component", "tree"),
	})
	s.Controller = interact.NewController(g, s.Store, s.Namer, cam, s.listeners(opts.Listeners), logger.With("component", "interact"))
	s.Controller.SetClickThreshold(ic.ClickThreshold2)
	s.Controller.SetGrabber(s.Trees)
	return s, nil
}

// listeners chains the scene's own reactions in front of ext: selecting an
// activated item shows its tree and removing an item disposes it.
func (s *Scene) listeners(ext interact.Listeners) interact.Listeners {
	return interact.Listeners{
		Selected: func(it *board.Item, p interact.Pointer) {
			s.Trees.ShowTree(it)
			if ext.Selected != nil {
				ext.Selected(it, p)
			}
		},
		Removed: func(it *board.Item) {
			s.Trees.DisposeTree(it.Key)
			if ext.Removed != nil {
				ext.Removed(it)
			}
		},
		NamingRequested: ext.NamingRequested,
		WorkerAssigned:  ext.WorkerAssigned,
	}
}

// Place puts an inert item on h. Cells outside the grid are refused with a
// nil item.
func (s *Scene) Place(h hex.Cube) (*board.Item, bool) {
	if !s.Grid.Contains(h) {
		return nil, false
	}
	return s.Store.Place(h)
}

// Activate names the item at key.
func (s *Scene) Activate(key, name, description string) error {
	return s.Store.Activate(key, name, description)
}

// AttachFile attaches a file to the item at key.
func (s *Scene) AttachFile(key, name string) error {
	return s.Store.AttachFile(key, name)
}

// Show grows the tree of the activated item at key.
func (s *Scene) Show(key string) bool {
	it, ok := s.Store.Get(key)
	if !ok {
		return false
	}
	return s.Trees.ShowTree(it)
}

// Remove deletes the item at key and disposes its tree, as a secondary
// click would.
func (s *Scene) Remove(key string) bool {
	it, ok := s.Store.Remove(key)
	if !ok {
		return false
	}
	s.Namer.Forget(key)
	s.Trees.DisposeTree(key)
	s.log.Debug("item removed", "key", it.Key)
	return true
}

// Frame runs one frame at time now: camera, animation, physics when a
// previous frame exists, edge curves, then render. The step is clamped so a
// long stall cannot destabilise the integrator.
func (s *Scene) Frame(now time.Time) {
	dt := 0.0
	if s.havePrev {
		dt = math.Min(s.maxStep, math.Max(0, now.Sub(s.last).Seconds()))
	}
	s.Camera.Update()
	s.Trees.Update(dt, s.havePrev)
	s.last = now
	s.havePrev = true
	s.frames++
	if s.renderer != nil {
		snap := s.Snapshot()
		s.renderer.Render(&snap)
	}
}

// Step runs n frames spaced dt apart starting at start. It is used to
// simulate the canvas without a display.
func (s *Scene) Step(start time.Time, dt time.Duration, n int) time.Time {
	now := start
	for i := 0; i < n; i++ {
		s.Frame(now)
		now = now.Add(dt)
	}
	return now
}

// Frames returns the number of frames run.
func (s *Scene) Frames() uint64 {
	return s.frames
}

// Seed places the initial items: between MinItems and MaxItems of them,
// scaled by radius, biased toward the centre. Each attempt picks a ring
// with index floor(u^Bias * (radius+1)) and a random cell on it; occupied
// picks are retried until Attempts is exhausted. It returns the number of
// items placed.
func (s *Scene) Seed() int {
	sc := s.cfg.Seed
	radius := s.Grid.Radius()
	want := min(sc.MaxItems, max(sc.MinItems, int(math.Floor(float64(radius)*sc.PerRing))))

	placed := 0
	for attempts := 0; placed < want && attempts < sc.Attempts; attempts++ {
		r := int(math.Floor(math.Pow(s.rng.Float64(), sc.Bias) * float64(radius+1)))
		r = min(r, radius)
		ring := hex.Ring(hex.Origin, r)
		pick := ring[s.rng.IntN(len(ring))]
		if _, created := s.Store.Place(pick); created {
			placed++
		}
	}
	s.log.Info("seeded", "items", placed, "wanted", want)
	return placed
}
