package interact

import (
	"errors"
	"log/slog"

	"github.com/chazu/hexgarden/pkg/board"
	"github.com/chazu/hexgarden/pkg/grid"
	v2 "github.com/deadsy/sdfx/vec/v2"
)

// Button identifies a pointer button, numbered as in DOM pointer events.
type Button int

const (
	ButtonPrimary   Button = 0
	ButtonSecondary Button = 2
)

// Pointer is a pointer event in screen pixels.
type Pointer struct {
	Screen v2.Vec `json:"screen"`
	Button Button `json:"button"`
}

// DefaultClickThreshold2 is the squared pixel displacement at which a press
// stops being a click.
const DefaultClickThreshold2 = 9.0

// IsClick reports whether a press released at up after going down at down
// is a click rather than a drag.
func IsClick(down, up v2.Vec, threshold2 float64) bool {
	dx, dy := up.X-down.X, up.Y-down.Y
	return dx*dx+dy*dy < threshold2
}

// Action is what a pointer release did.
type Action int

const (
	ActionNone Action = iota
	ActionPlaced
	ActionSelected
	ActionRemoved
	ActionDragged
)

func (a Action) String() string {
	switch a {
	case ActionPlaced:
		return "placed"
	case ActionSelected:
		return "selected"
	case ActionRemoved:
		return "removed"
	case ActionDragged:
		return "dragged"
	default:
		return "none"
	}
}

// Listeners receives notifications from the controller. Nil funcs are
// skipped.
type Listeners struct {
	Selected        func(item *board.Item, p Pointer)
	Removed         func(item *board.Item)
	NamingRequested func(req board.NamingRequest)
	WorkerAssigned  func(key, workerID string)
}

// Grabber lets the pointer pick up and move tree nodes before it reaches
// the grid. Grab reports whether something was picked at the ground point.
type Grabber interface {
	Grab(p v2.Vec) bool
	Drag(p v2.Vec)
	Release()
}

// Controller routes pointer input to the board.
type Controller struct {
	grid       *grid.Grid
	store      *board.Store
	namer      *board.Namer
	proj       Projector
	listeners  Listeners
	grabber    Grabber
	threshold2 float64
	log        *slog.Logger

	down     *Pointer
	grabbing bool
	hovered  *grid.Cell
}

// NewController returns a controller over g and store.
func NewController(g *grid.Grid, store *board.Store, namer *board.Namer, proj Projector, listeners Listeners, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Controller{
		grid:       g,
		store:      store,
		namer:      namer,
		proj:       proj,
		listeners:  listeners,
		threshold2: DefaultClickThreshold2,
		log:        logger,
	}
}

// SetClickThreshold overrides the squared click displacement.
func (c *Controller) SetClickThreshold(threshold2 float64) {
	c.threshold2 = threshold2
}

// SetGrabber installs the node manipulator consulted on pointer down.
func (c *Controller) SetGrabber(g Grabber) {
	c.grabber = g
}

func (c *Controller) hit(screen v2.Vec) (*grid.Cell, bool) {
	world, ok := c.proj.Unproject(screen)
	if !ok {
		return nil, false
	}
	return c.grid.HitTest(world)
}

// PointerDown records the press. A primary press over a tree node grabs it.
func (c *Controller) PointerDown(p Pointer) {
	pp := p
	c.down = &pp
	c.grabbing = false
	if c.grabber == nil || p.Button != ButtonPrimary {
		return
	}
	if world, ok := c.proj.Unproject(p.Screen); ok && c.grabber.Grab(world) {
		c.grabbing = true
	}
}

// PointerMove drags a grabbed node or moves the hover highlight. It
// reports whether the highlighted cell changed.
func (c *Controller) PointerMove(p Pointer) bool {
	if c.grabbing {
		if world, ok := c.proj.Unproject(p.Screen); ok {
			c.grabber.Drag(world)
		}
		return false
	}
	prev := c.hovered
	cell, ok := c.hit(p.Screen)
	if !ok {
		cell = nil
	}
	c.hovered = cell
	return prev != cell
}

// Hovered returns the highlighted cell, if any.
func (c *Controller) Hovered() (*grid.Cell, bool) {
	return c.hovered, c.hovered != nil
}

// FillVisual returns the fill variant for cell. At most one cell is
// hovered at a time.
func (c *Controller) FillVisual(cell *grid.Cell) board.Visual {
	return board.FillVisual(c.hovered != nil && cell == c.hovered)
}

// PointerUp completes a press. Only clicks act: a primary click places an
// item on an empty cell or selects an activated one; a secondary click
// removes the item under it. The button of the press decides.
func (c *Controller) PointerUp(p Pointer) Action {
	down := c.down
	c.down = nil
	if c.grabbing {
		c.grabbing = false
		c.grabber.Release()
		return ActionDragged
	}
	if down == nil || !IsClick(down.Screen, p.Screen, c.threshold2) {
		return ActionNone
	}
	cell, ok := c.hit(p.Screen)
	if !ok {
		return ActionNone
	}

	switch down.Button {
	case ButtonPrimary:
		it, ok := c.store.Get(cell.Key)
		if !ok {
			c.store.Place(cell.Hex)
			return ActionPlaced
		}
		if it.Activated() {
			if c.listeners.Selected != nil {
				c.listeners.Selected(it, p)
			}
			return ActionSelected
		}
	case ButtonSecondary:
		it, ok := c.store.Remove(cell.Key)
		if !ok {
			return ActionNone
		}
		if c.namer != nil {
			c.namer.Forget(it.Key)
		}
		if c.listeners.Removed != nil {
			c.listeners.Removed(it)
		}
		return ActionRemoved
	}
	return ActionNone
}

// DoubleClick opens a naming request for the item under the pointer.
func (c *Controller) DoubleClick(p Pointer) (board.NamingRequest, bool) {
	cell, ok := c.hit(p.Screen)
	if !ok || c.namer == nil {
		return board.NamingRequest{}, false
	}
	req, err := c.namer.Request(cell.Key)
	if err != nil {
		return board.NamingRequest{}, false
	}
	if c.listeners.NamingRequested != nil {
		c.listeners.NamingRequested(req)
	}
	return req, true
}

// Drop applies a payload dropped at screen. Drops outside the grid, on
// empty cells, or of workers onto unnamed items are ignored and report
// false.
func (c *Controller) Drop(screen v2.Vec, payload Payload) bool {
	cell, ok := c.hit(screen)
	if !ok {
		return false
	}
	it, ok := c.store.Get(cell.Key)
	if !ok {
		return false
	}
	switch payload.Kind {
	case PayloadWorker:
		if it.FunctionName == "" || payload.WorkerID == "" {
			return false
		}
		if c.listeners.WorkerAssigned != nil {
			c.listeners.WorkerAssigned(it.Key, payload.WorkerID)
		}
		return true
	case PayloadFile:
		err := c.store.AttachFile(it.Key, payload.File)
		if errors.Is(err, board.ErrBlankFile) {
			return false
		}
		if err != nil {
			c.log.Warn("attach file", "key", it.Key, "err", err)
			return false
		}
		return true
	}
	return false
}
