package main

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/chazu/hexgarden/pkg/board"
	"github.com/chazu/hexgarden/pkg/config"
	"github.com/chazu/hexgarden/pkg/engine"
	"github.com/chazu/hexgarden/pkg/interact"
	"github.com/chazu/hexgarden/pkg/kernel"
	"github.com/chazu/hexgarden/pkg/kernel/sdfx"
	"github.com/chazu/hexgarden/pkg/scene"
	v2 "github.com/deadsy/sdfx/vec/v2"
	"github.com/google/uuid"
	"github.com/wailsapp/wails/v2/pkg/runtime"
)

// Events emitted to the frontend.
const (
	EventFrame    = "frame"
	EventNaming   = "naming"
	EventSelected = "selected"
	EventRemoved  = "removed"
	EventWorker   = "worker"
)

// frameInterval paces the backend frame loop.
const frameInterval = time.Second / 60

// App is the Wails backend. Bound methods arrive on arbitrary goroutines,
// so every scene access holds mu.
type App struct {
	ctx    context.Context
	mu     sync.Mutex
	cfg    *config.Config
	scene  *scene.Scene
	engine *engine.Engine
	prisms *kernel.PrismTemplate
	log    *slog.Logger
	done   chan struct{}

	// emit is a no-op until startup hands over the Wails context.
	emit func(event string, data any)
	// frame is the snapshot rendered by the current Tick, sent once mu
	// is released.
	frame *scene.Snapshot
}

// WorkerAssignment is the payload of EventWorker.
type WorkerAssignment struct {
	Key      string `json:"key"`
	WorkerID string `json:"workerId"`
}

// ScriptResult is returned to the frontend after running a scene script.
type ScriptResult struct {
	Applied int                `json:"applied"`
	Errors  []engine.EvalError `json:"errors"`
}

// NewApp builds the scene with sdfx prism meshes.
func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	layout, err := cfg.HexLayout()
	if err != nil {
		return nil, err
	}
	prisms, err := kernel.NewPrismTemplate(sdfx.WithCells(cfg.Prism.MeshCells), layout, cfg.PrismOptions())
	if err != nil {
		return nil, fmt.Errorf("prism template: %w", err)
	}

	a := &App{
		cfg:    cfg,
		engine: engine.NewEngine(),
		prisms: prisms,
		log:    logger,
		done:   make(chan struct{}),
		emit:   func(string, any) {},
	}
	a.scene, err = scene.New(cfg, scene.Options{
		Prisms: prisms,
		Renderer: scene.RendererFunc(func(f *scene.Snapshot) {
			a.frame = f
		}),
		Listeners: interact.Listeners{
			Selected: func(it *board.Item, _ interact.Pointer) { a.emit(EventSelected, it.Key) },
			Removed:  func(it *board.Item) { a.emit(EventRemoved, it.Key) },
			NamingRequested: func(req board.NamingRequest) {
				a.emit(EventNaming, req)
			},
			WorkerAssigned: func(key, workerID string) {
				a.emit(EventWorker, WorkerAssignment{Key: key, WorkerID: workerID})
			},
		},
		Logger: logger,
	})
	if err != nil {
		return nil, err
	}
	if cfg.Seed.Enabled {
		a.scene.Seed()
	}
	return a, nil
}

// startup is called by Wails once the window exists. Events are only
// emitted from here on.
func (a *App) startup(ctx context.Context) {
	a.mu.Lock()
	a.ctx = ctx
	a.emit = func(event string, data any) {
		runtime.EventsEmit(ctx, event, data)
	}
	a.mu.Unlock()
	go a.loop()
}

func (a *App) shutdown(ctx context.Context) {
	close(a.done)
}

func (a *App) loop() {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()
	for {
		select {
		case now := <-ticker.C:
			a.Tick(now)
		case <-a.done:
			return
		}
	}
}

// Tick runs one frame and emits its snapshot after releasing the scene.
func (a *App) Tick(now time.Time) {
	a.mu.Lock()
	a.scene.Frame(now)
	f, emit := a.frame, a.emit
	a.frame = nil
	a.mu.Unlock()

	if f != nil {
		emit(EventFrame, f)
	}
}

// PrismTemplate returns the prism mesh shared by every item, centred on
// the origin cell. Frames place it at each ItemView's centre.
func (a *App) PrismTemplate() *kernel.Mesh {
	return a.prisms.Template()
}

// Cells returns the static grid cells with their current fill.
func (a *App) Cells() []scene.CellView {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.scene.Cells()
}

// Snapshot returns the current frame state.
func (a *App) Snapshot() scene.Snapshot {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.scene.Snapshot()
}

func pointer(x, y float64, button int) interact.Pointer {
	return interact.Pointer{Screen: v2.Vec{X: x, Y: y}, Button: interact.Button(button)}
}

// PointerDown records a press at screen (x, y).
func (a *App) PointerDown(x, y float64, button int) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.scene.Controller.PointerDown(pointer(x, y, button))
}

// PointerMove updates hover or drags a grabbed node. It reports whether the
// hovered cell changed.
func (a *App) PointerMove(x, y float64) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.scene.Controller.PointerMove(pointer(x, y, 0))
}

// PointerUp finishes a press and returns what it did.
func (a *App) PointerUp(x, y float64, button int) string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.scene.Controller.PointerUp(pointer(x, y, button)).String()
}

// DoubleClick opens a naming request for the item under the pointer. It
// returns nil when there is nothing to name.
func (a *App) DoubleClick(x, y float64) *board.NamingRequest {
	a.mu.Lock()
	defer a.mu.Unlock()
	req, ok := a.scene.Controller.DoubleClick(pointer(x, y, 0))
	if !ok {
		return nil
	}
	return &req
}

// ResolveNaming answers a naming request.
func (a *App) ResolveNaming(id, name, description string) error {
	rid, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("naming request id: %w", err)
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	_, err = a.scene.Namer.Resolve(rid, name, description)
	return err
}

// CancelNaming drops a naming request.
func (a *App) CancelNaming(id string) bool {
	rid, err := uuid.Parse(id)
	if err != nil {
		return false
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.scene.Namer.Cancel(rid)
}

// DropEffect returns the drop effect for a drag carrying types.
func (a *App) DropEffect(types []string) string {
	return interact.DropEffect(types)
}

// Drop delivers a drag payload, keyed by type token, at screen (x, y).
func (a *App) Drop(x, y float64, items map[string]string) (bool, error) {
	raw := make(map[string][]byte, len(items))
	for k, v := range items {
		raw[k] = []byte(v)
	}
	payload, err := interact.PickPayload(raw)
	if err != nil {
		return false, err
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.scene.Controller.Drop(v2.Vec{X: x, Y: y}, payload), nil
}

// Zoom scales the camera zoom by factor.
func (a *App) Zoom(factor float64) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.scene.Camera.ZoomBy(factor)
}

// Pan moves the camera by a screen delta.
func (a *App) Pan(dx, dy float64) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.scene.Camera.Pan(dx, dy)
}

// Resize tells the camera the viewport size.
func (a *App) Resize(width, height float64) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.scene.Camera.Resize(width, height)
}

// Remove deletes the item at key.
func (a *App) Remove(key string) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.scene.Remove(key)
}

// RunScript evaluates a scene script and applies its commands. Commands
// before a failing one stay applied.
func (a *App) RunScript(source string) ScriptResult {
	res := ScriptResult{Errors: []engine.EvalError{}}

	cmds, evalErrs, err := a.engine.Evaluate(source)
	if err != nil {
		a.log.Warn("script evaluation failed", "err", err)
		res.Errors = append(res.Errors, engine.EvalError{Message: err.Error()})
		return res
	}
	if len(evalErrs) > 0 {
		res.Errors = append(res.Errors, evalErrs...)
		return res
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	res.Applied, err = engine.Apply(cmds, a.scene)
	if err != nil {
		res.Errors = append(res.Errors, engine.EvalError{Message: err.Error()})
	}
	a.log.Info("script applied", "commands", len(cmds), "applied", res.Applied)
	return res
}
