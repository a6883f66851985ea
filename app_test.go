package main

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/chazu/hexgarden/pkg/board"
	"github.com/chazu/hexgarden/pkg/config"
	"github.com/chazu/hexgarden/pkg/hex"
	"github.com/chazu/hexgarden/pkg/interact"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type emitted struct {
	event string
	data  any
}

// newTestApp builds an app with a coarse prism mesh and records emitted
// events instead of sending them to a window.
func newTestApp(t *testing.T) (*App, *[]emitted) {
	t.Helper()
	cfg := config.Default()
	cfg.Seed.Enabled = false
	cfg.Seed.Random = 7
	cfg.Prism.MeshCells = 16

	app, err := NewApp(cfg, nil)
	require.NoError(t, err)

	var events []emitted
	app.emit = func(event string, data any) {
		events = append(events, emitted{event, data})
	}
	return app, &events
}

func screenOf(app *App, h hex.Cube) (float64, float64) {
	p := app.scene.Camera.Project(app.scene.Layout.HexToPixel(h))
	return p.X, p.Y
}

func TestE2EScriptPlacesPrisms(t *testing.T) {
	app, _ := newTestApp(t)

	res := app.RunScript(`
(def home (cell 0 0 0))
(place (ring home 1))
(activate home "Serve" :desc "entry point")
(attach home "serve.go")
`)
	require.Empty(t, res.Errors)
	assert.Equal(t, 8, res.Applied)

	snap := app.Snapshot()
	require.Len(t, snap.Items, 7)
	for _, it := range app.scene.Store.Items() {
		assert.NotNil(t, it.Mesh, "item %s has a prism", it.Key)
	}

	home, ok := app.scene.Store.At(hex.Origin)
	require.True(t, ok)
	assert.Equal(t, board.Activated, home.State)
	assert.Equal(t, []string{"serve.go"}, home.Files)
}

func TestE2EScriptSyntaxError(t *testing.T) {
	app, _ := newTestApp(t)

	res := app.RunScript("(place (cell 0 0 0)")
	require.NotEmpty(t, res.Errors)
	assert.Zero(t, res.Applied)
	assert.Zero(t, app.scene.Store.Len())
}

func TestE2EClickPlacesAndSelects(t *testing.T) {
	app, events := newTestApp(t)
	x, y := screenOf(app, hex.Origin)

	app.PointerDown(x, y, int(interact.ButtonPrimary))
	assert.Equal(t, "placed", app.PointerUp(x, y, int(interact.ButtonPrimary)))

	app.RunScript(`(activate (cell 0 0 0) "Main")`)
	app.PointerDown(x, y, int(interact.ButtonPrimary))
	assert.Equal(t, "selected", app.PointerUp(x, y, int(interact.ButtonPrimary)))

	require.NotEmpty(t, *events)
	last := (*events)[len(*events)-1]
	assert.Equal(t, EventSelected, last.event)
	assert.Equal(t, hex.Origin.Key(), last.data)
	assert.Equal(t, 1, app.scene.Trees.Len())
}

func TestE2ESecondaryClickRemoves(t *testing.T) {
	app, events := newTestApp(t)
	app.RunScript(`(place (cell 0 0 0))`)
	x, y := screenOf(app, hex.Origin)

	app.PointerDown(x, y, int(interact.ButtonSecondary))
	assert.Equal(t, "removed", app.PointerUp(x, y, int(interact.ButtonSecondary)))
	assert.Zero(t, app.scene.Store.Len())
	assert.Equal(t, EventRemoved, (*events)[len(*events)-1].event)
}

func TestE2ENamingRoundTrip(t *testing.T) {
	app, events := newTestApp(t)
	app.RunScript(`(place (cell 0 0 0))`)
	x, y := screenOf(app, hex.Origin)

	req := app.DoubleClick(x, y)
	require.NotNil(t, req)
	assert.Equal(t, hex.Origin.Key(), req.Key)
	require.NotEmpty(t, *events)
	assert.Equal(t, EventNaming, (*events)[len(*events)-1].event)

	require.NoError(t, app.ResolveNaming(req.ID.String(), "  Parse  ", "reads input"))
	it, _ := app.scene.Store.At(hex.Origin)
	assert.Equal(t, "Parse", it.FunctionName)
	assert.Equal(t, board.Activated, it.State)
}

func TestE2EDropFileAndWorker(t *testing.T) {
	app, events := newTestApp(t)
	app.RunScript(`(activate (cell 0 0 0) "Main")`)
	x, y := screenOf(app, hex.Origin)

	ok, err := app.Drop(x, y, map[string]string{interact.TypeFile: "main.go"})
	require.NoError(t, err)
	assert.True(t, ok)
	it, _ := app.scene.Store.At(hex.Origin)
	assert.Equal(t, []string{"main.go"}, it.Files)

	ok, err = app.Drop(x, y, map[string]string{
		interact.TypeFile:   "ignored.go",
		interact.TypeWorker: `{"id":"w-1"}`,
	})
	require.NoError(t, err)
	assert.True(t, ok)
	last := (*events)[len(*events)-1]
	assert.Equal(t, EventWorker, last.event)
	assert.Equal(t, WorkerAssignment{Key: hex.Origin.Key(), WorkerID: "w-1"}, last.data)
	assert.Equal(t, []string{"main.go"}, it.Files)
}

func TestE2ETickEmitsFrames(t *testing.T) {
	app, events := newTestApp(t)
	app.RunScript(`(activate (cell 0 0 0) "Main") (show (cell 0 0 0))`)

	start := time.Now()
	for i := 0; i < 10; i++ {
		app.Tick(start.Add(time.Duration(i) * frameInterval))
	}

	frames := 0
	for _, e := range *events {
		if e.event == EventFrame {
			frames++
		}
	}
	assert.Equal(t, 10, frames)
	snap := app.Snapshot()
	require.Len(t, snap.Trees, 1)
	assert.NotEmpty(t, snap.Trees[0].Nodes)
}

func TestE2EFramesCarryNoGeometry(t *testing.T) {
	app, events := newTestApp(t)
	app.scene.Seed()
	require.NotZero(t, app.scene.Store.Len())

	app.Tick(time.Now())
	require.NotEmpty(t, *events)
	last := (*events)[len(*events)-1]
	require.Equal(t, EventFrame, last.event)

	data, err := json.Marshal(last.data)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "vertices")
	assert.Less(t, len(data), 64*1024)

	var frame struct {
		Items []struct {
			Key    string                 `json:"key"`
			Centre struct{ X, Y float64 } `json:"centre"`
		} `json:"items"`
	}
	require.NoError(t, json.Unmarshal(data, &frame))
	require.Len(t, frame.Items, app.scene.Store.Len())
	for _, it := range frame.Items {
		h, err := hex.ParseKey(it.Key)
		require.NoError(t, err)
		c := app.scene.Layout.HexToPixel(h)
		assert.InDelta(t, c.X, it.Centre.X, 1e-9)
		assert.InDelta(t, c.Y, it.Centre.Y, 1e-9)
	}

	tmpl := app.PrismTemplate()
	require.False(t, tmpl.IsEmpty())
	_, err = json.Marshal(tmpl)
	assert.NoError(t, err)
}

func TestE2ECellsCoverGrid(t *testing.T) {
	app, _ := newTestApp(t)
	assert.Len(t, app.Cells(), app.scene.Grid.Len())
}

func TestE2EGardenExample(t *testing.T) {
	app, _ := newTestApp(t)

	source, err := os.ReadFile("examples/garden.lisp")
	require.NoError(t, err)

	res := app.RunScript(string(source))
	require.Empty(t, res.Errors)

	assert.Equal(t, 8, app.scene.Store.Len(), "centre, first ring and one outer cell")
	assert.Len(t, app.scene.Store.Activated(), 4)
	assert.Equal(t, 2, app.scene.Trees.Len())

	home, ok := app.scene.Store.At(hex.Origin)
	require.True(t, ok)
	assert.Equal(t, []string{"main.go", "server.go"}, home.Files)
}
