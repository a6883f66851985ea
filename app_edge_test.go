package main

import (
	"sync"
	"testing"

	"github.com/chazu/hexgarden/pkg/engine"
	"github.com/chazu/hexgarden/pkg/hex"
	"github.com/chazu/hexgarden/pkg/interact"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestE2EEmptyAndCommentOnlyScripts(t *testing.T) {
	app, _ := newTestApp(t)

	for _, src := range []string{"", "   \n\t ", ";; nothing here\n; at all"} {
		res := app.RunScript(src)
		assert.Empty(t, res.Errors, "source %q", src)
		assert.Zero(t, res.Applied)
	}
}

func TestE2EScriptOutsideGrid(t *testing.T) {
	app, _ := newTestApp(t)

	res := app.RunScript(`(place (cell 0 0 0)) (place (cell 99 -99 0)) (place (cell 1 -1 0))`)
	require.Len(t, res.Errors, 1)
	assert.Contains(t, res.Errors[0].Message, engine.ErrOutOfBounds.Error())
	assert.Equal(t, 1, res.Applied)
	assert.Equal(t, 1, app.scene.Store.Len())
}

func TestE2EAttachToEmptyCell(t *testing.T) {
	app, _ := newTestApp(t)

	res := app.RunScript(`(attach (cell 0 0 0) "lost.go")`)
	require.NotEmpty(t, res.Errors)
	assert.Zero(t, res.Applied)
}

func TestE2EBadNamingID(t *testing.T) {
	app, _ := newTestApp(t)

	assert.Error(t, app.ResolveNaming("not-a-uuid", "x", ""))
	assert.False(t, app.CancelNaming("not-a-uuid"))
}

func TestE2ENamingBlankKeepsRequest(t *testing.T) {
	app, _ := newTestApp(t)
	app.RunScript(`(place (cell 0 0 0))`)
	x, y := screenOf(app, hex.Origin)

	req := app.DoubleClick(x, y)
	require.NotNil(t, req)
	assert.Error(t, app.ResolveNaming(req.ID.String(), "   ", ""))
	assert.True(t, app.CancelNaming(req.ID.String()), "request survives a blank answer")
	assert.False(t, app.CancelNaming(req.ID.String()))
}

func TestE2EDoubleClickOnEmptyCell(t *testing.T) {
	app, _ := newTestApp(t)
	x, y := screenOf(app, hex.Origin)

	assert.Nil(t, app.DoubleClick(x, y))
}

func TestE2EDropRejectsUnknownPayload(t *testing.T) {
	app, _ := newTestApp(t)
	app.RunScript(`(place (cell 0 0 0))`)
	x, y := screenOf(app, hex.Origin)

	ok, err := app.Drop(x, y, map[string]string{"image/png": "..."})
	assert.False(t, ok)
	assert.ErrorIs(t, err, interact.ErrPayloadType)

	ok, err = app.Drop(x, y, map[string]string{interact.TypeWorker: "{"})
	assert.False(t, ok)
	assert.ErrorIs(t, err, interact.ErrPayload)
}

func TestE2EWorkerNeedsNamedItem(t *testing.T) {
	app, _ := newTestApp(t)
	app.RunScript(`(place (cell 0 0 0))`)
	x, y := screenOf(app, hex.Origin)

	ok, err := app.Drop(x, y, map[string]string{interact.TypeWorker: `{"id":"w"}`})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestE2EDropEffect(t *testing.T) {
	app, _ := newTestApp(t)
	assert.Equal(t, "move", app.DropEffect([]string{interact.TypeFile, interact.TypeWorker}))
	assert.Equal(t, "copy", app.DropEffect([]string{interact.TypeFile}))
}

func TestE2EZoomIsClamped(t *testing.T) {
	app, _ := newTestApp(t)

	for i := 0; i < 50; i++ {
		app.Zoom(2)
	}
	assert.Equal(t, app.cfg.Interaction.MaxZoom, app.Snapshot().Camera.Zoom)
}

func TestE2ERemoveMissing(t *testing.T) {
	app, _ := newTestApp(t)
	assert.False(t, app.Remove(hex.Origin.Key()))
}

// Concurrent scripts may supersede each other; every call must come back
// either applied or with an error, and the scene must stay consistent.
func TestE2ERapidScripts(t *testing.T) {
	app, _ := newTestApp(t)

	var wg sync.WaitGroup
	results := make([]ScriptResult, 8)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = app.RunScript(`(place (spiral (cell 0 0 0) 1))`)
		}()
	}
	wg.Wait()

	applied := 0
	for _, r := range results {
		if len(r.Errors) == 0 {
			applied++
			assert.Equal(t, 7, r.Applied)
		}
	}
	if applied > 0 {
		assert.Equal(t, 7, app.scene.Store.Len())
	}
}
