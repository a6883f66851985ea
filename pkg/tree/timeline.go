package tree

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// track is one delayed tween on a timeline.
type track struct {
	delay    float64 // seconds left before the tween starts
	tween    *gween.Tween
	onStart  func()
	onUpdate func(v float64)
	onDone   func()
	started  bool
}

// Timeline advances a set of delayed tweens. Each tree owns one, so
// dropping a tree drops its pending animation with it.
type Timeline struct {
	tracks []*track
}

// Tween schedules a tween from begin to end. Delay and duration are in
// milliseconds. onStart, onUpdate and onDone may be nil. Tracks added from a
// callback start on the next Advance.
func (tl *Timeline) Tween(delay, duration, begin, end float64, fn ease.TweenFunc, onStart func(), onUpdate func(float64), onDone func()) {
	tl.tracks = append(tl.tracks, &track{
		delay:    delay / 1000,
		tween:    gween.New(float32(begin), float32(end), float32(duration/1000), fn),
		onStart:  onStart,
		onUpdate: onUpdate,
		onDone:   onDone,
	})
}

// Advance moves every track forward by dt seconds.
func (tl *Timeline) Advance(dt float64) {
	n := len(tl.tracks)
	done := make([]bool, n)
	for i := 0; i < n; i++ {
		tr := tl.tracks[i]
		step := dt
		if tr.delay > 0 {
			if tr.delay > step {
				tr.delay -= step
				continue
			}
			step -= tr.delay
			tr.delay = 0
		}
		if !tr.started {
			tr.started = true
			if tr.onStart != nil {
				tr.onStart()
			}
		}
		v, finished := tr.tween.Update(float32(step))
		if tr.onUpdate != nil {
			tr.onUpdate(float64(v))
		}
		if finished {
			done[i] = true
			if tr.onDone != nil {
				tr.onDone()
			}
		}
	}

	kept := tl.tracks[:0]
	for i, tr := range tl.tracks {
		if i < n && done[i] {
			continue
		}
		kept = append(kept, tr)
	}
	clear(tl.tracks[len(kept):])
	tl.tracks = kept
}

// Active returns the number of unfinished tracks.
func (tl *Timeline) Active() int {
	return len(tl.tracks)
}
