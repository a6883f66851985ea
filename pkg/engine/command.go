package engine

import (
	"errors"
	"fmt"

	"github.com/chazu/hexgarden/pkg/board"
	"github.com/chazu/hexgarden/pkg/hex"
)

// Op names a scene command.
type Op string

const (
	OpPlace    Op = "place"
	OpActivate Op = "activate"
	OpAttach   Op = "attach"
	OpRemove   Op = "remove"
	OpShow     Op = "show"
)

// ErrOutOfBounds is returned when a command targets a cell the target
// refuses to hold.
var ErrOutOfBounds = errors.New("engine: cell outside the board")

// Command is one scene mutation issued by a script.
type Command struct {
	Op          Op       `json:"op"`
	Hex         hex.Cube `json:"hex"`
	Name        string   `json:"name,omitempty"`
	Description string   `json:"description,omitempty"`
	File        string   `json:"file,omitempty"`
}

func (c Command) String() string {
	switch c.Op {
	case OpActivate:
		return fmt.Sprintf("activate %s %q", c.Hex.Key(), c.Name)
	case OpAttach:
		return fmt.Sprintf("attach %s %q", c.Hex.Key(), c.File)
	}
	return fmt.Sprintf("%s %s", c.Op, c.Hex.Key())
}

// Target receives commands. *scene.Scene implements it; StoreTarget adapts
// a bare store.
type Target interface {
	Place(h hex.Cube) (*board.Item, bool)
	Activate(key, name, description string) error
	AttachFile(key, name string) error
	Remove(key string) bool
	Show(key string) bool
}

// StoreTarget applies commands directly to a store. Show is a no-op since
// a store has no trees.
type StoreTarget struct {
	Store *board.Store
}

func (t StoreTarget) Place(h hex.Cube) (*board.Item, bool) { return t.Store.Place(h) }

func (t StoreTarget) Activate(key, name, description string) error {
	return t.Store.Activate(key, name, description)
}

func (t StoreTarget) AttachFile(key, name string) error { return t.Store.AttachFile(key, name) }

func (t StoreTarget) Remove(key string) bool {
	_, ok := t.Store.Remove(key)
	return ok
}

func (t StoreTarget) Show(string) bool { return false }

// Apply runs cmds against t in order and returns how many succeeded. It
// stops at the first failing command.
//
// Activate places the cell first when it is empty. Remove and Show on an
// empty cell do nothing.
func Apply(cmds []Command, t Target) (int, error) {
	for i, c := range cmds {
		if err := apply(c, t); err != nil {
			return i, fmt.Errorf("engine: command %d (%s): %w", i, c, err)
		}
	}
	return len(cmds), nil
}

func apply(c Command, t Target) error {
	key := c.Hex.Key()
	switch c.Op {
	case OpPlace:
		if it, _ := t.Place(c.Hex); it == nil {
			return ErrOutOfBounds
		}
	case OpActivate:
		if it, _ := t.Place(c.Hex); it == nil {
			return ErrOutOfBounds
		}
		return t.Activate(key, c.Name, c.Description)
	case OpAttach:
		return t.AttachFile(key, c.File)
	case OpRemove:
		t.Remove(key)
	case OpShow:
		t.Show(key)
	default:
		return fmt.Errorf("unknown op %q", c.Op)
	}
	return nil
}
