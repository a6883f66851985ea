package board

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/chazu/hexgarden/pkg/hex"
	"github.com/chazu/hexgarden/pkg/kernel"
	v3 "github.com/deadsy/sdfx/vec/v3"
	"github.com/samber/lo"
)

// DefaultAnchorHeight is the label height used when no prism geometry is
// built: the top of a standard prism plus the label offset.
const DefaultAnchorHeight = 0.58

// PrismBuilder produces the mesh for a cell and the position of its label
// anchor. kernel.PrismTemplate is the standard implementation.
type PrismBuilder interface {
	At(h hex.Cube) (*kernel.Mesh, v3.Vec)
}

// Store maps hex keys to placed items. It is not safe for concurrent use;
// the canvas drives it from a single event loop.
type Store struct {
	layout hex.Layout
	prisms PrismBuilder
	items  map[string]*Item
	log    *slog.Logger
}

// NewStore returns an empty store. prisms may be nil, in which case items
// carry no mesh and their anchor floats at DefaultAnchorHeight.
func NewStore(layout hex.Layout, prisms PrismBuilder, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Store{
		layout: layout,
		prisms: prisms,
		items:  make(map[string]*Item),
		log:    logger,
	}
}

// Place creates an inert item at h. When h is already occupied the existing
// item is returned with created == false and nothing changes.
func (s *Store) Place(h hex.Cube) (item *Item, created bool) {
	key := h.Key()
	if it, ok := s.items[key]; ok {
		return it, false
	}

	it := &Item{Hex: h, Key: key, State: Inert, Anchor: &Anchor{}}
	if s.prisms != nil {
		mesh, anchor := s.prisms.At(h)
		it.Mesh = mesh
		it.Anchor.Position = anchor
	} else {
		c := s.layout.HexToPixel(h)
		it.Anchor.Position = v3.Vec{X: c.X, Y: DefaultAnchorHeight, Z: c.Y}
	}
	s.items[key] = it
	s.log.Debug("item placed", "key", key)
	return it, true
}

// Activate names the item at key. The name and description are trimmed; a
// blank name is rejected without touching the item.
func (s *Store) Activate(key, name, description string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrBlankName
	}
	it, ok := s.items[key]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	it.FunctionName = name
	it.Description = strings.TrimSpace(description)
	it.State = Activated
	it.Label = name
	it.Anchor.SetText(name)
	s.log.Debug("item activated", "key", key, "name", name)
	return nil
}

// AttachFile appends a file name to the item's files, ignoring duplicates.
// An item without a function name adopts the file name as its label.
func (s *Store) AttachFile(key, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrBlankFile
	}
	it, ok := s.items[key]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	if !lo.Contains(it.Files, name) {
		it.Files = append(it.Files, name)
	}
	if it.FunctionName == "" {
		it.Label = name
		it.Anchor.SetText(name)
	}
	s.log.Debug("file attached", "key", key, "file", name)
	return nil
}

// Remove deletes the item at key and releases its mesh. The removed item is
// returned so callers can drop derived state.
func (s *Store) Remove(key string) (*Item, bool) {
	it, ok := s.items[key]
	if !ok {
		return nil, false
	}
	delete(s.items, key)
	if it.Mesh != nil {
		it.Mesh.Release()
	}
	it.Anchor.Visible = false
	s.log.Debug("item removed", "key", key)
	return it, true
}

// Get returns the item at key.
func (s *Store) Get(key string) (*Item, bool) {
	it, ok := s.items[key]
	return it, ok
}

// At returns the item placed on h.
func (s *Store) At(h hex.Cube) (*Item, bool) {
	return s.Get(h.Key())
}

// StateOf reports the state of the cell at key, Empty when nothing is placed.
func (s *Store) StateOf(key string) State {
	if it, ok := s.items[key]; ok {
		return it.State
	}
	return Empty
}

// Len returns the number of placed items.
func (s *Store) Len() int {
	return len(s.items)
}

// Keys returns the occupied keys in sorted order.
func (s *Store) Keys() []string {
	keys := lo.Keys(s.items)
	slices.Sort(keys)
	return keys
}

// Items returns the placed items sorted by key.
func (s *Store) Items() []*Item {
	return lo.Map(s.Keys(), func(k string, _ int) *Item {
		return s.items[k]
	})
}

// Activated returns the activated items sorted by key.
func (s *Store) Activated() []*Item {
	return lo.Filter(s.Items(), func(it *Item, _ int) bool {
		return it.Activated()
	})
}
