package board

import (
	"errors"
	"fmt"
	"slices"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

// NamingRequest asks an external collaborator for a name and description
// for the item at Key. The collaborator answers with Namer.Resolve or
// Namer.Cancel using the same ID.
type NamingRequest struct {
	ID                 uuid.UUID `json:"id"`
	Key                string    `json:"key"`
	CurrentName        string    `json:"currentName,omitempty"`
	CurrentDescription string    `json:"currentDescription,omitempty"`
}

// Namer correlates naming requests with their answers.
type Namer struct {
	store   *Store
	pending map[uuid.UUID]NamingRequest
	order   []uuid.UUID
}

// NewNamer returns a Namer that activates items in store.
func NewNamer(store *Store) *Namer {
	return &Namer{
		store:   store,
		pending: make(map[uuid.UUID]NamingRequest),
	}
}

// Request opens a naming request for the item at key.
func (n *Namer) Request(key string) (NamingRequest, error) {
	it, ok := n.store.Get(key)
	if !ok {
		return NamingRequest{}, fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	req := NamingRequest{
		ID:                 uuid.New(),
		Key:                key,
		CurrentName:        it.FunctionName,
		CurrentDescription: it.Description,
	}
	n.pending[req.ID] = req
	n.order = append(n.order, req.ID)
	return req, nil
}

// Resolve answers request id. A blank name is rejected and the request
// stays pending so the collaborator can prompt again. If the item was
// removed in the meantime the request is dropped and ErrNotFound returned.
func (n *Namer) Resolve(id uuid.UUID, name, description string) (*Item, error) {
	req, ok := n.pending[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownRequest, id)
	}
	if err := n.store.Activate(req.Key, name, description); err != nil {
		if !errors.Is(err, ErrBlankName) {
			n.drop(id)
		}
		return nil, err
	}
	n.drop(id)
	it, _ := n.store.Get(req.Key)
	return it, nil
}

// Cancel drops request id. It reports whether the request was pending.
func (n *Namer) Cancel(id uuid.UUID) bool {
	if _, ok := n.pending[id]; !ok {
		return false
	}
	n.drop(id)
	return true
}

// Forget drops every pending request for key.
func (n *Namer) Forget(key string) {
	for _, id := range slices.Clone(n.order) {
		if n.pending[id].Key == key {
			n.drop(id)
		}
	}
}

// Pending returns the open requests in the order they were made.
func (n *Namer) Pending() []NamingRequest {
	return lo.Map(n.order, func(id uuid.UUID, _ int) NamingRequest {
		return n.pending[id]
	})
}

func (n *Namer) drop(id uuid.UUID) {
	delete(n.pending, id)
	n.order = lo.Without(n.order, id)
}
