package interact

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// Drag payload type tokens accepted by the canvas.
const (
	TypeFile   = "text/plain"
	TypeWorker = "application/x-agent"
)

var (
	// ErrPayloadType indicates a payload type token the canvas ignores.
	ErrPayloadType = errors.New("interact: unsupported payload type")
	// ErrPayload indicates a payload whose content cannot be used.
	ErrPayload = errors.New("interact: malformed payload")
)

// PayloadKind distinguishes file drops from worker assignments.
type PayloadKind int

const (
	PayloadFile PayloadKind = iota
	PayloadWorker
)

// Payload is a parsed drop.
type Payload struct {
	Kind     PayloadKind
	File     string
	WorkerID string
}

// ParsePayload decodes data according to its type token.
func ParsePayload(typ string, data []byte) (Payload, error) {
	switch typ {
	case TypeFile:
		name := strings.TrimSpace(string(data))
		if name == "" {
			return Payload{}, fmt.Errorf("%w: empty file name", ErrPayload)
		}
		return Payload{Kind: PayloadFile, File: name}, nil
	case TypeWorker:
		var w struct {
			ID string `json:"id"`
		}
		if err := json.Unmarshal(data, &w); err != nil {
			return Payload{}, fmt.Errorf("%w: %v", ErrPayload, err)
		}
		if w.ID == "" {
			return Payload{}, fmt.Errorf("%w: worker id missing", ErrPayload)
		}
		return Payload{Kind: PayloadWorker, WorkerID: w.ID}, nil
	}
	return Payload{}, fmt.Errorf("%w: %q", ErrPayloadType, typ)
}

// PickPayload chooses among the types offered by a drag. A worker payload
// wins over a file name.
func PickPayload(items map[string][]byte) (Payload, error) {
	if data, ok := items[TypeWorker]; ok {
		return ParsePayload(TypeWorker, data)
	}
	if data, ok := items[TypeFile]; ok {
		return ParsePayload(TypeFile, data)
	}
	return Payload{}, fmt.Errorf("%w: %v", ErrPayloadType, lo.Keys(items))
}

// DropEffect is the cursor feedback for a drag offering types: "move" for
// workers, "copy" otherwise.
func DropEffect(types []string) string {
	if lo.Contains(types, TypeWorker) {
		return "move"
	}
	return "copy"
}
