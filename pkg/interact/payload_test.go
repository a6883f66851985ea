package interact_test

import (
	"testing"

	"github.com/chazu/hexgarden/pkg/interact"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePayload(t *testing.T) {
	tests := []struct {
		name    string
		typ     string
		data    string
		want    interact.Payload
		wantErr error
	}{
		{"file", interact.TypeFile, " main.go \n", interact.Payload{Kind: interact.PayloadFile, File: "main.go"}, nil},
		{"blank file", interact.TypeFile, "   ", interact.Payload{}, interact.ErrPayload},
		{"worker", interact.TypeWorker, `{"id":"w-1"}`, interact.Payload{Kind: interact.PayloadWorker, WorkerID: "w-1"}, nil},
		{"worker without id", interact.TypeWorker, `{}`, interact.Payload{}, interact.ErrPayload},
		{"worker not json", interact.TypeWorker, `w-1`, interact.Payload{}, interact.ErrPayload},
		{"unknown type", "text/html", "<b>", interact.Payload{}, interact.ErrPayloadType},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := interact.ParsePayload(tt.typ, []byte(tt.data))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPickPayloadPrefersWorker(t *testing.T) {
	got, err := interact.PickPayload(map[string][]byte{
		interact.TypeFile:   []byte("notes.txt"),
		interact.TypeWorker: []byte(`{"id":"w-2"}`),
	})
	require.NoError(t, err)
	assert.Equal(t, interact.PayloadWorker, got.Kind)

	got, err = interact.PickPayload(map[string][]byte{interact.TypeFile: []byte("notes.txt")})
	require.NoError(t, err)
	assert.Equal(t, "notes.txt", got.File)

	_, err = interact.PickPayload(map[string][]byte{"image/png": nil})
	assert.ErrorIs(t, err, interact.ErrPayloadType)
}

func TestDropEffect(t *testing.T) {
	assert.Equal(t, "move", interact.DropEffect([]string{interact.TypeFile, interact.TypeWorker}))
	assert.Equal(t, "copy", interact.DropEffect([]string{interact.TypeFile}))
	assert.Equal(t, "copy", interact.DropEffect(nil))
}
