package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableAlignsColumns(t *testing.T) {
	color.NoColor = true
	var buf bytes.Buffer

	Table(&buf, []string{"KEY", "STATE"}, [][]string{
		{"0,0,0", "activated"},
		{"10,-5,-5", "inert"},
	})

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "  KEY       STATE", lines[0])
	assert.Equal(t, "  0,0,0     activated", lines[2])
	assert.Equal(t, "  10,-5,-5  inert", lines[3])
}

func TestTableSkipsEmpty(t *testing.T) {
	var buf bytes.Buffer
	Table(&buf, []string{"A"}, nil)
	assert.Empty(t, buf.String())
}

func TestKV(t *testing.T) {
	color.NoColor = true
	var buf bytes.Buffer
	KV(&buf, "Cells", 19)
	assert.Equal(t, "  Cells         19\n", buf.String())
}
