package engine

import (
	"testing"

	"github.com/chazu/hexgarden/pkg/hex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreprocessSource(t *testing.T) {
	tests := []struct {
		name, input, want string
	}{
		{"keyword", `(activate c "Parse" :desc "x")`, `(activate c "Parse" "__kw_desc" "x")`},
		{"keyword in string", `"thing with :keyword inside"`, `"thing with :keyword inside"`},
		{"assignment", `(def x := 10)`, `(def x := 10)`},
		{"kebab identifier", `(cell-key c)`, `(cell_key c)`},
		{"hyphenated keyword", `:long-desc`, `"__kw_long-desc"`},
		{"minus", `(- 10 5)`, `(- 10 5)`},
		{"negative literal", `(cell 1 -1 0)`, `(cell 1 -1 0)`},
		{"double comment", `;; place :things`, `// place :things`},
		{"single comment", `; simple`, `// simple`},
		{"escaped quote", `"say \"a-b\" :x"`, `"say \"a-b\" :x"`},
		{"backtick", "`raw-text :kw`", "`raw-text :kw`"},
		{"file name", `(attach c "parse-input.go")`, `(attach c "parse-input.go")`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, preprocessSource(tt.input))
		})
	}
}

func evaluate(t *testing.T, src string) []Command {
	t.Helper()
	cmds, evalErrs, err := NewEngine().Evaluate(src)
	require.NoError(t, err)
	require.Empty(t, evalErrs)
	return cmds
}

func evalFails(t *testing.T, src string) EvalError {
	t.Helper()
	cmds, evalErrs, err := NewEngine().Evaluate(src)
	require.NoError(t, err)
	require.Nil(t, cmds)
	require.NotEmpty(t, evalErrs)
	return evalErrs[0]
}

func TestPlaceCell(t *testing.T) {
	cmds := evaluate(t, `(place (cell 1 -1 0))`)

	require.Len(t, cmds, 1)
	assert.Equal(t, Command{Op: OpPlace, Hex: hex.MustNew(1, -1, 0)}, cmds[0])
}

func TestAxialCell(t *testing.T) {
	cmds := evaluate(t, `(place (cell 2 -1))`)

	require.Len(t, cmds, 1)
	assert.Equal(t, hex.MustNew(2, -1, -1), cmds[0].Hex)
}

func TestCellRejectsBrokenInvariant(t *testing.T) {
	e := evalFails(t, `(place (cell 1 1 1))`)
	assert.Contains(t, e.Message, "sum to zero")
}

func TestCellRejectsFraction(t *testing.T) {
	evalFails(t, `(cell 0.5 -0.5 0)`)
}

func TestActivateWithDescription(t *testing.T) {
	cmds := evaluate(t, `
; the entry point
(def c (cell 0 0 0))
(activate c "ParseInput" :desc "reads stdin")
`)

	require.Len(t, cmds, 1)
	assert.Equal(t, Command{
		Op:          OpActivate,
		Hex:         hex.Origin,
		Name:        "ParseInput",
		Description: "reads stdin",
	}, cmds[0])
}

func TestActivateRejectsBlankName(t *testing.T) {
	e := evalFails(t, `(activate (cell 0 0 0) "  ")`)
	assert.Contains(t, e.Message, "blank")
}

func TestAttachFiles(t *testing.T) {
	cmds := evaluate(t, `(attach (cell 0 1 -1) "a.go" "b.go")`)

	require.Len(t, cmds, 2)
	assert.Equal(t, OpAttach, cmds[0].Op)
	assert.Equal(t, "a.go", cmds[0].File)
	assert.Equal(t, "b.go", cmds[1].File)
	assert.Equal(t, hex.MustNew(0, 1, -1), cmds[1].Hex)
}

func TestRingAndSpiral(t *testing.T) {
	cmds := evaluate(t, `(place (ring (cell 0 0 0) 1))`)
	require.Len(t, cmds, 6)
	for _, c := range cmds {
		assert.Equal(t, 1, c.Hex.Length())
	}

	cmds = evaluate(t, `(show (spiral (cell 0 0 0) 2))`)
	require.Len(t, cmds, 19)
	assert.Equal(t, hex.Origin, cmds[0].Hex)
	assert.Equal(t, OpShow, cmds[0].Op)
}

func TestRingRejectsNegativeRadius(t *testing.T) {
	evalFails(t, `(ring (cell 0 0 0) -1)`)
}

func TestNeighborAndRemove(t *testing.T) {
	cmds := evaluate(t, `(remove (neighbor (cell 0 0 0) 0) (cell 0 0 0))`)

	require.Len(t, cmds, 2)
	assert.Equal(t, Command{Op: OpRemove, Hex: hex.MustNew(1, 0, -1)}, cmds[0])
	assert.Equal(t, Command{Op: OpRemove, Hex: hex.Origin}, cmds[1])
}

func TestCellKeyAndDistance(t *testing.T) {
	cmds := evaluate(t, `
(def a (cell 0 0 0))
(def b (cell 2 -2 0))
(def k (cell-key b))
(def d (distance a b))
(if (== d 2) (activate b k) (place a))
`)

	require.Len(t, cmds, 1)
	assert.Equal(t, OpActivate, cmds[0].Op)
	assert.Equal(t, "2,-2,0", cmds[0].Name)
}

func TestPlaceRequiresCells(t *testing.T) {
	evalFails(t, `(place)`)
	evalFails(t, `(place 3)`)
}

func TestCommandString(t *testing.T) {
	h := hex.MustNew(1, -1, 0)
	assert.Equal(t, "place 1,-1,0", Command{Op: OpPlace, Hex: h}.String())
	assert.Equal(t, `activate 1,-1,0 "Run"`, Command{Op: OpActivate, Hex: h, Name: "Run"}.String())
	assert.Equal(t, `attach 1,-1,0 "a.go"`, Command{Op: OpAttach, Hex: h, File: "a.go"}.String())
}
