package engine

import (
	"fmt"
	"math"
	"strings"

	"github.com/chazu/hexgarden/pkg/hex"
	zygo "github.com/glycerine/zygomys/zygo"
)

// sexpCell carries a hex cell between builtins.
type sexpCell struct {
	h hex.Cube
}

func (c *sexpCell) SexpString(ps *zygo.PrintState) string {
	return fmt.Sprintf("(cell %d %d %d)", c.h.Q, c.h.R, c.h.S)
}
func (c *sexpCell) Type() *zygo.RegisteredType { return nil }

// recorder collects the commands a script issues.
type recorder struct {
	cmds []Command
}

func (r *recorder) add(c Command) {
	r.cmds = append(r.cmds, c)
}

// ---------------------------------------------------------------------------
// Argument helpers
// ---------------------------------------------------------------------------

// isKW reports whether s is a preprocessed keyword and returns its name.
func isKW(s zygo.Sexp) (string, bool) {
	str, ok := s.(*zygo.SexpStr)
	if !ok || !strings.HasPrefix(str.S, kwPrefix) {
		return "", false
	}
	return str.S[len(kwPrefix):], true
}

type kwArgs struct {
	kw         map[string]zygo.Sexp
	positional []zygo.Sexp
}

// parseArgs separates keyword arguments from positional ones. A trailing
// keyword with no value maps to SexpNull.
func parseArgs(args []zygo.Sexp) kwArgs {
	res := kwArgs{kw: make(map[string]zygo.Sexp)}
	for i := 0; i < len(args); i++ {
		name, ok := isKW(args[i])
		if !ok {
			res.positional = append(res.positional, args[i])
			continue
		}
		if i+1 < len(args) {
			res.kw[name] = args[i+1]
			i++
		} else {
			res.kw[name] = zygo.SexpNull
		}
	}
	return res
}

func describe(s zygo.Sexp) string {
	if s == nil {
		return "nil"
	}
	return fmt.Sprintf("%T (%s)", s, s.SexpString(nil))
}

// toInt accepts integers and integral floats.
func toInt(s zygo.Sexp) (int, error) {
	switch v := s.(type) {
	case *zygo.SexpInt:
		return int(v.Val), nil
	case *zygo.SexpFloat:
		if v.Val == math.Trunc(v.Val) {
			return int(v.Val), nil
		}
	}
	return 0, fmt.Errorf("expected integer, got %s", describe(s))
}

func toString(s zygo.Sexp) (string, error) {
	if str, ok := s.(*zygo.SexpStr); ok {
		return str.S, nil
	}
	return "", fmt.Errorf("expected string, got %s", describe(s))
}

func toCell(s zygo.Sexp) (hex.Cube, error) {
	if c, ok := s.(*sexpCell); ok {
		return c.h, nil
	}
	return hex.Cube{}, fmt.Errorf("expected cell, got %s", describe(s))
}

// toCells flattens cells and lists or arrays of cells.
func toCells(args []zygo.Sexp) ([]hex.Cube, error) {
	var out []hex.Cube
	for _, a := range args {
		if c, ok := a.(*sexpCell); ok {
			out = append(out, c.h)
			continue
		}
		items, err := sexpListToSlice(a)
		if err != nil {
			return nil, fmt.Errorf("expected cell or list of cells, got %s", describe(a))
		}
		nested, err := toCells(items)
		if err != nil {
			return nil, err
		}
		out = append(out, nested...)
	}
	return out, nil
}

// sexpListToSlice converts a SexpPair (Lisp list) or SexpArray to a Go slice.
func sexpListToSlice(s zygo.Sexp) ([]zygo.Sexp, error) {
	switch v := s.(type) {
	case *zygo.SexpPair:
		return zygo.ListToArray(v)
	case *zygo.SexpArray:
		return v.Val, nil
	case *zygo.SexpSentinel:
		if v == zygo.SexpNull {
			return nil, nil
		}
	}
	return nil, fmt.Errorf("expected list or array, got %T", s)
}

func cellList(cells []hex.Cube) zygo.Sexp {
	out := make([]zygo.Sexp, len(cells))
	for i, h := range cells {
		out[i] = &sexpCell{h: h}
	}
	return zygo.MakeList(out)
}

// ---------------------------------------------------------------------------
// Builtins
// ---------------------------------------------------------------------------

// registerBuiltins installs the scene vocabulary into env. Builtins that
// change the scene append to rec; nothing is applied until the script has
// run to completion.
func registerBuiltins(env *zygo.Zlisp, rec *recorder) {
	// (cell q r s) or (cell q r)
	env.AddFunction("cell", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 2 && len(args) != 3 {
			return zygo.SexpNull, fmt.Errorf("cell requires 2 or 3 integers, got %d arguments", len(args))
		}
		coords := make([]int, len(args))
		for i, a := range args {
			v, err := toInt(a)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("cell: argument %d: %w", i+1, err)
			}
			coords[i] = v
		}
		if len(coords) == 2 {
			return &sexpCell{h: hex.Axial(coords[0], coords[1])}, nil
		}
		h, err := hex.New(coords[0], coords[1], coords[2])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("cell: %w", err)
		}
		return &sexpCell{h: h}, nil
	})

	// (cell-key c)
	env.AddFunction("cell_key", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 1 {
			return zygo.SexpNull, fmt.Errorf("cell-key requires a cell")
		}
		h, err := toCell(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("cell-key: %w", err)
		}
		return &zygo.SexpStr{S: h.Key()}, nil
	})

	// (neighbor c dir)
	env.AddFunction("neighbor", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 2 {
			return zygo.SexpNull, fmt.Errorf("neighbor requires a cell and a direction")
		}
		h, err := toCell(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("neighbor: %w", err)
		}
		dir, err := toInt(args[1])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("neighbor: direction: %w", err)
		}
		return &sexpCell{h: h.Neighbor(dir)}, nil
	})

	// (distance a b)
	env.AddFunction("distance", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 2 {
			return zygo.SexpNull, fmt.Errorf("distance requires two cells")
		}
		a, err := toCell(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("distance: %w", err)
		}
		b, err := toCell(args[1])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("distance: %w", err)
		}
		return &zygo.SexpInt{Val: int64(hex.Distance(a, b))}, nil
	})

	// (ring c k) and (spiral c n) return lists of cells.
	for fn, enumerate := range map[string]func(hex.Cube, int) []hex.Cube{
		"ring":   hex.Ring,
		"spiral": hex.Spiral,
	} {
		env.AddFunction(fn, func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
			if len(args) != 2 {
				return zygo.SexpNull, fmt.Errorf("%s requires a cell and a radius", name)
			}
			h, err := toCell(args[0])
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("%s: %w", name, err)
			}
			k, err := toInt(args[1])
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("%s: radius: %w", name, err)
			}
			if k < 0 {
				return zygo.SexpNull, fmt.Errorf("%s: radius must not be negative, got %d", name, k)
			}
			return cellList(enumerate(h, k)), nil
		})
	}

	// (place c ...), (remove c ...) and (show c ...) take cells or lists.
	for fn, op := range map[string]Op{
		"place":  OpPlace,
		"remove": OpRemove,
		"show":   OpShow,
	} {
		env.AddFunction(fn, func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
			if len(args) == 0 {
				return zygo.SexpNull, fmt.Errorf("%s requires at least one cell", name)
			}
			cells, err := toCells(args)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("%s: %w", name, err)
			}
			for _, h := range cells {
				rec.add(Command{Op: op, Hex: h})
			}
			return args[0], nil
		})
	}

	// (activate c "Name" :desc "...")
	env.AddFunction("activate", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		if len(pa.positional) != 2 {
			return zygo.SexpNull, fmt.Errorf("activate requires a cell and a name")
		}
		h, err := toCell(pa.positional[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("activate: %w", err)
		}
		fnName, err := toString(pa.positional[1])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("activate: name: %w", err)
		}
		if strings.TrimSpace(fnName) == "" {
			return zygo.SexpNull, fmt.Errorf("activate: name must not be blank")
		}
		cmd := Command{Op: OpActivate, Hex: h, Name: fnName}
		if v, ok := pa.kw["desc"]; ok {
			if cmd.Description, err = toString(v); err != nil {
				return zygo.SexpNull, fmt.Errorf("activate: desc: %w", err)
			}
		}
		rec.add(cmd)
		return pa.positional[0], nil
	})

	// (attach c "file.go" ...)
	env.AddFunction("attach", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) < 2 {
			return zygo.SexpNull, fmt.Errorf("attach requires a cell and at least one file name")
		}
		h, err := toCell(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("attach: %w", err)
		}
		for _, a := range args[1:] {
			file, err := toString(a)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("attach: file: %w", err)
			}
			rec.add(Command{Op: OpAttach, Hex: h, File: file})
		}
		return args[0], nil
	})
}
