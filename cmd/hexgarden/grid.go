package main

import (
	"fmt"
	"math"
	"strconv"

	"github.com/chazu/hexgarden/internal/ui"
	"github.com/chazu/hexgarden/pkg/grid"
	"github.com/chazu/hexgarden/pkg/hex"
	"github.com/spf13/cobra"
)

// layoutFlags lets a command override the configured layout.
type layoutFlags struct {
	orientation string
	size        float64
}

func (f *layoutFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.orientation, "orientation", "", "flat or pointy (default from config)")
	cmd.Flags().Float64Var(&f.size, "size", 0, "hex size in world units (default from config)")
}

func (f *layoutFlags) apply(c *cli) (hex.Layout, error) {
	if f.orientation != "" {
		c.cfg.Layout.Orientation = f.orientation
	}
	if f.size > 0 {
		c.cfg.Layout.Size = f.size
	}
	return c.cfg.HexLayout()
}

func gridCmd(c *cli) *cobra.Command {
	var (
		lf     layoutFlags
		radius int
	)
	cmd := &cobra.Command{
		Use:   "grid",
		Short: "Summarise the hex grid a config produces",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			layout, err := lf.apply(c)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("radius") {
				c.cfg.Layout.Radius = radius
			}
			g, err := grid.Build(layout, c.cfg.Layout.Radius)
			if err != nil {
				return err
			}

			minX, minZ := math.Inf(1), math.Inf(1)
			maxX, maxZ := math.Inf(-1), math.Inf(-1)
			for _, cell := range g.Cells() {
				for _, p := range cell.Corners {
					minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
					minZ, maxZ = math.Min(minZ, p.Y), math.Max(maxZ, p.Y)
				}
			}

			w := cmd.OutOrStdout()
			ui.Banner(w, "grid")
			ui.KV(w, "Orientation", c.cfg.Layout.Orientation)
			ui.KV(w, "Size", c.cfg.Layout.Size)
			ui.KV(w, "Radius", g.Radius())
			ui.KV(w, "Cells", g.Len())
			ui.KV(w, "Extent", fmt.Sprintf("%.2f x %.2f", maxX-minX, maxZ-minZ))
			fmt.Fprintln(w)

			rows := make([][]string, 0, g.Radius()+1)
			total := 0
			for k := 0; k <= g.Radius(); k++ {
				n := len(hex.Ring(hex.Origin, k))
				total += n
				rows = append(rows, []string{strconv.Itoa(k), strconv.Itoa(n), strconv.Itoa(total)})
			}
			ui.Table(w, []string{"RING", "CELLS", "TOTAL"}, rows)
			return nil
		},
	}
	lf.register(cmd)
	cmd.Flags().IntVar(&radius, "radius", 0, "grid radius (default from config)")
	return cmd
}

func ringCmd(c *cli) *cobra.Command {
	var lf layoutFlags
	cmd := &cobra.Command{
		Use:     "ring <q> <r> <s> <k>",
		Short:   "List the cells at distance k from a cell, with their world centres",
		Example: "  hexgarden ring -- 1 -1 0 2",
		Args:    cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			n := make([]int, 4)
			for i, a := range args {
				v, err := strconv.Atoi(a)
				if err != nil {
					return fmt.Errorf("argument %d: %w", i+1, err)
				}
				n[i] = v
			}
			center, err := hex.New(n[0], n[1], n[2])
			if err != nil {
				return err
			}
			if n[3] < 0 {
				return fmt.Errorf("ring radius must not be negative, got %d", n[3])
			}
			layout, err := lf.apply(c)
			if err != nil {
				return err
			}

			cells := hex.Ring(center, n[3])
			rows := make([][]string, len(cells))
			for i, h := range cells {
				p := layout.HexToPixel(h)
				rows[i] = []string{
					strconv.Itoa(i),
					h.Key(),
					strconv.FormatFloat(p.X, 'f', 3, 64),
					strconv.FormatFloat(p.Y, 'f', 3, 64),
				}
			}
			w := cmd.OutOrStdout()
			ui.Banner(w, fmt.Sprintf("ring %d around %s", n[3], center.Key()))
			ui.Table(w, []string{"#", "KEY", "X", "Z"}, rows)
			return nil
		},
	}
	lf.register(cmd)
	return cmd
}
