package main

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/chazu/hexgarden/internal/ui"
	"github.com/chazu/hexgarden/pkg/board"
	"github.com/chazu/hexgarden/pkg/kernel"
	"github.com/chazu/hexgarden/pkg/kernel/sdfx"
	"github.com/chazu/hexgarden/pkg/scene"
	"github.com/chazu/hexgarden/pkg/tree"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

// newScene builds a headless scene, with sdfx prisms when mesh is set.
func newScene(c *cli, mesh bool) (*scene.Scene, error) {
	opts := scene.Options{Logger: c.log}
	if mesh {
		layout, err := c.cfg.HexLayout()
		if err != nil {
			return nil, err
		}
		prisms, err := kernel.NewPrismTemplate(sdfx.WithCells(c.cfg.Prism.MeshCells), layout, c.cfg.PrismOptions())
		if err != nil {
			return nil, fmt.Errorf("prism template: %w", err)
		}
		opts.Prisms = prisms
	}
	return scene.New(c.cfg, opts)
}

func simulateCmd(c *cli) *cobra.Command {
	var (
		frames   int
		dt       time.Duration
		activate int
		mesh     bool
		asJSON   bool
	)
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Seed a board, grow trees above some items and run the frame loop",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if frames < 0 {
				return fmt.Errorf("frames must not be negative, got %d", frames)
			}
			sc, err := newScene(c, mesh)
			if err != nil {
				return err
			}
			placed := sc.Seed()

			for i, it := range lo.Slice(sc.Store.Items(), 0, activate) {
				name := fmt.Sprintf("Func%d", i+1)
				if err := sc.Activate(it.Key, name, "simulated"); err != nil {
					return err
				}
				sc.Show(it.Key)
			}
			sc.Step(time.Now(), dt, frames)

			w := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(w)
				enc.SetIndent("", "  ")
				return enc.Encode(sc.Snapshot())
			}

			ui.Banner(w, "simulate")
			ui.KV(w, "Seeded", placed)
			ui.KV(w, "Activated", len(sc.Store.Activated()))
			ui.KV(w, "Frames", sc.Frames())
			fmt.Fprintln(w)

			rows := make([][]string, 0, sc.Trees.Len())
			for _, key := range sc.Trees.Keys() {
				t, _ := sc.Trees.Tree(key)
				rows = append(rows, treeRow(key, sc.Store, t))
			}
			ui.Table(w, []string{"KEY", "ROOT", "NODES", "EDGES", "GROWN"}, rows)
			return nil
		},
	}
	cmd.Flags().IntVar(&frames, "frames", 120, "frames to run")
	cmd.Flags().DurationVar(&dt, "dt", 16*time.Millisecond, "time between frames")
	cmd.Flags().IntVar(&activate, "activate", 3, "seeded items to activate and grow")
	cmd.Flags().BoolVar(&mesh, "mesh", false, "build prism meshes with sdfx")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the final snapshot as JSON")
	return cmd
}

// treeRow reports a tree's size and how many of its edges have fully grown.
func treeRow(key string, store *board.Store, t *tree.Tree) []string {
	it, _ := store.Get(key)
	edges := t.Edges()
	grown := lo.CountBy(edges, func(e *tree.Edge) bool {
		return e.Visible() == len(e.Points)
	})
	name := ""
	if it != nil {
		name = it.FunctionName
	}
	return []string{
		key,
		name,
		strconv.Itoa(len(t.Nodes())),
		strconv.Itoa(len(edges)),
		fmt.Sprintf("%d/%d", grown, len(edges)),
	}
}
