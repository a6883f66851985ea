package main

import (
	"encoding/json"
	"fmt"
	"slices"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/chazu/hexgarden/internal/ui"
	"github.com/chazu/hexgarden/pkg/board"
	"github.com/chazu/hexgarden/pkg/hex"
	"github.com/spf13/cobra"
)

// featureFile is the TOML document read by the layout command:
//
//	[[feature]]
//	id = "auth"
//	name = "Auth"
//
//	[[dependency]]
//	from = "auth"
//	to = "billing"
type featureFile struct {
	Features     []board.Feature    `toml:"feature"`
	Dependencies []board.Dependency `toml:"dependency"`
}

// placement is one planned feature position.
type placement struct {
	ID   string   `json:"id"`
	Name string   `json:"name"`
	Hex  hex.Cube `json:"hex"`
}

func layoutCmd(c *cli) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "layout <features.toml>",
		Short: "Plan board positions for a feature dependency graph",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var ff featureFile
			if _, err := toml.DecodeFile(args[0], &ff); err != nil {
				return fmt.Errorf("read %s: %w", args[0], err)
			}
			pos := board.PlanLayout(ff.Features, ff.Dependencies)

			out := make([]placement, 0, len(ff.Features))
			for _, f := range ff.Features {
				out = append(out, placement{ID: f.ID, Name: f.Name, Hex: pos[f.ID]})
			}
			slices.SortStableFunc(out, func(a, b placement) int {
				if a.Hex.R != b.Hex.R {
					return a.Hex.R - b.Hex.R
				}
				return a.Hex.Q - b.Hex.Q
			})

			w := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(w)
				enc.SetIndent("", "  ")
				return enc.Encode(out)
			}

			ui.Banner(w, fmt.Sprintf("layout of %d features", len(out)))
			rows := make([][]string, len(out))
			for i, p := range out {
				rows[i] = []string{p.ID, p.Name, strconv.Itoa(p.Hex.Q), strconv.Itoa(p.Hex.R), strconv.Itoa(p.Hex.S)}
			}
			ui.Table(w, []string{"ID", "NAME", "Q", "R", "S"}, rows)
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print placements as JSON")
	return cmd
}
