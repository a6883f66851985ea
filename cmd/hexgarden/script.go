package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/chazu/hexgarden/internal/ui"
	"github.com/chazu/hexgarden/pkg/engine"
	"github.com/spf13/cobra"
)

var errScript = errors.New("script failed")

func readSource(cmd *cobra.Command, path string) (string, error) {
	if path == "-" {
		b, err := io.ReadAll(cmd.InOrStdin())
		return string(b), err
	}
	b, err := os.ReadFile(path)
	return string(b), err
}

func scriptCmd(c *cli) *cobra.Command {
	var (
		dryRun bool
		mesh   bool
	)
	cmd := &cobra.Command{
		Use:   "script <file|->",
		Short: "Run a scene script against an empty board",
		Long: "Run a scene script against an empty board and list the resulting items.\n\n" +
			"Scripts are Lisp: (cell q r s), (place c), (activate c \"Name\" :desc \"...\"),\n" +
			"(attach c \"file.go\"), (remove c), (show c), (ring c k), (spiral c n).",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := readSource(cmd, args[0])
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()

			cmds, evalErrs, err := engine.NewEngine().Evaluate(src)
			if err != nil {
				return err
			}
			if len(evalErrs) > 0 {
				for _, e := range evalErrs {
					fmt.Fprintf(w, "  %s %s\n", ui.StatusIcon(false), ui.Bad.Sprint(e.Error()))
				}
				return errScript
			}

			if dryRun {
				ui.Banner(w, fmt.Sprintf("%d commands", len(cmds)))
				for i, cm := range cmds {
					fmt.Fprintf(w, "  %s %s\n", ui.Subtle.Sprintf("%3d", i), cm)
				}
				return nil
			}

			sc, err := newScene(c, mesh)
			if err != nil {
				return err
			}
			applied, err := engine.Apply(cmds, sc)
			ui.Banner(w, fmt.Sprintf("applied %d of %d commands", applied, len(cmds)))
			if err != nil {
				fmt.Fprintf(w, "  %s %s\n\n", ui.StatusIcon(false), ui.Bad.Sprint(err))
			}

			rows := make([][]string, 0, sc.Store.Len())
			for _, it := range sc.Store.Items() {
				_, grown := sc.Trees.Tree(it.Key)
				rows = append(rows, []string{
					it.Key,
					it.State.String(),
					it.Label,
					strings.Join(it.Files, ","),
					strconv.FormatBool(grown),
				})
			}
			ui.Table(w, []string{"KEY", "STATE", "LABEL", "FILES", "TREE"}, rows)
			if err != nil {
				return errScript
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "list the commands without applying them")
	cmd.Flags().BoolVar(&mesh, "mesh", false, "build prism meshes with sdfx")
	return cmd
}
