// Command hexgarden inspects and simulates hexgarden canvases from the
// terminal.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
