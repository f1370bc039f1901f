// cubesim - Rubik's Cube simulator with animated playback and solving.
package main

import (
	"github.com/cubesim/cubesim/internal/cli"
)

func main() {
	cli.Execute()
}
