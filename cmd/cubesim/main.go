// cubesim - CLI for scrambling, printing and unscrambling a virtual 3x3 cube.
package main

import (
	"github.com/SeamusWaldron/cubesim/internal/cli"
)

func main() {
	cli.Execute()
}
