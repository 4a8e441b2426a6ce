// Command prototypes runs the relational fixture queries from the shell.
package main

import (
	"os"

	"github.com/mesh-intelligence/prototypes/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
