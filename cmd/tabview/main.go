// Command tabview filters, searches, sorts and pages the datasets of an ESG
// reporting dashboard from the command line.
package main

import (
	"os"

	"github.com/mesh-intelligence/tabview/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
