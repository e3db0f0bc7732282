// Command southpole estimates greenhouse-gas emissions of resupplying the
// South Pole research station under diesel and renewable-energy scenarios.
package main

import (
	"os"

	"github.com/WynonaL/southpole/internal/cli"
	"github.com/WynonaL/southpole/pkg/version"
)

func main() {
	os.Exit(run())
}

// run executes the root command and maps the result to an exit code.
func run() int {
	root := cli.NewRootCmd(version.GetVersion())
	if err := root.Execute(); err != nil {
		return 1
	}
	return 0
}
