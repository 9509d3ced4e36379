// Command cj-gen-urbcsp generates uniform random binary CSP instances in
// CSP-JSON form.
package main

import (
	"fmt"
	"os"

	"github.com/michal-dobrogost/csp-json/cmd/cj-gen-urbcsp/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "cj-gen-urbcsp:", err)
		os.Exit(commands.ExitCode(err))
	}
}
