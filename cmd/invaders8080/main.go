// Command invaders8080 runs the Space Invaders arcade cabinet, or a raw
// CP/M test binary, on top of the cpu package's Intel 8080 interpreter.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "invaders8080",
		Short: "Intel 8080 emulator and Space Invaders arcade host",
	}

	root.AddCommand(newRunCmd())
	root.AddCommand(newCPMTestCmd())

	return root
}
