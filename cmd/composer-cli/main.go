// Command composer-cli is a devtool for exercising the editing engine from
// the shell: rendering fixtures to HTML/Markdown/plain text/tree dumps,
// diffing two renderings, and listing the fixture files a glob matches.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "composer-cli",
	Short: "Devtool for rendering and diffing editing-engine fixtures",
}
