package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/oxhq/composer/diagnostics"
	"github.com/oxhq/composer/serialize"
	"github.com/oxhq/composer/testcodec"
	"github.com/oxhq/composer/ustring"
)

var diffFormat string
var diffWidth string
var diffColor bool

var diffCmd = &cobra.Command{
	Use:   "diff [before-fixture] [after-fixture]",
	Short: "Diff the rendering of two testcodec fixtures",
	Args:  cobra.ExactArgs(2),
	RunE:  runDiff,
}

func init() {
	rootCmd.AddCommand(diffCmd)
	diffCmd.Flags().StringVarP(&diffFormat, "format", "f", "tree", "Rendering to diff: html, markdown, text, tree")
	diffCmd.Flags().StringVarP(&diffWidth, "width", "w", "utf16", "Code-unit width: utf16 or utf32")
	diffCmd.Flags().BoolVar(&diffColor, "color", true, "Colorize the diff output")
}

func runDiff(cmd *cobra.Command, args []string) error {
	width := ustring.U16
	if diffWidth == "utf32" {
		width = ustring.U32
	}

	before, err := renderFixtureFile(args[0], diffFormat, width)
	if err != nil {
		return err
	}
	after, err := renderFixtureFile(args[1], diffFormat, width)
	if err != nil {
		return err
	}

	if diagnostics.Equal(before, after) {
		fmt.Println("(no differences)")
		return nil
	}
	fmt.Print(diagnostics.UnifiedDiff(before, after, args[0], 3, diffColor))
	return nil
}

func renderFixtureFile(path, format string, width ustring.Width) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	d, _, _ := testcodec.Decode(string(raw), width)
	switch format {
	case "html":
		return serialize.HTML(d), nil
	case "markdown":
		return serialize.Markdown(d), nil
	case "text":
		return serialize.PlainText(d), nil
	case "tree":
		return serialize.Tree(d), nil
	default:
		return "", fmt.Errorf("unknown format %q", format)
	}
}
