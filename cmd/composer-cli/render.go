package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/oxhq/composer/serialize"
	"github.com/oxhq/composer/testcodec"
	"github.com/oxhq/composer/ustring"
)

var renderFormat string
var renderWidth string

var renderCmd = &cobra.Command{
	Use:   "render [fixture-file]",
	Short: "Render a testcodec fixture to HTML, Markdown, plain text, or a tree dump",
	Args:  cobra.ExactArgs(1),
	RunE:  runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)
	renderCmd.Flags().StringVarP(&renderFormat, "format", "f", "html", "Output format: html, message, markdown, text, tree")
	renderCmd.Flags().StringVarP(&renderWidth, "width", "w", "utf16", "Code-unit width: utf16 or utf32")
}

func runRender(cmd *cobra.Command, args []string) error {
	raw, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}

	width := ustring.U16
	if renderWidth == "utf32" {
		width = ustring.U32
	}

	d, _, _ := testcodec.Decode(string(raw), width)

	var out string
	switch renderFormat {
	case "html":
		out = serialize.HTML(d)
	case "message":
		out = serialize.HTMLAsMessage(d)
	case "markdown":
		out = serialize.Markdown(d)
	case "text":
		out = serialize.PlainText(d)
	case "tree":
		out = serialize.Tree(d)
	default:
		return fmt.Errorf("unknown format %q", renderFormat)
	}

	fmt.Println(out)
	return nil
}
