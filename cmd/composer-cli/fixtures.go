package main

import (
	"fmt"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"
)

var fixturesCmd = &cobra.Command{
	Use:   "fixtures [glob]",
	Short: "List fixture files matching a doublestar glob pattern",
	Args:  cobra.ExactArgs(1),
	RunE:  runFixtures,
}

func init() {
	rootCmd.AddCommand(fixturesCmd)
}

func runFixtures(cmd *cobra.Command, args []string) error {
	matches, err := doublestar.FilepathGlob(args[0])
	if err != nil {
		return err
	}
	sort.Strings(matches)
	for _, m := range matches {
		fmt.Println(m)
	}
	return nil
}
