package cmd

import (
	"fmt"
	"os"

	"github.com/automoto/chain/shared/leveldata"
	"github.com/spf13/cobra"
)

var levelsCmd = &cobra.Command{
	Use:   "levels <dir>",
	Short: "List the TMX levels in a directory",
	Args:  cobra.ExactArgs(1),
	RunE:  runLevels,
}

func runLevels(cmd *cobra.Command, args []string) error {
	specs, err := leveldata.LoadAll(os.DirFS(args[0]), ".")
	if err != nil {
		return err
	}

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, spec := range specs {
		maxNameLen = max(maxNameLen, len(spec.Name))
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%-*s  %-9s  %-4s  %7s  %5s\n", maxNameLen, "Name", "Size", "Boss", "Enemies", "Items")
	for _, spec := range specs {
		boss := "no"
		if spec.Boss {
			boss = "yes"
		}
		size := fmt.Sprintf("%.0fx%.0f", spec.Width, spec.Height)
		fmt.Fprintf(out, "%-*s  %-9s  %-4s  %7d  %5d\n", maxNameLen, spec.Name, size, boss, len(spec.Enemies), len(spec.Items))
	}
	return nil
}
