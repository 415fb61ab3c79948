package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"office97/internal/window"
)

func newWindowsCommand() *cobra.Command {
	return &cobra.Command{
		Use:         "windows",
		Short:       "List the shell's window kinds and their geometry",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			var rows [][]string
			for _, spec := range window.Table() {
				name := spec.Kind.String()
				if spec.Kind == window.Launcher && spec.Size == window.LegacyLauncher.Size {
					name += " (legacy)"
				}
				rows = append(rows, []string{
					name,
					fmt.Sprintf("%.0fx%.0f", spec.Size.Width, spec.Size.Height),
					yesNo(spec.Resizable),
					yesNo(!spec.Frameless),
					spec.Title,
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"Kind", "Size", "Resizable", "Frame", "Title"},
				rows,
				[]columnAlignment{alignLeft, alignRight},
			))
			return nil
		},
	}
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
