package main

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"office97/internal/icons"
)

func newIconsCommand() *cobra.Command {
	var outDir string

	cmd := &cobra.Command{
		Use:         "icons",
		Short:       "Render the application icons and installer bitmaps",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			artifacts, err := icons.WriteAll(outDir)
			if err != nil {
				return fmt.Errorf("render icons: %w", err)
			}

			rows := make([][]string, 0, len(artifacts))
			for _, a := range artifacts {
				rel, err := filepath.Rel(outDir, a.Path)
				if err != nil {
					rel = a.Path
				}
				rows = append(rows, []string{
					rel,
					strconv.Itoa(a.Width) + "x" + strconv.Itoa(a.Height),
					humanize.Bytes(uint64(a.Bytes)),
				})
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable([]string{"File", "Size", "Bytes"}, rows, []columnAlignment{alignLeft, alignRight, alignRight}))
			fmt.Fprintf(out, "Wrote %d files to %s\n", len(artifacts), outDir)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outDir, "out", "o", ".", "Directory receiving icons/ and installer/")
	return cmd
}
