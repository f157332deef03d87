// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/cactuskit/cactus/catalog"
)

type listOptions struct {
	ids bool
}

func newListCmd(root *rootFlags) *cobra.Command {
	opts := &listOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the enabled components",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, root, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.ids, "ids", false, "Include component identifiers")

	return cmd
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	nameStyle   = cellStyle.Foreground(lipgloss.Color("166"))
)

func runList(cmd *cobra.Command, root *rootFlags, opts *listOptions) error {
	cfg, err := root.loadConfig()
	if err != nil {
		return err
	}
	entries, err := catalog.Default(cfg).Select(cfg.Components)
	if err != nil {
		return err
	}

	headers := []string{"NAME", "DESCRIPTION"}
	if opts.ids {
		headers = append(headers, "ID")
	}
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 0:
				return nameStyle
			default:
				return cellStyle
			}
		})
	for _, e := range entries {
		row := []string{e.Name(), e.Description()}
		if opts.ids {
			row = append(row, e.ID.String())
		}
		t.Row(row...)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), t.Render())
	return err
}
