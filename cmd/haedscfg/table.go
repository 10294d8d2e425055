package main

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"haeds/internal/config"
)

var fieldTableHeader = table.Row{"Section", "Key", "Value", "Unit"}

// renderFieldTable lays out settings one per row, values right-aligned.
func renderFieldTable(fields []config.Field) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(fieldTableHeader)

	previous := ""
	for _, field := range fields {
		section := field.Section
		if section == previous {
			section = ""
		} else if previous != "" {
			tw.AppendSeparator()
		}
		previous = field.Section
		tw.AppendRow(table.Row{section, field.Key, field.Value, field.Unit})
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 3, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})
	return tw.Render()
}
