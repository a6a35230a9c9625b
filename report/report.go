// Package report evaluates every drill on sample inputs and renders the outcome as a table.
package report

import (
	"io"

	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"
)

type Row struct {
	Drill  string
	Input  string
	Output string
	Failed bool
}

// Render writes rows as a borderless table, failed outputs in red when colored.
func Render(w io.Writer, rows []Row, colored bool) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Drill", "Input", "Output"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	for _, row := range rows {
		output := row.Output
		if colored {
			if row.Failed {
				output = color.Red.Sprint(output)
			} else {
				output = color.Green.Sprint(output)
			}
		}
		table.Append([]string{row.Drill, row.Input, output})
	}
	table.Render()
}
