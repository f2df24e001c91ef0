package report

import (
	"fmt"
	"io"

	"github.com/briandobbins/CESM-postprocessing/pkg/plot"
	"github.com/olekukonko/tablewriter"
)

// WriteText draws table with one line per report row.
func WriteText(w io.Writer, table plot.ReportTable) {
	fmt.Fprintf(w, "%s\n", table.Title)

	writer := tablewriter.NewWriter(w)
	headers := []string{""}
	if len(table.Rows) > 0 {
		for _, cell := range table.Rows[0][1:] {
			headers = append(headers, cell.ColumnKind)
		}
	}
	writer.SetAutoFormatHeaders(false)
	writer.SetHeader(headers)

	for _, row := range table.Rows {
		line := make([]string, 0, len(row))
		for _, cell := range row {
			line = append(line, cell.Content)
		}
		writer.Append(line)
	}
	writer.Render()
}
