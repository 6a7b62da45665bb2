package reports

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
)

const cellsPerRow = 16

// RenderTable prints the tape of a snapshot, 16 cells a row, the cell under the pointer in brackets
func RenderTable(w io.Writer, snapshot Snapshot) {
	summary := table.NewWriter()
	summary.SetOutputMirror(w)
	summary.SetTitle(fmt.Sprintf("%s: %s", snapshot.Name, snapshot.Status))
	summary.AppendRow(table.Row{"tape size", snapshot.TapeSize})
	summary.AppendRow(table.Row{"pointer", snapshot.Pointer})
	summary.AppendRow(table.Row{"steps", snapshot.Steps})
	summary.AppendRow(table.Row{"consumed", fmt.Sprintf("%d/%d", snapshot.Consumed, snapshot.ProgramSize)})
	summary.AppendRow(table.Row{"output", len(snapshot.Output)})
	if halt := snapshot.Halt; halt != nil {
		summary.AppendRow(table.Row{"halt", halt.Kind})
		summary.AppendRow(table.Row{"at", fmt.Sprintf("%d:%d", halt.Line, halt.Column)})
	}
	summary.Render()

	cells := table.NewWriter()
	cells.SetOutputMirror(w)
	header := table.Row{"cell"}
	for i := range cellsPerRow {
		header = append(header, fmt.Sprintf("+%d", i))
	}
	cells.AppendHeader(header)
	for start := 0; start < len(snapshot.Tape); start += cellsPerRow {
		row := table.Row{start}
		for i := start; i < start+cellsPerRow && i < len(snapshot.Tape); i++ {
			if i == snapshot.Pointer {
				row = append(row, fmt.Sprintf("[%d]", snapshot.Tape[i]))
			} else {
				row = append(row, snapshot.Tape[i])
			}
		}
		cells.AppendRow(row)
	}
	cells.Render()
}
