package cmds

import (
	"maps"
	"slices"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
)

func (p *Executor) PrintUsage() {
	w := table.NewWriter()
	w.SetOutputMirror(p.output)
	w.SetStyle(table.StyleLight)
	w.AppendHeader(table.Row{"command", "arguments", "description"})
	appendUsage(w, p.commands, "")
	w.Render()
}

func appendUsage(w table.Writer, commands map[string]*Command, indent string) {
	for _, name := range slices.Sorted(maps.Keys(commands)) {
		command := commands[name]
		if command == nil {
			continue
		}
		// aliases are listed on the row of the defined name
		if slices.Contains(command.Aliases, name) {
			continue
		}
		label := indent + name
		if len(command.Aliases) > 0 {
			label += " (" + strings.Join(command.Aliases, ", ") + ")"
		}
		w.AppendRow(table.Row{label, command.Args(), command.Description})
		if len(command.Subs) > 0 {
			appendUsage(w, command.Subs, indent+"  ")
		}
	}
}
