package pageroutes

import (
	"fmt"
	"strings"
	"text/tabwriter"
)

// PrintRoutes lists the routes of table, one per line, in table order.
func PrintRoutes(table *Table, history History) string {
	var sb strings.Builder
	tw := tabwriter.NewWriter(&sb, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tPATH\tHREF")
	for r := range table.All() {
		name := r.Name
		if name == "" {
			name = "<empty>"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", name, r.Path, history.Href(r.Path))
	}
	tw.Flush()
	return sb.String()
}
