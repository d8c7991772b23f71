package production

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/comalice/tablefsm/internal/primitives"
)

// DefaultVisualizer renders table descriptions.
type DefaultVisualizer struct{}

// ExportDOT generates Graphviz DOT source for the table. current is
// highlighted; pass -1 to highlight nothing.
func (v *DefaultVisualizer) ExportDOT(desc primitives.TableDescription, current int) string {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "digraph %q {\n", desc.ID)
	buf.WriteString(`  rankdir=LR;
  node [shape=box, fontsize=10, style=rounded];
  edge [fontsize=9];
`)

	edges := collectEdges(desc)

	for i, name := range desc.States {
		renderState(&buf, i, name, i == desc.Initial, i == current)
	}
	if referencesInvalid(edges, desc.InvalidState()) {
		fmt.Fprintf(&buf, "  s%d [label=\"invalid\" shape=octagon color=red];\n", desc.InvalidState())
	}

	for _, edge := range edges {
		fmt.Fprintf(&buf, "  s%d -> s%d [label=%q];\n", edge.From, edge.To, edge.Label)
	}

	buf.WriteString("}\n")
	return buf.String()
}

// ExportJSON serializes the description to JSON.
func (v *DefaultVisualizer) ExportJSON(desc primitives.TableDescription) ([]byte, error) {
	return json.MarshalIndent(desc, "", "  ")
}

// ExportYAML serializes the description to YAML.
func (v *DefaultVisualizer) ExportYAML(desc primitives.TableDescription) ([]byte, error) {
	return yaml.Marshal(desc)
}

// Edge represents one drawn branch.
type Edge struct {
	From  int
	To    int
	Label string
}

// collectEdges yields one edge per branch that leaves its state or runs
// actions. Guarded cells yield both branches.
func collectEdges(desc primitives.TableDescription) []Edge {
	var edges []Edge
	for _, c := range desc.Cells {
		event := desc.EventLabel(c.Event)
		if c.Guard == "" {
			if drawn(c.State, c.Primary) {
				edges = append(edges, Edge{c.State, c.Primary.Target, edgeLabel(event, "", c.Primary.Actions)})
			}
			continue
		}
		edges = append(edges, Edge{c.State, c.Primary.Target, edgeLabel(event, "["+c.Guard+"]", c.Primary.Actions)})
		if c.Secondary != nil {
			edges = append(edges, Edge{c.State, c.Secondary.Target, edgeLabel(event, "[!"+c.Guard+"]", c.Secondary.Actions)})
		}
	}
	return edges
}

func drawn(state int, b primitives.BranchDescription) bool {
	return b.Target != state || len(b.Actions) > 0
}

func edgeLabel(event, guard string, actions []string) string {
	label := event
	if guard != "" {
		label += " " + guard
	}
	if len(actions) > 0 {
		label += " / " + strings.Join(actions, ", ")
	}
	return label
}

func referencesInvalid(edges []Edge, invalid int) bool {
	for _, e := range edges {
		if e.To == invalid {
			return true
		}
	}
	return false
}

func renderState(buf *bytes.Buffer, id int, name string, initial, active bool) {
	attrs := ""
	if initial {
		attrs += " peripheries=2"
	}
	if active {
		attrs += " style=filled fillcolor=lightgreen"
	}
	fmt.Fprintf(buf, "  s%d [label=%q%s];\n", id, name, attrs)
}
