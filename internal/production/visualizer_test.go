package production

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/comalice/tablefsm/internal/primitives"
)

func simpleDescription() primitives.TableDescription {
	return primitives.TableDescription{
		ID:         "simple",
		States:     []string{"s1", "s2"},
		Events:     []string{"e1", "e2"},
		MaxActions: 2,
		Cells: []primitives.CellDescription{
			{State: 0, Event: 0, Primary: primitives.BranchDescription{Target: 1, Actions: []string{"log"}}},
			{State: 1, Event: 1, Primary: primitives.BranchDescription{Target: 1, Actions: []string{"beep"}}},
			{State: 1, Event: 0, Guard: "ok",
				Primary:   primitives.BranchDescription{Target: 0},
				Secondary: &primitives.BranchDescription{Target: 2},
			},
		},
	}
}

func TestDefaultVisualizer_ExportDOT(t *testing.T) {
	v := &DefaultVisualizer{}
	dot := v.ExportDOT(simpleDescription(), 1)

	assert.Contains(t, dot, `digraph "simple" {`)
	assert.Contains(t, dot, `s0 [label="s1" peripheries=2];`)
	assert.Contains(t, dot, `s1 [label="s2" style=filled fillcolor=lightgreen];`)
	assert.Contains(t, dot, `s0 -> s1 [label="e1 / log"];`)
	assert.Contains(t, dot, `s1 -> s1 [label="e2 / beep"];`, "self loops with actions are drawn")
	assert.Contains(t, dot, `s1 -> s0 [label="e1 [ok]"];`)
	assert.Contains(t, dot, `s1 -> s2 [label="e1 [!ok]"];`)
	assert.Contains(t, dot, `s2 [label="invalid" shape=octagon color=red];`)
}

func TestDefaultVisualizer_ExportDOT_NoCurrent(t *testing.T) {
	v := &DefaultVisualizer{}
	desc := simpleDescription()
	desc.Cells = desc.Cells[:1]

	dot := v.ExportDOT(desc, -1)

	assert.NotContains(t, dot, "fillcolor")
	assert.NotContains(t, dot, "invalid")
}

func TestDefaultVisualizer_ExportDOT_FromTable(t *testing.T) {
	v := &DefaultVisualizer{}
	dot := v.ExportDOT(Describe("turnstile", turnstileTable()), int(locked))

	assert.Contains(t, dot, `s0 -> s1 [label="coin / production.(*turnstile).accept"];`)
	assert.Contains(t, dot, `s1 -> s0 [label="push"];`)
}

func TestDefaultVisualizer_ExportJSON(t *testing.T) {
	v := &DefaultVisualizer{}
	data, err := v.ExportJSON(simpleDescription())
	require.NoError(t, err)
	assert.Contains(t, string(data), `"id": "simple"`)
	assert.Contains(t, string(data), `"guard": "ok"`)
}

func TestDefaultVisualizer_ExportYAML(t *testing.T) {
	v := &DefaultVisualizer{}
	data, err := v.ExportYAML(simpleDescription())
	require.NoError(t, err)

	var back primitives.TableDescription
	require.NoError(t, yaml.Unmarshal(data, &back))
	assert.Equal(t, simpleDescription(), back)
}
