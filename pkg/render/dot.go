// Package render draws a bridge's joint graph as a Graphviz diagram.
//
// Joints become nodes and edges become undirected links colored by
// material. Springs and pistons are drawn as dashed and bold links since
// they connect joints without being structural edges. The DOT text from
// [ToDOT] can be rendered to SVG or PNG with [RenderSVG] and [RenderPNG].
package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ashduino101/polyparser/pkg/layout"
)

// Options configures bridge diagram rendering.
type Options struct {
	// Detailed includes joint positions and edge materials in labels.
	// When false, nodes are unlabeled dots.
	Detailed bool
}

// materialColors maps each edge material to a Graphviz color. Unknown
// materials fall back to black.
var materialColors = map[layout.BridgeMaterial]string{
	layout.MaterialRoad:           "gray25",
	layout.MaterialReinforcedRoad: "gray10",
	layout.MaterialWood:           "burlywood3",
	layout.MaterialSteel:          "steelblue",
	layout.MaterialHydraulics:     "orangered",
	layout.MaterialRope:           "tan4",
	layout.MaterialCable:          "gray55",
	layout.MaterialBungeeRope:     "mediumpurple",
	layout.MaterialSpring:         "goldenrod",
}

var materialNames = map[layout.BridgeMaterial]string{
	layout.MaterialRoad:           "road",
	layout.MaterialReinforcedRoad: "reinforced road",
	layout.MaterialWood:           "wood",
	layout.MaterialSteel:          "steel",
	layout.MaterialHydraulics:     "hydraulics",
	layout.MaterialRope:           "rope",
	layout.MaterialCable:          "cable",
	layout.MaterialBungeeRope:     "bungee rope",
	layout.MaterialSpring:         "spring",
}

// ToDOT converts a bridge to Graphviz DOT format. Anchored joints are drawn
// filled, split joints with a double outline. Layout uses neato with pinned
// positions so the diagram matches the bridge's real geometry.
func ToDOT(b *layout.Bridge, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("graph bridge {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=white, fixedsize=true, width=0.25, fontsize=10];\n")
	buf.WriteString("\n")

	for _, j := range b.Joints {
		writeJoint(&buf, j, opts.Detailed)
	}
	for _, a := range b.Anchors {
		writeJoint(&buf, a, opts.Detailed)
	}

	buf.WriteString("\n")
	for _, e := range b.Edges {
		color, ok := materialColors[e.Material]
		if !ok {
			color = "black"
		}
		attrs := fmt.Sprintf("color=%s, penwidth=2", color)
		if opts.Detailed {
			if name, ok := materialNames[e.Material]; ok {
				attrs += fmt.Sprintf(", label=%q, fontsize=8", name)
			}
		}
		fmt.Fprintf(&buf, "  %q -- %q [%s];\n", e.NodeAGUID, e.NodeBGUID, attrs)
	}
	for _, s := range b.Springs {
		fmt.Fprintf(&buf, "  %q -- %q [color=goldenrod, style=dashed];\n", s.NodeAGUID, s.NodeBGUID)
	}
	for _, p := range b.Pistons {
		fmt.Fprintf(&buf, "  %q -- %q [color=orangered, style=bold];\n", p.NodeAGUID, p.NodeBGUID)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func writeJoint(buf *bytes.Buffer, j layout.BridgeJoint, detailed bool) {
	attrs := []string{
		fmt.Sprintf("pos=\"%.3f,%.3f!\"", j.Pos.X, j.Pos.Y),
	}
	if detailed {
		attrs = append(attrs, fmt.Sprintf("label=\"%.1f,%.1f\"", j.Pos.X, j.Pos.Y))
	} else {
		attrs = append(attrs, `label=""`)
	}
	if j.IsAnchor {
		attrs = append(attrs, "fillcolor=gray30", "fontcolor=white")
	}
	if j.IsSplit {
		attrs = append(attrs, "peripheries=2")
	}
	fmt.Fprintf(buf, "  %q [%s];\n", j.GUID, strings.Join(attrs, ", "))
}
