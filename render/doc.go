// Package render draws valve networks as Graphviz diagrams.
//
// ToDOT produces DOT text: valves are boxes labelled with their flow rate,
// zero-rate valves are grey, and corridors listed in both directions are
// drawn once as a two-headed edge. When a plan is given, opened valves are
// filled and annotated with their opening order, agent and minute.
//
// RenderSVG lays the DOT text out in-process with go-graphviz, so no dot
// binary is needed.
package render
