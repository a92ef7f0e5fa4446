package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/fatih/color"

	"github.com/lapair-go/lapair/cfg"
	"github.com/lapair-go/lapair/dataflow"
	"github.com/lapair-go/lapair/ir"
)

// report runs all four analyses over fn and renders a human-readable
// summary, one section per analysis, listing blocks in the depth-first
// preorder of cfg.Graph.Traverse from the entry block. The relative order
// of sibling branches is not fixed, so a join block can be listed before
// one of the branches that reaches it.
func report(fn *ir.Function) string {
	graph := cfg.New(fn)
	order := graph.Traverse(nil)

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", color.New(color.Bold).Sprintf("function %s", fn.Name))

	reaching := dataflow.Run[dataflow.Set[dataflow.Definition]](graph, dataflow.ReachingDefinitions{})
	reportReachingDefinitions(&b, order, reaching)

	live := dataflow.Run[dataflow.Set[string]](graph, dataflow.LiveVariables{})
	reportLiveVariables(&b, order, live)

	available := dataflow.Run[dataflow.ExpressionSet](graph, dataflow.NewAvailableExpressions())
	reportAvailableExpressions(&b, order, available)

	consts := dataflow.Run[dataflow.ConstantFacts](graph, dataflow.ConstantPropagation{})
	reportConstantPropagation(&b, order, consts)

	return b.String()
}

func reportReachingDefinitions(b *strings.Builder, order []*cfg.Node, res dataflow.Result[dataflow.Set[dataflow.Definition]]) {
	fmt.Fprintln(b, color.CyanString("reaching definitions:"))
	for _, node := range order {
		names := make([]string, 0, len(res.Out[node]))
		for d := range res.Out[node] {
			names = append(names, d.Name)
		}
		sort.Strings(names)
		fmt.Fprintf(b, "  %s: out = {%s}\n", node.Block.Name, strings.Join(names, ", "))
	}
}

func reportLiveVariables(b *strings.Builder, order []*cfg.Node, res dataflow.Result[dataflow.Set[string]]) {
	fmt.Fprintln(b, color.CyanString("live variables:"))
	for _, node := range order {
		fmt.Fprintf(b, "  %s: in = {%s}\n", node.Block.Name, strings.Join(dataflow.SortedKeys(res.In[node]), ", "))
	}
}

func reportAvailableExpressions(b *strings.Builder, order []*cfg.Node, res dataflow.Result[dataflow.ExpressionSet]) {
	fmt.Fprintln(b, color.CyanString("available expressions:"))
	for _, node := range order {
		exprs := make([]string, 0, len(res.Out[node]))
		for _, e := range res.Out[node] {
			exprs = append(exprs, e.String())
		}
		sort.Strings(exprs)
		fmt.Fprintf(b, "  %s: out = {%s}\n", node.Block.Name, strings.Join(exprs, ", "))
	}
}

func reportConstantPropagation(b *strings.Builder, order []*cfg.Node, res dataflow.Result[dataflow.ConstantFacts]) {
	fmt.Fprintln(b, color.CyanString("constant propagation:"))
	for _, node := range order {
		names := make([]string, 0, len(res.Out[node]))
		for name := range res.Out[node] {
			names = append(names, name)
		}
		sort.Strings(names)
		parts := make([]string, len(names))
		for i, name := range names {
			parts[i] = fmt.Sprintf("%s=%v", name, res.Out[node][name])
		}
		fmt.Fprintf(b, "  %s: out = {%s}\n", node.Block.Name, strings.Join(parts, ", "))
	}
}
