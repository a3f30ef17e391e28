package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/geoknoesis/ntriple-go/grom"
	"github.com/geoknoesis/ntriple-go/rdf"
	"github.com/geoknoesis/ntriple-go/response"
)

type printer struct {
	w       io.Writer
	resp    *response.Response
	id      func(a ...any) string
	typ     func(a ...any) string
	label   func(a ...any) string
	name    func(a ...any) string
	link    func(a ...any) string
	section func(a ...any) string
}

func newPrinter(w io.Writer, resp *response.Response) *printer {
	return &printer{
		w:       w,
		resp:    resp,
		id:      color.New(color.FgCyan, color.Bold).SprintFunc(),
		typ:     color.New(color.FgMagenta).SprintFunc(),
		label:   color.New(color.FgGreen).SprintFunc(),
		name:    color.New(color.FgYellow).SprintFunc(),
		link:    color.New(color.FgBlue).SprintFunc(),
		section: color.New(color.FgWhite, color.Bold, color.Underline).SprintFunc(),
	}
}

func (p *printer) printSection(typ string, count int) {
	fmt.Fprintf(p.w, "%s (%d)\n", p.section(typ), count)
}

func (p *printer) printNodes(nodes []*grom.Node) {
	for _, n := range nodes {
		p.printNode(n)
	}
}

func (p *printer) printNode(n *grom.Node) {
	types := make([]string, 0, len(n.TypeSet()))
	for _, t := range n.TypeSet() {
		types = append(types, (rdf.IRI{Value: t}).LocalName())
	}
	fmt.Fprintf(p.w, "%s %s", p.id(n.ID()), p.typ("["+strings.Join(types, ", ")+"]"))
	if label, ok := p.resp.Label(n.ID()); ok {
		fmt.Fprintf(p.w, " %s", p.label(fmt.Sprintf("%q", label)))
	}
	fmt.Fprintln(p.w)

	for _, name := range n.AttributeNames() {
		v, _ := n.Attribute(name)
		fmt.Fprintf(p.w, "  %s: %s\n", p.name(name), p.value(v))
	}
	for _, name := range n.AccessorNames() {
		v, _ := n.Attribute(name)
		fmt.Fprintf(p.w, "  %s: %s\n", p.name(name+"*"), p.value(v))
	}
}

func (p *printer) value(v any) string {
	switch v := v.(type) {
	case nil:
		return "-"
	case *grom.Node:
		return p.link(v.ID())
	case []*grom.Node:
		parts := make([]string, len(v))
		for i, n := range v {
			parts[i] = p.link(n.ID())
		}
		return strings.Join(parts, ", ")
	case []any:
		parts := make([]string, len(v))
		for i, item := range v {
			parts[i] = p.value(item)
		}
		return strings.Join(parts, ", ")
	case time.Time:
		if v.Equal(v.Truncate(24 * time.Hour)) {
			return v.Format(time.DateOnly)
		}
		return v.Format(time.RFC3339)
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}
