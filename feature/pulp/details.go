package pulp

import (
	"fmt"
	"io"
	"strings"

	"releng-sop/core/reconcile"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
)

const noRepos = "     No repos found.\n"

type details struct {
	strings.Builder
}

func (d *details) field(label, value string) {
	fmt.Fprintf(d, " * %-25s%s\n", label+":", value)
}

func (d *details) list(label string, values []string) {
	if len(values) == 0 {
		return
	}
	fmt.Fprintf(d, " * %s:\n", label)
	for _, v := range values {
		fmt.Fprintf(d, "     %s\n", v)
	}
}

func (d *details) testMode(commit bool) {
	if !commit {
		d.WriteString("*** TEST MODE ***\n")
	}
}

// writePairTable renders clone pairs as a two column table.
func writePairTable(w io.Writer, pairs []reconcile.Pair) {
	cfg := tablewriter.Config{
		Header: tw.CellConfig{
			Alignment:  tw.CellAlignment{Global: tw.AlignLeft},
			Formatting: tw.CellFormatting{AutoFormat: tw.Off},
		},
		Row: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignLeft},
		},
		Behavior: tw.Behavior{TrimSpace: tw.Off},
	}
	table := tablewriter.NewTable(w,
		tablewriter.WithConfig(cfg),
		tablewriter.WithHeader([]string{"repo from", "repo to"}),
		tablewriter.WithRenderer(renderer.NewBlueprint()),
		tablewriter.WithRendition(tw.Rendition{
			Symbols: tw.NewSymbols(tw.StyleASCII),
		}),
		tablewriter.WithRowAutoWrap(tw.WrapNone),
	)
	for _, pair := range pairs {
		_ = table.Append([]string{pair.From, pair.To})
	}
	_ = table.Render()
}
