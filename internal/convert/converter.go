// Package convert rewrites WPM stats in a parsed HTML document as TPS
// values. It owns no state beyond per-element conversion marks; the
// document itself is the store, and every lookup failure is a silent skip.
package convert

import (
	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/tpsify/tpsify/internal/sites"
	"github.com/tpsify/tpsify/internal/ui"
)

const DefaultLabelColor = "#90EE90"

// mark is the per-element conversion state. Inline and sibling elements
// convert once; grid elements reconvert whenever the detected WPM changes.
// Marks live exactly as long as the parsed node they are keyed on.
type mark struct {
	converted bool
	lastWPM   int
	seenWPM   bool
}

type Converter struct {
	table sites.Table
	color string
	log   *ui.Logger
	state map[*html.Node]*mark
}

func New(table sites.Table, labelColor string, log *ui.Logger) *Converter {
	if labelColor == "" {
		labelColor = DefaultLabelColor
	}
	if log == nil {
		log = ui.NewLogger(false)
	}

	return &Converter{
		table: table,
		color: labelColor,
		log:   log,
		state: map[*html.Node]*mark{},
	}
}

// Run resolves the host against the table and applies every rule of the
// matched pattern in order. It returns the number of elements rewritten;
// an unknown host is a no-op.
func (c *Converter) Run(doc *goquery.Document, host string) int {
	pat, ok := c.table.Resolve(host)
	if !ok {
		c.log.Infof("no pattern configured for host %s\n", host)
		return 0
	}

	c.log.Infof("converting on host %s\n", host)

	total := 0
	for _, r := range pat.Rules {
		total += c.Apply(doc, r)
	}

	return total
}

// Apply runs one rule against the document and returns how many elements
// it rewrote.
func (c *Converter) Apply(doc *goquery.Document, r sites.Rule) int {
	switch r.Kind {
	case sites.Inline:
		return c.applyInline(doc, r)
	case sites.Sibling:
		return c.applySibling(doc, r)
	case sites.Grid:
		return c.applyGrid(doc, r)
	}

	return 0
}

func (c *Converter) markFor(s *goquery.Selection) *mark {
	n := s.Nodes[0]

	st, ok := c.state[n]
	if !ok {
		st = &mark{}
		c.state[n] = st
	}

	return st
}

func (c *Converter) styleLabel(label *goquery.Selection) {
	label.SetText("TPS")
	label.SetAttr("style", "color:"+c.color)
}
