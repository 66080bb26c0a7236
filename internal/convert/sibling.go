package convert

import (
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/tpsify/tpsify/internal/sites"
)

// applySibling handles layouts where the number and its label are separate
// elements at the same nesting level.
func (c *Converter) applySibling(doc *goquery.Document, r sites.Rule) int {
	n := 0

	doc.Find(r.Number).Each(func(_ int, s *goquery.Selection) {
		wpm, err := strconv.Atoi(strings.TrimSpace(s.Text()))
		if err != nil {
			return
		}

		var label *goquery.Selection
		if r.Label != "" {
			label = s.Parent().Find(r.Label).First()
		} else {
			label = s.Next()
		}

		// A sibling that doesn't read WPM means this number is something
		// else entirely; discard the value.
		if label.Length() == 0 || !strings.Contains(label.Text(), "WPM") {
			return
		}

		st := c.markFor(s)
		if st.converted {
			return
		}
		st.converted = true

		s.SetText(FormatTPS(TPS(float64(wpm))))
		c.styleLabel(label)

		n++
	})

	return n
}
