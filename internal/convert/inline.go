package convert

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/tpsify/tpsify/internal/sites"
)

var wpmStatRe = regexp.MustCompile(`(?i)(\d+)\s*WPM`)

// applyInline handles elements whose text carries both the number and the
// label, like "139 WPM" with the label possibly in a nested node.
func (c *Converter) applyInline(doc *goquery.Document, r sites.Rule) int {
	n := 0

	doc.Find(r.Number).Each(func(_ int, s *goquery.Selection) {
		m := wpmStatRe.FindStringSubmatch(s.Text())
		if m == nil {
			return
		}

		wpm, err := strconv.Atoi(m[1])
		if err != nil {
			return
		}

		label := inlineLabel(s)

		st := c.markFor(s)
		if st.converted {
			return
		}
		st.converted = true

		if label != nil {
			c.styleLabel(label)
		}

		replaceFirstInt(s, FormatTPS(TPS(float64(wpm))))

		// No dedicated label element: rewrite the word in place inside
		// whichever text node carries it.
		if label == nil {
			replaceLabelWord(s)
		}

		n++
	})

	return n
}

// inlineLabel finds the unit label: the element itself, or a direct child,
// whose trimmed text is exactly "WPM". Nil means the label only exists as a
// word inside a text node.
func inlineLabel(s *goquery.Selection) *goquery.Selection {
	if strings.TrimSpace(s.Text()) == "WPM" {
		return s
	}

	var found *goquery.Selection
	s.Children().EachWithBreak(func(_ int, ch *goquery.Selection) bool {
		if strings.TrimSpace(ch.Text()) == "WPM" {
			found = ch
			return false
		}
		return true
	})

	return found
}
