package convert

import (
	"math"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/tpsify/tpsify/internal/sites"
)

// applyGrid handles live dashboards where the label and number sit in
// adjacent cells and the host page keeps overwriting the number mid-race.
// Unlike the other kinds, grid elements reconvert whenever the detected
// WPM value changes.
func (c *Converter) applyGrid(doc *goquery.Document, r sites.Rule) int {
	n := 0

	doc.Find(r.Number).Each(func(_ int, row *goquery.Selection) {
		txt := row.Text()
		if !strings.Contains(txt, "WPM") && !strings.Contains(txt, "TPS") {
			return
		}

		label := gridLabel(row)
		if label == nil {
			return
		}

		cell := label.Closest(r.Cell)
		if cell.Length() == 0 {
			return
		}

		value := cell.Next().Find(r.ValueSelector()).First()
		if value.Length() == 0 {
			return
		}

		raw, err := strconv.ParseFloat(strings.TrimSpace(value.Text()), 64)
		if err != nil {
			return
		}

		// A TPS label over a small number is our own output; anything at
		// 10 or above is a fresh WPM the game wrote over a converted cell.
		if strings.TrimSpace(label.Text()) == "TPS" && raw < 10 {
			return
		}

		wpm := int(math.Round(raw))

		st := c.markFor(value)
		if st.seenWPM && st.lastWPM == wpm {
			return
		}

		c.styleLabel(label)
		value.SetText(FormatTPS(TPS(float64(wpm))))
		st.lastWPM = wpm
		st.seenWPM = true

		n++
	})

	return n
}

// gridLabel finds the first span descendant whose trimmed text is exactly
// "WPM" or "TPS".
func gridLabel(row *goquery.Selection) *goquery.Selection {
	var found *goquery.Selection

	row.Find("span").EachWithBreak(func(_ int, sp *goquery.Selection) bool {
		t := strings.TrimSpace(sp.Text())
		if t == "WPM" || t == "TPS" {
			found = sp
			return false
		}
		return true
	})

	return found
}
