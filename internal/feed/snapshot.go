package feed

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Snapshot captures the parts of a document the watcher compares between
// polls: the text of each stat-container boundary, and how many elements
// carry "WPM" in their own text nodes.
type Snapshot struct {
	Boundaries []string
	Containers map[string]string
	WPMNodes   int
}

func Take(doc *goquery.Document, boundaries []string) Snapshot {
	snap := Snapshot{
		Boundaries: boundaries,
		Containers: make(map[string]string, len(boundaries)),
		WPMNodes:   countWPMNodes(doc),
	}

	for _, sel := range boundaries {
		snap.Containers[sel] = doc.Find(sel).Text()
	}

	return snap
}

// Diff turns two successive snapshots into change events: an insert event
// when WPM-bearing elements appeared, and a text event per boundary whose
// content changed.
func Diff(prev, next Snapshot) []Event {
	var out []Event

	if next.WPMNodes > prev.WPMNodes {
		out = append(out, Event{Op: OpInsert, Text: "WPM"})
	}

	for _, sel := range next.Boundaries {
		if prev.Containers[sel] != next.Containers[sel] {
			out = append(out, Event{Op: OpText, Container: sel})
		}
	}

	return out
}

func countWPMNodes(doc *goquery.Document) int {
	n := 0

	doc.Find("*").Each(func(_ int, s *goquery.Selection) {
		for ch := s.Nodes[0].FirstChild; ch != nil; ch = ch.NextSibling {
			if ch.Type == html.TextNode && strings.Contains(ch.Data, "WPM") {
				n++
				break
			}
		}
	})

	return n
}
