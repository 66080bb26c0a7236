package convert

import (
	"regexp"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

var (
	intRe     = regexp.MustCompile(`\d+`)
	wpmWordRe = regexp.MustCompile(`(?i)WPM`)
)

// replaceFirstInt swaps the first integer substring found in the element's
// text nodes for repl, leaving all other text and child elements untouched.
// Direct child text nodes win; descendants are only searched when no direct
// text node carries a number.
func replaceFirstInt(s *goquery.Selection, repl string) bool {
	if len(s.Nodes) == 0 {
		return false
	}

	root := s.Nodes[0]
	for ch := root.FirstChild; ch != nil; ch = ch.NextSibling {
		if ch.Type == html.TextNode && rewriteFirst(ch, intRe, repl) {
			return true
		}
	}

	return rewriteFirstDeep(root, intRe, repl)
}

// replaceLabelWord rewrites the first occurrence of "WPM" (any case) in
// whichever text node contains it.
func replaceLabelWord(s *goquery.Selection) bool {
	if len(s.Nodes) == 0 {
		return false
	}

	return rewriteFirstDeep(s.Nodes[0], wpmWordRe, "TPS")
}

func rewriteFirst(n *html.Node, re *regexp.Regexp, repl string) bool {
	loc := re.FindStringIndex(n.Data)
	if loc == nil {
		return false
	}

	n.Data = n.Data[:loc[0]] + repl + n.Data[loc[1]:]
	return true
}

func rewriteFirstDeep(root *html.Node, re *regexp.Regexp, repl string) bool {
	for ch := root.FirstChild; ch != nil; ch = ch.NextSibling {
		if ch.Type == html.TextNode {
			if rewriteFirst(ch, re, repl) {
				return true
			}
			continue
		}
		if rewriteFirstDeep(ch, re, repl) {
			return true
		}
	}

	return false
}
