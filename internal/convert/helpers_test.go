package convert

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"

	"github.com/tpsify/tpsify/internal/sites"
	"github.com/tpsify/tpsify/internal/ui"
)

func parseDoc(t *testing.T, markup string) *goquery.Document {
	t.Helper()

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	require.NoError(t, err)
	return doc
}

func newTestConverter(table sites.Table) *Converter {
	return New(table, "#90EE90", ui.NewLogger(false))
}

func outer(t *testing.T, s *goquery.Selection) string {
	t.Helper()

	h, err := goquery.OuterHtml(s)
	require.NoError(t, err)
	return h
}
