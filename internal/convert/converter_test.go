package convert

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tpsify/tpsify/internal/sites"
)

func TestRun_EndToEnd_NitroType(t *testing.T) {
	doc := parseDoc(t, `<div class="stat-box--stat">139 <span>WPM</span></div>`)
	c := newTestConverter(sites.Defaults())

	n := c.Run(doc, "race.nitrotype.com")
	require.Equal(t, 1, n)

	got := outer(t, doc.Find(".stat-box--stat"))
	assert.Equal(t, `<div class="stat-box--stat">3.01 <span style="color:#90EE90">TPS</span></div>`, got)
}

func TestRun_UnknownHost_NoOp(t *testing.T) {
	doc := parseDoc(t, `<div class="stat-box--stat">139 <span>WPM</span></div>`)
	c := newTestConverter(sites.Defaults())

	before := outer(t, doc.Find(".stat-box--stat"))
	assert.Equal(t, 0, c.Run(doc, "example.com"))
	assert.Equal(t, before, outer(t, doc.Find(".stat-box--stat")))
}

func TestRun_AppliesAllRulesInOrder(t *testing.T) {
	doc := parseDoc(t, `
<div class="stat-box--stat">139 <span>WPM</span></div>
<div><span class="profile-stat-value">200</span><span class="profile-stat-label">WPM</span></div>
<div class="raceResults">
  <div class="raceResults-row">
    <div class="raceResults-cell"><span>WPM</span></div>
    <div class="raceResults-cell"><h3>158</h3></div>
  </div>
</div>`)
	c := newTestConverter(sites.Defaults())

	assert.Equal(t, 3, c.Run(doc, "www.nitrotype.com"))
	assert.Equal(t, "4.33", doc.Find(".profile-stat-value").Text())
	assert.Equal(t, "3.42", doc.Find("h3").Text())
}

func TestRun_CustomLabelColor(t *testing.T) {
	doc := parseDoc(t, `<div class="stat-box--stat">139 <span>WPM</span></div>`)
	c := New(sites.Defaults(), "#FFAA00", nil)

	require.Equal(t, 1, c.Run(doc, "nitrotype.com"))

	style, ok := doc.Find(".stat-box--stat span").Attr("style")
	require.True(t, ok)
	assert.Equal(t, "color:#FFAA00", style)
}
