package convert

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tpsify/tpsify/internal/sites"
)

var gridRule = sites.Rule{
	Kind:   sites.Grid,
	Number: ".raceResults-row",
	Cell:   ".raceResults-cell",
	Value:  "h3, span",
}

const gridMarkup = `
<div class="raceResults">
  <div class="raceResults-row">
    <div class="raceResults-cell"><span>WPM</span></div>
    <div class="raceResults-cell"><h3>139</h3></div>
  </div>
</div>`

func TestGrid_FirstConversion(t *testing.T) {
	doc := parseDoc(t, gridMarkup)
	c := newTestConverter(nil)

	require.Equal(t, 1, c.Apply(doc, gridRule))
	assert.Equal(t, "3.01", doc.Find("h3").Text())
	assert.Equal(t, "TPS", doc.Find(".raceResults-cell span").First().Text())
}

func TestGrid_SecondPassNoWrite(t *testing.T) {
	doc := parseDoc(t, gridMarkup)
	c := newTestConverter(nil)

	require.Equal(t, 1, c.Apply(doc, gridRule))
	assert.Equal(t, 0, c.Apply(doc, gridRule))
	assert.Equal(t, "3.01", doc.Find("h3").Text())
}

func TestGrid_Reconvergence(t *testing.T) {
	doc := parseDoc(t, gridMarkup)
	c := newTestConverter(nil)

	require.Equal(t, 1, c.Apply(doc, gridRule))

	// The live game overwrites the converted cell with a fresh raw WPM.
	doc.Find("h3").SetText("141")
	require.Equal(t, 1, c.Apply(doc, gridRule))
	assert.Equal(t, "3.06", doc.Find("h3").Text())
}

func TestGrid_UnchangedWPM_NoWrite(t *testing.T) {
	doc := parseDoc(t, gridMarkup)
	c := newTestConverter(nil)

	require.Equal(t, 1, c.Apply(doc, gridRule))

	// Same raw value as last time: no rewrite, the cell keeps what the
	// host page wrote.
	doc.Find("h3").SetText("139")
	assert.Equal(t, 0, c.Apply(doc, gridRule))
	assert.Equal(t, "139", doc.Find("h3").Text())
}

func TestGrid_DisambiguationBoundary(t *testing.T) {
	t.Run("below 10 is already converted", func(t *testing.T) {
		doc := parseDoc(t, `
<div class="raceResults-row">
  <div class="raceResults-cell"><span>TPS</span></div>
  <div class="raceResults-cell"><h3>9.99</h3></div>
</div>`)
		c := newTestConverter(nil)

		assert.Equal(t, 0, c.Apply(doc, gridRule))
		assert.Equal(t, "9.99", doc.Find("h3").Text())
	})

	t.Run("10 and above is raw WPM", func(t *testing.T) {
		doc := parseDoc(t, `
<div class="raceResults-row">
  <div class="raceResults-cell"><span>TPS</span></div>
  <div class="raceResults-cell"><h3>10</h3></div>
</div>`)
		c := newTestConverter(nil)

		require.Equal(t, 1, c.Apply(doc, gridRule))
		assert.Equal(t, "0.22", doc.Find("h3").Text())
	})
}

func TestGrid_RoundsFloatToWPM(t *testing.T) {
	doc := parseDoc(t, `
<div class="raceResults-row">
  <div class="raceResults-cell"><span>WPM</span></div>
  <div class="raceResults-cell"><h3>138.6</h3></div>
</div>`)
	c := newTestConverter(nil)

	require.Equal(t, 1, c.Apply(doc, gridRule))
	assert.Equal(t, "3.01", doc.Find("h3").Text())
}

func TestGrid_NoLabelSpan_Skipped(t *testing.T) {
	doc := parseDoc(t, `
<div class="raceResults-row">
  <div class="raceResults-cell">WPM</div>
  <div class="raceResults-cell"><h3>139</h3></div>
</div>`)
	c := newTestConverter(nil)

	assert.Equal(t, 0, c.Apply(doc, gridRule))
	assert.Equal(t, "139", doc.Find("h3").Text())
}

func TestGrid_IrrelevantRow_Skipped(t *testing.T) {
	doc := parseDoc(t, `
<div class="raceResults-row">
  <div class="raceResults-cell"><span>Accuracy</span></div>
  <div class="raceResults-cell"><h3>98</h3></div>
</div>`)
	c := newTestConverter(nil)

	assert.Equal(t, 0, c.Apply(doc, gridRule))
	assert.Equal(t, "98", doc.Find("h3").Text())
}

func TestGrid_UnparseableValue_Skipped(t *testing.T) {
	doc := parseDoc(t, `
<div class="raceResults-row">
  <div class="raceResults-cell"><span>WPM</span></div>
  <div class="raceResults-cell"><h3>n/a</h3></div>
</div>`)
	c := newTestConverter(nil)

	assert.Equal(t, 0, c.Apply(doc, gridRule))
}
