package sites

// Defaults returns the built-in detection table. Adding support for a new
// site means adding an entry here or in a config profile; the converter
// itself never changes.
func Defaults() Table {
	return Table{
		{
			Host: "nitrotype.com",
			Rules: []Rule{
				// Garage / profile stat boxes: "139 <span>WPM</span>".
				{Kind: Inline, Number: ".stat-box--stat"},
				// Season summary: value and label as adjacent cells.
				{Kind: Sibling, Number: ".profile-stat-value", Label: ".profile-stat-label"},
				// Race summary strips: label is the next sibling element.
				{Kind: Sibling, Number: ".race-summary-number"},
				// Live race results grid, updated while a race runs.
				{Kind: Grid, Number: ".raceResults-row", Cell: ".raceResults-cell", Value: "h3, span"},
			},
			Watch: []string{".raceResults", ".race-results", ".dash-metrics"},
		},
	}
}
