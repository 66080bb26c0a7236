// Package sites holds the static detection tables: which hostnames tpsify
// knows about, and where WPM numbers and their unit labels sit in each
// site's markup.
package sites

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

type Kind int

const (
	// Inline: number and label share one container, e.g. "139 WPM",
	// possibly with the label in a nested node.
	Inline Kind = iota
	// Sibling: number and label are separate elements at the same level.
	Sibling
	// Grid: label and number live in position-adjacent cells, as on a
	// live race dashboard. Reconverted whenever the number changes.
	Grid
)

func (k Kind) String() string {
	switch k {
	case Inline:
		return "inline"
	case Sibling:
		return "sibling"
	case Grid:
		return "grid"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "inline":
		return Inline, nil
	case "sibling":
		return Sibling, nil
	case "grid":
		return Grid, nil
	}
	return 0, fmt.Errorf("unknown rule kind %q", s)
}

func (k Kind) MarshalYAML() (any, error) {
	return k.String(), nil
}

func (k *Kind) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}

	parsed, err := ParseKind(s)
	if err != nil {
		return err
	}

	*k = parsed
	return nil
}

// Rule declares how to find an element carrying a numeric WPM value and,
// depending on Kind, how to locate its paired unit label.
type Rule struct {
	Kind   Kind   `yaml:"kind"`
	Number string `yaml:"number"`
	// Label is the sibling-kind label selector, queried within the number
	// element's parent. Empty means "use the next sibling element".
	Label string `yaml:"label,omitempty"`
	// Cell is the grid-kind cell boundary: the label's enclosing cell,
	// whose next sibling cell carries the number.
	Cell string `yaml:"cell,omitempty"`
	// Value selects the number-bearing child inside the grid number cell.
	// Empty means DefaultGridValue.
	Value string `yaml:"value,omitempty"`
}

const DefaultGridValue = "h3, span"

func (r Rule) ValueSelector() string {
	if r.Value != "" {
		return r.Value
	}
	return DefaultGridValue
}

// Pattern is one site entry: a hostname substring key, the ordered rules to
// apply, and the stat-container boundaries the change watcher cares about.
type Pattern struct {
	Host  string   `yaml:"host"`
	Rules []Rule   `yaml:"rules"`
	Watch []string `yaml:"watch,omitempty"`
}

type Table []Pattern

// Resolve returns the first pattern whose host key is a substring of the
// page hostname.
func (t Table) Resolve(host string) (Pattern, bool) {
	for _, p := range t {
		if p.Host != "" && strings.Contains(host, p.Host) {
			return p, true
		}
	}

	return Pattern{}, false
}
