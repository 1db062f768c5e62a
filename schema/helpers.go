package schema

import "strings"

// ShortLabel truncates a category name to at most width runes so it fits a
// checkbox panel. A non-positive width leaves the name unchanged.
func ShortLabel(name string, width int) string {
	name = strings.TrimSpace(name)
	runes := []rune(name)
	if width <= 0 || len(runes) <= width {
		return name
	}
	return string(runes[:width])
}

// ActiveNames returns the names of the active categories in their original order.
func ActiveNames(states []CategoryState) []string {
	var names []string
	for _, s := range states {
		if s.Active {
			names = append(names, s.Name)
		}
	}
	return names
}
