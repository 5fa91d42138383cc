package config

import (
	"fmt"
	"sort"
)

// Diff returns the sorted keys whose values differ between two settings maps.
func Diff(before, after map[string]any) []string {
	var changed []string
	for name, value := range after {
		if prev, ok := before[name]; !ok || fmt.Sprint(prev) != fmt.Sprint(value) {
			changed = append(changed, name)
		}
	}
	for name := range before {
		if _, ok := after[name]; !ok {
			changed = append(changed, name)
		}
	}

	sort.Strings(changed)
	return changed
}
