package level

import (
	"fmt"
	"strconv"
	"strings"
)

// The level format is close to JSON but not JSON: booleans are lowercase
// bare words, field order is fixed, and the game's editor writes it with
// tabs. Values are rendered by hand to keep the output byte-stable.
func formatValue(v any) string {
	switch val := v.(type) {
	case bool:
		if val {
			return "true"
		}
		return "false"
	case int:
		return strconv.Itoa(val)
	case float64:
		return formatFloat(val)
	case string:
		return `"` + val + `"`
	case []int:
		items := make([]string, len(val))
		for i, n := range val {
			items[i] = strconv.Itoa(n)
		}
		return "[" + strings.Join(items, ", ") + "]"
	case []float64:
		items := make([]string, len(val))
		for i, f := range val {
			items[i] = formatFloat(f)
		}
		return "[" + strings.Join(items, ", ") + "]"
	case []any:
		items := make([]string, len(val))
		for i, e := range val {
			items[i] = formatValue(e)
		}
		return "[" + strings.Join(items, ", ") + "]"
	}
	return fmt.Sprintf("%v", v)
}

// shortest decimal that round-trips, no exponent
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
