package utils

import (
	"net/http"
	"strconv"
	"strings"
)

// ParseLimit reads a positive integer query parameter. Like a lenient
// integer parse, leading digits count and anything after them is ignored
// ("2abc" is 2). Missing, malformed and non-positive values fall back to
// defaultValue.
func ParseLimit(r *http.Request, key string, defaultValue int) int {
	return parseIntQuery(r.URL.Query().Get(key), defaultValue)
}

func parseIntQuery(value string, defaultValue int) int {
	value = strings.TrimLeft(value, " \t\n\r")
	end := 0
	if end < len(value) && (value[end] == '+' || value[end] == '-') {
		end++
	}
	digits := end
	for end < len(value) && value[end] >= '0' && value[end] <= '9' {
		end++
	}
	if end == digits {
		return defaultValue
	}
	i, err := strconv.Atoi(value[:end])
	if err != nil || i < 1 {
		return defaultValue
	}
	return i
}
