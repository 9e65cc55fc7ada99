package utils

import (
	"strconv"
	"strings"
)

// NextID computes the next sequential display ID for a collection. Each
// existing ID is reduced to its numeric component (any leading letter
// prefix stripped), the maximum is taken (0 for an empty collection), and
// max+1 is returned with the entity's prefix re-applied.
//
// This is a read-then-compute pattern with no serialization: two
// concurrent creates can produce the same ID, in which case the second
// insert fails against the unique index. There is no retry.
func NextID(existing []string, prefix string) string {
	max := 0
	for _, id := range existing {
		n, ok := numericComponent(id)
		if ok && n > max {
			max = n
		}
	}
	return prefix + strconv.Itoa(max+1)
}

func numericComponent(id string) (int, bool) {
	trimmed := strings.TrimLeftFunc(id, func(r rune) bool {
		return r < '0' || r > '9'
	})
	if trimmed == "" {
		return 0, false
	}
	n, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, false
	}
	return n, true
}

// productPrefixes maps known category names to their product ID prefixes.
var productPrefixes = map[string]string{
	"cakes":       "c",
	"bread":       "b",
	"pies":        "p",
	"small chops": "sc",
	"shawarma":    "sh",
	"other":       "pa",
}

// defaultProductPrefix is used when a category name has no known prefix.
const defaultProductPrefix = "i"

// ProductPrefix returns the display-ID prefix for products of the named
// category. Matching is case-insensitive; unrecognized names fall back to
// a generic prefix.
func ProductPrefix(categoryName string) string {
	if p, ok := productPrefixes[strings.ToLower(strings.TrimSpace(categoryName))]; ok {
		return p
	}
	return defaultProductPrefix
}
