package services

import (
	"strconv"
	"strings"

	"github.com/gosimple/slug"
)

const (
	slugMaxLength    = 90
	slugFallbackBase = "system"
)

// slugBase derives the URL-safe base slug of a system name.
func slugBase(name string) string {
	base := slug.Make(name)
	if len(base) > slugMaxLength {
		base = strings.Trim(base[:slugMaxLength], "-")
	}
	if base == "" {
		return slugFallbackBase
	}
	return base
}

// uniqueSlug returns base when free, otherwise base-N for the smallest N >= 2
// not present in taken.
func uniqueSlug(base string, taken []string) string {
	used := make(map[string]struct{}, len(taken))
	for _, s := range taken {
		used[s] = struct{}{}
	}
	if _, ok := used[base]; !ok {
		return base
	}
	for i := 2; ; i++ {
		candidate := base + "-" + strconv.Itoa(i)
		if _, ok := used[candidate]; !ok {
			return candidate
		}
	}
}
