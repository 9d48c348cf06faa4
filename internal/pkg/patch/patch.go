package patch

import "strings"

// Coalesce dereferences ptr, or returns fallback when ptr is nil.
func Coalesce[T any](ptr *T, fallback T) T {
	if ptr != nil {
		return *ptr
	}
	return fallback
}

// FirstNonBlank returns the first value that is not empty after trimming, trimmed.
func FirstNonBlank(values ...string) string {
	for _, v := range values {
		if t := strings.TrimSpace(v); t != "" {
			return t
		}
	}
	return ""
}
