package preview

import "strings"

// NormalizeAssetURL rewrites a possibly-relative cover reference into an
// absolute URL. It is total: absent, empty or whitespace-only input falls
// back to the default image, absolute http(s) input passes through
// unchanged, and anything else is joined onto baseOrigin with a single
// path separator.
func NormalizeAssetURL(raw, baseOrigin, defaultImage string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return defaultImage
	}
	if strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://") {
		return s
	}
	return strings.TrimSuffix(baseOrigin, "/") + "/" + strings.TrimPrefix(s, "/")
}
