package exporter

import "strings"

// Slugify derives a filename slug from a package name: lower-cased,
// every run of non-alphanumeric characters collapsed to a single hyphen,
// leading and trailing hyphens trimmed.
func Slugify(name string) string {
	var sb strings.Builder
	lastHyphen := false
	for _, r := range strings.ToLower(name) {
		alnum := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
		if alnum {
			sb.WriteRune(r)
			lastHyphen = false
			continue
		}
		if !lastHyphen && sb.Len() > 0 {
			sb.WriteByte('-')
			lastHyphen = true
		}
	}
	return strings.TrimSuffix(sb.String(), "-")
}

// SlugOrDefault falls back when a package name slugifies to nothing.
func SlugOrDefault(name, fallback string) string {
	if s := Slugify(name); s != "" {
		return s
	}
	return fallback
}
