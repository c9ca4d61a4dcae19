package catalog

import (
	"regexp"
	"strings"
)

// adminImageRoute is where the backend serves bare uploaded filenames from.
const adminImageRoute = "/admin/products/images/"

// imageFieldPriority is the fixed field order tried when the resolver is
// handed an object instead of a string. Metadata-nested images win over
// top-level fields. The list is fixed, so recursion always terminates.
var imageFieldPriority = []string{"metadata", "images", "gallery", "imageUrl", "image", "thumbnailUrl", "thumbnail"}

var (
	driveLetterRe  = regexp.MustCompile(`^[A-Za-z]:/`)
	bareFilenameRe = regexp.MustCompile(`^[^/]+\.[A-Za-z0-9]{2,5}$`)
)

// ResolveImageURL turns whatever the API put in an image field (string,
// array, nested object) into an absolute, browser-loadable URL. Unresolvable
// input yields "" and the caller decides on a placeholder. Never panics.
func ResolveImageURL(candidate any, baseURL string) string {
	switch v := candidate.(type) {
	case nil:
		return ""
	case string:
		return resolveImageString(v, baseURL)
	case []any:
		for _, entry := range v {
			if img := ResolveImageURL(entry, baseURL); img != "" {
				return img
			}
		}
		return ""
	case []string:
		for _, entry := range v {
			if img := resolveImageString(entry, baseURL); img != "" {
				return img
			}
		}
		return ""
	case map[string]any:
		for _, field := range imageFieldPriority {
			if nested, ok := v[field]; ok {
				if img := ResolveImageURL(nested, baseURL); img != "" {
					return img
				}
			}
		}
		return ""
	case float64, int, int64:
		// Numeric ids do show up in image fields; stringify and resolve.
		return resolveImageString(stringValue(v), baseURL)
	default:
		return ""
	}
}

func resolveImageString(raw, baseURL string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}

	// Already loadable as-is.
	if strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://") || strings.HasPrefix(s, "data:") {
		return s
	}

	base := strings.TrimRight(baseURL, "/")
	s = strings.ReplaceAll(s, `\`, "/")

	// OS-style absolute paths (C:/..., UNC shares, /mnt/...) leak out of the
	// admin upload tool; only the final segment is meaningful.
	if driveLetterRe.MatchString(s) || strings.HasPrefix(s, "//") || strings.HasPrefix(s, "/mnt/") {
		if idx := strings.LastIndex(s, "/"); idx >= 0 {
			s = s[idx+1:]
		}
		if s == "" {
			return ""
		}
	}

	switch {
	case strings.HasPrefix(s, "/"):
		return base + s
	case strings.HasPrefix(s, "api/"):
		return base + "/" + s
	case bareFilenameRe.MatchString(s):
		return base + adminImageRoute + s
	default:
		return base + "/" + s
	}
}
