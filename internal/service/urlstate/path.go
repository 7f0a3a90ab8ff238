package urlstate

import (
	"regexp"
	"strings"

	"gridnav/internal/config"
	"gridnav/internal/domain/models/navigation"
)

var firstURLPartPattern = regexp.MustCompile(`(?s)^/([^/?#]+)/([^/?#]+)(.*)$`)

// FirstURLPart is the result of ParseFirstURLPart. Value is empty when the
// path did not start with the requested tag.
type FirstURLPart struct {
	Value string
	Path  string
}

// ParseFirstURLPart strips a leading /<tag>/<value> from path.
//
// Examples:
//   - ParseFirstURLPart("o", "/o/acme/doc/x") → {"acme", "/doc/x"}
//   - ParseFirstURLPart("o", "/o/acme") → {"acme", "/"}
//   - ParseFirstURLPart("o", "/ws/5") → {"", "/ws/5"}
func ParseFirstURLPart(tag, path string) FirstURLPart {
	match := firstURLPartPattern.FindStringSubmatch(path)
	if match != nil && match[1] == tag {
		return FirstURLPart{Value: match[2], Path: SanitizePathTail(match[3])}
	}
	return FirstURLPart{Path: path}
}

// SanitizePathTail makes sure path is non-empty and starts with exactly one "/".
func SanitizePathTail(path string) string {
	return "/" + strings.TrimLeft(path, "/")
}

// ParseDocPage reads a document page reference. The names new, code and acl
// are kept as named pages; anything else is read as a page number, which may
// come out as NaN.
func ParseDocPage(s string) navigation.DocPage {
	if name, ok := navigation.ParseDocPageName(s); ok {
		return navigation.NamedPage(name)
	}
	return navigation.NumberPage(navigation.ParseInt(s))
}

// GetSlugIfNeeded returns the slug to show after a document's url id, or ""
// when the document should be addressed as doc/<id>. A slug is only used when
// the url id is long enough to be recognized and is a prefix of the real id.
func GetSlugIfNeeded(doc navigation.DocumentRef) string {
	if doc.URLID == nil {
		return ""
	}
	urlID := *doc.URLID
	if len(urlID) < config.MinURLIDPrefixLength || !strings.HasPrefix(doc.ID, urlID) {
		return ""
	}
	return NameToSlug(doc.Name)
}

var (
	nonSlugChars   = regexp.MustCompile(`[^-a-zA-Z0-9]`)
	repeatedHyphen = regexp.MustCompile(`--+`)
)

// NameToSlug turns a document name into a URL-safe slug.
//
// Examples:
//   - "Sales Report" → "Sales-Report"
//   - "  Q3 - 2024 (draft)! " → "Q3-2024-draft"
func NameToSlug(name string) string {
	slug := strings.ReplaceAll(strings.TrimSpace(name), " ", "-")
	slug = nonSlugChars.ReplaceAllString(slug, "")
	return repeatedHyphen.ReplaceAllString(slug, "-")
}
