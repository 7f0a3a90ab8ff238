package navigation

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// DocPageKind tags the variant held by a DocPage.
type DocPageKind int

const (
	// DocPageNumber is a numeric page index (may be NaN).
	DocPageNumber DocPageKind = iota
	// DocPageNamed is one of the special pages new, code or acl.
	DocPageNamed
)

// DocPageName names a special document page.
type DocPageName string

const (
	DocPageNew  DocPageName = "new"
	DocPageCode DocPageName = "code"
	DocPageACL  DocPageName = "acl"
)

var docPageNames = []DocPageName{DocPageNew, DocPageCode, DocPageACL}

// ParseDocPageName returns the special page named by s, if any.
func ParseDocPageName(s string) (DocPageName, bool) { return parseClosed(docPageNames, s) }

// DocPage references a page within a document: either a page index or a
// named special page.
type DocPage struct {
	Kind   DocPageKind
	Number int
	Name   DocPageName
}

// NumberPage returns a numeric page reference.
func NumberPage(n int) DocPage { return DocPage{Kind: DocPageNumber, Number: n} }

// NamedPage returns a named page reference.
func NamedPage(name DocPageName) DocPage { return DocPage{Kind: DocPageNamed, Name: name} }

// Truthy reports whether the reference should appear in an encoded URL.
// Zero and NaN page numbers are treated as absent.
func (p DocPage) Truthy() bool {
	switch p.Kind {
	case DocPageNamed:
		return p.Name != ""
	default:
		return Truthy(p.Number)
	}
}

// String renders the reference as it appears in a URL path.
func (p DocPage) String() string {
	if p.Kind == DocPageNamed {
		return string(p.Name)
	}
	return FormatInt(p.Number)
}

// MarshalJSON encodes numeric pages as JSON numbers and named pages as strings.
func (p DocPage) MarshalJSON() ([]byte, error) {
	if p.Kind == DocPageNamed {
		return json.Marshal(string(p.Name))
	}
	if p.Number == NaN {
		return json.Marshal("NaN")
	}
	return json.Marshal(p.Number)
}

// UnmarshalJSON accepts a number or one of the named page strings.
func (p *DocPage) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		*p = NumberPage(n)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("docPage must be a number or a string: %w", err)
	}
	if name, ok := ParseDocPageName(s); ok {
		*p = NamedPage(name)
		return nil
	}
	if s == "NaN" {
		*p = NumberPage(NaN)
		return nil
	}
	if n, err := strconv.Atoi(s); err == nil {
		*p = NumberPage(n)
		return nil
	}
	return fmt.Errorf("unknown docPage %q", s)
}
