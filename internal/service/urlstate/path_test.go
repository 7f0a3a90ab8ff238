package urlstate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"gridnav/internal/domain/models/navigation"
)

func TestParseFirstURLPart(t *testing.T) {
	testcases := []struct {
		name string
		tag  string
		path string
		want FirstURLPart
	}{
		{"match with tail", "o", "/o/acme/doc/x", FirstURLPart{Value: "acme", Path: "/doc/x"}},
		{"match without tail", "o", "/o/acme", FirstURLPart{Value: "acme", Path: "/"}},
		{"match keeps query", "o", "/o/acme?x=1", FirstURLPart{Value: "acme", Path: "/?x=1"}},
		{"other tag", "o", "/ws/5/doc/x", FirstURLPart{Path: "/ws/5/doc/x"}},
		{"too short", "o", "/o", FirstURLPart{Path: "/o"}},
		{"empty value", "o", "/o//doc", FirstURLPart{Path: "/o//doc"}},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ParseFirstURLPart(tc.tag, tc.path))
		})
	}
}

func TestSanitizePathTail(t *testing.T) {
	assert.Equal(t, "/", SanitizePathTail(""))
	assert.Equal(t, "/doc", SanitizePathTail("doc"))
	assert.Equal(t, "/doc", SanitizePathTail("/doc"))
	assert.Equal(t, "/doc", SanitizePathTail("///doc"))
	assert.Equal(t, "/?a=b", SanitizePathTail("?a=b"))
}

func TestParseDocPage(t *testing.T) {
	assert.Equal(t, navigation.NamedPage(navigation.DocPageNew), ParseDocPage("new"))
	assert.Equal(t, navigation.NamedPage(navigation.DocPageCode), ParseDocPage("code"))
	assert.Equal(t, navigation.NamedPage(navigation.DocPageACL), ParseDocPage("acl"))
	assert.Equal(t, navigation.NumberPage(7), ParseDocPage("7"))
	assert.Equal(t, navigation.NumberPage(7), ParseDocPage("7th"))
	assert.Equal(t, navigation.NumberPage(navigation.NaN), ParseDocPage("ACL"))
}

func TestGetSlugIfNeeded(t *testing.T) {
	urlID := func(s string) *string { return &s }

	testcases := []struct {
		name string
		doc  navigation.DocumentRef
		want string
	}{
		{
			name: "no url id",
			doc:  navigation.DocumentRef{ID: "1234567890abcdefghij", Name: "Sales"},
			want: "",
		},
		{
			name: "url id too short",
			doc:  navigation.DocumentRef{ID: "1234567890abcdefghij", URLID: urlID("12345678901"), Name: "Sales"},
			want: "",
		},
		{
			name: "url id not a prefix",
			doc:  navigation.DocumentRef{ID: "1234567890abcdefghij", URLID: urlID("abcdefghijkl"), Name: "Sales"},
			want: "",
		},
		{
			name: "prefix of minimum length",
			doc:  navigation.DocumentRef{ID: "1234567890abcdefghij", URLID: urlID("1234567890ab"), Name: "Sales Report"},
			want: "Sales-Report",
		},
		{
			name: "full id",
			doc:  navigation.DocumentRef{ID: "1234567890abcdefghij", URLID: urlID("1234567890abcdefghij"), Name: "Q3"},
			want: "Q3",
		},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, GetSlugIfNeeded(tc.doc))
		})
	}
}

func TestNameToSlug(t *testing.T) {
	testcases := map[string]string{
		"Sales Report":           "Sales-Report",
		"  Q3 - 2024 (draft)! ":  "Q3-2024-draft",
		"Ünïcode names":          "ncode-names",
		"a---b":                  "a-b",
		"!!!":                    "",
		"already-a-slug":         "already-a-slug",
		"multiple   spaces here": "multiple-spaces-here",
	}

	for name, want := range testcases {
		assert.Equal(t, want, NameToSlug(name), name)
	}
}
