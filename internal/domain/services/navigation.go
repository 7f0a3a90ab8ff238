package services

import (
	"context"

	"gridnav/internal/domain/models/navigation"
)

// NavigationService exposes the URL state codec. Every request carries the
// org of the page it came from, which decides how org links are built.
type NavigationService interface {
	// EncodeURL builds the URL for a state relative to a base URL
	EncodeURL(ctx context.Context, req *EncodeURLRequest) (string, error)

	// DecodeURL parses an absolute URL back into a state
	DecodeURL(ctx context.Context, req *DecodeURLRequest) (*navigation.State, error)

	// ClassifyHost reports whether a host is native, custom or plugin
	ClassifyHost(ctx context.Context, host string) (navigation.HostType, error)

	// ParseHost splits a host into org and base domain
	ParseHost(ctx context.Context, host string, strict bool) (navigation.Subdomain, error)

	// OrgURLInfo says how to reach TargetOrg from CurrentHost
	OrgURLInfo(ctx context.Context, req *OrgURLInfoRequest) (navigation.OrgURLInfo, error)

	// ParseURLID splits a document id into trunk, fork and snapshot parts
	ParseURLID(ctx context.Context, id string) (navigation.URLIDParts, error)

	// BuildURLID joins URLIDParts into a document id
	BuildURLID(ctx context.Context, parts navigation.URLIDParts) (string, error)

	// Slug returns the slug used in links to doc, or "" when none applies
	Slug(ctx context.Context, doc navigation.DocumentRef) string
}

// LinkService builds share links for stored documents
type LinkService interface {
	// DocumentLink returns the canonical URL for a document the user can see
	DocumentLink(ctx context.Context, req *DocumentLinkRequest) (*DocumentLink, error)
}

// EncodeURLRequest represents a URL encoding request
type EncodeURLRequest struct {
	Org   string           `json:"-"` // From the request host or path
	State navigation.State `json:"state"`
	Base  string           `json:"base"`
}

// DecodeURLRequest represents a URL decoding request
type DecodeURLRequest struct {
	Org string `json:"-"` // Org of the page the URL was found on, if known
	URL string `json:"url"`
}

// OrgURLInfoRequest asks how to link to TargetOrg from CurrentHost
type OrgURLInfoRequest struct {
	Org         string `json:"-"`
	TargetOrg   string `json:"targetOrg"`
	CurrentHost string `json:"currentHost"`
}

// DocumentLinkRequest identifies the document to link to
type DocumentLinkRequest struct {
	DocumentID string
	UserID     string
	Org        string
	Mode       navigation.OpenMode
}

// DocumentLink is a share link for a document
type DocumentLink struct {
	URL  string `json:"url"`
	Slug string `json:"slug,omitempty"`
}
