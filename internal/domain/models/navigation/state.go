package navigation

// State is the navigation state of the application: everything needed to
// build a URL, and everything a URL can tell us.
type State struct {
	Org         string      `json:"org,omitempty"`
	HomePage    HomePage    `json:"homePage,omitempty"`
	WorkspaceID *int        `json:"ws,omitempty"`
	DocID       string      `json:"doc,omitempty"`
	Slug        string      `json:"slug,omitempty"`
	Mode        OpenMode    `json:"mode,omitempty"`
	DocPage     *DocPage    `json:"docPage,omitempty"`
	NewUI       *bool       `json:"newui,omitempty"`
	Billing     BillingPage `json:"billing,omitempty"`
	Welcome     WelcomePage `json:"welcome,omitempty"`

	// Params is nil when the URL had no query string.
	Params *QueryParams `json:"params,omitempty"`
	Hash   *HashLink    `json:"hash,omitempty"`

	// Fork is set by decoding when the document id names a fork.
	Fork *URLIDParts `json:"fork,omitempty"`
}

// QueryParams holds the secondary state carried in the query string.
// Field order is the order parameters are encoded in.
type QueryParams struct {
	BillingPlan string         `json:"billingPlan,omitempty"`
	BillingTask BillingTask    `json:"billingTask,omitempty"`
	Embed       bool           `json:"embed,omitempty"`
	Style       InterfaceStyle `json:"style,omitempty"`
	Compare     string         `json:"compare,omitempty"`
	ACLUI       bool           `json:"aclUI,omitempty"`
}

// HashLink is a deep link to a cell or row of a grid section.
// Zero means absent.
type HashLink struct {
	SectionID int `json:"sectionId,omitempty"`
	RowID     int `json:"rowId,omitempty"`
	ColRef    int `json:"colRef,omitempty"`
}

// URLIDParts is the decomposition of a document id into trunk, fork and
// snapshot components.
type URLIDParts struct {
	TrunkID    string `json:"trunkId"`
	ForkID     string `json:"forkId,omitempty"`
	ForkUserID *int   `json:"forkUserId,omitempty"`
	SnapshotID string `json:"snapshotId,omitempty"`
}

// Int returns a pointer to n, for optional integer fields.
func Int(n int) *int { return &n }

// Bool returns a pointer to b, for optional boolean fields.
func Bool(b bool) *bool { return &b }
