package navigation

// OrgConfig describes how a deployment maps orgs to hostnames. It is built
// once from configuration and passed explicitly to every codec call; Org is
// the org of the current request and is filled in per request.
type OrgConfig struct {
	// Org is the org of the page the user is currently on.
	Org string `json:"org,omitempty" yaml:"org"`

	// SingleOrg pins the deployment to one org, which then never appears in URLs.
	SingleOrg string `json:"singleOrg,omitempty" yaml:"single_org"`

	// BaseDomain is the suffix, starting with ".", under which orgs get subdomains.
	BaseDomain string `json:"baseDomain,omitempty" yaml:"base_domain"`

	// PathOnly forces the org into the path even when a subdomain is available.
	PathOnly bool `json:"pathOnly,omitempty" yaml:"path_only"`

	// PluginURL is the URL plugin content is served from.
	PluginURL string `json:"pluginUrl,omitempty" yaml:"plugin_url"`
}

// WithOrg returns a copy of c with the current org set.
func (c OrgConfig) WithOrg(org string) OrgConfig {
	c.Org = org
	return c
}

// OrgURLInfo says how to address an org from the current host: by switching
// to Hostname, by prefixing the path with OrgInPath, or (both empty) by
// leaving the URL alone.
type OrgURLInfo struct {
	Hostname  string `json:"hostname,omitempty"`
	OrgInPath string `json:"orgInPath,omitempty"`
}

// HostType classifies a hostname relative to the deployment.
type HostType string

const (
	HostNative HostType = "native"
	HostCustom HostType = "custom"
	HostPlugin HostType = "plugin"
)

// Subdomain is the result of splitting a host into org and base domain.
// Both are empty when no org could be parsed.
type Subdomain struct {
	Org  string `json:"org,omitempty"`
	Base string `json:"base,omitempty"`
}

// OrgParts is the org information found in a request's host and path.
type OrgParts struct {
	OrgFromHost   string `json:"orgFromHost,omitempty"`
	OrgFromPath   string `json:"orgFromPath,omitempty"`
	PathRemainder string `json:"pathRemainder"`
	Mismatch      bool   `json:"mismatch"`
}

// Org returns the org named by the request, preferring the path.
func (p OrgParts) Org() string {
	if p.OrgFromPath != "" {
		return p.OrgFromPath
	}
	return p.OrgFromHost
}

// DocumentRef is the minimal view of a document needed to link to it.
type DocumentRef struct {
	ID          string  `json:"id"`
	URLID       *string `json:"urlId,omitempty"`
	Name        string  `json:"name"`
	WorkspaceID *int    `json:"workspaceId,omitempty"`
	Org         string  `json:"org,omitempty"`
}
