package urlstate

import (
	"net"
	"net/url"
	"strings"

	"gridnav/internal/domain/models/navigation"
)

// EncodeURL builds the URL for state, keeping the scheme, host and port of
// base. The path, query and fragment of base are replaced. When state names
// an org, the host may change to the org's subdomain or the org may be put
// in the path (see ResolveOrgURLInfo).
//
// Path layout:
//
//	[/o/<org>][/ws/<id>](/doc/<docId>[/m/<mode>][/p/<page>] | /<urlId>/<slug>... | /p/trash)[/billing[/<sub>]][/welcome/<sub>]
//
// The state is not validated beyond dropping modes outside the allow-list.
func EncodeURL(cfg navigation.OrgConfig, state navigation.State, base *url.URL) (string, error) {
	u := *base
	var parts []string

	if state.Org != "" {
		info, err := ResolveOrgURLInfo(state.Org, base.Hostname(), cfg)
		if err != nil {
			return "", err
		}
		if info.Hostname != "" {
			u.Host = info.Hostname
			if port := base.Port(); port != "" {
				u.Host = net.JoinHostPort(info.Hostname, port)
			}
		}
		if info.OrgInPath != "" {
			parts = append(parts, "o", encodeURIComponent(info.OrgInPath))
		}
	}

	if state.WorkspaceID != nil && navigation.Truthy(*state.WorkspaceID) {
		parts = append(parts, "ws", navigation.FormatInt(*state.WorkspaceID))
	}

	if state.DocID != "" {
		if state.Slug != "" {
			parts = append(parts, encodeURIComponent(state.DocID), encodeURIComponent(state.Slug))
		} else {
			parts = append(parts, "doc", encodeURIComponent(state.DocID))
		}
		if state.Mode != "" && state.Mode.Valid() {
			parts = append(parts, "m", string(state.Mode))
		}
		if state.DocPage != nil && state.DocPage.Truthy() {
			parts = append(parts, "p", encodeURIComponent(state.DocPage.String()))
		}
	} else if state.HomePage == navigation.HomePageTrash {
		parts = append(parts, "p", string(navigation.HomePageTrash))
	}

	if state.Billing != "" {
		if state.Billing == navigation.BillingPageBilling {
			parts = append(parts, "billing")
		} else {
			parts = append(parts, "billing", encodeURIComponent(string(state.Billing)))
		}
	}

	if state.Welcome != "" {
		parts = append(parts, "welcome", encodeURIComponent(string(state.Welcome)))
	}

	rawPath := "/" + strings.Join(parts, "/")
	path, err := url.PathUnescape(rawPath)
	if err != nil {
		return "", err
	}
	u.Path = path
	u.RawPath = rawPath

	u.RawQuery = encodeQuery(state)
	u.ForceQuery = false
	u.Fragment = ""
	u.RawFragment = ""
	if state.Hash != nil && navigation.Truthy(state.Hash.RowID) {
		u.Fragment = encodeHash(*state.Hash)
	}

	return u.String(), nil
}

// encodeQuery renders state.Params and the newui flag in a fixed order.
// Empty and false values are left out.
func encodeQuery(state navigation.State) string {
	var pairs []string
	add := func(key, value string) {
		pairs = append(pairs, encodeURIComponent(key)+"="+encodeURIComponent(value))
	}

	if p := state.Params; p != nil {
		if p.BillingPlan != "" {
			add("billingPlan", p.BillingPlan)
		}
		if p.BillingTask != "" {
			add("billingTask", string(p.BillingTask))
		}
		if p.Embed {
			add("embed", "true")
		}
		if p.Style != "" {
			add("style", string(p.Style))
		}
		if p.Compare != "" {
			add("compare", p.Compare)
		}
		if p.ACLUI {
			add("aclUI", "true")
		}
	}

	if state.NewUI != nil {
		if *state.NewUI {
			add("newui", "1")
		} else {
			add("newui", "0")
		}
	}

	return strings.Join(pairs, "&")
}

// encodeHash renders a hash link as a1[.s<section>][.r<row>][.c<col>].
func encodeHash(link navigation.HashLink) string {
	parts := []string{"a1"}
	if navigation.Truthy(link.SectionID) {
		parts = append(parts, "s"+navigation.FormatInt(link.SectionID))
	}
	if navigation.Truthy(link.RowID) {
		parts = append(parts, "r"+navigation.FormatInt(link.RowID))
	}
	if navigation.Truthy(link.ColRef) {
		parts = append(parts, "c"+navigation.FormatInt(link.ColRef))
	}
	return strings.Join(parts, ".")
}
