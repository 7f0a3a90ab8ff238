package urlstate

import (
	"net/url"
	"strings"

	"gridnav/internal/config"
	"gridnav/internal/domain/models/navigation"
)

// pathPairs holds the path of a URL read as key/value pairs. Keys keep
// their first position when repeated; the last value wins.
type pathPairs struct {
	keys   []string
	values map[string]string
	paired map[string]bool
}

func parsePathPairs(escapedPath string) *pathPairs {
	var segments []string
	for _, s := range strings.Split(escapedPath, "/") {
		if s != "" {
			segments = append(segments, s)
		}
	}

	p := &pathPairs{values: map[string]string{}, paired: map[string]bool{}}
	for i := 0; i < len(segments); i += 2 {
		key := segments[i]
		if _, seen := p.values[key]; !seen {
			p.keys = append(p.keys, key)
		}
		if i+1 < len(segments) {
			p.values[key] = decodeURIComponent(segments[i+1])
			p.paired[key] = true
		} else {
			p.values[key] = ""
			p.paired[key] = false
		}
	}
	return p
}

// get returns the value paired with key. Unpaired trailing keys are not found.
func (p *pathPairs) get(key string) (string, bool) {
	if !p.paired[key] {
		return "", false
	}
	return p.values[key], true
}

func (p *pathPairs) has(key string) bool {
	_, ok := p.values[key]
	return ok
}

func (p *pathPairs) remove(key string) {
	delete(p.values, key)
	delete(p.paired, key)
	for i, k := range p.keys {
		if k == key {
			p.keys = append(p.keys[:i], p.keys[i+1:]...)
			return
		}
	}
}

// DecodeURL reads the navigation state out of loc. It is the inverse of
// EncodeURL and never fails: anything it cannot make sense of is left out.
//
// The org comes from cfg (current or single org) first, then from the host's
// subdomain unless cfg.PathOnly is set, then from an /o/<org> path prefix.
func DecodeURL(cfg navigation.OrgConfig, loc *url.URL) navigation.State {
	var state navigation.State
	pairs := parsePathPairs(loc.EscapedPath())

	// A document with a long enough url id is addressed as /<urlId>/<slug>,
	// without the doc/ key. Treat the first long key as such an id.
	var docID, slug string
	for _, key := range pairs.keys {
		if len(key) < config.MinURLIDPrefixLength || !pairs.paired[key] {
			continue
		}
		docID = decodeURIComponent(key)
		slug = pairs.values[key]
		pairs.remove(key)
		break
	}

	switch {
	case cfg.Org != "":
		state.Org = cfg.Org
	case cfg.SingleOrg != "":
		state.Org = cfg.SingleOrg
	default:
		if !cfg.PathOnly {
			state.Org = ParseSubdomain(loc.Host).Org
		}
		if state.Org == "" {
			state.Org, _ = pairs.get("o")
		}
	}

	if ws, ok := pairs.get("ws"); ok {
		state.WorkspaceID = navigation.Int(navigation.ParseInt(ws))
	}

	if docID == "" {
		docID, _ = pairs.get("doc")
	}
	if docID != "" {
		state.DocID = docID
		state.Slug = slug
		if fork := ParseURLID(docID); fork.ForkID != "" {
			state.Fork = &fork
		}
		if page, ok := pairs.get("p"); ok {
			docPage := ParseDocPage(page)
			state.DocPage = &docPage
		}
	} else if page, ok := pairs.get("p"); ok {
		state.HomePage, _ = navigation.ParseHomePage(page)
	}

	if mode, ok := pairs.get("m"); ok {
		state.Mode, _ = navigation.ParseOpenMode(mode)
	}

	// "billing" alone is the top-level billing page.
	if pairs.has("billing") {
		billing, ok := navigation.ParseBillingPage(pairs.values["billing"])
		if !ok {
			billing = navigation.BillingPageBilling
		}
		state.Billing = billing
	}

	if welcome, ok := pairs.get("welcome"); ok {
		state.Welcome, _ = navigation.ParseWelcomePage(welcome)
	}

	if loc.RawQuery != "" {
		decodeQuery(&state, loc.RawQuery)
	}

	if loc.Fragment != "" {
		state.Hash = decodeHash(loc.Fragment)
	}

	return state
}

func decodeQuery(state *navigation.State, rawQuery string) {
	// Malformed pairs are dropped by ParseQuery; the rest are still usable.
	query, _ := url.ParseQuery(rawQuery)
	has := func(key string) bool {
		_, ok := query[key]
		return ok
	}

	params := &navigation.QueryParams{}
	state.Params = params

	if has("newui") {
		if v := query.Get("newui"); v != "" {
			state.NewUI = navigation.Bool(v == "1")
		}
	}
	if has("billingPlan") {
		params.BillingPlan = query.Get("billingPlan")
	}
	if has("billingTask") {
		params.BillingTask, _ = navigation.ParseBillingTask(query.Get("billingTask"))
	}
	if has("style") {
		params.Style, _ = navigation.ParseInterfaceStyle(query.Get("style"))
	}
	if has("embed") {
		params.Embed = isAffirmative(query.Get("embed"))
		if params.Embed && state.Mode == "" {
			state.Mode = navigation.OpenModeView
		}
		if params.Embed && params.Style == "" {
			params.Style = navigation.InterfaceStyleLight
		}
	}
	if has("compare") {
		params.Compare = query.Get("compare")
	}
	if has("aclUI") {
		params.ACLUI = isAffirmative(query.Get("aclUI"))
	}
}

// decodeHash reads an a1[.s<n>][.r<n>][.c<n>] fragment. Other fragments
// are not hash links and yield nil.
func decodeHash(fragment string) *navigation.HashLink {
	byKey := map[string]string{}
	for _, part := range strings.Split("#"+fragment, ".") {
		if part == "" {
			byKey[""] = ""
			continue
		}
		byKey[part[:1]] = part[1:]
	}
	if byKey["#"] != "a1" {
		return nil
	}

	link := &navigation.HashLink{}
	if v, ok := byKey["s"]; ok {
		link.SectionID = navigation.ParseInt(v)
	}
	if v, ok := byKey["r"]; ok {
		link.RowID = navigation.ParseInt(v)
	}
	if v, ok := byKey["c"]; ok {
		link.ColRef = navigation.ParseInt(v)
	}
	return link
}
