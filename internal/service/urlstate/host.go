package urlstate

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"gridnav/internal/domain"
	"gridnav/internal/domain/models/navigation"
)

var (
	subdomainPattern = regexp.MustCompile(`^([^.]+)(\..+\..+)$`)
	orgNamePattern   = regexp.MustCompile(`^[a-zA-Z0-9-]+$`)
	localhostPattern = regexp.MustCompile(`^localhost(:[0-9]+)?$`)
)

// ClassifyHost tells whether host is served as a plugin host, a custom
// domain, or one of the deployment's own (native) hosts. The host may carry
// a port. A plugin URL that cannot be parsed is a configuration error and is
// returned as such.
func ClassifyHost(host string, cfg navigation.OrgConfig) (navigation.HostType, error) {
	if cfg.PluginURL != "" {
		pluginURL, err := url.Parse(cfg.PluginURL)
		if err != nil {
			return "", fmt.Errorf("parse plugin url: %w", err)
		}
		if pluginURL.Host == "" {
			return "", fmt.Errorf("plugin url %q has no host", cfg.PluginURL)
		}
		if strings.EqualFold(pluginURL.Host, host) {
			return navigation.HostPlugin, nil
		}
	}

	if cfg.BaseDomain == "" {
		return navigation.HostNative, nil
	}

	hostname, _, _ := strings.Cut(host, ":")
	if hostname != "localhost" && !strings.HasSuffix(hostname, cfg.BaseDomain) {
		return navigation.HostCustom, nil
	}
	return navigation.HostNative, nil
}

// ResolveOrgURLInfo works out how to address targetOrg from a page served at
// currentHostname. The checks run in order and the first match wins:
//  1. the deployment is pinned to targetOrg: nothing to change
//  2. no base domain, or on localhost: put the org in the path
//  3. already on targetOrg's custom or plugin host: nothing to change
//  4. otherwise switch to targetOrg's subdomain
func ResolveOrgURLInfo(targetOrg, currentHostname string, cfg navigation.OrgConfig) (navigation.OrgURLInfo, error) {
	if targetOrg == cfg.SingleOrg {
		return navigation.OrgURLInfo{}, nil
	}
	if cfg.BaseDomain == "" || currentHostname == "localhost" {
		return navigation.OrgURLInfo{OrgInPath: targetOrg}, nil
	}
	if targetOrg == cfg.Org {
		hostType, err := ClassifyHost(currentHostname, cfg)
		if err != nil {
			return navigation.OrgURLInfo{}, err
		}
		if hostType != navigation.HostNative {
			return navigation.OrgURLInfo{}, nil
		}
	}
	return navigation.OrgURLInfo{Hostname: targetOrg + cfg.BaseDomain}, nil
}

// ParseSubdomain splits host into an org and the rest of the domain. At least
// two dots must follow the org label, so "example.com" yields no org. Hosts
// that do not fit yield an empty result.
func ParseSubdomain(host string) navigation.Subdomain {
	if host == "" {
		return navigation.Subdomain{}
	}
	match := subdomainPattern.FindStringSubmatch(strings.ToLower(host))
	if match == nil || !orgNamePattern.MatchString(match[1]) {
		return navigation.Subdomain{}
	}
	return navigation.Subdomain{Org: match[1], Base: match[2]}
}

// ParseSubdomainStrictly is ParseSubdomain for callers that must reject
// hosts they cannot place. Only localhost (with optional port) may lack an
// org. Errors are *domain.HostError.
func ParseSubdomainStrictly(host string) (navigation.Subdomain, error) {
	if host == "" {
		return navigation.Subdomain{}, &domain.HostError{Err: domain.ErrHostMissing}
	}
	if sub := ParseSubdomain(host); sub.Org != "" {
		return sub, nil
	}
	if !localhostPattern.MatchString(host) {
		return navigation.Subdomain{}, &domain.HostError{Host: host, Err: domain.ErrHostNotUnderstood}
	}
	return navigation.Subdomain{}, nil
}

// ExtractOrgParts reads the org a request names through its host and
// through an /o/<org>/ path prefix. Host orgs are ignored when the
// deployment keeps orgs in the path.
func ExtractOrgParts(cfg navigation.OrgConfig, host, path string) navigation.OrgParts {
	parts := navigation.OrgParts{PathRemainder: path}
	if !cfg.PathOnly {
		parts.OrgFromHost = ParseSubdomain(host).Org
	}

	first := ParseFirstURLPart("o", path)
	if first.Value != "" {
		parts.OrgFromPath = first.Value
		parts.PathRemainder = first.Path
	}

	parts.Mismatch = parts.OrgFromHost != "" && parts.OrgFromPath != "" &&
		parts.OrgFromHost != parts.OrgFromPath
	return parts
}
