package middleware

import (
	"log/slog"
	"net"
	"net/http"
	"strings"

	"golang.org/x/net/idna"

	"gridnav/internal/domain/models/navigation"
	"gridnav/internal/httputil"
	"gridnav/internal/service/urlstate"
)

// Org works out which org a request is for, from its host and an optional
// /o/<org>/ path prefix, and stores it in the request context. The prefix is
// stripped so routes match the rest of the path. Requests
// whose host and path name different orgs are rejected. With strict set,
// hosts that are neither an org subdomain nor localhost are rejected too.
func Org(cfg navigation.OrgConfig, strict bool, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			host, err := normalizeHost(r.Host)
			if err != nil {
				httputil.RespondError(w, http.StatusBadRequest, "invalid host")
				return
			}

			if strict {
				if _, err := urlstate.ParseSubdomainStrictly(host); err != nil {
					logger.Warn("rejected request host", "host", r.Host, "error", err)
					httputil.RespondError(w, http.StatusBadRequest, err.Error())
					return
				}
			}

			parts := urlstate.ExtractOrgParts(cfg, host, r.URL.Path)
			if parts.Mismatch {
				httputil.RespondError(w, http.StatusBadRequest,
					"org in path ("+parts.OrgFromPath+") does not match org in host ("+parts.OrgFromHost+")")
				return
			}

			if parts.OrgFromPath != "" {
				r = stripOrgPrefix(r, parts.PathRemainder)
			}
			next.ServeHTTP(w, httputil.WithOrg(r, parts.Org()))
		})
	}
}

// stripOrgPrefix returns a shallow copy of r whose URL path is path.
func stripOrgPrefix(r *http.Request, path string) *http.Request {
	r2 := new(http.Request)
	*r2 = *r
	u := *r.URL
	u.Path = path
	u.RawPath = ""
	r2.URL = &u
	return r2
}

// normalizeHost lower-cases the host and converts internationalized names
// to their ASCII form, keeping any port.
func normalizeHost(host string) (string, error) {
	if host == "" {
		return "", nil
	}
	name, port, err := net.SplitHostPort(host)
	if err != nil {
		name, port = host, ""
	}
	if net.ParseIP(strings.Trim(name, "[]")) != nil {
		return host, nil
	}
	ascii, err := idna.Lookup.ToASCII(strings.TrimSuffix(name, "."))
	if err != nil {
		return "", err
	}
	if port == "" {
		return ascii, nil
	}
	return net.JoinHostPort(ascii, port), nil
}
