package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"gridnav/internal/domain/models/navigation"
	"gridnav/internal/domain/services"
	"gridnav/internal/httputil"
)

// NavigationHandler handles URL codec HTTP requests
type NavigationHandler struct {
	navService services.NavigationService
	logger     *slog.Logger
}

// NewNavigationHandler creates a new navigation handler
func NewNavigationHandler(navService services.NavigationService, logger *slog.Logger) *NavigationHandler {
	return &NavigationHandler{
		navService: navService,
		logger:     logger,
	}
}

// EncodeURL builds a URL from a navigation state
// POST /api/urls/encode
func (h *NavigationHandler) EncodeURL(w http.ResponseWriter, r *http.Request) {
	var req services.EncodeURLRequest
	if !parseBody(w, r, &req) {
		return
	}
	req.Org = httputil.GetOrg(r)

	encoded, err := h.navService.EncodeURL(r.Context(), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, map[string]string{"url": encoded})
}

// DecodeURL parses a URL into a navigation state. The org of the API
// request itself is not applied; current_org names the org of the page
// the URL was found on.
// GET /api/urls/decode?url=&current_org=
func (h *NavigationHandler) DecodeURL(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := services.DecodeURLRequest{
		Org: query.Get("current_org"),
		URL: query.Get("url"),
	}

	state, err := h.navService.DecodeURL(r.Context(), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, state)
}

// ClassifyHost reports whether a host is native, custom or plugin
// GET /api/hosts/classify?host=
func (h *NavigationHandler) ClassifyHost(w http.ResponseWriter, r *http.Request) {
	host := r.URL.Query().Get("host")

	hostType, err := h.navService.ClassifyHost(r.Context(), host)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, map[string]string{
		"host": host,
		"type": string(hostType),
	})
}

// ParseHost splits a host into org and base domain
// GET /api/hosts/parse?host=&strict=true
func (h *NavigationHandler) ParseHost(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	strict := false
	if raw := query.Get("strict"); raw != "" {
		var err error
		strict, err = strconv.ParseBool(raw)
		if err != nil {
			httputil.RespondError(w, http.StatusBadRequest, "strict must be a boolean")
			return
		}
	}

	sub, err := h.navService.ParseHost(r.Context(), query.Get("host"), strict)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, sub)
}

// OrgURLInfo says how to link to an org from a given host
// GET /api/orgs/{org}/url-info?host=
func (h *NavigationHandler) OrgURLInfo(w http.ResponseWriter, r *http.Request) {
	currentHost := r.URL.Query().Get("host")
	if currentHost == "" {
		currentHost = hostname(r.Host)
	}

	req := services.OrgURLInfoRequest{
		Org:         httputil.GetOrg(r),
		TargetOrg:   r.PathValue("org"),
		CurrentHost: currentHost,
	}

	info, err := h.navService.OrgURLInfo(r.Context(), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, info)
}

// ParseURLID splits a document id into its parts
// GET /api/doc-ids/{id}
func (h *NavigationHandler) ParseURLID(w http.ResponseWriter, r *http.Request) {
	parts, err := h.navService.ParseURLID(r.Context(), r.PathValue("id"))
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, parts)
}

// BuildURLID joins document id parts
// POST /api/doc-ids
func (h *NavigationHandler) BuildURLID(w http.ResponseWriter, r *http.Request) {
	var parts navigation.URLIDParts
	if !parseBody(w, r, &parts) {
		return
	}

	id, err := h.navService.BuildURLID(r.Context(), parts)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, map[string]string{"id": id})
}

// Slug returns the slug used in links to a document
// POST /api/slugs
func (h *NavigationHandler) Slug(w http.ResponseWriter, r *http.Request) {
	var doc navigation.DocumentRef
	if !parseBody(w, r, &doc) {
		return
	}

	httputil.RespondJSON(w, http.StatusOK, map[string]string{
		"slug": h.navService.Slug(r.Context(), doc),
	})
}
