package handler

import (
	"log/slog"
	"net"
	"net/http"

	"gridnav/internal/domain/models/navigation"
	"gridnav/internal/domain/services"
	"gridnav/internal/httputil"
)

// LinkHandler handles share link HTTP requests
type LinkHandler struct {
	linkService services.LinkService
	logger      *slog.Logger
}

// NewLinkHandler creates a new link handler
func NewLinkHandler(linkService services.LinkService, logger *slog.Logger) *LinkHandler {
	return &LinkHandler{
		linkService: linkService,
		logger:      logger,
	}
}

// DocumentLink returns the canonical URL of a document
// GET /api/docs/{id}/link?mode=
func (h *LinkHandler) DocumentLink(w http.ResponseWriter, r *http.Request) {
	userID := httputil.GetUserID(r)
	if userID == "" {
		httputil.RespondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	req := services.DocumentLinkRequest{
		DocumentID: r.PathValue("id"),
		UserID:     userID,
		Org:        httputil.GetOrg(r),
		Mode:       navigation.OpenMode(r.URL.Query().Get("mode")),
	}

	link, err := h.linkService.DocumentLink(r.Context(), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, link)
}

// hostname strips the port from a Host header value
func hostname(host string) string {
	if name, _, err := net.SplitHostPort(host); err == nil {
		return name
	}
	return host
}
