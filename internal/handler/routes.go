package handler

import "net/http"

// RegisterRoutes adds the API routes to mux. The link routes are only
// registered when links is non-nil, wrapped in requireAuth.
func RegisterRoutes(mux *http.ServeMux, nav *NavigationHandler, links *LinkHandler, requireAuth func(http.Handler) http.Handler) {
	// Health check
	mux.HandleFunc("GET /health", HealthCheck)

	// URL codec routes
	mux.HandleFunc("POST /api/urls/encode", nav.EncodeURL)
	mux.HandleFunc("GET /api/urls/decode", nav.DecodeURL)

	// Host routes
	mux.HandleFunc("GET /api/hosts/classify", nav.ClassifyHost)
	mux.HandleFunc("GET /api/hosts/parse", nav.ParseHost)
	mux.HandleFunc("GET /api/orgs/{org}/url-info", nav.OrgURLInfo)

	// Document id routes
	mux.HandleFunc("GET /api/doc-ids/{id}", nav.ParseURLID)
	mux.HandleFunc("POST /api/doc-ids", nav.BuildURLID)
	mux.HandleFunc("POST /api/slugs", nav.Slug)

	// Share links (authenticated, needs the database)
	if links != nil {
		mux.Handle("GET /api/docs/{id}/link", requireAuth(http.HandlerFunc(links.DocumentLink)))
	}
}
