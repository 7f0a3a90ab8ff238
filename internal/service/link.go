package service

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"gridnav/internal/domain"
	"gridnav/internal/domain/models/navigation"
	"gridnav/internal/domain/repositories"
	"gridnav/internal/domain/services"
	"gridnav/internal/service/urlstate"
)

// linkService implements the LinkService interface
type linkService struct {
	docRepo   repositories.DocumentRepository
	orgConfig navigation.OrgConfig
	homeURL   *url.URL
	logger    *slog.Logger
}

// NewLinkService creates a link service that builds links against homeURL
func NewLinkService(
	docRepo repositories.DocumentRepository,
	orgConfig navigation.OrgConfig,
	homeURL string,
	logger *slog.Logger,
) (services.LinkService, error) {
	home, err := url.Parse(homeURL)
	if err != nil {
		return nil, fmt.Errorf("parse home url: %w", err)
	}
	return &linkService{
		docRepo:   docRepo,
		orgConfig: orgConfig,
		homeURL:   home,
		logger:    logger,
	}, nil
}

// DocumentLink loads the document and encodes its canonical URL. The link
// uses the urlId and slug form when the document has a long enough urlId,
// and the /doc/<id> form otherwise.
func (s *linkService) DocumentLink(ctx context.Context, req *services.DocumentLinkRequest) (*services.DocumentLink, error) {
	err := validation.ValidateStruct(req,
		validation.Field(&req.DocumentID, validation.Required),
		validation.Field(&req.UserID, validation.Required),
		validation.Field(&req.Mode, validation.By(closedSet(navigation.ParseOpenMode))),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	doc, err := s.docRepo.GetByID(ctx, req.DocumentID, req.UserID)
	if err != nil {
		return nil, err
	}

	slug := urlstate.GetSlugIfNeeded(*doc)
	state := navigation.State{
		Org:         doc.Org,
		WorkspaceID: doc.WorkspaceID,
		DocID:       doc.ID,
		Slug:        slug,
		Mode:        req.Mode,
	}
	if slug != "" {
		state.DocID = *doc.URLID
	}

	link, err := urlstate.EncodeURL(orgConfigFor(s.orgConfig, req.Org), state, s.homeURL)
	if err != nil {
		return nil, fmt.Errorf("encode document link: %w", err)
	}

	s.logger.Debug("document link built",
		"document_id", doc.ID,
		"user_id", req.UserID,
		"url", link,
	)
	return &services.DocumentLink{URL: link, Slug: slug}, nil
}
