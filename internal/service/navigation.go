package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"gridnav/internal/config"
	"gridnav/internal/domain"
	"gridnav/internal/domain/models/navigation"
	"gridnav/internal/domain/services"
	"gridnav/internal/service/urlstate"
)

// navigationService implements the NavigationService interface
type navigationService struct {
	orgConfig navigation.OrgConfig
	logger    *slog.Logger
}

// NewNavigationService creates a new navigation service for the deployment
// described by orgConfig. A request naming its own org overrides
// orgConfig.Org for that request.
func NewNavigationService(orgConfig navigation.OrgConfig, logger *slog.Logger) services.NavigationService {
	return &navigationService{
		orgConfig: orgConfig,
		logger:    logger,
	}
}

// EncodeURL validates the request and builds the URL for its state
func (s *navigationService) EncodeURL(ctx context.Context, req *services.EncodeURLRequest) (string, error) {
	if err := s.validateEncodeRequest(req); err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	base, err := url.Parse(req.Base)
	if err != nil {
		return "", fmt.Errorf("%w: invalid base url: %v", domain.ErrValidation, err)
	}

	encoded, err := urlstate.EncodeURL(orgConfigFor(s.orgConfig, req.Org), req.State, base)
	if err != nil {
		return "", fmt.Errorf("encode url: %w", err)
	}

	s.logger.Debug("url encoded", "org", req.Org, "url", encoded)
	return encoded, nil
}

// DecodeURL validates the request and parses its URL into a state
func (s *navigationService) DecodeURL(ctx context.Context, req *services.DecodeURLRequest) (*navigation.State, error) {
	err := validation.ValidateStruct(req,
		validation.Field(&req.URL,
			validation.Required,
			validation.Length(1, config.MaxURLLength),
			validation.By(absoluteURL),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	loc, err := url.Parse(req.URL)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid url: %v", domain.ErrValidation, err)
	}

	state := urlstate.DecodeURL(orgConfigFor(s.orgConfig, req.Org), loc)
	s.logger.Debug("url decoded", "org", req.Org, "url", req.URL, "decoded_org", state.Org, "doc", state.DocID)
	return &state, nil
}

// ClassifyHost reports how host relates to the deployment
func (s *navigationService) ClassifyHost(ctx context.Context, host string) (navigation.HostType, error) {
	if err := validation.Validate(host, validation.Required, validation.Length(1, 253)); err != nil {
		return "", fmt.Errorf("%w: host %v", domain.ErrValidation, err)
	}

	hostType, err := urlstate.ClassifyHost(host, s.orgConfig)
	if err != nil {
		return "", fmt.Errorf("classify host: %w", err)
	}
	return hostType, nil
}

// ParseHost splits host into org and base domain. In strict mode a host
// that names no org is an error unless it is localhost.
func (s *navigationService) ParseHost(ctx context.Context, host string, strict bool) (navigation.Subdomain, error) {
	if !strict {
		return urlstate.ParseSubdomain(host), nil
	}
	sub, err := urlstate.ParseSubdomainStrictly(host)
	if err != nil {
		s.logger.Debug("host rejected", "host", host, "error", err)
		return navigation.Subdomain{}, err
	}
	return sub, nil
}

// OrgURLInfo says how a link to the target org should be addressed
func (s *navigationService) OrgURLInfo(ctx context.Context, req *services.OrgURLInfoRequest) (navigation.OrgURLInfo, error) {
	err := validation.ValidateStruct(req,
		validation.Field(&req.TargetOrg, validation.Required),
	)
	if err != nil {
		return navigation.OrgURLInfo{}, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	info, err := urlstate.ResolveOrgURLInfo(req.TargetOrg, req.CurrentHost, orgConfigFor(s.orgConfig, req.Org))
	if err != nil {
		return navigation.OrgURLInfo{}, fmt.Errorf("resolve org url: %w", err)
	}
	return info, nil
}

// ParseURLID splits a document id into its parts
func (s *navigationService) ParseURLID(ctx context.Context, id string) (navigation.URLIDParts, error) {
	if err := validation.Validate(id, validation.Required, validation.Length(1, config.MaxURLLength)); err != nil {
		return navigation.URLIDParts{}, fmt.Errorf("%w: id %v", domain.ErrValidation, err)
	}
	return urlstate.ParseURLID(id), nil
}

// BuildURLID joins parts into a document id
func (s *navigationService) BuildURLID(ctx context.Context, parts navigation.URLIDParts) (string, error) {
	err := validation.ValidateStruct(&parts,
		validation.Field(&parts.TrunkID, validation.Required),
	)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}
	return urlstate.BuildURLID(parts), nil
}

// Slug returns the slug for links to doc
func (s *navigationService) Slug(ctx context.Context, doc navigation.DocumentRef) string {
	return urlstate.GetSlugIfNeeded(doc)
}

func (s *navigationService) validateEncodeRequest(req *services.EncodeURLRequest) error {
	err := validation.ValidateStruct(req,
		validation.Field(&req.Base,
			validation.Required,
			validation.Length(1, config.MaxURLLength),
			validation.By(absoluteURL),
		),
	)
	if err != nil {
		return err
	}

	state := &req.State
	return validation.ValidateStruct(state,
		validation.Field(&state.HomePage, validation.By(closedSet(navigation.ParseHomePage))),
		validation.Field(&state.Mode, validation.By(closedSet(navigation.ParseOpenMode))),
		validation.Field(&state.Billing, validation.By(closedSet(navigation.ParseBillingPage))),
		validation.Field(&state.Welcome, validation.By(closedSet(navigation.ParseWelcomePage))),
		validation.Field(&state.DocID, validation.Length(0, config.MaxURLLength)),
		validation.Field(&state.Slug, validation.Length(0, config.MaxDocumentNameLength)),
	)
}

// orgConfigFor returns the org config for a request, keeping the configured
// org when the request names none.
func orgConfigFor(cfg navigation.OrgConfig, org string) navigation.OrgConfig {
	if org == "" {
		return cfg
	}
	return cfg.WithOrg(org)
}

// closedSet builds a rule accepting the empty value or any value parse accepts.
func closedSet[T ~string](parse func(string) (T, bool)) validation.RuleFunc {
	return func(value interface{}) error {
		v, _ := value.(T)
		if v == "" {
			return nil
		}
		if _, ok := parse(string(v)); !ok {
			return fmt.Errorf("unknown value %q", string(v))
		}
		return nil
	}
}

func absoluteURL(value interface{}) error {
	raw, _ := value.(string)
	if raw == "" {
		return nil
	}
	u, err := url.Parse(raw)
	if err != nil {
		return errors.New("must be a valid URL")
	}
	if u.Scheme == "" || u.Host == "" {
		return errors.New("must be an absolute URL")
	}
	return nil
}
