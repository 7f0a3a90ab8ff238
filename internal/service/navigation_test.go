package service

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gridnav/internal/domain"
	"gridnav/internal/domain/models/navigation"
	"gridnav/internal/domain/services"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestNavigationService() services.NavigationService {
	return NewNavigationService(navigation.OrgConfig{BaseDomain: ".getgrist.com"}, testLogger())
}

func TestNavigationService_EncodeURL(t *testing.T) {
	svc := newTestNavigationService()
	ctx := context.Background()

	tests := []struct {
		name    string
		req     services.EncodeURLRequest
		want    string
		wantErr error
	}{
		{
			name: "document in org subdomain",
			req: services.EncodeURLRequest{
				Base:  "https://example.getgrist.com/",
				State: navigation.State{Org: "acme", DocID: "abc", Mode: navigation.OpenModeView},
			},
			want: "https://acme.getgrist.com/doc/abc/m/view",
		},
		{
			name: "request org keeps the org in the path on localhost",
			req: services.EncodeURLRequest{
				Org:   "acme",
				Base:  "http://localhost:8080/",
				State: navigation.State{Org: "acme", WorkspaceID: navigation.Int(5)},
			},
			want: "http://localhost:8080/o/acme/ws/5",
		},
		{
			name:    "missing base",
			req:     services.EncodeURLRequest{State: navigation.State{DocID: "abc"}},
			wantErr: domain.ErrValidation,
		},
		{
			name:    "relative base",
			req:     services.EncodeURLRequest{Base: "/doc/abc"},
			wantErr: domain.ErrValidation,
		},
		{
			name: "unknown mode",
			req: services.EncodeURLRequest{
				Base:  "https://example.getgrist.com/",
				State: navigation.State{DocID: "abc", Mode: navigation.OpenMode("edit")},
			},
			wantErr: domain.ErrValidation,
		},
		{
			name: "unknown billing page",
			req: services.EncodeURLRequest{
				Base:  "https://example.getgrist.com/",
				State: navigation.State{Billing: navigation.BillingPage("invoices")},
			},
			wantErr: domain.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := tt.req
			got, err := svc.EncodeURL(ctx, &req)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNavigationService_DecodeURL(t *testing.T) {
	svc := newTestNavigationService()
	ctx := context.Background()

	state, err := svc.DecodeURL(ctx, &services.DecodeURLRequest{URL: "https://acme.getgrist.com/ws/12/p/trash"})
	require.NoError(t, err)
	assert.Equal(t, "acme", state.Org)
	require.NotNil(t, state.WorkspaceID)
	assert.Equal(t, 12, *state.WorkspaceID)
	assert.Equal(t, navigation.HomePageTrash, state.HomePage)

	_, err = svc.DecodeURL(ctx, &services.DecodeURLRequest{URL: ""})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.DecodeURL(ctx, &services.DecodeURLRequest{URL: "doc/abc"})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestNavigationService_DecodeURL_Org(t *testing.T) {
	ctx := context.Background()
	configured := NewNavigationService(navigation.OrgConfig{Org: "acme", BaseDomain: ".getgrist.com"}, testLogger())

	state, err := configured.DecodeURL(ctx, &services.DecodeURLRequest{URL: "http://localhost:8080/doc/abc"})
	require.NoError(t, err)
	assert.Equal(t, "acme", state.Org, "configured org applies when the request names none")

	state, err = configured.DecodeURL(ctx, &services.DecodeURLRequest{Org: "beta", URL: "http://localhost:8080/doc/abc"})
	require.NoError(t, err)
	assert.Equal(t, "beta", state.Org, "request org overrides the configured one")

	state, err = newTestNavigationService().DecodeURL(ctx, &services.DecodeURLRequest{URL: "https://beta.getgrist.com/doc/abc"})
	require.NoError(t, err)
	assert.Equal(t, "beta", state.Org, "without a current org the URL's own subdomain is used")
}

func TestNavigationService_EncodeURL_ConfiguredOrg(t *testing.T) {
	svc := NewNavigationService(navigation.OrgConfig{Org: "acme", BaseDomain: ".getgrist.com"}, testLogger())

	encoded, err := svc.EncodeURL(context.Background(), &services.EncodeURLRequest{
		Base:  "https://docs.example.com/",
		State: navigation.State{Org: "acme", DocID: "abc"},
	})
	require.NoError(t, err)
	assert.Equal(t, "https://docs.example.com/doc/abc", encoded, "the configured org stays on its custom host")
}

func TestNavigationService_Hosts(t *testing.T) {
	svc := newTestNavigationService()
	ctx := context.Background()

	hostType, err := svc.ClassifyHost(ctx, "acme.getgrist.com")
	require.NoError(t, err)
	assert.Equal(t, navigation.HostNative, hostType)

	hostType, err = svc.ClassifyHost(ctx, "docs.example.com")
	require.NoError(t, err)
	assert.Equal(t, navigation.HostCustom, hostType)

	_, err = svc.ClassifyHost(ctx, "")
	assert.ErrorIs(t, err, domain.ErrValidation)

	sub, err := svc.ParseHost(ctx, "acme.getgrist.com", true)
	require.NoError(t, err)
	assert.Equal(t, "acme", sub.Org)

	_, err = svc.ParseHost(ctx, "getgrist.com", true)
	assert.ErrorIs(t, err, domain.ErrValidation)

	sub, err = svc.ParseHost(ctx, "getgrist.com", false)
	require.NoError(t, err)
	assert.Empty(t, sub.Org)
}

func TestNavigationService_OrgURLInfo(t *testing.T) {
	svc := newTestNavigationService()
	ctx := context.Background()

	info, err := svc.OrgURLInfo(ctx, &services.OrgURLInfoRequest{TargetOrg: "acme", CurrentHost: "other.getgrist.com"})
	require.NoError(t, err)
	assert.Equal(t, navigation.OrgURLInfo{Hostname: "acme.getgrist.com"}, info)

	info, err = svc.OrgURLInfo(ctx, &services.OrgURLInfoRequest{TargetOrg: "acme", CurrentHost: "localhost"})
	require.NoError(t, err)
	assert.Equal(t, navigation.OrgURLInfo{OrgInPath: "acme"}, info)

	_, err = svc.OrgURLInfo(ctx, &services.OrgURLInfoRequest{CurrentHost: "localhost"})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestNavigationService_URLIDs(t *testing.T) {
	svc := newTestNavigationService()
	ctx := context.Background()

	parts, err := svc.ParseURLID(ctx, "trunk~fork~3")
	require.NoError(t, err)
	assert.Equal(t, "trunk", parts.TrunkID)
	assert.Equal(t, "fork", parts.ForkID)
	require.NotNil(t, parts.ForkUserID)
	assert.Equal(t, 3, *parts.ForkUserID)

	id, err := svc.BuildURLID(ctx, parts)
	require.NoError(t, err)
	assert.Equal(t, "trunk~fork~3", id)

	_, err = svc.ParseURLID(ctx, "")
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.BuildURLID(ctx, navigation.URLIDParts{ForkID: "fork"})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestNavigationService_Slug(t *testing.T) {
	svc := newTestNavigationService()
	urlID := "sampleDocId1"
	doc := navigation.DocumentRef{ID: "sampleDocId1234", URLID: &urlID, Name: "Sales Report"}
	assert.Equal(t, "Sales-Report", svc.Slug(context.Background(), doc))

	doc.URLID = nil
	assert.Empty(t, svc.Slug(context.Background(), doc))
}
