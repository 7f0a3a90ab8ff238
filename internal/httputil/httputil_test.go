package httputil

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestParseJSON(t *testing.T) {
	type payload struct {
		Base string `json:"base"`
	}

	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{name: "valid", body: `{"base":"https://example.com"}`},
		{name: "unknown field", body: `{"bsae":"https://example.com"}`, wantErr: true},
		{name: "trailing data", body: `{"base":"a"} {"base":"b"}`, wantErr: true},
		{name: "malformed", body: `{"base":`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			var dest payload
			err := ParseJSON(httptest.NewRecorder(), req, &dest)
			if tt.wantErr != (err != nil) {
				t.Errorf("ParseJSON() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestParseJSON_TooLarge(t *testing.T) {
	body := `{"base":"` + strings.Repeat("a", maxBodyBytes) + `"}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	var dest map[string]string
	if err := ParseJSON(httptest.NewRecorder(), req, &dest); !errors.Is(err, ErrBodyTooLarge) {
		t.Errorf("ParseJSON() error = %v, want ErrBodyTooLarge", err)
	}
}

func TestRespondErrorWithExtras(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondErrorWithExtras(rec, http.StatusBadRequest, "host not understood", map[string]interface{}{
		"host":   "example.com",
		"status": 999,
	})

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	var body map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body["host"] != "example.com" {
		t.Errorf("host = %v", body["host"])
	}
	if body["status"] != float64(400) {
		t.Errorf("status member = %v, extras must not override it", body["status"])
	}
	if body["title"] != "Bad Request" {
		t.Errorf("title = %v", body["title"])
	}
}

func TestContextValues(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if GetOrg(req) != "" || GetUserID(req) != "" || GetRequestID(req) != "" {
		t.Fatal("empty request should carry no values")
	}

	req = WithRequestID(WithUserID(WithOrg(req, "acme"), "user-1"), "req-1")
	if GetOrg(req) != "acme" || GetUserID(req) != "user-1" || GetRequestID(req) != "req-1" {
		t.Errorf("got org=%q user=%q request=%q", GetOrg(req), GetUserID(req), GetRequestID(req))
	}
}
