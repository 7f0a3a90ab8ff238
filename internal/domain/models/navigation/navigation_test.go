package navigation

import (
	"encoding/json"
	"testing"
)

func TestParseInt(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want int
	}{
		{name: "plain", in: "42", want: 42},
		{name: "leading whitespace", in: "  7", want: 7},
		{name: "signed", in: "-3", want: -3},
		{name: "plus sign", in: "+3", want: 3},
		{name: "trailing junk", in: "12abc", want: 12},
		{name: "empty", in: "", want: NaN},
		{name: "letters", in: "abc", want: NaN},
		{name: "sign only", in: "-", want: NaN},
		{name: "overflow", in: "99999999999999999999999", want: NaN},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseInt(tt.in); got != tt.want {
				t.Errorf("ParseInt(%q) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestTruthy(t *testing.T) {
	if Truthy(0) || Truthy(NaN) {
		t.Error("zero and NaN must not be truthy")
	}
	if !Truthy(1) || !Truthy(-1) {
		t.Error("non-zero numbers must be truthy")
	}
	if FormatInt(NaN) != "NaN" {
		t.Errorf("FormatInt(NaN) = %q", FormatInt(NaN))
	}
}

func TestDocPageJSON(t *testing.T) {
	tests := []struct {
		name string
		page DocPage
		json string
	}{
		{name: "number", page: NumberPage(3), json: `3`},
		{name: "named", page: NamedPage(DocPageACL), json: `"acl"`},
		{name: "nan", page: NumberPage(NaN), json: `"NaN"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.page)
			if err != nil {
				t.Fatalf("Marshal() unexpected error: %v", err)
			}
			if string(data) != tt.json {
				t.Errorf("Marshal() = %s, want %s", data, tt.json)
			}

			var got DocPage
			if err := json.Unmarshal(data, &got); err != nil {
				t.Fatalf("Unmarshal() unexpected error: %v", err)
			}
			if got != tt.page {
				t.Errorf("Unmarshal() = %+v, want %+v", got, tt.page)
			}
		})
	}

	var page DocPage
	if err := json.Unmarshal([]byte(`"settings"`), &page); err == nil {
		t.Error("Unmarshal() expected error for unknown page name")
	}
}

func TestParseEnums(t *testing.T) {
	if m, ok := ParseOpenMode("fork"); !ok || m != OpenModeFork {
		t.Errorf("ParseOpenMode(fork) = %q, %v", m, ok)
	}
	if _, ok := ParseOpenMode("edit"); ok {
		t.Error("ParseOpenMode(edit) should not match")
	}
	if OpenMode("edit").Valid() {
		t.Error("edit is not a valid open mode")
	}
	if p, ok := ParseWelcomePage("select-account"); !ok || p != WelcomePageSelectAccount {
		t.Errorf("ParseWelcomePage(select-account) = %q, %v", p, ok)
	}
	if _, ok := ParseHomePage("Trash"); ok {
		t.Error("enum parsing is case sensitive")
	}
}
