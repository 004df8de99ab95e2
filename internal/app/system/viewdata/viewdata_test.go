package viewdata_test

import (
	"net/http/httptest"
	"testing"

	"github.com/dalemusser/whopinsights/internal/app/system/auth"
	"github.com/dalemusser/whopinsights/internal/app/system/viewdata"
)

func activeLabels(vm viewdata.BaseVM) []string {
	var out []string
	for _, it := range vm.Nav {
		if it.Active {
			out = append(out, it.Label)
		}
	}
	return out
}

func TestNewBaseVM_Anonymous(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	vm := viewdata.NewBaseVM(req, "Welcome", "/")

	if vm.IsLoggedIn {
		t.Error("expected anonymous view model")
	}
	if vm.Title != "Welcome" {
		t.Errorf("Title: got %q, want %q", vm.Title, "Welcome")
	}
	if vm.SiteName == "" {
		t.Error("expected a site name")
	}
	if len(vm.Nav) != 4 {
		t.Errorf("expected 4 nav items, got %d", len(vm.Nav))
	}
}

func TestNewBaseVM_SignedIn(t *testing.T) {
	req := httptest.NewRequest("GET", "/dashboard", nil)
	req = auth.WithSession(req, &auth.Session{AccessToken: "tok", UserName: "Ann", UserEmail: "ann@example.com"})
	vm := viewdata.NewBaseVM(req, "Overview", "/")

	if !vm.IsLoggedIn || vm.UserName != "Ann" || vm.UserEmail != "ann@example.com" {
		t.Errorf("unexpected operator fields: %+v", vm)
	}
}

func TestNewBaseVM_ActiveNav(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/dashboard", "Overview"},
		{"/dashboard/members", "Members"},
		{"/dashboard/revenue", "Revenue"},
	}
	for _, tt := range tests {
		req := httptest.NewRequest("GET", tt.path, nil)
		got := activeLabels(viewdata.NewBaseVM(req, "", "/"))
		if len(got) != 1 || got[0] != tt.want {
			t.Errorf("path %q: active got %v, want [%s]", tt.path, got, tt.want)
		}
	}
}
