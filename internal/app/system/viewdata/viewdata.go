// internal/app/system/viewdata/viewdata.go
package viewdata

import (
	"net/http"
	"strings"

	"github.com/dalemusser/whopinsights/internal/app/system/auth"
	"github.com/dalemusser/whopinsights/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/httpnav"
)

// NavItem is one entry of the dashboard sidebar.
type NavItem struct {
	Label  string
	Href   string
	Active bool
}

// dashboardNav is the sidebar, in display order.
var dashboardNav = []NavItem{
	{Label: "Overview", Href: "/dashboard"},
	{Label: "Members", Href: "/dashboard/members"},
	{Label: "Content", Href: "/dashboard/content"},
	{Label: "Revenue", Href: "/dashboard/revenue"},
}

// BaseVM contains common fields for all view models.
// Embed this struct in your feature-specific view models.
//
// Usage:
//
//	type myPageData struct {
//	    viewdata.BaseVM
//	    // page-specific fields...
//	}
//
//	data := myPageData{
//	    BaseVM: viewdata.NewBaseVM(r, "Page Title", "/default-back"),
//	}
type BaseVM struct {
	SiteName string

	// Operator context (from auth middleware)
	IsLoggedIn bool
	UserName   string
	UserEmail  string

	// Page context
	Title       string
	BackURL     string
	CurrentPath string
	Nav         []NavItem
}

// NewBaseVM creates a fully populated BaseVM for a page.
func NewBaseVM(r *http.Request, title, backDefault string) BaseVM {
	vm := BaseVM{
		SiteName:    models.DefaultSiteName,
		Title:       title,
		BackURL:     httpnav.ResolveBackURL(r, backDefault),
		CurrentPath: httpnav.CurrentPath(r),
	}

	if s, ok := auth.CurrentSession(r); ok {
		vm.IsLoggedIn = true
		vm.UserName = s.DisplayName()
		vm.UserEmail = s.UserEmail
	}

	vm.Nav = navFor(vm.CurrentPath)
	return vm
}

// navFor marks the sidebar entry matching path. /dashboard only matches
// itself; other entries also match their subpaths.
func navFor(path string) []NavItem {
	items := make([]NavItem, len(dashboardNav))
	copy(items, dashboardNav)
	for i := range items {
		href := items[i].Href
		if href == "/dashboard" {
			items[i].Active = path == href
			continue
		}
		items[i].Active = path == href || strings.HasPrefix(path, href+"/")
	}
	return items
}
