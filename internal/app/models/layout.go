package models

import "github.com/a-h/templ"

type NavItem struct {
	Name string
	URL  string
	Icon string
}

type Navigation struct {
	Items []NavItem
}

type LayoutTempl struct {
	Title     string
	User      *Identity
	Nav       Navigation
	ActiveNav string
	Content   templ.Component
}

var MainNav = Navigation{
	Items: []NavItem{
		{Name: "Dashboard", URL: "/dashboard", Icon: "dashboard"},
		{Name: "Campaigns", URL: "/campaigns", Icon: "campaign"},
		{Name: "Messages", URL: "/messages", Icon: "message"},
		{Name: "Analytics", URL: "/analytics", Icon: "analytics"},
		{Name: "Profile", URL: "/profile", Icon: "person"},
	},
}

var OfflineNav = Navigation{
	Items: []NavItem{
		{Name: "Sign In", URL: "/login"},
	},
}
