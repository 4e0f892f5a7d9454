package dashboard

import "eventnomous/internal/domain"

// NavItem is one entry in a role's dashboard navigation.
type NavItem struct {
	Title string `json:"title"`
	Path  string `json:"path"`
	Icon  string `json:"icon"`
}

var navConfig = map[domain.UserRole][]NavItem{
	domain.RoleCustomer: {
		{Title: "Overview", Path: "/dashboard/customer", Icon: "layout-dashboard"},
		{Title: "My Events", Path: "/dashboard/customer/events", Icon: "calendar"},
		{Title: "Budget", Path: "/dashboard/customer/budget", Icon: "credit-card"},
		{Title: "Vendors", Path: "/marketplace", Icon: "shopping-bag"},
		{Title: "Settings", Path: "/dashboard/customer/settings", Icon: "settings"},
	},
	domain.RoleManager: {
		{Title: "Overview", Path: "/dashboard/manager", Icon: "layout-dashboard"},
		{Title: "Kanban Board", Path: "/dashboard/manager/kanban", Icon: "clipboard-list"},
		{Title: "Clients", Path: "/dashboard/manager/clients", Icon: "users"},
		{Title: "Calendar", Path: "/dashboard/manager/calendar", Icon: "calendar"},
		{Title: "Finances", Path: "/dashboard/manager/finances", Icon: "credit-card"},
	},
	domain.RoleVendor: {
		{Title: "Overview", Path: "/dashboard/vendor", Icon: "layout-dashboard"},
		{Title: "Services", Path: "/dashboard/vendor/services", Icon: "briefcase"},
		{Title: "Bookings", Path: "/dashboard/vendor/bookings", Icon: "clipboard-list"},
		{Title: "Availability", Path: "/dashboard/vendor/calendar", Icon: "calendar"},
		{Title: "Payments", Path: "/dashboard/vendor/payments", Icon: "credit-card"},
	},
	domain.RoleAdmin: {
		{Title: "Overview", Path: "/dashboard/admin", Icon: "layout-dashboard"},
		{Title: "Users", Path: "/dashboard/admin/users", Icon: "users"},
		{Title: "Vendors", Path: "/dashboard/admin/vendors", Icon: "store"},
		{Title: "Reports", Path: "/dashboard/admin/reports", Icon: "clipboard-list"},
		{Title: "Settings", Path: "/dashboard/admin/settings", Icon: "settings"},
	},
}

// NavigationFor returns the navigation set for a role. Unknown roles get an
// empty set rather than an error: the draft and budget endpoints themselves
// are role-agnostic, navigation is purely presentational.
func NavigationFor(role domain.UserRole) []NavItem {
	items, ok := navConfig[role]
	if !ok {
		return []NavItem{}
	}
	return items
}
