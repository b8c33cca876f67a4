package access

import "github.com/fazla-cloud/thunder-agency-platform/internal/models"

// NavItem is one sidebar entry.
type NavItem struct {
	Label string `json:"label"`
	Href  string `json:"href"`
}

// NavItems returns the sidebar entries for role, ending with the profile page.
// Entries role cannot reach are dropped.
func NavItems(role models.Role) []NavItem {
	var items []NavItem
	switch role {
	case models.RoleAdmin:
		items = []NavItem{
			{Label: "Dashboard", Href: "/dashboard/admin"},
			{Label: "Projects", Href: "/dashboard/admin/projects"},
			{Label: "Tasks", Href: "/dashboard/admin/tasks"},
			{Label: "Users", Href: "/dashboard/admin/users"},
			{Label: "Settings", Href: "/dashboard/admin/settings"},
		}
	case models.RoleDesigner:
		items = []NavItem{
			{Label: "Dashboard", Href: "/dashboard/designer"},
			{Label: "My Tasks", Href: "/dashboard/designer/tasks"},
		}
	case models.RoleMarketer:
		items = []NavItem{
			{Label: "Dashboard", Href: "/dashboard/marketer"},
			{Label: "My Tasks", Href: "/dashboard/marketer/tasks"},
		}
	default:
		items = []NavItem{
			{Label: "Dashboard", Href: "/dashboard/client"},
			{Label: "Projects", Href: "/dashboard/client/projects"},
		}
	}
	items = append(items, NavItem{Label: "Profile", Href: ProfilePath})

	visible := items[:0]
	for _, item := range items {
		if CanAccessPath(role, item.Href) {
			visible = append(visible, item)
		}
	}
	return visible
}
