package service

import "github.com/Bilalabbasid/CRM-sub000/internal/core/domain"

// navigationTables maps each role to its ordered menu. Sections group at
// presentation time in insertion order; the tables are the only place the
// role → capability mapping lives.
var navigationTables = map[domain.Role][]domain.NavigationItem{
	domain.RoleAdmin: {
		{Label: "Dashboard", Path: "/dashboard", Icon: "home", Section: "Operations"},
		{Label: "Orders", Path: "/orders", Icon: "receipt", Section: "Operations"},
		{Label: "Reservations", Path: "/reservations", Icon: "calendar", Section: "Operations"},
		{Label: "Menu", Path: "/menu", Icon: "book-open", Section: "Management"},
		{Label: "Inventory", Path: "/inventory", Icon: "package", Section: "Management"},
		{Label: "Customers", Path: "/customers", Icon: "users", Section: "Management"},
		{Label: "Staff", Path: "/staff", Icon: "id-badge", Section: "Management"},
		{Label: "Reports", Path: "/reports", Icon: "bar-chart", Section: "Insights"},
		{Label: "Settings", Path: "/settings", Icon: "settings", Section: "Insights"},
	},
	domain.RoleOwner: {
		{Label: "Dashboard", Path: "/dashboard", Icon: "home", Section: "Operations"},
		{Label: "Orders", Path: "/orders", Icon: "receipt", Section: "Operations"},
		{Label: "Reservations", Path: "/reservations", Icon: "calendar", Section: "Operations"},
		{Label: "Menu", Path: "/menu", Icon: "book-open", Section: "Management"},
		{Label: "Inventory", Path: "/inventory", Icon: "package", Section: "Management"},
		{Label: "Customers", Path: "/customers", Icon: "users", Section: "Management"},
		{Label: "Staff", Path: "/staff", Icon: "id-badge", Section: "Management"},
		{Label: "Reports", Path: "/reports", Icon: "bar-chart", Section: "Insights"},
	},
	domain.RoleManager: {
		{Label: "Dashboard", Path: "/dashboard", Icon: "home", Section: "Operations"},
		{Label: "Orders", Path: "/orders", Icon: "receipt", Section: "Operations"},
		{Label: "Reservations", Path: "/reservations", Icon: "calendar", Section: "Operations"},
		{Label: "Menu", Path: "/menu", Icon: "book-open", Section: "Management"},
		{Label: "Inventory", Path: "/inventory", Icon: "package", Section: "Management"},
		{Label: "Customers", Path: "/customers", Icon: "users", Section: "Management"},
	},
	domain.RoleStaff: {
		{Label: "Dashboard", Path: "/dashboard", Icon: "home", Section: "Operations"},
		{Label: "Orders", Path: "/orders", Icon: "receipt", Section: "Operations"},
		{Label: "Reservations", Path: "/reservations", Icon: "calendar", Section: "Operations"},
	},
}

// ResolveNavigation returns the ordered menu for a role. It is a pure
// lookup: no I/O, no session dependency, deterministic for every input.
// Unknown roles resolve to the staff menu, so resolution is total. The
// returned slice is a copy; callers may reorder or annotate it freely.
func ResolveNavigation(role domain.Role) []domain.NavigationItem {
	table, ok := navigationTables[role]
	if !ok {
		table = navigationTables[domain.DefaultRole]
	}
	items := make([]domain.NavigationItem, len(table))
	copy(items, table)
	return items
}
