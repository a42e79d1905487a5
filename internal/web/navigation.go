package web

import (
	"hospital-emr-backend/internal/authz"
	"hospital-emr-backend/internal/models"
)

// NavItem is one sidebar link. Action is the capability that unlocks it.
type NavItem struct {
	Label  string
	Href   string
	Action authz.Action
}

// navigation links the dashboard to the JSON resources the caller can read.
var navigation = []NavItem{
	{Label: "Dashboard", Href: "/dashboard", Action: authz.ViewDashboard},
	{Label: "My record", Href: "/api/patients/me", Action: authz.ViewOwnPatient},
	{Label: "Staff", Href: "/api/staff", Action: authz.ListStaff},
	{Label: "Doctors", Href: "/api/users/doctors", Action: authz.ListDoctors},
	{Label: "Laboratory", Href: "/api/users/lab-scientists", Action: authz.ListLabScientists},
	{Label: "Chat", Href: "/api/chat/users", Action: authz.ListChatUsers},
	{Label: "Corporate clients", Href: "/api/corporate-clients", Action: authz.ListCorporateClients},
	{Label: "Surveys", Href: "/api/surveys/tables", Action: authz.CheckSurveyTables},
	{Label: "Plans", Href: "/api/subscription-plans", Action: authz.ListPlans},
}

// NavigationFor returns the sidebar links role may follow, in display order.
func NavigationFor(role models.Role) []NavItem {
	items := make([]NavItem, 0, len(navigation))
	for _, item := range navigation {
		if authz.Allows(role, item.Action) {
			items = append(items, item)
		}
	}
	return items
}
