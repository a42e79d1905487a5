// Package authz holds the single capability table every route and page
// consults before touching data.
package authz

import "hospital-emr-backend/internal/models"

// Action names a guarded operation.
type Action string

const (
	DischargeAdmission   Action = "admission.discharge"
	LinkChatAttachment   Action = "chat.attachment.link"
	ListChatUsers        Action = "chat.users.list"
	ListCorporateClients Action = "corporate_clients.list"
	ViewHospitalTheme    Action = "hospital.theme.view"
	ViewOwnPatient       Action = "patient.self.view"
	ListStaff            Action = "staff.list"
	CheckSurveyTables    Action = "surveys.tables.check"
	ListDoctors          Action = "users.doctors.list"
	ListLabScientists    Action = "users.lab_scientists.list"
	ListPlans            Action = "plans.list"
	DeactivateUser       Action = "users.deactivate"
	ViewDashboard        Action = "dashboard.view"
)

var policy = map[Action][]models.Role{
	DischargeAdmission:   {models.RoleAdmin, models.RoleDoctor},
	LinkChatAttachment:   models.StaffRoles,
	ListChatUsers:        models.StaffRoles,
	ListCorporateClients: {models.RoleAdmin, models.RoleCashier, models.RoleReceptionist},
	ViewHospitalTheme:    models.AllRoles,
	ViewOwnPatient:       {models.RolePatient},
	ListStaff:            {models.RoleAdmin, models.RoleDoctor, models.RoleNurse, models.RoleReceptionist},
	CheckSurveyTables:    {models.RoleAdmin, models.RoleSuperAdmin},
	ListDoctors:          models.AllRoles,
	ListLabScientists:    models.AllRoles,
	ListPlans:            models.AllRoles,
	DeactivateUser:       {models.RoleAdmin},
	ViewDashboard:        models.AllRoles,
}

// Allows reports whether role may perform action. Unknown actions are denied.
func Allows(role models.Role, action Action) bool {
	for _, allowed := range policy[action] {
		if allowed == role {
			return true
		}
	}
	return false
}

// RolesFor returns a copy of the roles granted action.
func RolesFor(action Action) []models.Role {
	roles := policy[action]
	out := make([]models.Role, len(roles))
	copy(out, roles)
	return out
}
