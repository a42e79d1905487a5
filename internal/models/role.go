package models

// Role is a fixed capability level carried by every user.
type Role string

const (
	RoleAdmin        Role = "admin"
	RoleDoctor       Role = "doctor"
	RoleNurse        Role = "nurse"
	RoleReceptionist Role = "receptionist"
	RolePharmacist   Role = "pharmacist"
	RoleCashier      Role = "cashier"
	RoleLabTech      Role = "lab_tech"
	RolePatient      Role = "patient"
	RoleSuperAdmin   Role = "super_admin"
)

// AllRoles lists every role in a stable order.
var AllRoles = []Role{
	RoleAdmin,
	RoleDoctor,
	RoleNurse,
	RoleReceptionist,
	RolePharmacist,
	RoleCashier,
	RoleLabTech,
	RolePatient,
	RoleSuperAdmin,
}

// StaffRoles are the hospital employee roles.
var StaffRoles = []Role{
	RoleAdmin,
	RoleDoctor,
	RoleNurse,
	RoleReceptionist,
	RolePharmacist,
	RoleCashier,
	RoleLabTech,
}

// ClinicalStaffRoles is the default staff directory filter.
var ClinicalStaffRoles = []Role{RoleDoctor, RoleNurse, RoleLabTech}

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	for _, known := range AllRoles {
		if r == known {
			return true
		}
	}
	return false
}

// IsStaff reports whether r is a hospital employee role.
func (r Role) IsStaff() bool {
	for _, staff := range StaffRoles {
		if r == staff {
			return true
		}
	}
	return false
}
