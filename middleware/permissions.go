package middleware

// Role constants to avoid string typos
const (
	RoleAdmin        = "admin"
	RoleOrganization = "organization"
	RoleVolunteer    = "volunteer"
)

// AccessContext stores the caller's identity as resolved by AuthMiddleware.
type AccessContext struct {
	UserID         uint
	RoleName       string
	OrganizationID *uint  // set for organization accounts
	PermissionType string // "full" or "readonly"
}

// CanWrite returns true if the user has write permissions
func (ac *AccessContext) CanWrite() bool {
	return ac.PermissionType == "full"
}

// CanAccessOrganization checks whether the caller may act on the given organization.
func (ac *AccessContext) CanAccessOrganization(orgID uint) bool {
	if ac.RoleName == RoleAdmin {
		return true
	}
	return ac.OrganizationID != nil && *ac.OrganizationID == orgID
}
