package domain

// View names the top-level screen a client should render.
type View string

const (
	ViewLoading          View = "loading"
	ViewLogin            View = "login"
	ViewAdminDashboard   View = "admin_dashboard"
	ViewCitizenDashboard View = "citizen_dashboard"
)

// Route picks the view for the current session state. An identity without a
// readable profile is treated as signed out.
func Route(loading bool, identity *Identity, profile *Profile) View {
	if loading {
		return ViewLoading
	}
	if identity == nil || profile == nil {
		return ViewLogin
	}
	switch ParseRole(string(profile.Role)) {
	case RoleAdmin:
		return ViewAdminDashboard
	case RoleCitizen:
		return ViewCitizenDashboard
	}
	return ViewLogin
}
