package ui

// Access is the visibility policy attached to a route.
type Access int

const (
	// AccessOpen routes render for everyone.
	AccessOpen Access = iota
	// AccessPublicOnly routes render only while signed out (login, register).
	AccessPublicOnly
	// AccessProtected routes require an active session.
	AccessProtected
)

const (
	rootPath     = "/"
	aboutPath    = "/about"
	contactPath  = "/contact"
	loginPath    = "/login"
	registerPath = "/register"
	profilePath  = "/profile"
	authTestPath = "/auth-test"
)

// Route binds a path to a window title, an access policy, and a view
// factory. The table is fixed at startup; there is no dynamic
// registration.
type Route struct {
	Path   string
	Title  string
	Access Access
	New    func(app *App) viewModel
}

func defaultRoutes(app *App) map[string]Route {
	str := app.str
	return map[string]Route{
		rootPath:     {Path: rootPath, Title: str.NavHome, Access: AccessOpen, New: newHomeView},
		aboutPath:    {Path: aboutPath, Title: str.NavAbout, Access: AccessOpen, New: newAboutView},
		contactPath:  {Path: contactPath, Title: str.NavContact, Access: AccessOpen, New: newContactView},
		loginPath:    {Path: loginPath, Title: str.NavLogin, Access: AccessPublicOnly, New: newLoginView},
		registerPath: {Path: registerPath, Title: str.NavRegister, Access: AccessPublicOnly, New: newRegisterView},
		profilePath:  {Path: profilePath, Title: str.NavProfile, Access: AccessProtected, New: newProfileView},
		authTestPath: {Path: authTestPath, Title: str.NavAuthTest, Access: AccessProtected, New: newAuthTestView},
	}
}
