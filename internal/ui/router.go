package ui

// Router resolves a requested path to a route under the access policy
// rewrites the navigation layer expects.
type Router struct {
	routes map[string]Route
}

func NewRouter(routes map[string]Route) *Router {
	return &Router{routes: routes}
}

// Resolve maps a requested path to the route that should render, applying
// guard rewrites in order:
//
//  1. an unknown path normalizes to "/" (single retry, never loops)
//  2. a protected route without a session rewrites to "/login"
//  3. a public-only route with a session rewrites to "/", except "/" itself
//
// The returned path is the resolved one, which may differ from the request.
func (r *Router) Resolve(path string, authenticated bool) (Route, string) {
	route, ok := r.routes[path]
	if !ok {
		path = rootPath
		route = r.routes[rootPath]
	}

	if route.Access == AccessProtected && !authenticated {
		path = loginPath
		route = r.routes[loginPath]
	}

	if route.Access == AccessPublicOnly && authenticated && path != rootPath {
		path = rootPath
		route = r.routes[rootPath]
	}

	return route, path
}
