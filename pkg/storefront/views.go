package storefront

import "fmt"

// View names the screens of the storefront UI.
type View string

const (
	ViewHome     View = "home"
	ViewCart     View = "cart"
	ViewLogin    View = "login"
	ViewRegister View = "register"
	ViewOrders   View = "myorders"
	ViewSell     View = "sell"
)

// Router is an explicit finite-state view router. Navigation to a gated view
// without the required session lands on the login view instead of failing.
type Router struct {
	current  View
	loggedIn func() bool
	isAdmin  func() bool
}

// NewRouter creates a router starting on the home view. The two predicates
// report the session state at navigation time.
func NewRouter(loggedIn, isAdmin func() bool) *Router {
	return &Router{
		current:  ViewHome,
		loggedIn: loggedIn,
		isAdmin:  isAdmin,
	}
}

// Current returns the active view.
func (r *Router) Current() View {
	return r.current
}

// Navigate switches to the named view, enforcing the view's session
// requirements. Unknown views are an error; gated views redirect to login
// when no session exists.
func (r *Router) Navigate(v View) error {
	switch v {
	case ViewHome, ViewCart, ViewLogin, ViewRegister:
		r.current = v
	case ViewOrders:
		if !r.loggedIn() {
			r.current = ViewLogin
			return nil
		}
		r.current = v
	case ViewSell:
		if !r.loggedIn() {
			r.current = ViewLogin
			return nil
		}
		if !r.isAdmin() {
			return fmt.Errorf("view %s requires the admin account", v)
		}
		r.current = v
	default:
		return fmt.Errorf("unknown view %s", v)
	}
	return nil
}
