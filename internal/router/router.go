package router

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Page identifies one of the application's views.
type Page int

const (
	PageHome Page = iota
	PageLogin
	PageRegister
	PageDashboard
	PageProperties
	PagePredictions
	PageMap
	PageProfile
)

// String returns the page identifier.
func (p Page) String() string {
	switch p {
	case PageHome:
		return "home"
	case PageLogin:
		return "login"
	case PageRegister:
		return "register"
	case PageDashboard:
		return "dashboard"
	case PageProperties:
		return "properties"
	case PagePredictions:
		return "predictions"
	case PageMap:
		return "map"
	case PageProfile:
		return "profile"
	default:
		return "unknown"
	}
}

// Title returns the navigation label for the page.
func (p Page) Title() string {
	switch p {
	case PageHome:
		return "Home"
	case PageLogin:
		return "Login"
	case PageRegister:
		return "Register"
	case PageDashboard:
		return "Dashboard"
	case PageProperties:
		return "Properties"
	case PagePredictions:
		return "Predictions"
	case PageMap:
		return "Map View"
	case PageProfile:
		return "Profile"
	default:
		return "Unknown"
	}
}

// Protected reports whether the page requires a signed-in user.
func (p Page) Protected() bool {
	switch p {
	case PageHome, PageLogin, PageRegister:
		return false
	default:
		return true
	}
}

// ParsePage maps a page identifier to its Page. Unknown identifiers fall
// back to the home page rather than failing.
func ParsePage(id string) Page {
	switch id {
	case "home":
		return PageHome
	case "login":
		return PageLogin
	case "register":
		return PageRegister
	case "dashboard":
		return PageDashboard
	case "properties":
		return PageProperties
	case "predictions":
		return PagePredictions
	case "map":
		return PageMap
	case "profile":
		return PageProfile
	default:
		return PageHome
	}
}

// Pages lists every page in navigation order.
func Pages() []Page {
	return []Page{
		PageHome, PageLogin, PageRegister, PageDashboard,
		PageProperties, PagePredictions, PageMap, PageProfile,
	}
}

// Router is the navigation state machine: the current page plus the mobile
// menu flag. Every navigation closes the menu. There is no history stack
// and no terminal state.
type Router struct {
	current  Page
	menuOpen bool
	logger   *logrus.Logger
}

func New(logger *logrus.Logger) *Router {
	if logger == nil {
		logger = logrus.New()
		logger.SetFormatter(&logrus.JSONFormatter{})
		logger.SetOutput(os.Stdout)
	}
	return &Router{current: PageHome, logger: logger}
}

// Current returns the active page.
func (r *Router) Current() Page {
	return r.current
}

// Navigate switches to the page unconditionally and closes the mobile menu.
func (r *Router) Navigate(p Page) {
	r.current = p
	r.menuOpen = false
	r.logger.WithField("page", p.String()).Debug("Navigated")
}

// NavigateID resolves a raw page identifier and navigates to it, returning
// the page actually selected (home for unknown identifiers).
func (r *Router) NavigateID(id string) Page {
	p := ParsePage(id)
	r.Navigate(p)
	return p
}

// ToggleMenu flips the mobile menu overlay and reports its new state.
func (r *Router) ToggleMenu() bool {
	r.menuOpen = !r.menuOpen
	return r.menuOpen
}

// MenuOpen reports whether the mobile menu overlay is showing.
func (r *Router) MenuOpen() bool {
	return r.menuOpen
}
