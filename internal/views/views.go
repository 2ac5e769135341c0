package views

import (
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"bostonhouse/config"
	"bostonhouse/internal/geomap"
	"bostonhouse/internal/listing"
	"bostonhouse/internal/models"
	"bostonhouse/internal/predict"
	"bostonhouse/internal/router"
	"bostonhouse/internal/store"
)

// Renderer turns application state into the text shown for a page. Render
// functions only read the store; no view mutates anything.
type Renderer struct {
	store  *store.Store
	nmap   *geomap.Map
	logger *logrus.Logger
}

func NewRenderer(st *store.Store, nmap *geomap.Map, logger *logrus.Logger) *Renderer {
	if logger == nil {
		logger = logrus.New()
		logger.SetFormatter(&logrus.JSONFormatter{})
		logger.SetOutput(os.Stdout)
	}
	return &Renderer{store: st, nmap: nmap, logger: logger}
}

// Render draws the requested page. A protected page without a session is
// replaced by the access-restricted notice.
func (r *Renderer) Render(page router.Page) string {
	return r.RenderWith(page, PageState{})
}

// PageState carries the transient, view-local state that is not part of
// the store: the current filter draft and the last prediction shown.
type PageState struct {
	Filter         listing.Filter
	LastPrediction *predict.Result
	Selected       string // selected neighborhood on the map view
}

// RenderWith draws the requested page with explicit view-local state.
func (r *Renderer) RenderWith(page router.Page, state PageState) string {
	if page.Protected() && !r.store.IsAuthenticated() {
		return r.renderRestricted()
	}

	switch page {
	case router.PageHome:
		return r.renderHome()
	case router.PageLogin:
		return r.renderLogin()
	case router.PageRegister:
		return r.renderRegister()
	case router.PageDashboard:
		return r.renderDashboard()
	case router.PageProperties:
		return r.renderProperties(state.Filter)
	case router.PagePredictions:
		return r.renderPredictions(state.LastPrediction)
	case router.PageMap:
		return r.renderMap(state.Selected)
	case router.PageProfile:
		return r.renderProfile()
	default:
		return r.renderHome()
	}
}

// Breadcrumb returns the navigation trail line for a page.
func Breadcrumb(page router.Page) string {
	if page == router.PageHome {
		return "Home"
	}
	return "Home > " + page.Title()
}

func header(page router.Page) string {
	return fmt.Sprintf("=== Boston House Predictor ===\n%s\n\n", Breadcrumb(page))
}

func (r *Renderer) renderRestricted() string {
	var b strings.Builder
	b.WriteString("=== Boston House Predictor ===\n\n")
	b.WriteString("Access Restricted\n")
	b.WriteString("Please log in to access this page.\n")
	b.WriteString("[login] [register]\n")
	return b.String()
}

func (r *Renderer) renderHome() string {
	var b strings.Builder
	b.WriteString(header(router.PageHome))
	b.WriteString("Boston House Price Prediction\n")
	b.WriteString("Get accurate house price predictions using advanced machine learning.\n")
	b.WriteString("Browse properties, analyze market trends, and make informed real estate decisions.\n\n")
	b.WriteString("* Property Listings - browse listings across all Boston neighborhoods\n")
	b.WriteString("* ML Predictions - price predictions from the Boston housing model\n")
	b.WriteString("* Interactive Maps - explore neighborhoods and property markers\n\n")
	b.WriteString("[register] Get Started    [predictions] Try Prediction Tool\n")
	return b.String()
}

func (r *Renderer) renderLogin() string {
	var b strings.Builder
	b.WriteString(header(router.PageLogin))
	b.WriteString("Login\n")
	b.WriteString("Email: ___\nPassword: ___\n\n")
	b.WriteString("Demo credentials:\n")
	b.WriteString("  Dealer: dealer@example.com / password123\n")
	b.WriteString("  Customer: customer@example.com / password123\n\n")
	b.WriteString("Don't have an account? [register]\n")
	return b.String()
}

func (r *Renderer) renderRegister() string {
	var b strings.Builder
	b.WriteString(header(router.PageRegister))
	b.WriteString("Register\n")
	b.WriteString("Role: customer | property_dealer\n")
	b.WriteString("Full Name: ___\nPhone: ___\nEmail: ___\n")
	b.WriteString("Password: ___\nConfirm Password: ___\n\n")
	b.WriteString("Already have an account? [login]\n")
	return b.String()
}

func (r *Renderer) renderDashboard() string {
	user := r.store.CurrentUser()
	var b strings.Builder
	b.WriteString(header(router.PageDashboard))

	if user.Role == models.RoleDealer {
		b.WriteString("Property Dealer Dashboard\n")
		fmt.Fprintf(&b, "Welcome back, %s! Manage your properties and track performance.\n\n", user.Name)
		fmt.Fprintf(&b, "Your Properties: %d active listings\n", len(r.store.PropertiesOf(user.ID)))
		b.WriteString("Total Inquiries: 23 this month\n")
		b.WriteString("Revenue: $45,000 last 30 days\n")
		fmt.Fprintf(&b, "Market Average: $%s Boston area\n", formatAmount(r.store.AveragePrice()))
		b.WriteString("\nQuick Actions: [properties] Add Property  [map] View Map  [predictions] Price Predictions\n")
		return b.String()
	}

	b.WriteString("Customer Dashboard\n")
	fmt.Fprintf(&b, "Welcome back, %s! Find your dream property.\n\n", user.Name)
	fmt.Fprintf(&b, "Saved Properties: %d in your favorites\n", len(r.store.FavoritesOf(user.ID)))
	b.WriteString("Active Offers: 2 pending response\n")
	fmt.Fprintf(&b, "Price Predictions: %d\n", len(r.store.PredictionsOf(user.ID)))
	b.WriteString("Market Trends: +3.2% price increase\n")
	b.WriteString("\nQuick Actions: [properties] Search Properties  [predictions] Price Calculator  [map] Explore Map\n")
	return b.String()
}

func (r *Renderer) renderProperties(filter listing.Filter) string {
	user := r.store.CurrentUser()
	matched := filter.Apply(r.store.Properties())

	var b strings.Builder
	b.WriteString(header(router.PageProperties))
	b.WriteString("Properties\n")
	if user != nil && user.Role == models.RoleDealer {
		b.WriteString("[Add Property]\n")
	}
	if !filter.IsZero() {
		fmt.Fprintf(&b, "Filters: %s\n", describeFilter(filter))
	}
	b.WriteString("\n")

	for _, p := range matched {
		marker := " "
		if user != nil && r.store.IsFavorite(user.ID, p.ID) {
			marker = "*"
		}
		fmt.Fprintf(&b, "%s #%d $%s  %s\n", marker, p.ID, formatAmount(float64(p.Price)), p.Address)
		fmt.Fprintf(&b, "    %s | %s | %s | %d bed | %d bath | %d sqft\n",
			p.PropertyType, p.Status, p.ListingType, p.Bedrooms, p.Bathrooms, p.Sqft)
	}

	if len(matched) == 0 {
		b.WriteString("No properties found\n")
		b.WriteString("Try adjusting your search criteria or filters.\n")
	}
	return b.String()
}

func describeFilter(f listing.Filter) string {
	parts := make([]string, 0, 6)
	if f.Query != "" {
		parts = append(parts, "query="+f.Query)
	}
	if f.Neighborhood != "" {
		parts = append(parts, "neighborhood="+f.Neighborhood)
	}
	if f.MinPrice != "" {
		parts = append(parts, "min="+f.MinPrice)
	}
	if f.MaxPrice != "" {
		parts = append(parts, "max="+f.MaxPrice)
	}
	if f.Bedrooms != "" {
		parts = append(parts, "bedrooms="+f.Bedrooms)
	}
	if f.PropertyType != "" {
		parts = append(parts, "type="+f.PropertyType)
	}
	return strings.Join(parts, ", ")
}

func (r *Renderer) renderPredictions(last *predict.Result) string {
	user := r.store.CurrentUser()
	defaults := predict.DefaultFeatures()

	var b strings.Builder
	b.WriteString(header(router.PagePredictions))
	b.WriteString("House Price Predictions\n")
	b.WriteString("Enter property characteristics to get an ML-powered price prediction.\n\n")

	b.WriteString("Property Features:\n")
	for _, f := range config.HousingFeatures {
		fmt.Fprintf(&b, "  %s = %g  (%s)\n", f.Code, defaults.Value(f.Code), f.Description)
	}

	if last != nil {
		b.WriteString("\nPrediction Result\n")
		fmt.Fprintf(&b, "  $%s\n", formatAmount(last.Price))
		fmt.Fprintf(&b, "  Confidence Score: %d%%\n", int(last.Confidence*100+0.5))
	}

	recent := r.store.PredictionsOf(user.ID)
	if len(recent) > 0 {
		b.WriteString("\nRecent Predictions\n")
		start := len(recent) - 3
		if start < 0 {
			start = 0
		}
		for _, p := range recent[start:] {
			fmt.Fprintf(&b, "  $%s (confidence %d%%) %s\n",
				formatAmount(p.Prediction), int(p.Confidence*100+0.5), p.Timestamp.Format("2006-01-02"))
		}
	}
	return b.String()
}

func (r *Renderer) renderMap(selected string) string {
	var b strings.Builder
	b.WriteString(header(router.PageMap))
	b.WriteString("Boston Neighborhoods Map\n")
	b.WriteString("Explore Boston neighborhoods and property distributions.\n\n")

	b.WriteString(r.nmap.RenderGrid(12, 48))
	b.WriteString("\n")

	neighborhoods := r.nmap.Neighborhoods()
	limit := 6
	if len(neighborhoods) < limit {
		limit = len(neighborhoods)
	}
	for _, n := range neighborhoods[:limit] {
		fmt.Fprintf(&b, "  %-14s %d available properties\n", n.Name, n.Properties)
	}

	if sel := r.nmap.ByName(selected); sel != nil {
		fmt.Fprintf(&b, "\n%s Details\n", sel.Name)
		fmt.Fprintf(&b, "  Coordinates: %g, %g\n", sel.Lat, sel.Lng)
		fmt.Fprintf(&b, "  Available Properties: %d\n", sel.Properties)
	}
	return b.String()
}

func (r *Renderer) renderProfile() string {
	user := r.store.CurrentUser()

	var b strings.Builder
	b.WriteString(header(router.PageProfile))
	b.WriteString("Profile\n")
	b.WriteString("Manage your account settings and preferences.\n\n")

	b.WriteString("Personal Information\n")
	fmt.Fprintf(&b, "  Name: %s\n", user.Name)
	fmt.Fprintf(&b, "  Email: %s\n", user.Email)
	fmt.Fprintf(&b, "  Phone: %s\n", user.Phone)
	role := "Customer"
	if user.Role == models.RoleDealer {
		role = "Property Dealer"
	}
	fmt.Fprintf(&b, "  Role: %s\n\n", role)

	b.WriteString("Activity Summary\n")
	fmt.Fprintf(&b, "  Price Predictions: %d\n", len(r.store.PredictionsOf(user.ID)))
	fmt.Fprintf(&b, "  Saved Properties: %d\n", len(r.store.FavoritesOf(user.ID)))
	if user.Role == models.RoleDealer {
		fmt.Fprintf(&b, "  Listed Properties: %d\n", len(r.store.PropertiesOf(user.ID)))
	}
	return b.String()
}

// formatAmount renders a dollar amount with thousands separators, rounding
// to the nearest whole dollar.
func formatAmount(v float64) string {
	n := int64(v + 0.5)
	if n < 0 {
		n = 0
	}

	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
