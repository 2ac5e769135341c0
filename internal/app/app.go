package app

import (
	"context"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"bostonhouse/config"
	"bostonhouse/internal/backend"
	"bostonhouse/internal/chat"
	"bostonhouse/internal/geomap"
	"bostonhouse/internal/listing"
	"bostonhouse/internal/models"
	"bostonhouse/internal/predict"
	"bostonhouse/internal/router"
	"bostonhouse/internal/store"
	"bostonhouse/internal/theme"
	"bostonhouse/internal/views"
)

// App wires the engine together and exposes the commands the host drives.
// It owns the view-local state (filter draft, last prediction, selected
// neighborhood) that the original screens kept per component.
type App struct {
	store     *store.Store
	router    *router.Router
	renderer  *views.Renderer
	assistant *chat.Assistant
	model     *predict.Model
	authSim   *backend.Simulator
	predSim   *backend.Simulator
	themes    *theme.Store // nil when preference persistence is unavailable
	theme     string
	logger    *logrus.Logger

	filter         listing.Filter
	lastPrediction *predict.Result
	selected       string
}

// New assembles the application. A nil theme store disables preference
// persistence but nothing else.
func New(cfg *config.Config, themes *theme.Store, logger *logrus.Logger) *App {
	if logger == nil {
		logger = logrus.New()
		logger.SetFormatter(&logrus.JSONFormatter{})
		logger.SetOutput(os.Stdout)
	}

	st := store.New(logger)
	nmap := geomap.New(st.Neighborhoods(), logger)

	a := &App{
		store:     st,
		router:    router.New(logger),
		renderer:  views.NewRenderer(st, nmap, logger),
		assistant: chat.NewAssistant(logger),
		model:     predict.NewModel(nil, logger),
		authSim:   backend.NewSimulator(time.Duration(cfg.Simulation.AuthLatency)*time.Millisecond, logger),
		predSim:   backend.NewSimulator(time.Duration(cfg.Simulation.PredictionLatency)*time.Millisecond, logger),
		themes:    themes,
		logger:    logger,
	}

	if themes != nil {
		saved, err := themes.Load()
		if err != nil {
			logger.WithError(err).Warn("Failed to load theme preference")
		} else {
			a.theme = saved
		}
	}
	return a
}

// Store exposes the state container, mainly for tests.
func (a *App) Store() *store.Store {
	return a.store
}

// CurrentPage returns the active page.
func (a *App) CurrentPage() router.Page {
	return a.router.Current()
}

// CurrentView renders the active page with the current view-local state.
func (a *App) CurrentView() string {
	return a.renderer.RenderWith(a.router.Current(), views.PageState{
		Filter:         a.filter,
		LastPrediction: a.lastPrediction,
		Selected:       a.selected,
	})
}

// Navigate resolves the identifier and switches pages; unknown identifiers
// land on home.
func (a *App) Navigate(id string) router.Page {
	return a.router.NavigateID(id)
}

// ToggleMenu flips the mobile menu overlay.
func (a *App) ToggleMenu() bool {
	return a.router.ToggleMenu()
}

// Login authenticates through the simulated backend and routes to the
// dashboard on success.
func (a *App) Login(ctx context.Context, email, password string) error {
	return a.authSim.Call(ctx, "login", func() error {
		if _, err := a.store.Login(email, password); err != nil {
			return err
		}
		a.router.Navigate(router.PageDashboard)
		return nil
	})
}

// Logout clears the session and returns home.
func (a *App) Logout() {
	a.store.Logout()
	a.router.Navigate(router.PageHome)
}

// Register creates the account through the simulated backend and routes to
// the login page on success; it never signs the new user in.
func (a *App) Register(ctx context.Context, form store.RegisterForm) error {
	return a.authSim.Call(ctx, "register", func() error {
		if _, err := a.store.Register(form); err != nil {
			return err
		}
		a.router.Navigate(router.PageLogin)
		return nil
	})
}

// SetFilter replaces the properties view's filter draft.
func (a *App) SetFilter(f listing.Filter) {
	a.filter = f
}

// Filter returns the current filter draft.
func (a *App) Filter() listing.Filter {
	return a.filter
}

// ToggleFavorite flips the saved state of a property for the session user.
// Without a session it reports ErrNotSignedIn; no favorite exists without
// one.
func (a *App) ToggleFavorite(propertyID int) (bool, error) {
	user := a.store.CurrentUser()
	if user == nil {
		return false, store.ErrNotSignedIn
	}
	return a.store.ToggleFavorite(user.ID, propertyID), nil
}

// SubmitPrediction evaluates the model through the simulated backend,
// appends the result to the session user's log and keeps it for display.
func (a *App) SubmitPrediction(ctx context.Context, features models.Features) (*predict.Result, error) {
	if !a.store.IsAuthenticated() {
		return nil, store.ErrNotSignedIn
	}

	var result predict.Result
	err := a.predSim.Call(ctx, "predict", func() error {
		result = a.model.Predict(features)
		if _, err := a.store.AppendPrediction(features, result.Price, result.Confidence); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	a.lastPrediction = &result
	return &result, nil
}

// ClearPrediction drops the displayed result, like the "New Prediction"
// button.
func (a *App) ClearPrediction() {
	a.lastPrediction = nil
}

// SelectNeighborhood sets (or clears, with "") the map view's detail card.
func (a *App) SelectNeighborhood(name string) {
	a.selected = name
}

// SaveProfile merges the edits into the session user's record.
func (a *App) SaveProfile(name, email, phone string) error {
	_, err := a.store.SaveProfile(name, email, phone)
	return err
}

// Chat sends a message to the assistant. The assistant is only available
// to signed-in users, as in the original shell.
func (a *App) Chat(text string) (string, error) {
	if !a.store.IsAuthenticated() {
		return "", store.ErrNotSignedIn
	}
	return a.assistant.Send(text), nil
}

// Transcript returns the chat history.
func (a *App) Transcript() []models.ChatMessage {
	return a.assistant.Transcript()
}

// Theme returns the active theme, empty for the system default.
func (a *App) Theme() string {
	return a.theme
}

// ToggleTheme flips the theme and persists it when a preference store is
// attached.
func (a *App) ToggleTheme() string {
	if a.themes != nil {
		next, err := a.themes.Toggle()
		if err != nil {
			a.logger.WithError(err).Warn("Failed to persist theme preference")
		} else {
			a.theme = next
			return next
		}
	}

	if a.theme == theme.Dark {
		a.theme = theme.Light
	} else {
		a.theme = theme.Dark
	}
	return a.theme
}
