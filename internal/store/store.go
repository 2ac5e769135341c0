package store

import (
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"bostonhouse/internal/models"
)

var (
	ErrInvalidCredentials = errors.New("Invalid email or password")
	ErrPasswordMismatch   = errors.New("Passwords do not match")
	ErrEmailTaken         = errors.New("Email already exists")
	ErrNotSignedIn        = errors.New("no user is signed in")
)

var validate = validator.New()

// Store owns every application entity and the single session reference.
// Nothing is persisted; the seed data is rebuilt on each construction.
// Views read through accessors and mutate only through command methods.
type Store struct {
	mu            sync.RWMutex
	users         []models.User
	properties    []models.Property
	favorites     []models.Favorite
	predictions   []models.Prediction
	neighborhoods []models.Neighborhood
	currentUserID int // 0 means no session
	logger        *logrus.Logger
}

func New(logger *logrus.Logger) *Store {
	if logger == nil {
		logger = logrus.New()
		logger.SetFormatter(&logrus.JSONFormatter{})
		logger.SetOutput(os.Stdout)
	}

	return &Store{
		users:         seedUsers(),
		properties:    seedProperties(),
		neighborhoods: seedNeighborhoods(),
		favorites:     make([]models.Favorite, 0),
		predictions:   make([]models.Prediction, 0),
		logger:        logger,
	}
}

// RegisterForm carries the registration input. The validate tags mirror the
// required/email enforcement the registration form applies before submission.
type RegisterForm struct {
	Name            string `validate:"required"`
	Phone           string `validate:"required"`
	Email           string `validate:"required,email"`
	Password        string `validate:"required"`
	ConfirmPassword string `validate:"required"`
	Role            string `validate:"required,oneof=customer property_dealer"`
}

// IsAuthenticated reports whether a session user is set.
func (s *Store) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.currentUserID != 0
}

// CurrentUser returns a copy of the session user, or nil without a session.
func (s *Store) CurrentUser() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lookupUser(s.currentUserID)
}

func (s *Store) lookupUser(id int) *models.User {
	for i := range s.users {
		if s.users[i].ID == id {
			u := s.users[i]
			return &u
		}
	}
	return nil
}

// Login matches the credentials against the user list with an exact,
// case-sensitive comparison on both fields. On success the session is set;
// on failure it is left untouched and ErrInvalidCredentials is returned.
func (s *Store) Login(email, password string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].Email == email && s.users[i].Password == password {
			s.currentUserID = s.users[i].ID
			s.logger.WithFields(logrus.Fields{
				"user_id": s.users[i].ID,
				"role":    s.users[i].Role,
			}).Info("User logged in")
			u := s.users[i]
			return &u, nil
		}
	}

	s.logger.WithField("email", email).Info("Login rejected")
	return nil, ErrInvalidCredentials
}

// Logout clears the session.
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.currentUserID != 0 {
		s.logger.WithField("user_id", s.currentUserID).Info("User logged out")
	}
	s.currentUserID = 0
}

// Register appends a new user after checking password confirmation and
// email uniqueness. The new id is users count + 1. Registration does not
// set the session; the caller is expected to route to the login view.
func (s *Store) Register(form RegisterForm) (*models.User, error) {
	if err := validate.Struct(form); err != nil {
		return nil, fmt.Errorf("invalid registration form: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if form.Password != form.ConfirmPassword {
		return nil, ErrPasswordMismatch
	}
	for i := range s.users {
		if s.users[i].Email == form.Email {
			return nil, ErrEmailTaken
		}
	}

	user := models.User{
		ID:       len(s.users) + 1,
		Email:    form.Email,
		Password: form.Password,
		Role:     form.Role,
		Name:     form.Name,
		Phone:    form.Phone,
	}
	s.users = append(s.users, user)

	s.logger.WithFields(logrus.Fields{
		"user_id": user.ID,
		"role":    user.Role,
	}).Info("User registered")
	return &user, nil
}

// SaveProfile merges the edited fields into the session user's record.
func (s *Store) SaveProfile(name, email, phone string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.currentUserID == 0 {
		return nil, ErrNotSignedIn
	}
	for i := range s.users {
		if s.users[i].ID == s.currentUserID {
			s.users[i].Name = name
			s.users[i].Email = email
			s.users[i].Phone = phone
			s.logger.WithField("user_id", s.currentUserID).Info("Profile updated")
			u := s.users[i]
			return &u, nil
		}
	}
	return nil, ErrNotSignedIn
}

// ToggleFavorite removes the (userID, propertyID) pair when present and
// inserts it otherwise. It returns whether the property is now favorited.
// Applying it twice restores the prior state.
func (s *Store) ToggleFavorite(userID, propertyID int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.favorites {
		if s.favorites[i].UserID == userID && s.favorites[i].PropertyID == propertyID {
			s.favorites = append(s.favorites[:i], s.favorites[i+1:]...)
			return false
		}
	}
	s.favorites = append(s.favorites, models.Favorite{UserID: userID, PropertyID: propertyID})
	return true
}

// IsFavorite reports whether the pair exists.
func (s *Store) IsFavorite(userID, propertyID int) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.favorites {
		if s.favorites[i].UserID == userID && s.favorites[i].PropertyID == propertyID {
			return true
		}
	}
	return false
}

// FavoritesOf returns the property ids the user has saved, in insertion order.
func (s *Store) FavoritesOf(userID int) []int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]int, 0)
	for i := range s.favorites {
		if s.favorites[i].UserID == userID {
			ids = append(ids, s.favorites[i].PropertyID)
		}
	}
	return ids
}

// AppendPrediction records one prediction for the session user. The log is
// append-only and uncapped.
func (s *Store) AppendPrediction(features models.Features, price, confidence float64) (*models.Prediction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.currentUserID == 0 {
		return nil, ErrNotSignedIn
	}

	pred := models.Prediction{
		ID:         uuid.NewString(),
		UserID:     s.currentUserID,
		Features:   features,
		Prediction: price,
		Confidence: confidence,
		Timestamp:  time.Now(),
	}
	s.predictions = append(s.predictions, pred)

	s.logger.WithFields(logrus.Fields{
		"user_id":    pred.UserID,
		"prediction": pred.Prediction,
	}).Info("Prediction recorded")
	return &pred, nil
}

// PredictionsOf returns the user's predictions in submission order.
func (s *Store) PredictionsOf(userID int) []models.Prediction {
	s.mu.RLock()
	defer s.mu.RUnlock()

	preds := make([]models.Prediction, 0)
	for i := range s.predictions {
		if s.predictions[i].UserID == userID {
			preds = append(preds, s.predictions[i])
		}
	}
	return preds
}

// Properties returns a copy of the property list.
func (s *Store) Properties() []models.Property {
	s.mu.RLock()
	defer s.mu.RUnlock()

	props := make([]models.Property, len(s.properties))
	copy(props, s.properties)
	return props
}

// PropertiesOf returns the properties listed by a dealer.
func (s *Store) PropertiesOf(dealerID int) []models.Property {
	s.mu.RLock()
	defer s.mu.RUnlock()

	props := make([]models.Property, 0)
	for i := range s.properties {
		if s.properties[i].DealerID == dealerID {
			props = append(props, s.properties[i])
		}
	}
	return props
}

// Neighborhoods returns a copy of the neighborhood reference data.
func (s *Store) Neighborhoods() []models.Neighborhood {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ns := make([]models.Neighborhood, len(s.neighborhoods))
	copy(ns, s.neighborhoods)
	return ns
}

// AveragePrice returns the mean listing price across all properties.
func (s *Store) AveragePrice() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.properties) == 0 {
		return 0
	}
	sum := 0
	for i := range s.properties {
		sum += s.properties[i].Price
	}
	return float64(sum) / float64(len(s.properties))
}

// UserCount returns the number of registered users.
func (s *Store) UserCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users)
}
