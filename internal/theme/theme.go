package theme

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"
)

// Theme values. Anything else is treated as "no saved preference" and the
// presentation stays at its system default.
const (
	Light = "light"
	Dark  = "dark"
)

const themeKey = "theme"

// Preference is one persisted key/value pair.
type Preference struct {
	Key   string `gorm:"primaryKey"`
	Value string
}

// Store persists UI preferences across restarts. The theme choice is the
// one datum that survives a restart; application data never does.
type Store struct {
	db     *gorm.DB
	logger *logrus.Logger
}

func NewStore(path string, logger *logrus.Logger) (*Store, error) {
	if logger == nil {
		logger = logrus.New()
		logger.SetFormatter(&logrus.JSONFormatter{})
		logger.SetOutput(os.Stdout)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create preferences directory: %w", err)
		}
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open preferences database: %w", err)
	}
	if err := db.AutoMigrate(&Preference{}); err != nil {
		return nil, fmt.Errorf("failed to migrate preferences schema: %w", err)
	}

	return &Store{db: db, logger: logger}, nil
}

// Load returns the saved theme, or the empty string when nothing valid was
// saved.
func (s *Store) Load() (string, error) {
	var pref Preference
	err := s.db.First(&pref, "key = ?", themeKey).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to load theme preference: %w", err)
	}
	if pref.Value != Light && pref.Value != Dark {
		return "", nil
	}
	return pref.Value, nil
}

// Save stores the theme choice, replacing any previous one.
func (s *Store) Save(value string) error {
	err := s.db.Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&Preference{Key: themeKey, Value: value}).Error
	if err != nil {
		return fmt.Errorf("failed to save theme preference: %w", err)
	}
	s.logger.WithField("theme", value).Debug("Saved theme preference")
	return nil
}

// Toggle flips dark to light and anything else to dark, persists the
// result and returns it.
func (s *Store) Toggle() (string, error) {
	current, err := s.Load()
	if err != nil {
		return "", err
	}

	next := Dark
	if current == Dark {
		next = Light
	}
	if err := s.Save(next); err != nil {
		return "", err
	}
	return next, nil
}
