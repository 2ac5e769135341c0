package config

import "github.com/caarlos0/env/v6"

type Config struct {
	// Simulation configuration
	Simulation struct {
		// Artificial latency applied to login and registration (in milliseconds)
		AuthLatency int `env:"SIM_AUTH_LATENCY_MS" envDefault:"500"`

		// Artificial latency applied to prediction submissions (in milliseconds)
		PredictionLatency int `env:"SIM_PREDICTION_LATENCY_MS" envDefault:"1000"`
	}

	// Path of the SQLite file holding persisted UI preferences
	PreferencesPath string `env:"PREFERENCES_PATH" envDefault:"database/preferences.db"`

	// Logging level (debug, info, warn, error)
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
