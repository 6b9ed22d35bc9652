package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

var ErrInvalidDriver = errors.New("unsupported database driver")

const (
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
)

type App struct {
	DBDriver             string        `envconfig:"DB_DRIVER" default:"postgres"`
	DBConnectionURL      string        `envconfig:"DB_CONNECTION_URL" required:"true"`
	ChainsFile           string        `envconfig:"CHAINS_FILE"`
	Port                 string        `envconfig:"API_PORT" default:"8080"`
	LogLevel             string        `envconfig:"LOG_LEVEL" default:"info"`
	MaxConcurrentFetches int64         `envconfig:"MAX_CONCURRENT_FETCHES" default:"16"`
	FetchTimeout         time.Duration `envconfig:"FETCH_TIMEOUT" default:"15s"`
	FetchAttempts        uint          `envconfig:"FETCH_ATTEMPTS" default:"3"`
	AnalysisWindow       time.Duration `envconfig:"ANALYSIS_WINDOW" default:"5m"`
	TopContracts         int           `envconfig:"TOP_CONTRACTS" default:"20"`
}

func NewApp() (App, error) {
	var app App
	if err := envconfig.Process("", &app); err != nil {
		return App{}, fmt.Errorf("process environment: %w", err)
	}

	if app.DBDriver != DriverPostgres && app.DBDriver != DriverMySQL {
		return App{}, fmt.Errorf("%w: %q", ErrInvalidDriver, app.DBDriver)
	}

	if app.MaxConcurrentFetches < 1 {
		app.MaxConcurrentFetches = 1
	}

	if app.AnalysisWindow <= 0 {
		return App{}, fmt.Errorf("analysis window must be positive: %s", app.AnalysisWindow)
	}

	if app.TopContracts < 1 {
		return App{}, fmt.Errorf("top contracts must be positive: %d", app.TopContracts)
	}

	return app, nil
}
