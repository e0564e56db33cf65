package app

import (
	"io"
	"log/slog"

	"github.com/amirasaad/fxcli/pkg/config"
	"github.com/amirasaad/fxcli/pkg/help"
	"github.com/amirasaad/fxcli/pkg/history"
	"github.com/amirasaad/fxcli/pkg/prediction"
	"github.com/amirasaad/fxcli/pkg/rates"
	"github.com/amirasaad/fxcli/pkg/service/exchange"
	"github.com/amirasaad/fxcli/pkg/storage"
)

// Deps contains the infrastructure the services are built on
type Deps struct {
	Logger       *slog.Logger
	SessionID    string
	Rates        rates.Table
	HistoryStore storage.Store
	HelpStore    storage.Store
	// Closer releases the log output when it is a file. May be nil.
	Closer io.Closer
}

type App struct {
	Deps      *Deps
	Config    *config.App
	History   *history.Log
	Exchange  *exchange.Service
	Predictor *prediction.Generator
	Help      *help.Repository
}

// Option customizes the services built by New.
type Option func(*options)

type options struct {
	exchange   []exchange.Option
	prediction []prediction.Option
}

// WithExchangeOptions passes options to the exchange service.
func WithExchangeOptions(opts ...exchange.Option) Option {
	return func(o *options) { o.exchange = append(o.exchange, opts...) }
}

// WithPredictionOptions passes options to the prediction generator.
func WithPredictionOptions(opts ...prediction.Option) Option {
	return func(o *options) { o.prediction = append(o.prediction, opts...) }
}

func New(deps *Deps, cfg *config.App, opts ...Option) *App {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	app := &App{
		Deps:   deps,
		Config: cfg,
	}
	app.History = history.New(deps.HistoryStore, deps.Logger)
	app.Exchange = exchange.New(deps.Rates, app.History,
		append([]exchange.Option{exchange.WithLogger(deps.Logger)}, o.exchange...)...)
	app.Predictor = prediction.New(
		append([]prediction.Option{prediction.WithLogger(deps.Logger)}, o.prediction...)...)
	app.Help = help.NewRepository(deps.HelpStore, deps.Logger)
	return app
}

// Close releases resources held by the dependencies.
func (a *App) Close() error {
	if a.Deps == nil || a.Deps.Closer == nil {
		return nil
	}
	return a.Deps.Closer.Close()
}
