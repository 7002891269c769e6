package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/specialistvlad/graphstep/internal/config"
	"github.com/specialistvlad/graphstep/internal/console"
	"github.com/specialistvlad/graphstep/internal/ctxlog"
	"github.com/specialistvlad/graphstep/internal/graph"
	"github.com/specialistvlad/graphstep/internal/metrics"
	"github.com/specialistvlad/graphstep/internal/playback"
	"github.com/specialistvlad/graphstep/internal/registry"
	"github.com/specialistvlad/graphstep/internal/render"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW       io.Writer
	inR        io.Reader
	logger     *slog.Logger
	config     *Config
	model      *config.Model
	registry   *registry.Registry
	graph      *graph.Model
	promReg    *prometheus.Registry
	metrics    *metrics.Metrics
	renderers  *render.Fanout
	controller *playback.Controller
	parser     *console.Parser
	httpServer *http.Server
}

// Option configures an App.
type Option func(*appOptions)

type appOptions struct {
	modules []registry.Module
	clock   playback.Clock
}

// WithModules replaces the built-in renderer modules.
func WithModules(modules ...registry.Module) Option {
	return func(o *appOptions) { o.modules = modules }
}

// WithClock replaces the playback wall clock.
func WithClock(c playback.Clock) Option {
	return func(o *appOptions) { o.clock = c }
}

// NewApp is the constructor for the main application. It loads the graph
// file, builds the renderers and wires the controller. Console commands are
// read from inR; a nil inR disables the console.
func NewApp(ctx context.Context, outW io.Writer, inR io.Reader, appConfig *Config, opts ...Option) (*App, error) {
	o := appOptions{modules: coreModules}
	for _, opt := range opts {
		opt(&o)
	}

	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, outW)
	ctx = ctxlog.WithLogger(ctx, logger)
	logger.Debug("Logger configured successfully.")

	model, err := loadModel(ctx, appConfig)
	if err != nil {
		return nil, err
	}

	g, gen, err := buildGraph(model)
	if err != nil {
		return nil, err
	}
	alg, start, err := playbackSelection(model, g)
	if err != nil {
		return nil, fmt.Errorf("invalid playback selection: %w", err)
	}
	logger.Debug("Graph built.", "nodes", g.Len(), "edges", len(g.Edges()), "algorithm", alg.String(), "start", start.String())

	promReg := prometheus.NewRegistry()
	promReg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(promReg)

	reg := registry.New()
	for _, mod := range o.modules {
		mod.Register(reg)
	}
	logger.Debug("All Go modules registered.", "count", len(o.modules), "renderers", reg.Names())

	fan := render.NewFanout(m)
	if err := reg.Build(ctx, model.Renderers, outW, fan); err != nil {
		return nil, err
	}

	ctlOpts := []playback.Option{playback.WithMetrics(m)}
	if o.clock != nil {
		ctlOpts = append(ctlOpts, playback.WithClock(o.clock))
	}
	ctl, err := playback.New(g, fan, playback.Config{
		Algorithm: alg,
		Start:     start,
		Interval:  time.Duration(model.Playback.SpeedMs) * time.Millisecond,
	}, ctlOpts...)
	if err != nil {
		_ = fan.Close(ctx)
		return nil, err
	}

	return &App{
		outW:       outW,
		inR:        inR,
		logger:     logger,
		config:     appConfig,
		model:      model,
		registry:   reg,
		graph:      g,
		promReg:    promReg,
		metrics:    m,
		renderers:  fan,
		controller: ctl,
		parser:     console.NewParser(g, gen, outW),
	}, nil
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}

// Graph returns the graph model.
func (a *App) Graph() *graph.Model {
	return a.graph
}

// Controller returns the playback controller. It must not be used while Run
// is executing.
func (a *App) Controller() *playback.Controller {
	return a.controller
}

// Model returns the loaded configuration after overrides.
func (a *App) Model() *config.Model {
	return a.model
}
