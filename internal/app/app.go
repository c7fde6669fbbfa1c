// Package app hosts the day-cell selection engine in a terminal. It owns
// the row layout, translates terminal mouse reports into pointer events,
// draws the row and a status line, and rebuilds the engine when the
// configuration changes.
package app

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dshills/daygrid/internal/config"
	"github.com/dshills/daygrid/internal/event"
	"github.com/dshills/daygrid/internal/plugin/lua"
	"github.com/dshills/daygrid/internal/renderer/backend"
	"github.com/dshills/daygrid/internal/selection"
)

// Application is the central coordinator for daygrid components.
// All engine calls happen on the goroutine running Run (or calling
// HandleEvent directly in tests).
type Application struct {
	mu sync.RWMutex

	// Core infrastructure
	bus     *event.Bus
	backend backend.Backend
	logger  *Logger
	now     func() time.Time

	// Per-configuration components, replaced together on reload
	cfg     *config.Config
	row     *rowView
	engine  *selection.Controller
	hooks   *lua.Hooks
	pointer *pointerTranslator

	// Presentation state
	status   string
	lastSlot *selection.Slot

	running atomic.Bool
	reloads chan reload

	opts Options
}

// Options configures the application.
type Options struct {
	// Config is the initial configuration. Required.
	Config *config.Config

	// ConfigPath is the file watched for changes when Watch is set.
	ConfigPath string

	// Watch enables live reload of ConfigPath.
	Watch bool

	// Overrides is applied to every reloaded configuration, so settings
	// given on the command line survive a reload.
	Overrides func(*config.Config) error

	// Logger receives application logs. Defaults to GetLogger().
	Logger *Logger

	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time
}

// reload carries a watcher result to the event loop.
type reload struct {
	cfg *config.Config
	err error
}

// quitRequest is the interrupt payload posted by Quit.
type quitRequest struct{}

// defaultStatus is shown until the first selection.
const defaultStatus = "click a day or drag across days"

// New creates an Application and attaches the selection engine.
func New(opts Options) (*Application, error) {
	if opts.Config == nil {
		return nil, ErrNilConfig
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	app := &Application{
		logger:  opts.Logger,
		now:     opts.Now,
		pointer: newPointerTranslator(opts.Now),
		status:  defaultStatus,
		reloads: make(chan reload, 1),
		opts:    opts,
	}

	app.Logger().SetLevel(ParseLogLevel(opts.Config.Log.Level))

	busLog := app.Logger().WithComponent("bus")
	app.bus = event.NewBus(event.WithPanicHandler(func(pe *event.PanicError) {
		busLog.Error("%v", pe)
	}))
	if err := app.subscribeLogging(); err != nil {
		return nil, &InitError{Component: "event bus", Err: err}
	}

	if err := app.configure(opts.Config); err != nil {
		return nil, &InitError{Component: "selection", Err: err}
	}
	return app, nil
}

// subscribeLogging traces every pointer event after the engine has seen it.
func (app *Application) subscribeLogging() error {
	log := app.Logger().WithComponent("pointer")
	for _, kind := range event.Kinds {
		_, err := app.bus.Subscribe(kind, func(ev event.Pointer) {
			log.Debug("%s at (%.1f, %.1f)", ev.Kind, ev.Point.X, ev.Point.Y)
		}, event.WithPriority(event.PriorityLow))
		if err != nil {
			return err
		}
	}
	return nil
}

// configure builds the row, hooks and engine for cfg and swaps them in.
// On error the previous components stay in place.
func (app *Application) configure(cfg *config.Config) error {
	engineCfg, err := cfg.EngineConfig()
	if err != nil {
		return err
	}
	row, err := newRowView(cfg, app.now())
	if err != nil {
		return err
	}

	var hooks *lua.Hooks
	if cfg.Hooks.Script != "" {
		luaLog := app.Logger().WithComponent("lua")
		hooks, err = lua.LoadHooks(cfg.Hooks.Script, lua.WithPrint(func(s string) {
			luaLog.Info("%s", s)
		}))
		if err != nil {
			return NewOperationError("load", cfg.Hooks.Script, err).WithContext("hook script")
		}
	}

	engine, err := selection.New(app.bus, row, engineCfg, app.callbacks(row, hooks))
	if err != nil {
		if hooks != nil {
			hooks.Close()
		}
		return err
	}

	app.mu.Lock()
	oldEngine, oldHooks := app.engine, app.hooks
	app.cfg, app.row, app.engine, app.hooks = cfg, row, engine, hooks
	app.mu.Unlock()

	if oldEngine != nil {
		oldEngine.Teardown()
	}
	if oldHooks != nil {
		oldHooks.Close()
	}
	app.pointer.reset()
	app.Logger().SetLevel(ParseLogLevel(cfg.Log.Level))

	return engine.Attach()
}

// SetBackend sets the terminal backend.
// Must be called before Run().
func (app *Application) SetBackend(b backend.Backend) error {
	app.mu.Lock()
	defer app.mu.Unlock()

	if app.running.Load() {
		return ErrAlreadyRunning
	}

	app.backend = b
	return nil
}

// Run starts the application main loop.
// Blocks until ctx is cancelled or a quit is requested.
func (app *Application) Run(ctx context.Context) error {
	if app.backend == nil {
		return ErrNoBackend
	}
	if !app.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer app.running.Store(false)

	if err := app.backend.Init(); err != nil {
		return &InitError{Component: "backend", Err: err}
	}
	defer app.backend.Shutdown()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if app.opts.Watch && app.opts.ConfigPath != "" {
		err := config.Watch(ctx, app.opts.ConfigPath, config.DefaultDebounce, func(cfg *config.Config, err error) {
			select {
			case app.reloads <- reload{cfg: cfg, err: err}:
			case <-ctx.Done():
			}
		})
		if err != nil {
			app.logComponentError("config", err)
		}
	}

	events := app.startInputPolling(ctx)
	app.render()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if err := app.HandleEvent(ev); err != nil {
				if errors.Is(err, ErrQuit) {
					return nil
				}
				return err
			}

		case r := <-app.reloads:
			app.applyReload(r)
		}

		app.render()
	}
}

// startInputPolling starts a goroutine that polls for input events.
// PollEvent is blocking; Run shuts the backend down after cancelling ctx,
// which unblocks it.
func (app *Application) startInputPolling(ctx context.Context) <-chan backend.Event {
	events := make(chan backend.Event, 100)

	go func() {
		defer close(events)

		for {
			ev := app.backend.PollEvent()
			if ctx.Err() != nil {
				return
			}
			if ev.Type == backend.EventNone {
				continue
			}

			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	return events
}

// applyReload installs a reloaded configuration, keeping the current one
// when loading or rebuilding fails.
func (app *Application) applyReload(r reload) {
	log := app.Logger().WithComponent("config")
	if r.err != nil {
		log.Warn("reload failed: %v", r.err)
		app.setStatus("config reload failed: " + r.err.Error())
		return
	}
	if app.opts.Overrides != nil {
		if err := app.opts.Overrides(r.cfg); err != nil {
			log.Warn("reload failed: %v", err)
			app.setStatus("config reload failed: " + err.Error())
			return
		}
	}
	if err := app.configure(r.cfg); err != nil {
		log.Warn("reload failed: %v", err)
		app.setStatus("config reload failed: " + err.Error())
		return
	}
	log.Info("configuration reloaded")
	app.setStatus("configuration reloaded")
}

// Quit asks a running loop to exit.
func (app *Application) Quit() error {
	if app.backend == nil {
		return ErrNoBackend
	}
	return app.backend.PostEvent(backend.Event{Type: backend.EventInterrupt, Data: quitRequest{}})
}

// Close detaches the engine and releases the hook script.
func (app *Application) Close() {
	app.mu.Lock()
	engine, hooks := app.engine, app.hooks
	app.hooks = nil
	app.mu.Unlock()

	if engine != nil {
		engine.Teardown()
	}
	if hooks != nil {
		hooks.Close()
	}
}

// IsRunning returns true if the application is running.
func (app *Application) IsRunning() bool {
	return app.running.Load()
}

// Bus returns the pointer event bus.
func (app *Application) Bus() *event.Bus {
	return app.bus
}

// Engine returns the current selection controller.
func (app *Application) Engine() *selection.Controller {
	app.mu.RLock()
	defer app.mu.RUnlock()
	return app.engine
}

// Config returns the active configuration.
func (app *Application) Config() *config.Config {
	app.mu.RLock()
	defer app.mu.RUnlock()
	return app.cfg
}

// Status returns the status line text.
func (app *Application) Status() string {
	app.mu.RLock()
	defer app.mu.RUnlock()
	return app.status
}

// LastSlot returns the most recent finalized slot.
func (app *Application) LastSlot() (selection.Slot, bool) {
	app.mu.RLock()
	defer app.mu.RUnlock()
	if app.lastSlot == nil {
		return selection.Slot{}, false
	}
	return *app.lastSlot, true
}

func (app *Application) setStatus(s string) {
	app.mu.Lock()
	defer app.mu.Unlock()
	app.status = s
}
