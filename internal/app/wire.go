package app

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"

	"shakecalc/internal/domain"
	"shakecalc/internal/haptic"
	"shakecalc/internal/metrics"
	"shakecalc/internal/motion"
	"shakecalc/internal/services/calculator"
	"shakecalc/internal/store"
)

// WireOptions carries the collaborators that depend on how the app runs.
type WireOptions struct {
	Log       *zap.Logger     // optional; defaults to a no-op logger
	Notifier  domain.Notifier // optional; where shake notices go
	HapticOut io.Writer       // where the bell rings; nil disables haptics
}

// Wire bundles the store, devices and services for the CLI.
type Wire struct {
	Config     *Config
	Log        *zap.Logger
	Prefs      domain.PreferenceStore
	Haptic     domain.Haptic
	Calculator *calculator.Service

	// Motion is nil when no motion source is configured.
	Motion domain.MotionSource
	// HTTPMotion is set when Motion receives samples over HTTP.
	HTTPMotion *motion.HTTPSource

	closers []io.Closer
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg *Config, opts WireOptions) (*Wire, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	log := opts.Log
	if log == nil {
		log = zap.NewNop()
	}

	w := &Wire{Config: cfg, Log: log}

	prefs, err := w.newPreferenceStore()
	if err != nil {
		return nil, err
	}
	w.Prefs = prefs

	w.Haptic = haptic.Nop{}
	if cfg.Haptic.Enabled && opts.HapticOut != nil {
		w.Haptic = haptic.NewBell(opts.HapticOut)
	}

	w.Calculator = calculator.New(w.Prefs, w.Haptic, opts.Notifier, log.Named("calculator"), calculator.Config{
		Threshold: cfg.Shake.Threshold,
		Gravity:   cfg.Shake.Gravity,
	})

	switch cfg.Motion.Source {
	case SourceFile:
		w.Motion = motion.NewFileSource(cfg.Motion.File, cfg.Motion.Follow, log.Named("motion"))
	case SourceHTTP:
		w.HTTPMotion = motion.NewHTTPSource(log.Named("motion"))
		w.Motion = w.HTTPMotion
	}

	log.Debug("wired app",
		zap.String("store", cfg.Store.Backend),
		zap.String("store_path", cfg.StorePath()),
		zap.Bool("sealed", cfg.Store.Passphrase != ""),
		zap.String("motion", cfg.Motion.Source))
	return w, nil
}

func (w *Wire) newPreferenceStore() (domain.PreferenceStore, error) {
	cfg := w.Config
	switch cfg.Store.Backend {
	case BackendMemory:
		return store.NewMemoryStore(), nil
	case BackendSQLite:
		s, err := store.NewSQLiteStore(cfg.StorePath())
		if err != nil {
			return nil, err
		}
		w.closers = append(w.closers, s)
		return s, nil
	case BackendFile:
		if cfg.Store.Passphrase != "" {
			return store.NewSealedFileStore(cfg.StorePath(), cfg.Store.Passphrase), nil
		}
		return store.NewPrefsFileStore(cfg.StorePath()), nil
	}
	return nil, fmt.Errorf("%w: unknown store backend %q", ErrInvalidConfig, cfg.Store.Backend)
}

// Handler returns the HTTP surface: POST /motion when motion arrives over
// HTTP, and /metrics when metrics are enabled.
func (w *Wire) Handler() http.Handler {
	mux := http.NewServeMux()
	if w.HTTPMotion != nil {
		w.HTTPMotion.Register(mux)
	}
	if w.Config.Metrics.Enabled {
		mux.Handle(metrics.Path, metrics.Handler())
	}
	return accessLog(w.Log.Named("http"), mux)
}

// Close releases resources held by the wired components.
func (w *Wire) Close() error {
	var errs []error
	for _, c := range w.closers {
		errs = append(errs, c.Close())
	}
	w.closers = nil
	return errors.Join(errs...)
}
