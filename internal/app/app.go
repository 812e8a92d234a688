package app

import (
	"context"
	"fmt"

	"github.com/shophub/shopfront/internal/config"
	"github.com/shophub/shopfront/internal/prefs"
	"github.com/shophub/shopfront/internal/session"
	"github.com/shophub/shopfront/internal/shop"
	"github.com/shophub/shopfront/internal/state"
	"github.com/shophub/shopfront/internal/ui"
)

// Options configure the shopfront application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/shopfront/prefs.toml
	APIURL     string // overrides the configured API URL when set
}

// Run boots the shopfront TUI until the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if opts.APIURL != "" {
		cfg.APIURL = opts.APIURL
	}

	userPrefs, err := prefs.Load(opts.PrefsPath)
	if err != nil {
		return fmt.Errorf("load prefs: %w", err)
	}

	sess, err := session.Load(cfg.SessionPath)
	if err != nil {
		return fmt.Errorf("load session: %w", err)
	}

	client, err := shop.NewClient(cfg.APIURL, sess)
	if err != nil {
		return fmt.Errorf("init shop client: %w", err)
	}

	store := &state.Store{}

	// Warm the store before the UI starts so a returning user sees data
	// on the first frame instead of loading screens.
	if sess.Authenticated() {
		Prefetch(ctx, store, client)
	}

	return ui.Run(ui.Options{
		Context:   ctx,
		Client:    client,
		Session:   sess,
		Store:     store,
		ThemeName: userPrefs.Theme,
		SortName:  userPrefs.Sort,
		PrefsPath: opts.PrefsPath,
	})
}
