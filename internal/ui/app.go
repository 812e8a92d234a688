package ui

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/shophub/shopfront/internal/prefs"
	"github.com/shophub/shopfront/internal/session"
	"github.com/shophub/shopfront/internal/shop"
	"github.com/shophub/shopfront/internal/state"
)

// View represents the current active screen.
type View int

const (
	ViewLogin View = iota
	ViewCatalog
	ViewCart
	ViewOrders
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	Client    shop.API
	Session   *session.Session
	Store     *state.Store
	ThemeName string
	SortName  string
	PrefsPath string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	client    shop.API
	sess      *session.Session
	store     *state.Store
	prefsPath string

	// UI state
	theme       Theme
	currentView View
	width       int
	height      int
	ready       bool

	// Data state
	snapshot state.Snapshot

	// Login form state
	loginForm loginForm

	// Catalog state
	search     searchState
	category   string
	sortKey    state.SortKey
	catalogRow int

	// Cart / orders selection
	cartRow   int
	ordersRow int

	// Transient feedback shown in the header
	notice   string
	errorMsg string
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = "Slate"
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	view := ViewLogin
	if opts.Session != nil && opts.Session.Authenticated() {
		view = ViewCatalog
	}

	return Model{
		ctx:         ctx,
		client:      opts.Client,
		sess:        opts.Session,
		store:       opts.Store,
		prefsPath:   prefsPath,
		theme:       GetTheme(themeName),
		currentView: view,
		loginForm:   newLoginForm(),
		search:      newSearchState(),
		category:    state.AllCategories,
		sortKey:     sortKeyFromPref(opts.SortName),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{tea.EnterAltScreen}
	if m.currentView != ViewLogin {
		// A stored session skips the login screen; prefetch the data
		// both landing screens need.
		cmds = append(cmds,
			loadCatalogCmd(m.ctx, m.client, m.store),
			loadCartCmd(m.ctx, m.client, m.store),
		)
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case loginDoneMsg:
		return m.handleLoginDone(msg)

	case signupDoneMsg:
		return m.handleSignupDone(msg)

	case catalogLoadedMsg:
		m.refreshSnapshot()
		m.clampCatalogRow()
		if msg.err != nil {
			m.errorMsg = msg.err.Error()
		}
		return m, nil

	case cartLoadedMsg:
		m.refreshSnapshot()
		m.clampCartRow()
		if msg.err != nil {
			m.errorMsg = msg.err.Error()
		}
		return m, nil

	case addDoneMsg:
		if msg.err != nil {
			// The optimistic badge increment has to come back out, or a
			// failed add leaves the badge inflated until the next fetch.
			m.store.RollbackBadge(msg.quantity)
			m.refreshSnapshot()
			m.errorMsg = msg.err.Error()
			return m, nil
		}
		m.refreshSnapshot()
		m.notice = "Added to cart"
		return m, loadCartCmd(m.ctx, m.client, m.store)

	case removeDoneMsg:
		if msg.err != nil {
			m.errorMsg = msg.err.Error()
			return m, nil
		}
		m.notice = "Removed from cart"
		return m, loadCartCmd(m.ctx, m.client, m.store)

	case checkoutDoneMsg:
		return m.handleCheckoutDone(msg)

	case ordersLoadedMsg:
		m.refreshSnapshot()
		m.clampOrdersRow()
		if msg.err != nil {
			m.errorMsg = msg.err.Error()
		}
		return m, nil
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.currentView == ViewLogin {
		return m.renderLogin()
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderCommandBar())
	b.WriteString("\n")
	b.WriteString(m.renderContent())
	return b.String()
}

// renderContent renders the main content area based on current view.
func (m Model) renderContent() string {
	switch m.currentView {
	case ViewCatalog:
		return m.renderCatalog()
	case ViewCart:
		return m.renderCart()
	case ViewOrders:
		return m.renderOrders()
	default:
		return ""
	}
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.currentView == ViewLogin {
		return m.handleLoginKey(msg)
	}

	// Search input captures all keys while active.
	if m.search.active {
		return m.handleSearchKey(msg)
	}

	// Global keys for authenticated views
	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "T":
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.savePrefs()
		return m, nil

	case "L":
		return m.logout()

	case "b":
		m.currentView = ViewCart
		m.notice = ""
		return m, loadCartCmd(m.ctx, m.client, m.store)

	case "o":
		m.currentView = ViewOrders
		m.notice = ""
		return m, loadOrdersCmd(m.ctx, m.client, m.store)

	case "r":
		return m.refreshCurrentView()
	}

	switch m.currentView {
	case ViewCatalog:
		return m.handleCatalogKey(msg)
	case ViewCart:
		return m.handleCartKey(msg)
	case ViewOrders:
		return m.handleOrdersKey(msg)
	}

	return m, nil
}

// refreshCurrentView re-fetches the data behind the active screen.
func (m Model) refreshCurrentView() (tea.Model, tea.Cmd) {
	m.notice = ""
	m.errorMsg = ""
	switch m.currentView {
	case ViewCart:
		return m, loadCartCmd(m.ctx, m.client, m.store)
	case ViewOrders:
		return m, loadOrdersCmd(m.ctx, m.client, m.store)
	default:
		return m, tea.Batch(
			loadCatalogCmd(m.ctx, m.client, m.store),
			loadCartCmd(m.ctx, m.client, m.store),
		)
	}
}

// logout clears the stored credential and drops every snapshot so the
// next user starts from nothing.
func (m Model) logout() (tea.Model, tea.Cmd) {
	if m.sess != nil {
		_ = m.sess.Clear()
	}
	m.store.Reset()
	m.refreshSnapshot()

	m.currentView = ViewLogin
	m.loginForm = newLoginForm()
	m.search = newSearchState()
	m.category = state.AllCategories
	m.catalogRow = 0
	m.cartRow = 0
	m.ordersRow = 0
	m.notice = "Signed out"
	m.errorMsg = ""
	return m, nil
}

func (m *Model) refreshSnapshot() {
	m.snapshot = m.store.Snapshot()
}

func (m *Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	_ = prefs.Save(m.prefsPath, prefs.Prefs{
		Theme: m.theme.Name,
		Sort:  sortPrefValue(m.sortKey),
	})
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
