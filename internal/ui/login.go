package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// loginForm holds the sign-in / sign-up screen state. The same two
// fields serve both modes; signup toggles which endpoint a submit hits.
type loginForm struct {
	inputs [2]textinput.Model // username, password
	focus  int
	signup bool
	busy   bool
}

func newLoginForm() loginForm {
	username := textinput.New()
	username.Placeholder = "username"
	username.CharLimit = 64
	username.Width = 28
	username.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.CharLimit = 64
	password.Width = 28
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'

	return loginForm{inputs: [2]textinput.Model{username, password}}
}

func (f *loginForm) setFocus(idx int) {
	f.focus = idx
	for i := range f.inputs {
		if i == idx {
			f.inputs[i].Focus()
		} else {
			f.inputs[i].Blur()
		}
	}
}

// handleLoginKey processes keyboard input for the login screen.
func (m Model) handleLoginKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.loginForm.busy {
		return m, nil
	}

	switch msg.String() {
	case "esc":
		return m, tea.Quit

	case "tab", "shift+tab", "down", "up":
		// Two fields, so forward and backward land on the same place.
		m.loginForm.setFocus((m.loginForm.focus + 1) % 2)
		return m, nil

	case "ctrl+s":
		m.loginForm.signup = !m.loginForm.signup
		m.notice = ""
		m.errorMsg = ""
		return m, nil

	case "enter":
		if m.loginForm.focus == 0 {
			m.loginForm.setFocus(1)
			return m, nil
		}
		return m.submitLogin()
	}

	var cmd tea.Cmd
	m.loginForm.inputs[m.loginForm.focus], cmd = m.loginForm.inputs[m.loginForm.focus].Update(msg)
	return m, cmd
}

// submitLogin validates the form and dispatches the credential call.
func (m Model) submitLogin() (tea.Model, tea.Cmd) {
	username := strings.TrimSpace(m.loginForm.inputs[0].Value())
	password := m.loginForm.inputs[1].Value()

	if username == "" || password == "" {
		m.errorMsg = "Username and password are required"
		return m, nil
	}

	m.loginForm.busy = true
	m.errorMsg = ""
	m.notice = ""

	if m.loginForm.signup {
		return m, signupCmd(m.ctx, m.client, username, password)
	}
	return m, loginCmd(m.ctx, m.client, username, password)
}

func (m Model) handleLoginDone(msg loginDoneMsg) (tea.Model, tea.Cmd) {
	m.loginForm.busy = false
	if msg.err != nil {
		// Show the server's message verbatim; for bad credentials that
		// is "Invalid username or password".
		m.errorMsg = msg.err.Error()
		return m, nil
	}

	m.notice = msg.result.Message
	if m.sess != nil {
		if err := m.sess.Set(msg.result.Token, msg.result.UserID); err != nil {
			// The token still works for this run even when it could not
			// be written to disk.
			m.notice = "Signed in (session not saved)"
		}
	}

	m.currentView = ViewCatalog
	m.loginForm = newLoginForm()
	m.errorMsg = ""
	return m, tea.Batch(
		loadCatalogCmd(m.ctx, m.client, m.store),
		loadCartCmd(m.ctx, m.client, m.store),
	)
}

func (m Model) handleSignupDone(msg signupDoneMsg) (tea.Model, tea.Cmd) {
	m.loginForm.busy = false
	if msg.err != nil {
		m.errorMsg = msg.err.Error()
		return m, nil
	}

	// Account exists now; flip back to sign-in with the username kept.
	m.loginForm.signup = false
	m.loginForm.inputs[1].SetValue("")
	m.loginForm.setFocus(1)
	m.notice = msg.result.Message
	m.errorMsg = ""
	return m, nil
}

// renderLogin renders the centered credential form.
func (m Model) renderLogin() string {
	styles := m.theme.Styles()

	mode := "Sign in"
	hint := "Ctrl+S: Create account"
	if m.loginForm.signup {
		mode = "Create account"
		hint = "Ctrl+S: Sign in instead"
	}

	var b strings.Builder
	b.WriteString(styles.Logo.Render("ShopHub"))
	b.WriteString("  ")
	b.WriteString(styles.MutedText.Render(mode))
	b.WriteString("\n\n")
	b.WriteString(m.loginForm.inputs[0].View())
	b.WriteString("\n")
	b.WriteString(m.loginForm.inputs[1].View())
	b.WriteString("\n\n")

	switch {
	case m.loginForm.busy:
		b.WriteString(styles.WarningText.Render("Contacting server..."))
	case m.errorMsg != "":
		b.WriteString(styles.DangerText.Render(truncate(m.errorMsg, 48)))
	case m.notice != "":
		b.WriteString(styles.SuccessText.Render(truncate(m.notice, 48)))
	default:
		b.WriteString(styles.FaintText.Render("Enter: Submit"))
	}
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(hint))

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.Border)).
		Padding(1, 3).
		Render(b.String())

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
