package interactive

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joshyorko/mansion/common"
	"github.com/joshyorko/mansion/mansion"
	"github.com/joshyorko/mansion/pretty"
)

var (
	// ErrNotInteractive is returned when the walk screen has no terminal to draw on
	ErrNotInteractive = errors.New("the walk screen requires an interactive terminal (TTY)")
)

// App is the bubbletea model of the walk screen
type App struct {
	walker   *mansion.Walker
	styles   *Styles
	help     help.Model
	width    int
	height   int
	toast    *Toast
	toastSeq int64
	showHelp bool
	quitting bool
}

func NewApp(walker *mansion.Walker) *App {
	return &App{
		walker: walker,
		styles: NewStyles(),
		help:   help.New(),
		width:  80,
		height: 24,
	}
}

// Walker returns the walker the screen drives.
func (a *App) Walker() *mansion.Walker {
	return a.walker
}

// Init implements tea.Model
func (a *App) Init() tea.Cmd {
	if a.walker.State().Terminal() {
		a.quitting = true
		return tea.Quit
	}
	return nil
}

// Update implements tea.Model
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return a.onKey(msg)

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.Width = msg.Width

	case ToastMsg:
		a.toastSeq++
		a.toast = &Toast{
			ID:       a.toastSeq,
			Type:     msg.Type,
			Message:  msg.Message,
			Duration: msg.Duration,
		}
		return a, expireToast(a.toast.ID, msg.Duration)

	case ToastTimeoutMsg:
		if a.toast != nil && a.toast.ID == msg.ID {
			a.toast = nil
		}
	}
	return a, nil
}

func (a *App) onKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.walker.State().Terminal() {
		a.quitting = true
		return a, tea.Quit
	}

	var command mansion.Command
	switch {
	case key.Matches(msg, keys.Help):
		a.showHelp = !a.showHelp
		a.help.ShowAll = a.showHelp
		return a, nil
	case key.Matches(msg, keys.Left):
		command = mansion.CommandLeft
	case key.Matches(msg, keys.Right):
		command = mansion.CommandRight
	case key.Matches(msg, keys.Exit):
		command = mansion.CommandExit
	default:
		command = mansion.CommandInvalid
	}

	outcome := a.walker.Step(command)
	common.Trace("Key %q in %q: %v.", msg.String(), a.walker.Current().Name, outcome)
	switch outcome {
	case mansion.Moved:
		if a.walker.State() == mansion.AtLeaf {
			a.quitting = true
			return a, tea.Quit
		}
		return a, ShowInfoToast(fmt.Sprintf("Walking to: %s", a.walker.Current().Name))
	case mansion.Blocked:
		side := mansion.Left
		if command == mansion.CommandRight {
			side = mansion.Right
		}
		return a, ShowWarningToast(fmt.Sprintf("The %s path is blocked or does not exist here.", side))
	case mansion.Quit:
		a.quitting = true
		return a, tea.Quit
	}
	return a, ShowErrorToast(fmt.Sprintf("Invalid option. Try '%c', '%c' or '%c'.", mansion.KeyLeft, mansion.KeyRight, mansion.KeyExit))
}

// View implements tea.Model
func (a *App) View() string {
	if a.quitting {
		return a.renderFinal()
	}
	sections := []string{
		a.renderHeader(),
		a.renderRoom(),
	}
	if a.toast != nil {
		sections = append(sections, a.styles.Toast(a.toast.Type).Render(a.toast.Message))
	}
	sections = append(sections, a.renderMenu())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (a *App) renderHeader() string {
	title := a.styles.Title.Render("Mansion")
	version := a.styles.Subtle.Render(" " + common.Version)
	divider := a.styles.Divider.Render(strings.Repeat("─", max(a.width, 1)))
	return lipgloss.JoinVertical(lipgloss.Left, title+version, a.renderCrumbs(), divider)
}

func (a *App) renderCrumbs() string {
	path := a.walker.Path()
	parts := make([]string, 0, len(path))
	for at, name := range path {
		if at == len(path)-1 {
			parts = append(parts, a.styles.CrumbNow.Render(name))
		} else {
			parts = append(parts, a.styles.Crumb.Render(name))
		}
	}
	separator := a.styles.Crumb.Render(" > ")
	return strings.Join(parts, separator)
}

func (a *App) renderRoom() string {
	var b strings.Builder
	b.WriteString(a.styles.PanelTitle.Render("You are in the "))
	b.WriteString(a.styles.Room.Render(a.walker.Current().Name))
	b.WriteString("\n\n")

	left, right := a.walker.Options()
	b.WriteString(a.passage(left, "e", "Left", a.walker.Current().Left))
	b.WriteString("\n")
	b.WriteString(a.passage(right, "d", "Right", a.walker.Current().Right))
	b.WriteString("\n")
	b.WriteString(a.styles.HelpKey.Render("[s]") + " " + a.styles.Open.Render("Exit"))

	return a.styles.Panel.Render(b.String())
}

func (a *App) passage(open bool, letter, label string, room *mansion.Room) string {
	marker := a.styles.HelpKey.Render("[" + letter + "]")
	if !open {
		return marker + " " + a.styles.Closed.Render(label)
	}
	arrow := "->"
	if Iconic {
		arrow = "→"
	}
	return marker + " " + a.styles.Open.Render(label) + " " + a.styles.Subtle.Render(arrow+" "+room.Name)
}

func (a *App) renderMenu() string {
	divider := a.styles.Divider.Render(strings.Repeat("─", max(a.width, 1)))
	return lipgloss.JoinVertical(lipgloss.Left, divider, a.help.View(keys))
}

func (a *App) renderFinal() string {
	var b strings.Builder
	current := a.walker.Current().Name
	if a.walker.State() == mansion.AtLeaf {
		icon := ""
		if Iconic {
			icon = pretty.PartyIcon
		}
		b.WriteString(a.styles.Leaf.Render(fmt.Sprintf("%sYou found the end of this path: %s.", icon, current)))
	} else {
		b.WriteString(a.styles.Subtle.Render("Leaving the exploration. Until next time!"))
	}
	b.WriteString("\n")
	b.WriteString(a.styles.Crumb.Render("Route: " + strings.Join(a.walker.Path(), " > ")))
	b.WriteString("\n")
	return b.String()
}

// Run shows the walk screen until the walk is over and returns the walker
// in its final state.
func Run(walker *mansion.Walker, options ...tea.ProgramOption) (*mansion.Walker, error) {
	app := NewApp(walker)
	model, err := tea.NewProgram(app, options...).Run()
	if err != nil {
		return nil, fmt.Errorf("walk screen: %w", err)
	}
	if final, ok := model.(*App); ok {
		return final.walker, nil
	}
	return walker, nil
}
