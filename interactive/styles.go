package interactive

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles holds the lipgloss styles of the walk screen.
type Styles struct {
	theme Theme

	Title    lipgloss.Style
	Subtle   lipgloss.Style
	Room     lipgloss.Style
	Leaf     lipgloss.Style
	Divider  lipgloss.Style
	Crumb    lipgloss.Style
	CrumbNow lipgloss.Style

	Panel      lipgloss.Style
	PanelTitle lipgloss.Style

	Open   lipgloss.Style
	Closed lipgloss.Style

	HelpKey  lipgloss.Style
	HelpDesc lipgloss.Style

	ToastInfo    lipgloss.Style
	ToastSuccess lipgloss.Style
	ToastWarning lipgloss.Style
	ToastError   lipgloss.Style
}

func NewStyles() *Styles {
	return NewStylesWithTheme(DefaultTheme())
}

func NewStylesWithTheme(theme Theme) *Styles {
	toast := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)

	return &Styles{
		theme: theme,

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.TextBright).
			Background(theme.Primary).
			Padding(0, 1),

		Subtle: lipgloss.NewStyle().
			Foreground(theme.TextMuted),

		Room: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Accent),

		Leaf: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Success),

		Divider: lipgloss.NewStyle().
			Foreground(theme.BorderDim),

		Crumb: lipgloss.NewStyle().
			Foreground(theme.TextMuted),

		CrumbNow: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Secondary),

		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(1, 2),

		PanelTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Primary),

		Open: lipgloss.NewStyle().
			Foreground(theme.Text),

		Closed: lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Strikethrough(true),

		HelpKey: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Accent),

		HelpDesc: lipgloss.NewStyle().
			Foreground(theme.TextMuted),

		ToastInfo:    toast.BorderForeground(theme.Info),
		ToastSuccess: toast.BorderForeground(theme.Success),
		ToastWarning: toast.BorderForeground(theme.Warning),
		ToastError:   toast.BorderForeground(theme.Error),
	}
}

func (s *Styles) Toast(kind ToastType) lipgloss.Style {
	switch kind {
	case ToastSuccess:
		return s.ToastSuccess
	case ToastWarning:
		return s.ToastWarning
	case ToastError:
		return s.ToastError
	default:
		return s.ToastInfo
	}
}
