package interactive

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joshyorko/mansion/hamlet"
	"github.com/joshyorko/mansion/mansion"
	"github.com/joshyorko/mansion/pretty"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	root, err := mansion.Mansion()
	if err != nil {
		t.Fatalf("Mansion() failed: %v", err)
	}
	return NewApp(mansion.NewWalker(root))
}

func runes(text string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)}
}

func press(t *testing.T, app *App, msg tea.Msg) tea.Msg {
	t.Helper()
	_, cmd := app.Update(msg)
	if cmd == nil {
		return nil
	}
	return cmd()
}

func TestLettersWalkToPantry(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	sut := newTestApp(t)
	must_be.Nil(sut.Init())

	first := press(t, sut, runes("e"))
	toast, ok := first.(ToastMsg)
	must_be.True(ok)
	must_be.Equal(ToastInfo, toast.Type)
	must_be.Equal("Walking to: Dining Room", toast.Message)

	press(t, sut, runes("E"))
	last := press(t, sut, runes("e"))
	must_be.Equal(tea.QuitMsg{}, last)

	must_be.Equal(mansion.AtLeaf, sut.Walker().State())
	must_be.Equal("Pantry", sut.Walker().Current().Name)
	view := sut.View()
	must_be.True(strings.Contains(view, "You found the end of this path: Pantry."))
	must_be.True(strings.Contains(view, "Route: Entrance Hall > Dining Room > Kitchen > Pantry"))
}

func TestArrowsWalkToOffice(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	sut := newTestApp(t)
	press(t, sut, tea.KeyMsg{Type: tea.KeyRight})
	must_be.Equal("Library", sut.Walker().Current().Name)
	must_be.Equal(tea.QuitMsg{}, press(t, sut, tea.KeyMsg{Type: tea.KeyRight}))
	must_be.Equal("Office", sut.Walker().Current().Name)
}

func TestBlockedPathShowsWarning(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	sut := newTestApp(t)
	press(t, sut, runes("d"))
	press(t, sut, runes("e"))
	must_be.Equal("Winter Garden", sut.Walker().Current().Name)

	blocked := press(t, sut, runes("e"))
	toast, ok := blocked.(ToastMsg)
	must_be.True(ok)
	must_be.Equal(ToastWarning, toast.Type)
	must_be.Equal("The left path is blocked or does not exist here.", toast.Message)
	must_be.Equal("Winter Garden", sut.Walker().Current().Name)
	must_be.Equal(mansion.Exploring, sut.Walker().State())

	sut.Update(toast)
	must_be.True(strings.Contains(sut.View(), "The left path is blocked"))
}

func TestInvalidKeyShowsError(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	sut := newTestApp(t)
	invalid := press(t, sut, runes("x"))
	toast, ok := invalid.(ToastMsg)
	must_be.True(ok)
	must_be.Equal(ToastError, toast.Type)
	must_be.Equal("Entrance Hall", sut.Walker().Current().Name)
}

func TestExitKeysLeave(t *testing.T) {
	for _, msg := range []tea.KeyMsg{runes("s"), runes("S"), runes("q"), {Type: tea.KeyEsc}, {Type: tea.KeyCtrlC}} {
		t.Run(msg.String(), func(t *testing.T) {
			must_be, wont_be := hamlet.Specifications(t)

			sut := newTestApp(t)
			press(t, sut, runes("e"))
			must_be.Equal(tea.QuitMsg{}, press(t, sut, msg))
			must_be.Equal(mansion.Exited, sut.Walker().State())
			view := sut.View()
			must_be.True(strings.Contains(view, "Leaving the exploration. Until next time!"))
			wont_be.True(strings.Contains(view, "You found the end"))
		})
	}
}

func TestAnyKeyAfterTheEndQuits(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	sut := newTestApp(t)
	press(t, sut, runes("s"))
	must_be.Equal(tea.QuitMsg{}, press(t, sut, runes("e")))
	must_be.Equal("Entrance Hall", sut.Walker().Current().Name)
}

func TestToastExpires(t *testing.T) {
	must_be, wont_be := hamlet.Specifications(t)

	sut := newTestApp(t)
	sut.Update(ToastMsg{Type: ToastInfo, Message: "first", Duration: toastDuration})
	sut.Update(ToastMsg{Type: ToastInfo, Message: "second", Duration: toastDuration})

	sut.Update(ToastTimeoutMsg{ID: 1})
	must_be.True(strings.Contains(sut.View(), "second"))

	sut.Update(ToastTimeoutMsg{ID: 2})
	wont_be.True(strings.Contains(sut.View(), "second"))
}

func TestRoomPanelShowsPassages(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	sut := newTestApp(t)
	sut.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	view := sut.View()
	must_be.True(strings.Contains(view, "Entrance Hall"))
	must_be.True(strings.Contains(view, "Dining Room"))
	must_be.True(strings.Contains(view, "Library"))
	must_be.True(strings.Contains(view, "[s]"))
	must_be.Equal(100, sut.width)
}

func TestHelpToggle(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	sut := newTestApp(t)
	must_be.Nil(press(t, sut, runes("?")))
	must_be.True(sut.showHelp)
	must_be.Nil(press(t, sut, runes("?")))
	must_be.True(!sut.showHelp)
	must_be.Equal("Entrance Hall", sut.Walker().Current().Name)
}

func TestInitOnLeafQuits(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	sut := NewApp(mansion.NewWalker(&mansion.Room{Name: "Closet"}))
	cmd := sut.Init()
	must_be.Equal(tea.QuitMsg{}, cmd())
	must_be.True(strings.Contains(sut.View(), "Closet"))
}

func TestKeyMapHelp(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	must_be.Equal(4, len(keys.ShortHelp()))
	must_be.Equal(2, len(keys.FullHelp()))
}

func TestLeafViewUsesPartyIcon(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	iconic := Iconic
	defer func() { Iconic = iconic }()
	Iconic = true

	sut := NewApp(mansion.NewWalker(&mansion.Room{Name: "Closet"}))
	sut.Init()
	must_be.True(strings.Contains(sut.View(), pretty.PartyIcon+"You found the end of this path: Closet."))
}
