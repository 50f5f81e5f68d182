package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/reportcard/internal/nav"
	"github.com/abhisek/reportcard/internal/router"
	"github.com/abhisek/reportcard/internal/screen"
	"github.com/abhisek/reportcard/internal/screens/chapter"
	"github.com/abhisek/reportcard/internal/screens/placeholder"
	"github.com/abhisek/reportcard/internal/screens/report"
	"github.com/abhisek/reportcard/internal/screens/subject"
	"github.com/abhisek/reportcard/internal/ui/layout"
	"github.com/abhisek/reportcard/internal/viewmodel"
)

// AppModel is the root Bubble Tea model. Screens emit view-model events;
// AppModel applies them to the session and keeps the router's stack in step
// with the navigation state.
type AppModel struct {
	session *viewmodel.Session
	router  *router.Router
	logger  *zap.Logger
	width   int
	height  int
}

// New creates an AppModel showing the session's current screen.
func New(session *viewmodel.Session, logger *zap.Logger) AppModel {
	if logger == nil {
		logger = zap.NewNop()
	}
	m := AppModel{
		session: session,
		router:  router.New(report.New(session)),
		logger:  logger,
	}
	m.reconcile()
	return m
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, screen.Emit(viewmodel.GoBack{})
			}
		}

	case viewmodel.Event:
		return m, m.apply(msg)
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

// apply runs ev against the session. Rejected events leave the state as it
// was and are only logged.
func (m AppModel) apply(ev viewmodel.Event) tea.Cmd {
	before := m.session.Model().Nav
	if err := m.session.Apply(ev); err != nil {
		m.logger.Warn("event rejected",
			zap.String("event", ev.EventName()),
			zap.String("screen", string(before.Screen)),
			zap.Error(err))
		return nil
	}
	after := m.session.Model().Nav
	if after != before {
		m.logger.Info("navigated",
			zap.String("event", ev.EventName()),
			zap.String("from", string(before.Screen)),
			zap.String("to", string(after.Screen)),
			zap.String("subject", after.Subject),
			zap.String("chapter", after.Chapter))
	} else {
		m.logger.Debug("event applied", zap.String("event", ev.EventName()))
	}
	return m.reconcile()
}

// reconcile pops or pushes screens until the router depth matches the
// navigation depth.
func (m AppModel) reconcile() tea.Cmd {
	state := m.session.Model().Nav
	target := state.Screen.Depth()
	if target <= 1 {
		m.router.Reset()
		return nil
	}
	for m.router.Depth() > target {
		m.router.Pop()
	}

	var cmds []tea.Cmd
	for m.router.Depth() < target {
		switch m.router.Depth() + 1 {
		case nav.ScreenSubject.Depth():
			cmds = append(cmds, m.router.Push(subject.New(m.session)))
		case nav.ScreenChapter.Depth():
			cmds = append(cmds, m.router.Push(m.chapterScreen(state)))
		}
	}
	return tea.Batch(cmds...)
}

func (m AppModel) chapterScreen(state nav.State) screen.Screen {
	if cv := m.session.View().Chapter; cv != nil && cv.Missing {
		m.logger.Warn("chapter lookup miss",
			zap.String("subject", state.Subject),
			zap.String("chapter", state.Chapter))
		return placeholder.New(state.Chapter,
			fmt.Sprintf("No data for %s in %s.", state.Chapter, state.Subject),
			nav.ScreenChapter)
	}
	return chapter.New(m.session)
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}
	v.SetContent(m.render())
	return v
}

// render draws the header, active screen and footer for the current size.
func (m AppModel) render() string {
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	hv := m.session.View().Header
	header := layout.RenderHeader(title, hv.Student+" · "+hv.QuarterLabel, m.width)

	var footerHints []layout.KeyHint
	if p, ok := active.(screen.KeyHintProvider); ok {
		footerHints = p.KeyHints()
	}
	footerHints = append(footerHints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// Run starts the Bubble Tea program.
func Run(session *viewmodel.Session, logger *zap.Logger) error {
	p := tea.NewProgram(New(session, logger))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
