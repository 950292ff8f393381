// Package tui is the terminal front end of the upload widget. Dropping files
// on the terminal (a bracketed paste of their paths) is the drop surface, the
// file picker is the picker, and "u" is the upload button.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/BerylCAtieno/document-summarizer-widget/internal/utils"
	"github.com/BerylCAtieno/document-summarizer-widget/internal/widget"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type focus int

const (
	focusPicker focus = iota
	focusDrop
)

type uploadDoneMsg struct {
	outcome widget.Outcome
}

type Options struct {
	Context  context.Context
	Uploader widget.Uploader
	Widget   widget.Config
	Length   string
	StartDir string
	Endpoint string
	Logger   *utils.Logger
}

type Model struct {
	ctx    context.Context
	widget *widget.Widget
	screen *screen
	logger *utils.Logger

	picker  filepicker.Model
	drop    textinput.Model
	spinner spinner.Model
	snippet viewport.Model

	focus    focus
	endpoint string
	width    int
	height   int
}

func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	logger := opts.Logger
	if logger == nil {
		logger = utils.NopLogger()
	}
	if opts.Widget.Logger == nil {
		opts.Widget.Logger = logger
	}

	scr := newScreen(opts.Length)

	fp := filepicker.New()
	if opts.StartDir != "" {
		fp.CurrentDirectory = opts.StartDir
	}
	fp.Height = 8

	in := textinput.New()
	in.Placeholder = "drop a file here or type its path"
	in.Prompt = "» "

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = StatusStyle

	return Model{
		ctx:      ctx,
		widget:   widget.New(scr, opts.Uploader, opts.Widget),
		screen:   scr,
		logger:   logger,
		picker:   fp,
		drop:     in,
		spinner:  sp,
		snippet:  viewport.New(76, 8),
		focus:    focusPicker,
		endpoint: opts.Endpoint,
	}
}

func (m Model) Init() tea.Cmd {
	return m.picker.Init()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.snippet.Width = max(msg.Width-6, 20)
		m.snippet.Height = max(msg.Height/3, 4)
		m.picker.Height = max(msg.Height/4, 4)
		return m, nil

	case uploadDoneMsg:
		m.widget.Finish(msg.outcome)
		m.snippet.SetContent(m.screen.snippet)
		m.snippet.GotoTop()
		return m, nil

	case spinner.TickMsg:
		if m.widget.InFlight() == 0 {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if m.screen.alert != "" {
			m.screen.alert = ""
			return m, nil
		}
		if msg.Paste {
			return m.dropText(string(msg.Runes))
		}
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if msg.Type == tea.KeyTab {
			return m.toggleFocus()
		}
		if m.focus == focusDrop {
			return m.updateDrop(msg)
		}

		switch msg.String() {
		case "q":
			return m, tea.Quit
		case "s":
			m.screen.cycleLength()
			return m, nil
		case "u":
			return m.start(m.widget.Click())
		case "pgup", "pgdown", "ctrl+u", "ctrl+d":
			if m.screen.resultVisible {
				var cmd tea.Cmd
				m.snippet, cmd = m.snippet.Update(msg)
				return m, cmd
			}
		}
	}

	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)
	if didSelect, path := m.picker.DidSelectFile(msg); didSelect {
		next, uploadCmd := m.pick(path)
		return next, tea.Batch(cmd, uploadCmd)
	}
	return m, cmd
}

func (m Model) toggleFocus() (tea.Model, tea.Cmd) {
	if m.focus == focusPicker {
		m.focus = focusDrop
		return m, m.drop.Focus()
	}
	m.focus = focusPicker
	m.drop.Blur()
	return m, nil
}

func (m Model) updateDrop(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		text := m.drop.Value()
		m.drop.Reset()
		return m.dropText(text)
	case tea.KeyEsc:
		m.focus = focusPicker
		m.drop.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.drop, cmd = m.drop.Update(msg)
	return m, cmd
}

func (m Model) dropText(text string) (tea.Model, tea.Cmd) {
	paths := ParseDroppedPaths(text)
	if len(paths) == 0 {
		return m, nil
	}
	files, err := widget.ReadFiles(paths)
	if err != nil {
		m.logger.Warn("Dropped file unreadable", "error", err)
		m.screen.ShowStatus(fmt.Sprintf("Cannot read dropped file: %v", err))
		return m, nil
	}
	return m.start(m.widget.Drop(files))
}

func (m Model) pick(path string) (tea.Model, tea.Cmd) {
	file, err := widget.ReadFile(path)
	if err != nil {
		m.logger.Warn("Picked file unreadable", "error", err)
		m.screen.ShowStatus(fmt.Sprintf("Cannot read selected file: %v", err))
		return m, nil
	}
	return m.start(m.widget.Pick([]widget.File{file}))
}

// start hands a submission to the runtime. The request runs in a command and
// its outcome comes back to Update as an uploadDoneMsg.
func (m Model) start(sub *widget.Submission, err error) (tea.Model, tea.Cmd) {
	if err != nil || sub == nil {
		return m, nil
	}
	ctx := m.ctx
	run := func() tea.Msg {
		return uploadDoneMsg{outcome: sub.Run(ctx)}
	}
	return m, tea.Batch(run, m.spinner.Tick)
}

func (m Model) View() string {
	var b strings.Builder

	title := TitleStyle.Render("Document summarizer")
	if m.endpoint != "" {
		title += " " + HelpStyle.Render(m.endpoint)
	}
	b.WriteString(title + "\n\n")

	dropStyle, pickerStyle := PaneStyle, FocusedPaneStyle
	if m.focus == focusDrop {
		dropStyle, pickerStyle = FocusedPaneStyle, PaneStyle
	}
	b.WriteString(dropStyle.Render(HeadingStyle.Render("Drop surface") + "\n" + m.drop.View()))
	b.WriteString("\n")
	b.WriteString(pickerStyle.Render(HeadingStyle.Render("Choose a file") + "\n" + m.picker.View()))
	b.WriteString("\n")

	b.WriteString(m.lengthView() + "\n")
	b.WriteString(m.statusView() + "\n")

	if m.screen.alert != "" {
		b.WriteString("\n" + AlertStyle.Render(m.screen.alert) + "\n")
	}

	if m.screen.resultVisible {
		result := HeadingStyle.Render("Summary") + "\n" + m.screen.summary
		if m.screen.snippet != "" {
			result += "\n\n" + HeadingStyle.Render("Extracted text") + "\n" + m.snippet.View()
		}
		b.WriteString("\n" + PaneStyle.Render(result) + "\n")
	}

	b.WriteString("\n" + HelpStyle.Render("tab: drop/picker · s: length · u: upload · pgup/pgdown: scroll · q: quit"))
	return b.String()
}

func (m Model) lengthView() string {
	parts := []string{"Length: "}
	for i, l := range m.screen.lengths {
		if i == m.screen.lengthIdx {
			parts = append(parts, SelectedOptionStyle.Render(l))
		} else {
			parts = append(parts, OptionStyle.Render(l))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, parts...)
}

func (m Model) statusView() string {
	status := m.screen.status
	if status == "" {
		return StatusStyle.Render("Idle")
	}
	switch m.widget.State() {
	case widget.Uploading:
		return m.spinner.View() + " " + StatusStyle.Render(status)
	case widget.Done:
		return SuccessStyle.Render(status)
	case widget.Error:
		return ErrorStyle.Render(status)
	default:
		return StatusStyle.Render(status)
	}
}

// Run starts the program on the alternate screen and blocks until it exits.
func Run(opts Options) error {
	if opts.Context == nil {
		opts.Context = context.Background()
	}
	p := tea.NewProgram(New(opts), tea.WithAltScreen(), tea.WithContext(opts.Context))
	_, err := p.Run()
	return err
}
