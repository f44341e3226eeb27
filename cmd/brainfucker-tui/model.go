package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/PickledChair/BrainFucker/emulator"
	"github.com/PickledChair/BrainFucker/io"
)

const (
	BURST           = 4096    // Instructions executed per UI event.
	CONSOLE_LIMIT   = 1 << 20 // Output buffered between two UI events.
	MSG_READY       = "[Brainfuck Interpreter is ready]"
	MSG_INPUT       = "[Input] <- "
	MSG_INTERRUPT   = "[Interrupt]"
	MSG_ERROR       = "[Interpreter Error: %v]"
	DEFAULT_WIDTH   = 80
	DEFAULT_HEIGHT  = 24
	RESERVED_HEIGHT = 9 // Titles, input line and help.
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	runningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type focus int

const (
	focusSource focus = iota
	focusInput
)

// burstMsg schedules the next burst of a run.
// Bursts of an older run are ignored.
type burstMsg struct {
	run int
}

type model struct {
	log      *zap.Logger
	filename string
	emu      *emulator.Emulator
	console  *io.Temporary

	source textarea.Model
	input  textinput.Model
	result viewport.Model

	text     strings.Builder
	status   string
	focus    focus
	running  bool
	awaiting bool
	run      int
}

func newModel(log *zap.Logger, filename string) (m *model) {
	m = &model{
		log:      log,
		filename: filename,
		emu:      emulator.NewEmulator(),
		console:  &io.Temporary{Capacity: CONSOLE_LIMIT},
		source:   textarea.New(),
		input:    textinput.New(),
		result:   viewport.New(DEFAULT_WIDTH, DEFAULT_HEIGHT/2),
	}

	m.emu.Console = m.console
	m.emu.Burst = BURST

	m.source.Placeholder = "brainfuck source"
	m.source.ShowLineNumbers = true
	m.source.CharLimit = 0
	m.source.MaxHeight = 0
	m.source.Focus()

	m.input.Prompt = "> "
	m.input.Placeholder = "program input"

	m.print(MSG_READY)
	m.resize(DEFAULT_WIDTH, DEFAULT_HEIGHT)

	return
}

// print appends text to the result pane and scrolls to it.
func (m *model) print(text string) {
	m.text.WriteString(text)
	m.result.SetContent(m.text.String())
	m.result.GotoBottom()
}

func (m *model) resize(width int, height int) {
	pane := max((height-RESERVED_HEIGHT)/2, 3)
	m.source.SetWidth(width)
	m.source.SetHeight(pane)
	m.result.Width = width
	m.result.Height = pane
	m.input.Width = width - len(m.input.Prompt) - 1
}

func (m *model) setFocus(f focus) {
	m.focus = f
	if f == focusInput {
		m.source.Blur()
		m.input.Focus()
	} else {
		m.input.Blur()
		m.source.Focus()
	}
}

// next returns a command that delivers the next burst of the current run.
func (m *model) next() tea.Cmd {
	run := m.run
	return func() tea.Msg {
		return burstMsg{run: run}
	}
}

// load reads the source pane from the file.
func (m *model) load() {
	data, err := os.ReadFile(m.filename)
	if err != nil {
		m.status = err.Error()
		m.log.Warn("open failed", zap.String("file", m.filename), zap.Error(err))
		return
	}

	m.source.SetValue(string(data))
	m.status = "opened " + m.filename
	m.log.Info("opened", zap.String("file", m.filename), zap.Int("bytes", len(data)))
}

// save writes the source pane to the file.
func (m *model) save() {
	source := m.source.Value()
	if len(source) == 0 {
		return
	}

	err := os.WriteFile(m.filename, []byte(source), 0o644)
	if err != nil {
		m.status = err.Error()
		m.log.Warn("save failed", zap.String("file", m.filename), zap.Error(err))
		return
	}

	m.status = "saved " + m.filename
	m.log.Info("saved", zap.String("file", m.filename), zap.Int("bytes", len(source)))
}

// start compiles the source pane and schedules its first burst.
func (m *model) start() tea.Cmd {
	source := m.source.Value()
	if len(source) == 0 || m.running {
		return nil
	}

	m.console.Rewind()
	err := m.emu.Load(source)
	if err != nil {
		m.print("\n" + fmt.Sprintf(MSG_ERROR, err))
		m.log.Info("compile failed", zap.Error(err))
		return nil
	}

	m.log.Info("run", zap.Int("instructions", m.emu.Program.Len()))

	m.print("\n")
	m.run++
	m.running = true
	m.awaiting = false
	return m.next()
}

// stop abandons the current run.
func (m *model) stop() {
	if !m.running {
		return
	}

	m.log.Info("interrupt", zap.Int("ticks", m.emu.Ticks))

	m.print("\n" + MSG_INTERRUPT)
	m.run++
	m.running = false
	m.awaiting = false
	m.console.Rewind()
}

// push queues the input line for the running program.
func (m *model) push() tea.Cmd {
	line := m.input.Value()
	if len(line) == 0 || !m.running {
		return nil
	}

	m.input.Reset()
	m.console.Push([]byte(line))
	m.print(line + "\n")

	if !m.awaiting {
		return nil
	}

	m.awaiting = false
	return m.next()
}

// burst runs one Tick of the emulator.
func (m *model) burst(msg burstMsg) tea.Cmd {
	if msg.run != m.run || !m.running {
		return nil
	}

	done, err := m.emu.Tick()
	if out := m.console.Drain(); len(out) != 0 {
		m.print(string(out))
	}

	switch {
	case errors.Is(err, io.ErrChannelEmpty):
		m.awaiting = true
		m.print("\n" + MSG_INPUT)
		m.setFocus(focusInput)
		return nil
	case err != nil:
		m.log.Info("runtime error", zap.Error(err), zap.Int("ticks", m.emu.Ticks))
		m.print("\n" + fmt.Sprintf(MSG_ERROR, err))
		m.running = false
		return nil
	case done:
		m.log.Info("complete", zap.Int("ticks", m.emu.Ticks))
		m.running = false
		return nil
	}

	return m.next()
}

func (m *model) Init() tea.Cmd {
	if len(m.filename) != 0 {
		m.load()
	}

	return textarea.Blink
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case burstMsg:
		return m, m.burst(msg)

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "ctrl+r":
			return m, m.start()
		case "ctrl+x":
			m.stop()
			return m, nil
		case "ctrl+o":
			if len(m.filename) != 0 {
				m.load()
			}
			return m, nil
		case "ctrl+s":
			if len(m.filename) != 0 {
				m.save()
			}
			return m, nil
		case "tab":
			if m.focus == focusSource {
				m.setFocus(focusInput)
			} else {
				m.setFocus(focusSource)
			}
			return m, nil
		case "enter":
			if m.focus == focusInput {
				return m, m.push()
			}
		case "pgup", "pgdown":
			var cmd tea.Cmd
			m.result, cmd = m.result.Update(msg)
			return m, cmd
		}
	}

	var cmd tea.Cmd
	if m.focus == focusInput {
		m.input, cmd = m.input.Update(msg)
	} else {
		m.source, cmd = m.source.Update(msg)
	}

	return m, cmd
}

func (m *model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("BrainFucker"))
	if len(m.filename) != 0 {
		b.WriteString(" ")
		b.WriteString(m.filename)
	}
	b.WriteString("\n")

	b.WriteString(labelStyle.Render("Source:"))
	b.WriteString("\n")
	b.WriteString(m.source.View())
	b.WriteString("\n")

	b.WriteString(labelStyle.Render("Result:"))
	switch {
	case m.awaiting:
		b.WriteString(" " + runningStyle.Render("waiting for input"))
	case m.running:
		b.WriteString(" " + runningStyle.Render("running"))
	}
	b.WriteString("\n")
	b.WriteString(m.result.View())
	b.WriteString("\n")

	b.WriteString(labelStyle.Render("Input:"))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")

	if len(m.status) != 0 {
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("ctrl+r run • ctrl+x stop • tab focus • enter push • ctrl+o open • ctrl+s save • ctrl+c quit"))

	return b.String()
}
