// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// bureau-console is a demonstration host for the console overlay
// library. It runs a minimal full-screen bubbletea application with an
// embedded console and a small built-in command set, so the overlay
// can be exercised interactively: toggling, maximized mode, command
// submission, markdown output, and slog records routed into the
// scrollback.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"golang.org/x/term"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bureau-foundation/console/lib/console"
	"github.com/bureau-foundation/console/lib/version"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var themePath string
	var logOutput string
	var startMaximized bool

	flagSet := pflag.NewFlagSet("bureau-console", pflag.ContinueOnError)
	flagSet.StringVar(&themePath, "theme", "", "path to a YAML theme file")
	flagSet.StringVar(&logOutput, "log-output", "", "write JSON log records to this file (in addition to console display)")
	flagSet.BoolVar(&startMaximized, "maximized", false, "open the console maximized at startup")
	flagSet.BoolP("help", "h", false, "show help")

	// Handle --version before flag parsing to match other Bureau binaries.
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		version.Print("bureau-console")
		return nil
	}

	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			printHelp(flagSet)
			return nil
		}
		return err
	}

	if help, _ := flagSet.GetBool("help"); help {
		printHelp(flagSet)
		return nil
	}

	if args := flagSet.Args(); len(args) > 0 {
		return fmt.Errorf("unexpected argument: %s", args[0])
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("bureau-console is an interactive TUI and needs a terminal on stdout")
	}

	theme := console.DefaultTheme
	if themePath != "" {
		loaded, err := console.LoadTheme(themePath)
		if err != nil {
			return err
		}
		theme = loaded
	}

	// Log records go to the console scrollback, never to stderr:
	// stderr writes would corrupt the alt-screen display. An optional
	// JSON file captures everything for post-mortem reading.
	consoleHandler := console.NewLogHandler(slog.LevelDebug)
	var logger *slog.Logger
	if logOutput != "" {
		fileHandler, closeFile, err := openFileLogHandler(logOutput)
		if err != nil {
			return fmt.Errorf("cannot open log file %s: %w", logOutput, err)
		}
		defer closeFile()
		logger = slog.New(fanoutHandler{consoleHandler, fileHandler})
	} else {
		logger = slog.New(consoleHandler)
	}

	model := newHostModel(theme, logger, startMaximized)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseAllMotion())

	consoleHandler.SetProgram(program)

	_, err := program.Run()
	return err
}

func printHelp(flagSet *pflag.FlagSet) {
	fmt.Fprintf(os.Stderr, `Console overlay demo: a host application with an embedded console.

The work area is a static backdrop; the console slides over its
bottom rows. Toggle it with the backtick key, open it maximized with
tilde, and quit the host with q or ctrl+c while the console is hidden.

Inside the console: Enter submits the command line, Esc hides the
panel (keeping any half-typed command), and the mouse wheel scrolls
the scrollback. Type "help" for the built-in command set.

Usage:
  bureau-console [flags]

Examples:
  # Run with the built-in theme
  bureau-console

  # Custom colors and a debugging log file
  bureau-console --theme dark.yaml --log-output /tmp/console.jsonl

Flags:
`)
	flagSet.SetOutput(os.Stderr)
	flagSet.PrintDefaults()
}

// helpText is the markdown shown by the "help" command.
const helpText = `# Commands

- help: show this text
- echo <text>: append the text to the scrollback
- md: render a markdown sample into the scrollback
- log <level> <message>: emit a slog record (debug, info, warn, error)
- quit: exit the demo

Esc hides the console and keeps the command line. The mouse wheel
scrolls the scrollback; new output snaps it back to the bottom.
`

// sampleMarkdown exercises the markdown renderer from the "md" command.
const sampleMarkdown = `# Markdown rendering

Fragments appended to the scrollback are pre-rendered, so command
output can carry *structure*:

1. syntax highlighted code
2. lists and blockquotes
3. links like [bubbletea](https://github.com/charmbracelet/bubbletea)

> Soft-wrapped source text reflows to the panel width, so writing
> width never has to match display width.

` + "```go\nfunc greet(name string) string {\n\treturn \"hello \" + name\n}\n```\n"

// hostModel is the demo application: a static work area with a
// console overlay. It is a pointer model so the synchronous command
// callback can mutate host state directly.
type hostModel struct {
	console console.Console
	logger  *slog.Logger
	theme   console.Theme

	width  int
	height int

	startMaximized bool

	// Set by the command callback; drained into commands by Update.
	quitRequested bool
	pending       []tea.Cmd
}

func newHostModel(theme console.Theme, logger *slog.Logger, startMaximized bool) *hostModel {
	model := &hostModel{
		console:        console.New(theme),
		logger:         logger,
		theme:          theme,
		startMaximized: startMaximized,
	}
	model.console.SetCommandCallback(model.runCommand)
	model.console.Append(console.Text("console ready, type 'help' for commands"))
	return model
}

func (m *hostModel) Init() tea.Cmd {
	startup := func() tea.Msg {
		m.logger.Info("console demo started", "pid", os.Getpid())
		return nil
	}
	if m.startMaximized {
		return tea.Batch(m.console.Show(true), startup)
	}
	return startup
}

func (m *hostModel) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	switch message := message.(type) {
	case tea.KeyMsg:
		if message.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}

		// The host owns the toggle keys. They act regardless of
		// console focus, so backtick cannot be typed into the
		// command line; everything else can.
		switch message.String() {
		case "`":
			if m.console.Visible() {
				m.console.Hide()
				return m, nil
			}
			return m, m.console.Show(m.console.Maximized())
		case "~":
			return m, m.console.Show(true)
		}

		if !m.console.Visible() && message.String() == "q" {
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = message.Width
		m.height = message.Height
	}

	cmd := m.console.Update(message)

	commands := append(m.pending, cmd)
	m.pending = nil
	if m.quitRequested {
		commands = append(commands, tea.Quit)
	}
	return m, tea.Batch(commands...)
}

func (m *hostModel) View() string {
	if m.width == 0 {
		return "Loading..."
	}
	return m.console.Overlay(m.renderWorkArea())
}

// renderWorkArea draws the static host backdrop: a title, key hints,
// and numbered filler rows that make the overlay boundary obvious.
func (m *hostModel) renderWorkArea() string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(m.theme.HeaderForeground)
	hintStyle := lipgloss.NewStyle().Foreground(m.theme.FaintText)

	lines := make([]string, 0, m.height)
	lines = append(lines, titleStyle.Render(" bureau-console demo"))
	lines = append(lines, "")
	lines = append(lines, hintStyle.Render(" `  toggle console    ~  open maximized    q  quit"))
	for len(lines) < m.height {
		lines = append(lines, hintStyle.Render(fmt.Sprintf(" %3d", len(lines)+1)))
	}
	return strings.Join(lines, "\n")
}

// runCommand is the console command callback. It runs synchronously
// on the event loop, so slow or Send-ing work is deferred into
// commands via m.pending instead of being done inline.
func (m *hostModel) runCommand(command string) {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return
	}

	switch fields[0] {
	case "help":
		m.console.Append(console.RenderMarkdown(helpText, m.theme, m.markdownWidth()))

	case "echo":
		m.console.Append(console.Text(strings.Join(fields[1:], " ")))

	case "md":
		m.console.Append(console.RenderMarkdown(sampleMarkdown, m.theme, m.markdownWidth()))

	case "log":
		level, logMessage, err := parseLogCommand(fields[1:])
		if err != nil {
			m.appendError(err.Error())
			return
		}
		logger := m.logger
		m.pending = append(m.pending, func() tea.Msg {
			logger.Log(context.Background(), level, logMessage, "source", "demo")
			return nil
		})

	case "quit", "exit":
		m.quitRequested = true

	default:
		m.appendError(fmt.Sprintf("unknown command %q (try help)", fields[0]))
	}
}

// parseLogCommand maps "log <level> <message...>" arguments to a slog
// level and message text.
func parseLogCommand(args []string) (slog.Level, string, error) {
	if len(args) == 0 {
		return 0, "", fmt.Errorf("usage: log <debug|info|warn|error> <message>")
	}

	var level slog.Level
	switch args[0] {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return 0, "", fmt.Errorf("unknown log level %q (want debug, info, warn, or error)", args[0])
	}

	message := strings.Join(args[1:], " ")
	if message == "" {
		message = "demo log record"
	}
	return level, message, nil
}

func (m *hostModel) appendError(text string) {
	errorStyle := lipgloss.NewStyle().Foreground(m.theme.LogError)
	m.console.Append(console.Styled(errorStyle, text))
}

// markdownWidth returns the wrap width for rendered markdown: the
// scrollback content width once the screen size is known.
func (m *hostModel) markdownWidth() int {
	if m.width > 22 {
		return m.width - 2
	}
	return 78
}

// openFileLogHandler creates a slog.JSONHandler that writes to the
// given file path. Returns the handler, a cleanup function to close
// the file, and any error. The file is created or truncated.
func openFileLogHandler(path string) (slog.Handler, func(), error) {
	file, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	handler := slog.NewJSONHandler(file, &slog.HandlerOptions{Level: slog.LevelDebug})
	return handler, func() { file.Close() }, nil
}

// fanoutHandler is a slog.Handler that sends each record to multiple
// underlying handlers. A record is enabled if any sub-handler is
// enabled for that level.
type fanoutHandler []slog.Handler

func (handlers fanoutHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, handler := range handlers {
		if handler.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (handlers fanoutHandler) Handle(ctx context.Context, record slog.Record) error {
	for _, handler := range handlers {
		if handler.Enabled(ctx, record.Level) {
			if err := handler.Handle(ctx, record); err != nil {
				return err
			}
		}
	}
	return nil
}

func (handlers fanoutHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	derived := make(fanoutHandler, len(handlers))
	for index, handler := range handlers {
		derived[index] = handler.WithAttrs(attrs)
	}
	return derived
}

func (handlers fanoutHandler) WithGroup(name string) slog.Handler {
	derived := make(fanoutHandler, len(handlers))
	for index, handler := range handlers {
		derived[index] = handler.WithGroup(name)
	}
	return derived
}
