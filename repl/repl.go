// Package repl implements the Read-Eval-Print Loop for interactively
// compiling and analyzing script source.
//
// Unlike a language REPL that evaluates expressions, this REPL has no
// virtual machine to run code in — the core it fronts is a static
// analyzer and bytecode compiler, not an interpreter. Each entry is
// parsed, constant-propagated, global-validated, simplified, and
// compiled; the REPL shows the resulting diagnostics and a disassembly
// of the compiled bytecode rather than a runtime value. It uses the Charm
// libraries (Bubbletea, Bubbles, and Lipgloss) for a modern terminal
// interface with syntax highlighting and a scrolling history.
package repl

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kasl-lang/kasl/diagnostics"
	"github.com/kasl-lang/kasl/lexer"
	"github.com/kasl-lang/kasl/session"
	"github.com/kasl-lang/kasl/token"
)

const (
	// Prompt is the default prompt for the REPL.
	Prompt = ">> "

	// ContPrompt is the continuation prompt used in multiline input mode.
	ContPrompt = ".. "
)

// Options contains configuration options for the REPL.
type Options struct {
	NoColor bool // Disable syntax highlighting and colored output
	Debug   bool // Enable debug mode with more verbose output
}

// Start initializes and runs the REPL with the given username and options.
func Start(username string, options Options) {
	p := tea.NewProgram(initialModel(username, options))
	if _, err := p.Run(); err != nil {
		fmt.Println("Error running program:", err)
	}
}

// Styling
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#7D56F4")).
			Bold(true)

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#04B575"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF5F87"))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFAF00"))

	historyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#767676"))

	keywordStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF79C6")).
			Bold(true)

	identifierStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F8F8F2"))

	literalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F1FA8C"))

	operatorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF5555"))

	delimiterStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#BD93F9"))

	stringStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#50FA7B"))
)

// compileResultMsg carries the outcome of one background compilation back
// to Update.
type compileResultMsg struct {
	output   string
	isError  bool
	warnings int
	elapsed  time.Duration
}

type historyEntry struct {
	input          string
	output         string
	isError        bool
	warnings       int
	evaluationTime time.Duration
}

type model struct {
	textInput       textinput.Model
	history         []historyEntry
	username        string
	compiling       bool
	currentInput    string
	multilineBuffer string
	isMultiline     bool
	spinner         spinner.Model
	options         Options
}

func (m model) applyStyle(style lipgloss.Style, text string) string {
	if m.options.NoColor {
		return text
	}
	return style.Render(text)
}

func initialModel(username string, options Options) model {
	ti := textinput.New()
	ti.Placeholder = "Enter script source"
	ti.Focus()
	ti.Width = 80
	ti.Prompt = promptStyle.Render(Prompt)

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF79C6"))

	return model{
		textInput: ti,
		username:  username,
		spinner:   s,
		options:   options,
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick)
}

// isBalanced checks if brackets, braces, and parentheses are balanced in
// the input, used to decide whether to keep reading a multiline entry.
func isBalanced(input string) bool {
	var stack []rune
	for _, char := range input {
		switch char {
		case '(', '{', '[':
			stack = append(stack, char)
		case ')':
			if len(stack) == 0 || stack[len(stack)-1] != '(' {
				return false
			}
			stack = stack[:len(stack)-1]
		case '}':
			if len(stack) == 0 || stack[len(stack)-1] != '{' {
				return false
			}
			stack = stack[:len(stack)-1]
		case ']':
			if len(stack) == 0 || stack[len(stack)-1] != '[' {
				return false
			}
			stack = stack[:len(stack)-1]
		}
	}
	return len(stack) == 0
}

// compileCmd runs one script through the session pipeline in the
// background and formats its diagnostics and bytecode disassembly.
func compileCmd(input string, debug bool) tea.Cmd {
	return func() tea.Msg {
		start := time.Now()

		sess := session.New("<repl>", input, session.Options{RunSimplify: true})
		result := sess.Run()

		elapsed := time.Since(start)

		var out strings.Builder
		isError := result.Log.HasErrors()

		for _, d := range result.Log.Entries() {
			fmt.Fprintln(&out, d.String())
		}
		if len(result.Log.Entries()) > 0 {
			fmt.Fprintln(&out)
		}

		if !isError {
			for _, fn := range result.Program.Functions {
				fmt.Fprintf(&out, "function %s:\n%s", fn.Name, fn.Instructions.String())
			}
			if debug {
				fmt.Fprintf(&out, "folded: %d\n", result.FoldedTotal)
			}
		}

		return compileResultMsg{
			output:   strings.TrimRight(out.String(), "\n"),
			isError:  isError,
			warnings: warningCount(result.Log),
			elapsed:  elapsed,
		}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case spinner.TickMsg:
		if m.compiling {
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}

	case compileResultMsg:
		m.compiling = false
		m.history = append(m.history, historyEntry{
			input:          m.currentInput,
			output:         msg.output,
			isError:        msg.isError,
			warnings:       msg.warnings,
			evaluationTime: msg.elapsed,
		})
		m.currentInput = ""
		return m, nil

	case tea.KeyMsg:
		if m.compiling && msg.Type != tea.KeyCtrlC {
			return m, m.spinner.Tick
		}

		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc, tea.KeyCtrlD:
			return m, tea.Quit
		case tea.KeyEnter:
			input := m.textInput.Value()
			if input == "" {
				if m.isMultiline {
					if m.multilineBuffer == "" {
						m.isMultiline = false
						return m, nil
					}
					buffer := m.multilineBuffer
					m.compiling = true
					m.currentInput = buffer
					m.textInput.SetValue("")
					m.isMultiline = false
					m.multilineBuffer = ""
					return m, compileCmd(buffer, m.options.Debug)
				}
				return m, nil
			}

			if m.isMultiline {
				m.multilineBuffer += "\n" + input
				m.textInput.SetValue("")
				if isBalanced(m.multilineBuffer) {
					buffer := m.multilineBuffer
					m.compiling = true
					m.currentInput = buffer
					m.isMultiline = false
					m.multilineBuffer = ""
					return m, compileCmd(buffer, m.options.Debug)
				}
				return m, nil
			}

			if !isBalanced(input) {
				m.isMultiline = true
				m.multilineBuffer = input
				m.textInput.SetValue("")
				return m, nil
			}

			m.compiling = true
			m.currentInput = input
			m.textInput.SetValue("")
			return m, compileCmd(input, m.options.Debug)
		}
	}

	if !m.compiling {
		m.textInput, cmd = m.textInput.Update(msg)
	}
	if m.compiling {
		return m, m.spinner.Tick
	}
	return m, cmd
}

func (m model) View() string {
	var s strings.Builder

	s.WriteString(m.applyStyle(titleStyle, " script analyzer REPL "))
	s.WriteString("\n")
	if m.username != "" {
		s.WriteString(fmt.Sprintf("\nHello %s! Type script source to compile it.\n", m.username))
	}
	s.WriteString("\n")

	for _, entry := range m.history {
		lines := strings.Split(entry.input, "\n")
		for i, line := range lines {
			if i == 0 {
				s.WriteString(m.applyStyle(promptStyle, Prompt))
			} else {
				s.WriteString(m.applyStyle(promptStyle, ContPrompt))
			}
			s.WriteString(m.highlightCode(line))
			s.WriteString("\n")
		}

		style := resultStyle
		if entry.isError {
			style = errorStyle
		}
		s.WriteString(m.applyStyle(style, entry.output))

		if entry.warnings > 0 {
			s.WriteString(m.applyStyle(warningStyle, fmt.Sprintf(" (%d warning(s))", entry.warnings)))
		}
		if entry.evaluationTime > 10*time.Millisecond {
			timeStr := fmt.Sprintf(" (%.2fs)", entry.evaluationTime.Seconds())
			s.WriteString(m.applyStyle(historyStyle, timeStr))
		}
		s.WriteString("\n\n")
	}

	if m.compiling {
		s.WriteString(m.applyStyle(promptStyle, Prompt))
		s.WriteString(m.highlightCode(m.currentInput))
		s.WriteString("\n")
		s.WriteString(m.spinner.View())
		s.WriteString(" Compiling...")
		s.WriteString("\n\n")
	}

	if m.isMultiline && !m.compiling {
		s.WriteString(m.applyStyle(historyStyle, "Current multiline input:\n"))
		s.WriteString(m.highlightCode(m.multilineBuffer))
		s.WriteString("\n")
	}

	if !m.compiling {
		if m.isMultiline {
			m.textInput.Prompt = m.applyStyle(promptStyle, ContPrompt)
		} else {
			m.textInput.Prompt = m.applyStyle(promptStyle, Prompt)
		}
		s.WriteString(m.textInput.View())
		s.WriteString("\n")
	}

	helpText := "\nPress Esc or Ctrl+C/D to exit"
	if m.isMultiline {
		helpText += " | Multiline mode: Enter empty line to compile or continue typing"
	} else {
		helpText += " | Multiline input supported for unbalanced brackets"
	}
	s.WriteString(m.applyStyle(historyStyle, helpText))

	return s.String()
}

// warningCount reports how many of log's entries are Warning severity,
// used by callers that want a one-line summary rather than the full list.
func warningCount(log *diagnostics.Log) int {
	n := 0
	for _, d := range log.Entries() {
		if d.Severity == diagnostics.Warning {
			n++
		}
	}
	return n
}

// highlightCode applies syntax highlighting to one line of script source.
func (m model) highlightCode(code string) string {
	l := lexer.New(code)
	var s strings.Builder

	var tokens []token.Token
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Type == token.EOF {
			break
		}
	}

	isKeyword := func(t token.Token) bool {
		switch t.Type {
		case token.If, token.Else, token.For, token.Do, token.While, token.Return,
			token.Jump, token.State, token.Default, token.TrueKw, token.FalseKw:
			return true
		default:
			return token.IsTypeKeyword(t.Type)
		}
	}
	isOperator := func(t token.Token) bool {
		switch t.Type {
		case token.Assign, token.Plus, token.Minus, token.Bang, token.Asterisk, token.Slash,
			token.Lt, token.Gt, token.Eq, token.NotEq:
			return true
		default:
			return false
		}
	}
	isDelimiter := func(t token.Token) bool {
		switch t.Type {
		case token.Comma, token.Colon, token.Semicolon, token.Lparen, token.Rparen,
			token.Lbrace, token.Rbrace, token.Lbracket, token.Rbracket, token.Dot, token.At:
			return true
		default:
			return false
		}
	}

	for i, tok := range tokens {
		if tok.Type == token.EOF {
			continue
		}
		if i > 0 {
			s.WriteString(" ")
		}
		switch {
		case isKeyword(tok):
			s.WriteString(m.applyStyle(keywordStyle, tok.Literal))
		case tok.Type == token.Ident:
			s.WriteString(m.applyStyle(identifierStyle, tok.Literal))
		case tok.Type == token.Int, tok.Type == token.Float:
			s.WriteString(m.applyStyle(literalStyle, tok.Literal))
		case tok.Type == token.String:
			s.WriteString(m.applyStyle(stringStyle, `"`+tok.Literal+`"`))
		case isOperator(tok):
			s.WriteString(m.applyStyle(operatorStyle, tok.Literal))
		case isDelimiter(tok):
			s.WriteString(m.applyStyle(delimiterStyle, tok.Literal))
		default:
			s.WriteString(tok.Literal)
		}
	}

	return s.String()
}
