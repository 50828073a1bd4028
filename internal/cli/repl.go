// FILE: internal/cli/repl.go
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"

	"silverpoint/internal/binding"
	"silverpoint/internal/host"
)

// LineReader is the part of a readline instance the REPL uses
type LineReader interface {
	Readline() (string, error)
	SetPrompt(string)
}

// REPL reads Lua chunks and meta-commands line by line and runs them on a host
type REPL struct {
	host     *host.Host
	out      io.Writer
	palette  Palette
	theme    ColorTheme
	commands map[string]*Command
	order    []*Command
	pending  string
	quit     bool
}

func New(h *host.Host, out io.Writer, palette Palette) *REPL {
	r := &REPL{
		host:     h,
		out:      out,
		palette:  palette,
		theme:    ThemeOff,
		commands: make(map[string]*Command),
	}
	r.registerCommands()
	return r
}

// Options configure an interactive session
type Options struct {
	HistoryFile string
	Color       bool
}

// Interactive runs a REPL on the terminal with line editing and history
func Interactive(ctx context.Context, h *host.Host, opts Options) error {
	palette := NewPalette(opts.Color)
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          palette.Prompt(binding.ModuleName),
		HistoryFile:     opts.HistoryFile,
		InterruptPrompt: "^C",
		EOFPrompt:       ".exit",
	})
	if err != nil {
		return fmt.Errorf("init readline: %w", err)
	}
	defer rl.Close()

	r := New(h, rl.Stdout(), palette)
	if opts.Color {
		r.theme = ThemeBrown
	}
	fmt.Fprintf(r.out, "%s%s %s%s (Lua 5.2)\n", palette.Cyan, binding.ModuleName, binding.Version, palette.Reset)
	fmt.Fprintf(r.out, "Type '.help' for commands\n\n")
	return r.Run(ctx, rl)
}

// Run reads until EOF, .exit or ctx is done
func (r *REPL) Run(ctx context.Context, in LineReader) error {
	for !r.quit {
		if err := ctx.Err(); err != nil {
			return err
		}
		in.SetPrompt(r.prompt())

		line, err := in.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			r.pending = ""
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		r.Eval(ctx, line)
	}
	return nil
}

func (r *REPL) prompt() string {
	if r.pending != "" {
		return r.palette.Prompt(">")
	}
	return r.palette.Prompt(binding.ModuleName)
}

// Eval handles one input line
func (r *REPL) Eval(ctx context.Context, line string) {
	trimmed := strings.TrimSpace(line)
	if r.pending == "" && trimmed == "" {
		return
	}
	// Inside a pending chunk only known commands are taken out of the Lua
	// source, so a continuation line like "..x" still reaches Lua.
	if strings.HasPrefix(trimmed, ".") && (r.pending == "" || r.isCommand(trimmed[1:])) {
		r.execute(ctx, trimmed[1:])
		return
	}
	r.evalLua(ctx, line)
}

func (r *REPL) isCommand(input string) bool {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return false
	}
	_, exists := r.commands[parts[0]]
	return exists
}

func (r *REPL) execute(ctx context.Context, input string) {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return
	}
	cmd, exists := r.commands[parts[0]]
	if !exists {
		fmt.Fprintf(r.out, "%sUnknown command: .%s%s\n", r.palette.Red, parts[0], r.palette.Reset)
		fmt.Fprintf(r.out, "Type '.help' for available commands\n")
		return
	}
	if err := cmd.Handler(ctx, r, parts[1:]); err != nil {
		r.showError(err)
	}
}

// evalLua tries the input as an expression first, then as a statement.
// A chunk that only fails for ending early is kept for the next line.
func (r *REPL) evalLua(ctx context.Context, line string) {
	chunk := line
	if r.pending != "" {
		chunk = r.pending + "\n" + line
	}

	if results, err := r.host.Exec(ctx, "stdin", "return "+chunk); !isSyntax(err) {
		r.pending = ""
		r.report(results, err)
		return
	}

	results, err := r.host.Exec(ctx, "stdin", chunk)
	var se *host.ScriptError
	if errors.As(err, &se) && se.Syntax && strings.Contains(se.Message, "<eof>") {
		r.pending = chunk
		return
	}
	r.pending = ""
	r.report(results, err)
}

func (r *REPL) report(results []string, err error) {
	if err != nil {
		r.showError(err)
		return
	}
	if len(results) > 0 {
		fmt.Fprintf(r.out, "%s%s%s\n", r.palette.Green, strings.Join(results, "\t"), r.palette.Reset)
	}
}

func (r *REPL) showError(err error) {
	var se *host.ScriptError
	if errors.As(err, &se) {
		err = errors.New(se.Message)
	}
	fmt.Fprintf(r.out, "%sError: %s%s\n", r.palette.Red, err.Error(), r.palette.Reset)
}

func isSyntax(err error) bool {
	var se *host.ScriptError
	return errors.As(err, &se) && se.Syntax
}
