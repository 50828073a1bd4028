// FILE: internal/cli/commands.go
package cli

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/Shopify/go-lua"

	"silverpoint/internal/binding"
)

// Command defines a REPL meta-command with its handler
type Command struct {
	Name        string
	ShortName   string
	Description string
	Usage       string
	Handler     func(ctx context.Context, r *REPL, args []string) error
}

func (r *REPL) Register(cmd *Command) {
	r.commands[cmd.Name] = cmd
	if cmd.ShortName != "" {
		r.commands[cmd.ShortName] = cmd
	}
	r.order = append(r.order, cmd)
}

func (r *REPL) registerCommands() {
	r.Register(&Command{
		Name:        "help",
		ShortName:   "?",
		Description: "Show available commands",
		Usage:       ".help [command]",
		Handler:     helpHandler,
	})
	r.Register(&Command{
		Name:        "exit",
		ShortName:   "x",
		Description: "Leave the interpreter",
		Usage:       ".exit",
		Handler: func(_ context.Context, r *REPL, _ []string) error {
			r.quit = true
			return nil
		},
	})
	r.Register(&Command{
		Name:        "load",
		ShortName:   "l",
		Description: "Run a Lua file",
		Usage:       ".load <file>",
		Handler:     loadHandler,
	})
	r.Register(&Command{
		Name:        "catalog",
		ShortName:   "c",
		Description: "List the silverpoint module entries",
		Usage:       ".catalog [class]",
		Handler:     catalogHandler,
	})
	r.Register(&Command{
		Name:        "board",
		ShortName:   "b",
		Description: "Draw the Board a Lua expression evaluates to",
		Usage:       ".board <expression>",
		Handler:     boardHandler,
	})
	r.Register(&Command{
		Name:        "theme",
		ShortName:   "t",
		Description: "Set the board color theme (off|brown|green|gray)",
		Usage:       ".theme <theme>",
		Handler:     themeHandler,
	})
	r.Register(&Command{
		Name:        "clear",
		ShortName:   "-",
		Description: "Discard the pending multi-line chunk",
		Usage:       ".clear",
		Handler: func(_ context.Context, r *REPL, _ []string) error {
			r.pending = ""
			return nil
		},
	})
}

func helpHandler(_ context.Context, r *REPL, args []string) error {
	p := r.palette
	if len(args) > 0 {
		cmd, exists := r.commands[strings.TrimPrefix(args[0], ".")]
		if !exists {
			return fmt.Errorf("unknown command: %s", args[0])
		}
		fmt.Fprintf(r.out, "%s.%s%s - %s\n", p.Cyan, cmd.Name, p.Reset, cmd.Description)
		if cmd.ShortName != "" {
			fmt.Fprintf(r.out, "Short form: %s.%s%s\n", p.Cyan, cmd.ShortName, p.Reset)
		}
		fmt.Fprintf(r.out, "Usage: %s\n", cmd.Usage)
		return nil
	}

	fmt.Fprintf(r.out, "%sCommands:%s\n", p.Yellow, p.Reset)
	for _, cmd := range r.order {
		fmt.Fprintf(r.out, "  [%s.%s%s] .%-10s %s\n", p.Cyan, cmd.ShortName, p.Reset, cmd.Name, cmd.Description)
	}
	fmt.Fprintf(r.out, "\nAnything else is run as Lua. The module is the global %q.\n", binding.ModuleName)
	return nil
}

func loadHandler(ctx context.Context, r *REPL, args []string) error {
	if len(args) != 1 {
		return errors.New("usage: .load <file>")
	}
	return r.host.ExecFile(ctx, args[0])
}

func catalogHandler(_ context.Context, r *REPL, args []string) error {
	p := r.palette
	cat := binding.Load()
	classes := cat.Classes()
	if len(args) > 0 {
		if !slices.Contains(classes, args[0]) {
			return fmt.Errorf("unknown class: %s", args[0])
		}
		classes = []string{args[0]}
	}

	entries := cat.Entries()
	for _, class := range classes {
		fmt.Fprintf(r.out, "%s%s%s\n", p.Yellow, class, p.Reset)
		var lines []string
		for _, e := range entries {
			if e.Class != class || e.Kind == binding.Constant {
				continue
			}
			mark := ""
			if e.Blocking {
				mark = "*"
			}
			lines = append(lines, fmt.Sprintf("  %-26s %-11s %d%s", e.Name, e.Kind, e.Arity, mark))
		}
		sort.Strings(lines)
		for _, line := range lines {
			fmt.Fprintln(r.out, line)
		}
		if consts := cat.Constants(class); len(consts) > 0 {
			fmt.Fprintf(r.out, "  %sconstants (%d):%s %s\n", p.Cyan, len(consts), p.Reset, strings.Join(consts, " "))
		}
	}
	fmt.Fprintf(r.out, "%s* releases the host lock while running%s\n", p.Magenta, p.Reset)
	return nil
}

func boardHandler(ctx context.Context, r *REPL, args []string) error {
	if len(args) == 0 {
		return errors.New("usage: .board <expression>")
	}
	expr := strings.Join(args, " ")
	var drawn string
	err := r.host.Do(ctx, func(l *lua.State) error {
		if err := lua.LoadBuffer(l, "return "+expr, "=board", ""); err != nil {
			msg, _ := l.ToString(-1)
			return errors.New(msg)
		}
		if err := l.ProtectedCall(0, 1, 0); err != nil {
			msg, _ := l.ToString(-1)
			return errors.New(msg)
		}
		b, ok := binding.ToBoard(l, -1)
		if !ok {
			return fmt.Errorf("%s is not a Board", expr)
		}
		drawn = RenderBoard(b, r.theme)
		return nil
	})
	if err != nil {
		return err
	}
	fmt.Fprintln(r.out, drawn)
	return nil
}

func themeHandler(_ context.Context, r *REPL, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: .theme <theme> (current: %s)", r.theme)
	}
	theme, err := parseTheme(args[0])
	if err != nil {
		return err
	}
	r.theme = theme
	return nil
}
