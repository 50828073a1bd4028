// FILE: internal/cli/repl_test.go
package cli

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"silverpoint/internal/engine"
	"silverpoint/internal/host"
)

type scriptedInput struct {
	lines   []string
	prompts []string
}

func (s *scriptedInput) Readline() (string, error) {
	if len(s.lines) == 0 {
		return "", io.EOF
	}
	line := s.lines[0]
	s.lines = s.lines[1:]
	return line, nil
}

func (s *scriptedInput) SetPrompt(p string) {
	s.prompts = append(s.prompts, p)
}

func run(t *testing.T, lines ...string) (*REPL, *scriptedInput, string) {
	t.Helper()
	var out bytes.Buffer
	h, err := host.New(host.WithStdout(&out))
	if err != nil {
		t.Fatalf("host.New: %v", err)
	}
	t.Cleanup(func() { _ = h.Close() })

	r := New(h, &out, NewPalette(false))
	in := &scriptedInput{lines: lines}
	if err := r.Run(context.Background(), in); err != nil {
		t.Fatalf("Run: %v", err)
	}
	return r, in, out.String()
}

func TestEvaluatesExpressionsAndStatements(t *testing.T) {
	_, _, out := run(t,
		"1 + 1",
		"silverpoint.Position.E4",
		"b = silverpoint.Board.new()",
		"b:turn_color()",
		"silverpoint.Move.parse('e2e4'):piece_positions()",
	)
	for _, want := range []string{"2\n", "e4\n", "White\n", "e2\te4\n"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q lacks %q", out, want)
		}
	}
}

func TestMultiLineChunks(t *testing.T) {
	_, in, out := run(t,
		"for i = 1, 2 do",
		"  print(i)",
		"end",
	)
	if out != "1\n2\n" {
		t.Fatalf("output = %q", out)
	}
	if len(in.prompts) < 3 || in.prompts[1] != "> > " || in.prompts[2] != "> > " {
		t.Fatalf("prompts = %q", in.prompts)
	}
}

func TestClearDropsPendingChunk(t *testing.T) {
	_, in, out := run(t,
		"for i = 1, 2 do",
		".clear",
		"return 5",
	)
	if out != "5\n" {
		t.Fatalf("output = %q", out)
	}
	if len(in.prompts) < 3 || in.prompts[2] != "silverpoint > " {
		t.Fatalf("prompts = %q", in.prompts)
	}
}

func TestPendingChunkKeepsDotLines(t *testing.T) {
	_, _, out := run(t,
		"x = 'a'",
		"y = (x",
		"..'b')",
		"y",
	)
	if out != "ab\n" {
		t.Fatalf("output = %q", out)
	}
}

func TestErrorsAreReported(t *testing.T) {
	_, _, out := run(t, `silverpoint.Position.pgn("z9")`, "1 + 1")
	if !strings.Contains(out, "Error: ") || !strings.Contains(out, "z9") {
		t.Fatalf("output = %q", out)
	}
	if !strings.HasSuffix(out, "2\n") {
		t.Fatalf("the session should continue after an error: %q", out)
	}
}

func TestMetaCommands(t *testing.T) {
	_, _, out := run(t, ".help", ".catalog Color", ".catalog Nope", ".bogus")
	checks := []string{
		".catalog",
		"other",
		"constants (2): Black White",
		"Error: unknown class: Nope",
		"Unknown command: .bogus",
	}
	for _, want := range checks {
		if !strings.Contains(out, want) {
			t.Errorf("output lacks %q:\n%s", want, out)
		}
	}
}

func TestCatalogMarksBlockingEntries(t *testing.T) {
	_, _, out := run(t, ".c Board")
	if !strings.Contains(out, "legal_moves") || !strings.Contains(out, "0*") {
		t.Fatalf("output = %q", out)
	}
}

func TestExitStopsTheLoop(t *testing.T) {
	_, in, out := run(t, ".exit", "print('after')")
	if strings.Contains(out, "after") || len(in.lines) != 1 {
		t.Fatalf("input after .exit was run: %q", out)
	}
}

func TestBoardCommand(t *testing.T) {
	r, _, out := run(t, ".board silverpoint.Board.new()", ".board 1", ".theme green", ".theme pink")
	if !strings.Contains(out, RenderBoard(engine.Default(), ThemeOff)) {
		t.Fatalf("board not drawn:\n%s", out)
	}
	if !strings.Contains(out, "1 is not a Board") {
		t.Fatalf("non-board accepted:\n%s", out)
	}
	if !strings.Contains(out, "invalid theme: pink") {
		t.Fatalf("bad theme accepted:\n%s", out)
	}
	if r.theme != ThemeGreen {
		t.Fatalf("theme = %s", r.theme)
	}
}

func TestLoadCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "moves.lua")
	if err := os.WriteFile(path, []byte(`print(#silverpoint.Board.new():legal_moves())`), 0o644); err != nil {
		t.Fatal(err)
	}
	_, _, out := run(t, ".load "+path, ".load")
	if !strings.Contains(out, "20\n") || !strings.Contains(out, "usage: .load <file>") {
		t.Fatalf("output = %q", out)
	}
}

func TestRenderBoard(t *testing.T) {
	plain := RenderBoard(engine.Default(), ThemeOff)
	lines := strings.Split(plain, "\n")
	if len(lines) != 10 {
		t.Fatalf("got %d lines", len(lines))
	}
	if !strings.HasPrefix(lines[1], "8 ♜") || !strings.HasPrefix(lines[8], "1 ♖") {
		t.Fatalf("unexpected board:\n%s", plain)
	}
	if !strings.Contains(RenderBoard(engine.Default(), ThemeGray), "\033[48;5;240m") {
		t.Fatalf("themed board has no colors")
	}
}

func TestPalette(t *testing.T) {
	if got := NewPalette(false).Prompt("silverpoint"); got != "silverpoint > " {
		t.Fatalf("plain prompt = %q", got)
	}
	p := NewPalette(true)
	if got := p.Prompt(">"); got != ansiYellow+"> > "+ansiReset {
		t.Fatalf("colored prompt = %q", got)
	}
	for name, code := range map[string]string{
		"Red": p.Red, "Green": p.Green, "Yellow": p.Yellow, "Magenta": p.Magenta, "Cyan": p.Cyan,
	} {
		if code == "" {
			t.Errorf("%s is unset", name)
		}
	}
}
