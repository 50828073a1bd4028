// FILE: cmd/silverpoint/demo_test.go
package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"silverpoint/internal/host"
)

func TestDemoPlaysAGame(t *testing.T) {
	var out bytes.Buffer
	h, err := host.New(host.WithStdout(&out))
	if err != nil {
		t.Fatal(err)
	}
	defer h.Close()

	input := strings.NewReader("e2e5\nbogus\ne2e4\n\nhistory\nresign\n")
	if err := runDemo(context.Background(), h, input, &out, 1); err != nil {
		t.Fatalf("runDemo: %v", err)
	}

	got := out.String()
	for _, want := range []string{
		"e2 to e5 is an illegal move",
		"invalid move",
		"CPU evaluated",
		"Black wins.",
		"e2 to e4",
		">>> ",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output lacks %q:\n%s", want, got)
		}
	}
}

func TestDemoStopsAtEndOfInput(t *testing.T) {
	var out bytes.Buffer
	h, err := host.New(host.WithStdout(&out))
	if err != nil {
		t.Fatal(err)
	}
	defer h.Close()

	if err := runDemo(context.Background(), h, strings.NewReader("g1f3"), &out, 1); err != nil {
		t.Fatalf("runDemo: %v", err)
	}
	if !strings.Contains(out.String(), "g1 to f3") {
		t.Fatalf("last line without newline was dropped:\n%s", out.String())
	}
}
