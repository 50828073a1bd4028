// FILE: cmd/silverpoint/demo.go
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/Shopify/go-lua"

	"silverpoint/examples"
	"silverpoint/internal/host"
)

// runDemo installs input(prompt) and DEMO_DEPTH, then runs the terminal game
func runDemo(ctx context.Context, h *host.Host, stdin io.Reader, prompts io.Writer, depth int) error {
	reader := bufio.NewReader(stdin)
	err := h.Do(ctx, func(l *lua.State) error {
		l.PushGoFunction(func(l *lua.State) int {
			fmt.Fprint(prompts, lua.OptString(l, 1, ""))
			line, err := reader.ReadString('\n')
			if err != nil && (!errors.Is(err, io.EOF) || line == "") {
				l.PushNil()
				return 1
			}
			l.PushString(strings.TrimRight(line, "\r\n"))
			return 1
		})
		l.SetGlobal("input")
		l.PushInteger(depth)
		l.SetGlobal("DEMO_DEPTH")
		return nil
	})
	if err != nil {
		return err
	}

	_, err = h.Exec(ctx, "terminal.lua", examples.Terminal)
	return err
}
