// Copyright (c) 2026 ALH477
// SPDX-License-Identifier: MIT

// bijou-demo is a small terminal dashboard exercising the Bijou engine end
// to end: a flex column of a header, a DAG of pipeline stages with a fixed
// highlighted path, and a footer, with a spring animation driving the sweep
// percentage shown in the header, all through the runtime's TEA-style
// program loop. It is the direct descendant of the teacher
// infgo's system-monitor main.go, replaced stage for stage: gopsutil's
// CPU/mem sampling becomes a fixed demo pipeline, Bubble Tea's Program
// becomes this module's own runtime.Run, and the .infgo activity log
// becomes the session recorder in internal/record.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/bijou-tui/bijou/anim"
	"github.com/bijou-tui/bijou/bus"
	"github.com/bijou-tui/bijou/dag"
	"github.com/bijou-tui/bijou/flex"
	"github.com/bijou-tui/bijou/internal/record"
	"github.com/bijou-tui/bijou/internal/termio"
	"github.com/bijou-tui/bijou/runtime"
	"github.com/bijou-tui/bijou/style"
	"github.com/bijou-tui/bijou/theme"
)

// stages is the fixed demo pipeline: a small build/deploy DAG drawn with
// highlightPath highlighted, the same role the teacher's CPU sparkline
// plays as a focal point for the eye.
var stages = []dag.Node{
	{ID: "fetch", Label: "fetch", Children: []string{"build"}},
	{ID: "build", Label: "build", Children: []string{"test", "lint"}},
	{ID: "test", Label: "test", Children: []string{"deploy"}},
	{ID: "lint", Label: "lint", Children: []string{"deploy"}},
	{ID: "deploy", Label: "deploy", Children: nil},
}

var highlightPath = []string{"fetch", "build", "test", "deploy"}

type tickMsg time.Time

func tick() bus.Cmd {
	return func(ctx context.Context, emit bus.Emit) bus.Msg {
		select {
		case <-time.After(110 * time.Millisecond):
			return tickMsg(time.Now())
		case <-ctx.Done():
			return bus.Quit
		}
	}
}

type model struct {
	width, height int
	spring        anim.Spring
}

func initialModel() model {
	return model{width: 80, height: 24, spring: anim.NewSpring(0, 1, anim.DefaultSpringConfig())}
}

func initCmd() (runtime.Model, []bus.Cmd) {
	return initialModel(), []bus.Cmd{tick()}
}

func update(msg bus.Msg, rm runtime.Model) (runtime.Model, []bus.Cmd, error) {
	m := rm.(model)
	switch msg := msg.(type) {
	case bus.ResizeMsg:
		m.width, m.height = msg.Columns, msg.Rows
		return m, nil, nil
	case bus.KeyMsg:
		if msg.Key == "q" || (msg.Key == "c" && msg.Ctrl) {
			return m, []bus.Cmd{func(context.Context, bus.Emit) bus.Msg { return bus.Quit }}, nil
		}
		return m, nil, nil
	case tickMsg:
		m.spring = m.spring.Step(110.0 / 1000.0)
		if m.spring.Done {
			target := 0.0
			if m.spring.Target == 0 {
				target = 1
			}
			m.spring = anim.NewSpring(m.spring.Position, target, anim.DefaultSpringConfig())
		}
		return m, []bus.Cmd{tick()}, nil
	}
	return m, nil, nil
}

func view(rm runtime.Model) string {
	m := rm.(model)
	sp := style.New(false)

	progress := fmt.Sprintf("sweep: %.0f%%", m.spring.Position*100)
	header := flex.Child{Content: sp.Bold("bijou-demo") + "   " + progress}

	result, err := dag.Layout(dag.NewSource(stages), dag.RenderOptions{
		Profile:   dag.ProfileGrid,
		MaxWidth:  m.width - 4,
		Style:     sp.Styled,
		Highlight: highlightPath,
	})
	var body string
	if err != nil {
		body = fmt.Sprintf("dag error: %v", err)
	} else {
		body = result.Grid
	}

	cont := flex.Container{Direction: flex.Column, Width: m.width, Height: m.height, Gap: 1}
	return cont.Render([]flex.Child{
		header,
		{Content: body, Flex: 1},
		{Content: "q to quit"},
	})
}

func main() {
	logPath := flag.String("log", "", "record the session to `file.bin` (length-prefixed protobuf)")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: bijou-demo [-log <file.bin>]\n\nFlags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	term := termio.New()
	raw, err := term.EnterRaw()
	if err != nil {
		fmt.Fprintf(os.Stderr, "bijou-demo: %v\n", err)
		os.Exit(1)
	}
	defer raw.Dispose()

	rt := termio.DetectRuntime()
	noColor := termio.NoColor()
	th := theme.Default()
	if noColor {
		th = theme.NoColor()
	}

	cfg := runtime.Config{
		Runtime: rt,
		IO:      term,
		Style:   style.New(noColor),
		Theme:   th,
	}

	var logFile *os.File
	if *logPath != "" {
		f, err := os.Create(*logPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "bijou-demo: open log: %v\n", err)
			os.Exit(1)
		}
		logFile = f
		cfg.Recorder = record.NewWriter(f)
	}

	prog := runtime.Program{Init: initCmd, Update: update, View: view}
	if err := runtime.Run(context.Background(), prog, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "bijou-demo: %v\n", err)
		os.Exit(1)
	}

	if logFile != nil {
		if err := logFile.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "bijou-demo: close log: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("bijou-demo: session recorded to %s\n", *logPath)
	}
}
