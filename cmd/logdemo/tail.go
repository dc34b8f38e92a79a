package main

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"go.jacobcolvin.com/tinylog"
)

func newTailCmd(cfg *tinylog.Config, settingsPath *string) *cobra.Command {
	var maxLines int

	cmd := &cobra.Command{
		Use:   "tail",
		Short: "Render a live feed of demo log lines in a TUI",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			logger, err := buildLogger(cfg, *settingsPath)
			if err != nil {
				return err
			}

			pub := tinylog.NewPublisher()
			defer pub.Close()

			// Rebind every channel to the publisher; the TUI owns the
			// terminal, so nothing may write to stdout directly.
			sink := tinylog.NewSink(pub)
			for _, ch := range tinylog.Channels() {
				logger.SetStream(ch, sink)
			}

			sub := pub.Subscribe()
			defer sub.Close()

			stop := make(chan struct{})
			defer close(stop)

			go emitFeed(logger, stop)

			p := tea.NewProgram(newTailModel(sub, maxLines))

			_, err = p.Run()
			if err != nil {
				return fmt.Errorf("running viewer: %w", err)
			}

			return nil
		},
	}

	cmd.Flags().IntVar(&maxLines, "lines", 20, "number of recent lines to keep on screen")

	return cmd
}

// emitFeed logs a rotating sample message roughly three times a second
// until stop is closed.
func emitFeed(logger *tinylog.Logger, stop <-chan struct{}) {
	channels := tinylog.Channels()

	ticker := time.NewTicker(300 * time.Millisecond)
	defer ticker.Stop()

	for i := 0; ; i++ {
		select {
		case <-stop:
			return
		case <-ticker.C:
			ch := channels[i%len(channels)]
			logger.Log(ch, tinylog.Level(i%3), fmt.Sprintf("demo event %d", i))
		}
	}
}

// lineMsg carries one rendered log line from the publisher subscription.
type lineMsg string

// feedClosedMsg signals that the subscription channel has closed.
type feedClosedMsg struct{}

// tailModel is the bubbletea model for the live log viewer.
type tailModel struct {
	sub   *tinylog.Subscription
	lines []string
	max   int
	done  bool
}

func newTailModel(sub *tinylog.Subscription, maxLines int) *tailModel {
	if maxLines < 1 {
		maxLines = 1
	}

	return &tailModel{
		sub: sub,
		max: maxLines,
	}
}

// waitForLine returns a command that blocks until the next line arrives.
func (m *tailModel) waitForLine() tea.Cmd {
	return func() tea.Msg {
		line, ok := <-m.sub.C()
		if !ok {
			return feedClosedMsg{}
		}

		return lineMsg(line)
	}
}

// Init starts listening for log lines.
func (m *tailModel) Init() tea.Cmd {
	return m.waitForLine()
}

// Update handles incoming lines, feed shutdown, and quit keys.
func (m *tailModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}

	case lineMsg:
		m.lines = append(m.lines, string(msg))
		if len(m.lines) > m.max {
			m.lines = m.lines[len(m.lines)-m.max:]
		}

		return m, m.waitForLine()

	case feedClosedMsg:
		m.done = true
	}

	return m, nil
}

// View renders the retained lines with a one-line footer.
func (m *tailModel) View() tea.View {
	var sb strings.Builder

	sb.WriteString(strings.Join(m.lines, "\n"))
	sb.WriteString("\n\n")

	if m.done {
		sb.WriteString("feed closed; press q to quit")
	} else {
		sb.WriteString("press q to quit")
	}

	v := tea.NewView(sb.String())
	v.AltScreen = true

	return v
}
