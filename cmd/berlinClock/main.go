package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"

	"berlinClock/pkg/berlinClockCore"
	"berlinClock/pkg/lampfeed"
)

func main() {
	cfg, err := berlinClockCore.LoadConfig(os.Args[1:])
	if errors.Is(err, pflag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(1)
	}

	if cfg.At != "" {
		if err := printFace(os.Stdout, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	// The terminal belongs to bubbletea, so logs go to a file
	logFile, err := tea.LogToFile(cfg.Clock.LogFile, "")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening log file: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()

	logger := newLogger(logFile, cfg.Clock.LogLevel)
	logger.Info("Starting Berlin Clock",
		"utc", cfg.Clock.UTC,
		"tick", cfg.TickInterval(),
		"mqtt_enabled", cfg.MQTT.Enabled)

	feed, err := startFeed(cfg, logger)
	if err != nil {
		logger.Error("Lamp feed failed to start", "error", err)
		fmt.Fprintf(os.Stderr, "Error starting lamp feed: %v\n", err)
		os.Exit(1)
	}
	defer feed.Close()

	p := tea.NewProgram(initialModel(cfg, feed, logger, time.Now()))
	if _, err := p.Run(); err != nil {
		logger.Error("Program exited with error", "error", err)
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}

	logger.Info("Berlin Clock stopped")
}

// printFace writes the five rows for --at and, when the feed is
// enabled, publishes that face once.
func printFace(w io.Writer, cfg *berlinClockCore.Config) error {
	face, err := berlinClockCore.ParseFace(cfg.At)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, face.String()); err != nil {
		return err
	}

	if !cfg.MQTT.Enabled {
		return nil
	}

	logger := newLogger(os.Stderr, cfg.Clock.LogLevel)
	feed, err := startFeed(cfg, logger)
	if err != nil {
		return err
	}
	defer feed.Close()
	return feed.Publish(face)
}

func startFeed(cfg *berlinClockCore.Config, logger *slog.Logger) (*lampfeed.Publisher, error) {
	if !cfg.MQTT.Enabled {
		return lampfeed.Disabled(), nil
	}

	clientID := lampfeed.ClientID(cfg)
	client := lampfeed.NewClient(cfg, clientID, logger)
	feed := lampfeed.NewPublisher(client, lampfeed.FaceTopic(cfg.MQTT.TopicPrefix, clientID), byte(cfg.MQTT.QoS), logger)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := feed.Start(ctx); err != nil {
		return nil, err
	}
	logger.Info("Lamp feed connected", "topic", feed.Topic())
	return feed, nil
}

func newLogger(w io.Writer, level string) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: parseLogLevel(level),
	}))
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
