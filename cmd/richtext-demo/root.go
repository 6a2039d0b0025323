package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/iw2rmb/richtext"
	"github.com/iw2rmb/richtext/editor"
	"github.com/iw2rmb/richtext/history"
)

const envPrefix = "RICHTEXT"

// options holds the resolved demo settings. Flags win over RICHTEXT_*
// environment variables.
type options struct {
	Text         string
	LogFile      string
	Debug        bool
	HistoryLimit int
	TabWidth     int
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "richtext-demo",
		Short:         "Edit attributed text in the terminal",
		Version:       richtext.Version(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts, err := loadOptions(cmd)
			if err != nil {
				return err
			}
			return run(opts)
		},
	}

	f := cmd.Flags()
	f.String("text", "", "initial plain text (default: a styled sample)")
	f.String("log-file", "", "append debug logs to this file")
	f.Bool("debug", false, "log every edit")
	f.Int("history-limit", history.DefaultLimit, "undo steps to keep, negative disables undo")
	f.Int("tab-width", 0, "tab stop width in cells (0 uses the default)")
	return cmd
}

func loadOptions(cmd *cobra.Command) (options, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return options{}, fmt.Errorf("bind flags: %w", err)
	}

	opts := options{
		Text:         v.GetString("text"),
		LogFile:      v.GetString("log-file"),
		Debug:        v.GetBool("debug"),
		HistoryLimit: v.GetInt("history-limit"),
		TabWidth:     v.GetInt("tab-width"),
	}
	if opts.TabWidth < 0 {
		return options{}, fmt.Errorf("tab-width must not be negative: %d", opts.TabWidth)
	}
	return opts, nil
}

func newLogger(opts options) (*log.Logger, io.Closer, error) {
	var w io.Writer = io.Discard
	var closer io.Closer = io.NopCloser(nil)
	if opts.LogFile != "" {
		f, err := os.OpenFile(opts.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w, closer = f, f
	}
	logger := log.NewWithOptions(w, log.Options{
		Prefix:          "richtext",
		ReportTimestamp: true,
	})
	if opts.Debug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closer, nil
}

func run(opts options) error {
	logger, closer, err := newLogger(opts)
	if err != nil {
		return err
	}
	defer closer.Close()

	logger.Info("starting", "version", richtext.Version(), "history_limit", opts.HistoryLimit)
	p := tea.NewProgram(newModel(opts, logger), tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		logger.Error("program exited", "err", err)
		return err
	}
	logger.Info("bye")
	return nil
}

func logEdit(logger *log.Logger) func(editor.EditEvent) {
	return func(ev editor.EditEvent) {
		logger.Debug("edit",
			"op", ev.Op,
			"at", ev.Edit.At,
			"replaced", ev.Edit.Replaced.Replaced.DebugString(),
			"inserted", ev.Edit.Inserted.DebugString(),
			"cursor", ev.Cursor,
			"runs", len(ev.Text.Runs()),
		)
	}
}
