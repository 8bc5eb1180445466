package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"
	_ "time/tzdata" // display zones must resolve on hosts without a zoneinfo database

	"github.com/pfrederiksen/escala/internal/config"
	"github.com/pfrederiksen/escala/internal/fetcher"
	"github.com/pfrederiksen/escala/internal/logger"
	"github.com/pfrederiksen/escala/internal/notifier"
	"github.com/pfrederiksen/escala/internal/schedule"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// notifySubject is the subject of published listings
const notifySubject = "Escala"

var (
	flagToken     string
	flagCount     int
	flagJSON      bool
	flagTimezone  string
	flagVerbose   bool
	flagNotify    bool
	flagDryRun    bool
	flagStripHTML bool
)

// version is set at build time with -ldflags "-X .../internal/cli.version=..."
var version = "dev"

// nowFunc is the clock used to decide which events are upcoming
var nowFunc = time.Now

// newNotifier picks the channel for --notify
var newNotifier = func(ctx context.Context, cfg config.Config, dryRun bool, w io.Writer) (notifier.Notifier, error) {
	if dryRun {
		return notifier.NewDryRunNotifier(w), nil
	}
	n, err := notifier.NewSNSNotifier(ctx, cfg.SNSTopicARN)
	if err != nil {
		return nil, err
	}
	return n, nil
}

// runtimeError marks a failure that happened after the arguments were accepted
type runtimeError struct {
	err error
}

func (e *runtimeError) Error() string { return e.err.Error() }
func (e *runtimeError) Unwrap() error { return e.err }

// NewRootCmd creates the root command. Flag defaults come from cfg.
func NewRootCmd(cfg config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "escala --token TOKEN",
		Short: "Show the upcoming events of a team schedule",
		Long: `A CLI tool to check a team's upcoming schedule ("escala").
Fetches the scheduled area identified by --token and prints the next events
with their date, team members and hymns, in Brazilian Portuguese or as JSON.`,
		Args:          cobra.NoArgs,
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEscala(cmd, cfg)
		},
	}

	// Define flags
	cmd.Flags().StringVarP(&flagToken, "token", "t", "", "Scheduled area token (required)")
	cmd.Flags().IntVarP(&flagCount, "count", "c", cfg.Count, "Number of upcoming events to show")
	cmd.Flags().BoolVarP(&flagJSON, "json", "j", false, "Print the events as JSON")
	cmd.Flags().StringVar(&flagTimezone, "timezone", cfg.Timezone, "Time zone event dates are displayed in (default: the offset each date was written with)")
	cmd.Flags().BoolVar(&flagStripHTML, "strip-html", false, "Reduce rich-text hymn content to plain text")
	cmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable verbose logging")
	cmd.Flags().BoolVar(&flagNotify, "notify", false, "Publish the listing to the SNS topic in ESCALA_SNS_TOPIC_ARN")
	cmd.Flags().BoolVar(&flagDryRun, "dry-run", false, "With --notify, print the notification instead of publishing it")

	cmd.MarkFlagRequired("token") // nolint:errcheck

	return cmd
}

// runEscala validates the flags and runs the check. Validation failures are
// usage errors; everything after is wrapped in a runtimeError.
func runEscala(cmd *cobra.Command, cfg config.Config) error {
	token := strings.TrimSpace(flagToken)
	if token == "" {
		return fmt.Errorf("--token must not be empty")
	}
	if flagCount < 1 {
		return fmt.Errorf("invalid count %d: must be at least 1", flagCount)
	}
	cfg.Count = flagCount
	cfg.Timezone = flagTimezone

	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	if flagVerbose {
		cfg.LogLevel = "debug"
	}
	log, err := logger.New(cfg.LogLevel, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	if flagNotify && !flagDryRun && cfg.SNSTopicARN == "" {
		return fmt.Errorf("--notify requires ESCALA_SNS_TOPIC_ARN to be set")
	}

	format := FormatText
	if flagJSON {
		format = FormatJSON
	}

	opts := TextOptions{Location: loc, StripHTML: flagStripHTML}
	if err := check(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), log, cfg, token, format, opts); err != nil {
		return &runtimeError{err: err}
	}
	return nil
}

// check fetches, selects and prints the upcoming events
func check(ctx context.Context, stdout, stderr io.Writer, log *logrus.Logger, cfg config.Config, token string, format OutputFormat, opts TextOptions) error {
	log.WithFields(logger.Fields{
		"base_url":   cfg.BaseURL,
		"count":      cfg.Count,
		"format":     format,
		"timezone":   cfg.Timezone,
		"strip_html": opts.StripHTML,
	}).Debug("checking schedule")

	f := fetcher.New(cfg, fetcher.WithLogger(log))
	resp, err := f.FetchSchedules(ctx, token)
	if err != nil {
		return fmt.Errorf("fetching schedules: %w", err)
	}

	items, err := schedule.Upcoming(resp, cfg.Count, nowFunc().UTC())
	if err != nil {
		return fmt.Errorf("selecting upcoming events: %w", err)
	}

	log.WithFields(logger.Fields{
		"fetched":  len(resp.Data),
		"selected": len(items),
	}).Debug("selected upcoming events")

	if err := WriteOutput(stdout, items, format, opts); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	if !flagNotify {
		return nil
	}

	message, err := renderText(items, opts)
	if err != nil {
		return fmt.Errorf("rendering notification: %w", err)
	}
	n, err := newNotifier(ctx, cfg, flagDryRun, stderr)
	if err != nil {
		return fmt.Errorf("initializing notifier: %w", err)
	}
	if err := n.Notify(ctx, notifySubject, message); err != nil {
		return fmt.Errorf("notifying: %w", err)
	}

	log.WithField("dry_run", flagDryRun).Debug("published listing")
	return nil
}

// Run executes the CLI with args and returns the process exit code.
// Runtime errors are printed to stdout as "Erro: ..."; usage errors go to
// stderr followed by the usage text.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return ExitUsage
	}

	// cobra falls back to os.Args on nil
	if args == nil {
		args = []string{}
	}

	cmd := NewRootCmd(cfg)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err = cmd.ExecuteContext(ctx)
	if err == nil {
		return ExitSuccess
	}

	var rtErr *runtimeError
	if errors.As(err, &rtErr) {
		fmt.Fprintf(stdout, "Erro: %v\n", rtErr.err)
		return ExitCode(rtErr.err)
	}

	fmt.Fprintf(stderr, "Error: %v\n", err)
	fmt.Fprint(stderr, cmd.UsageString())
	return ExitUsage
}

// Execute runs the CLI
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := Run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
