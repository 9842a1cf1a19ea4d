package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"shakecalc/internal/motion"
)

var (
	addr     string
	batch    int
	interval time.Duration
	strict   bool
	verbose  bool
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "sensorfeed [file]",
		Short:        "Push accelerometer samples to a running shakecalc",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE:         run,
	}
	root.Flags().StringVar(&addr, "addr", "http://127.0.0.1:8087", "shakecalc base URL")
	root.Flags().IntVar(&batch, "batch", 1, "samples per request")
	root.Flags().DurationVar(&interval, "interval", 20*time.Millisecond, "delay between requests")
	root.Flags().BoolVar(&strict, "strict", false, "fail on malformed samples instead of skipping them")
	root.Flags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	return root
}

func run(cmd *cobra.Command, args []string) error {
	if batch < 1 {
		return fmt.Errorf("--batch must be at least 1")
	}

	zc := zap.NewProductionConfig()
	if verbose {
		zc.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	log, err := zc.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	in := cmd.InOrStdin()
	if len(args) == 1 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	src := motion.NewReaderSource(in, log)
	src.Strict = strict
	f := &feeder{
		client:   motion.NewClient(addr, &http.Client{Timeout: 5 * time.Second}),
		batch:    batch,
		interval: interval,
		log:      log,
	}
	sent, err := f.feed(cmd.Context(), src)
	log.Info("feed finished", zap.String("addr", addr), zap.Int("sent", sent))
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "sent %d samples\n", sent)
	return nil
}
