package main

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

	"github.com/rs/zerolog"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"free-game-tracker/internal/common/config"
	"free-game-tracker/internal/common/logger"
	"free-game-tracker/internal/features/giveaway/consumer"
	"free-game-tracker/internal/features/giveaway/render"
	"free-game-tracker/internal/features/giveaway/view"
)

const serviceName = "free-game-tracker"

type options struct {
	backendURL string
	platforms  []string
	showFree   bool
	details    bool
	timeout    time.Duration
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := options{}

	cmd := &cobra.Command{
		Use:           "tracker",
		Short:         "Discover and claim free games before they're gone",
		Long:          "Loads current giveaways from the gateway, ranks the best paid-game deals and prints them grouped into featured, limited-time and free-forever sections.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadTracker()
			if err != nil {
				return err
			}
			logger.Setup(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}, serviceName, cfg.Debug)

			if !cmd.Flags().Changed("backend-url") && cfg.BackendURL != "" {
				opts.backendURL = cfg.BackendURL
			}
			if opts.backendURL == "" {
				return errors.New("backend URL is required: pass --backend-url or set BACKEND_URL")
			}

			client := consumer.NewClient(opts.backendURL, opts.timeout)
			err = run(cmd.Context(), cmd.OutOrStdout(), opts, client)
			// сообщение о неудачной загрузке уже выведено рендером
			if err != nil && !errors.Is(err, consumer.ErrLoadFailed) {
				fmt.Fprintln(cmd.ErrOrStderr(), err)
			}
			return err
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.backendURL, "backend-url", "", "gateway base URL (env BACKEND_URL)")
	flags.StringSliceVarP(&opts.platforms, "platform", "p", nil, "show only giveaways for these platforms (repeatable)")
	flags.BoolVar(&opts.showFree, "show-free", false, "expand the free-forever section")
	flags.BoolVar(&opts.details, "details", false, "print description and claim instructions")
	flags.DurationVar(&opts.timeout, "timeout", 30*time.Second, "request timeout, 0 disables it")

	return cmd
}

// run drives one session: load, apply the requested toggles, print.
func run(ctx context.Context, out io.Writer, opts options, fetcher view.Fetcher) error {
	ctrl := view.NewController(fetcher)

	loadErr := ctrl.Load(ctx)
	if loadErr == nil {
		known := ctrl.Snapshot().Platforms
		for _, p := range opts.platforms {
			ctrl.TogglePlatform(canonicalPlatform(known, p))
		}
		if opts.showFree {
			ctrl.ToggleFreeForever()
		}
	}

	if err := render.Text(out, ctrl.Snapshot(), render.Options{Details: opts.details}); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	if loadErr != nil {
		return consumer.ErrLoadFailed
	}
	return nil
}

// canonicalPlatform maps user input onto the spelling shown in the platform
// list; unknown names are kept as typed.
func canonicalPlatform(known []string, name string) string {
	name = strings.TrimSpace(name)
	if match, ok := lo.Find(known, func(k string) bool { return strings.EqualFold(k, name) }); ok {
		return match
	}
	return name
}
