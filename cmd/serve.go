package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bnema/ddehost/internal/adapters/loopback"
	"github.com/bnema/ddehost/internal/dde"
	"github.com/bnema/ddehost/internal/domain"
	"github.com/bnema/ddehost/internal/logging"
	"github.com/spf13/cobra"
)

const stopTimeout = 5 * time.Second

type serveOptions struct {
	loopback bool
	sends    []string
	topic    string
}

func newServeCmd(root *rootOptions) *cobra.Command {
	opts := serveOptions{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the DDE server until interrupted",
		Long:  "serve starts the DDE feature when dde.enabled is true and keeps its message loop running until SIGINT or SIGTERM. With --loopback the protocol subsystem is simulated in process; each --send payload is then delivered as an execute and the server stops.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if len(opts.sends) > 0 && !opts.loopback {
				return errors.New("--send requires --loopback")
			}

			app, err := wireApp(root, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer app.close()

			if !domain.DDEEnabled(app.settings) {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), "dde disabled: set dde.enabled = true to serve")
				return err
			}

			deps, system, err := app.ddeDependencies(opts.loopback, cmd.OutOrStdout())
			if err != nil {
				return err
			}

			host, err := dde.Start(app.settings, deps, logging.Component(app.logger, "dde"))
			if err != nil {
				return fmt.Errorf("start dde: %w", err)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			serveErr := serve(ctx, cmd, host, system, opts)

			stopCtx, cancel := context.WithTimeout(context.Background(), stopTimeout)
			defer cancel()
			if err := host.Stop(stopCtx); err != nil {
				return errors.Join(serveErr, fmt.Errorf("stop dde host: %w", err))
			}

			stats := host.Session().Stats()
			app.logger.Info().
				Int("connects_accepted", stats.ConnectsAccepted).
				Int("connects_rejected", stats.ConnectsRejected).
				Int("executes", stats.Executes).
				Msg("dde server stopped")

			if serveErr != nil {
				return serveErr
			}
			return host.Err()
		},
	}

	cmd.Flags().BoolVar(&opts.loopback, "loopback", false, "simulate the DDE subsystem in process")
	cmd.Flags().StringArrayVar(&opts.sends, "send", nil, "execute payload to deliver through the loopback server (repeatable)")
	cmd.Flags().StringVar(&opts.topic, "topic", "", "topic used by --send (default: the configured topic)")

	return cmd
}

func serve(ctx context.Context, cmd *cobra.Command, host *dde.Host, system *loopback.System, opts serveOptions) error {
	if err := runReadySpinner(ctx, cmd.ErrOrStderr(), func(ctx context.Context) error {
		return waitReady(ctx, host)
	}); err != nil {
		return err
	}

	if len(opts.sends) > 0 {
		return sendAll(ctx, cmd.OutOrStdout(), host, system, opts)
	}

	select {
	case <-ctx.Done():
		return nil
	case <-host.Done():
		return host.Err()
	}
}

func waitReady(ctx context.Context, host *dde.Host) error {
	select {
	case <-host.Ready():
		return nil
	case <-host.Done():
		if err := host.Err(); err != nil {
			return err
		}
		return errors.New("dde host exited before it was ready")
	case <-ctx.Done():
		return ctx.Err()
	}
}

func sendAll(ctx context.Context, out io.Writer, host *dde.Host, system *loopback.System, opts serveOptions) error {
	identity := host.Session().Identity()
	topic := identity.TopicName
	if opts.topic != "" {
		topic = opts.topic
	}

	conv, err := system.Dial(ctx, identity.ServiceName, topic)
	if err != nil {
		return fmt.Errorf("connect %s/%s: %w", identity.ServiceName, topic, err)
	}

	for _, payload := range opts.sends {
		resp, err := conv.Execute(ctx, []byte(payload))
		if err != nil {
			return fmt.Errorf("execute %q: %w", payload, err)
		}
		if _, err := fmt.Fprintf(out, "response\t%s\n", resp); err != nil {
			return err
		}
	}
	return nil
}
