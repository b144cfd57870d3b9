package main

import (
	"context"
	"time"

	jsoniter "github.com/json-iterator/go"
	appGrpc "github.com/m-zajac/ghcard/internal/api/grpc"
	"github.com/m-zajac/ghcard/internal/app"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

type remoteOpts struct {
	server  string
	timeout time.Duration
}

func newRemoteCmd(l logrus.FieldLogger) *cobra.Command {
	var opts remoteOpts

	cmd := &cobra.Command{
		Use:   "remote",
		Short: "Call ghcard grpc server",
	}
	cmd.PersistentFlags().StringVarP(&opts.server, "server", "s", "localhost:9090", "server address in the format of host:port")
	cmd.PersistentFlags().DurationVar(&opts.timeout, "timeout", 30*time.Second, "request timeout")

	cmd.AddCommand(newRemoteStatsCmd(&opts, l))
	cmd.AddCommand(newRemoteCardCmd(&opts, l))

	return cmd
}

func newRemoteStatsCmd(opts *remoteOpts, l logrus.FieldLogger) *cobra.Command {
	return &cobra.Command{
		Use:   "stats <username>",
		Short: "Print aggregated stats as json",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(cmd.Context(), opts, l, func(ctx context.Context, c *appGrpc.Client) error {
				stats, err := c.Stats(ctx, args[0])
				if err != nil {
					return err
				}

				enc := jsoniter.ConfigCompatibleWithStandardLibrary.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(stats)
			})
		},
	}
}

func newRemoteCardCmd(opts *remoteOpts, l logrus.FieldLogger) *cobra.Command {
	var (
		output     string
		renderOpts app.RenderOptions
	)

	cmd := &cobra.Command{
		Use:   "card <username>",
		Short: "Fetch svg card",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(cmd.Context(), opts, l, func(ctx context.Context, c *appGrpc.Client) error {
				svg, err := c.Card(ctx, args[0], renderOpts)
				if err != nil {
					return err
				}

				if output == "" {
					output = args[0] + ".svg"
				}
				return errors.Wrap(writeOutput(cmd, output, svg), "writing card")
			})
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file, \"-\" for stdout (default <username>.svg)")
	addRenderFlags(cmd, &renderOpts)

	return cmd
}

func withClient(ctx context.Context, opts *remoteOpts, l logrus.FieldLogger, fn func(context.Context, *appGrpc.Client) error) error {
	ctx, cancel := context.WithTimeout(ctx, opts.timeout)
	defer cancel()

	l.Debugf("connecting to %s", opts.server)
	conn, err := grpc.DialContext(ctx, opts.server, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return errors.Wrap(err, "dialing server")
	}
	defer conn.Close()

	return fn(ctx, appGrpc.NewClient(conn))
}
