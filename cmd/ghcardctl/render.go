package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/m-zajac/ghcard/internal/adapter/github"
	"github.com/m-zajac/ghcard/internal/app"
	"github.com/m-zajac/ghcard/internal/card"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type renderOpts struct {
	profilePath string
	apiAddress  string
	token       string
	output      string
	timeout     time.Duration
	card        app.RenderOptions
}

func newRenderCmd(l logrus.FieldLogger) *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render <username>",
		Short: "Render stats card locally",
		Long:  "Render stats card fetching profile from github api, or reading it from a json file given with --profile.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, args[0], opts, l)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.profilePath, "profile", "", "read raw profile from json file instead of github api")
	f.StringVar(&opts.apiAddress, "api", "https://api.github.com", "github api address")
	f.StringVar(&opts.token, "token", os.Getenv("GITHUB_TOKEN"), "github api token, defaults to GITHUB_TOKEN")
	f.StringVarP(&opts.output, "output", "o", "", "output file, \"-\" for stdout (default <username>.svg)")
	f.DurationVar(&opts.timeout, "timeout", 30*time.Second, "profile fetch timeout")
	addRenderFlags(cmd, &opts.card)

	return cmd
}

func runRender(cmd *cobra.Command, login string, opts renderOpts, l logrus.FieldLogger) error {
	var client app.ProfileClient
	if opts.profilePath != "" {
		client = &fileProfileClient{path: opts.profilePath}
	} else {
		client = github.NewClient(&http.Client{Timeout: opts.timeout}, opts.apiAddress, opts.token)
	}

	service := app.NewService(client, card.NewRenderer(), opts.timeout)

	l.Debugf("rendering card for %s", login)
	svg, err := service.Card(cmd.Context(), login, opts.card)
	if err != nil {
		return errors.Wrapf(err, "rendering card for %s", login)
	}

	output := opts.output
	if output == "" {
		output = login + ".svg"
	}
	if err := writeOutput(cmd, output, svg); err != nil {
		return errors.Wrap(err, "writing card")
	}
	l.Debugf("card written to %s", output)

	return nil
}

// fileProfileClient reads raw profile from json file.
type fileProfileClient struct {
	path string
}

func (c *fileProfileClient) Profile(_ context.Context, login string) (*app.RawProfile, error) {
	data, err := os.ReadFile(c.path)
	if err != nil {
		return nil, fmt.Errorf("reading profile file: %w", err)
	}

	var p app.RawProfile
	if err := jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal(data, &p); err != nil {
		return nil, app.InvalidProfileError(fmt.Sprintf("decoding profile file: %v", err))
	}
	if p.Login == "" {
		p.Login = login
	}

	return &p, nil
}
