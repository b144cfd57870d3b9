package main

import (
	"os"

	"github.com/m-zajac/ghcard/internal/app"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	var verbose bool
	l := logrus.New()
	l.Out = os.Stderr

	root := &cobra.Command{
		Use:           "ghcardctl",
		Short:         "ghcardctl renders github profile stats cards",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			l.Level = logrus.WarnLevel
			if verbose {
				l.Level = logrus.DebugLevel
			}
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newRenderCmd(l))
	root.AddCommand(newRemoteCmd(l))

	return root
}

// addRenderFlags binds card options to command flags.
func addRenderFlags(cmd *cobra.Command, opts *app.RenderOptions) {
	*opts = app.DefaultRenderOptions()

	f := cmd.Flags()
	f.BoolVar(&opts.ShowName, "show-name", opts.ShowName, "show user name in header")
	f.BoolVar(&opts.ShowStats, "stats", opts.ShowStats, "show stats section")
	f.BoolVar(&opts.ShowLanguages, "languages", opts.ShowLanguages, "show languages section")
	f.BoolVar(&opts.ShowStreak, "streak", opts.ShowStreak, "show streak section")
	f.BoolVar(&opts.ShowActivity, "activity", opts.ShowActivity, "show activity section")
	f.BoolVar(&opts.IncludePrivate, "include-private", opts.IncludePrivate, "count private contributions")
	f.BoolVar(&opts.FullWidth, "full-width", opts.FullWidth, "stretch card to container width")
	f.StringVar(&opts.Accent, "accent", opts.Accent, "accent color, 6 hex digits")
}

// writeOutput writes data to file, or to stdout when path is "-".
func writeOutput(cmd *cobra.Command, path string, data []byte) error {
	if path == "-" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}
	return os.WriteFile(path, data, 0644)
}
