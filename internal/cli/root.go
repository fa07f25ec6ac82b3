package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ShubhamAnand123/onlawthink/internal/domain"
	"github.com/ShubhamAnand123/onlawthink/internal/infra/logger"
	"github.com/ShubhamAnand123/onlawthink/internal/ui/tui"
)

type globalFlags struct {
	workspace string
	debug     bool
}

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", describe(err))
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	g := &globalFlags{}

	cmd := &cobra.Command{
		Use:           "onlawthink",
		Short:         "onlawthink: browse the lawyer directory from the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(g.workspace, g.debug)
			if err != nil {
				return err
			}
			defer app.close()

			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()
			app.serveMetrics(ctx)

			return tui.Run(tui.Deps{
				Service:  app.svc,
				Session:  app.session,
				Recorder: app.recorder,
				Logger:   app.log,
				LogPath:  logger.Path(),
				Root:     app.root,
			})
		},
	}

	cmd.PersistentFlags().BoolVar(&g.debug, "debug", false, "enable verbose logging to .onlawthink/logs/onlawthink.log")
	cmd.PersistentFlags().StringVarP(&g.workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")

	cmd.AddCommand(
		lawyersCmd(g),
		domainsCmd(g),
		loginCmd(g),
		logoutCmd(g),
		initCmd(),
		fixturesCmd(g),
		versionCmd(),
	)
	return cmd
}

// describe renders errors from the directory stack in user terms and leaves
// everything else, such as flag errors, as cobra reported it.
func describe(err error) string {
	var oe *domain.OpError
	if errors.Is(err, domain.ErrUnauthenticated) || errors.As(err, &oe) || domain.IsKind(err, domain.KindService) {
		return tui.UserMessage(err)
	}
	return err.Error()
}
