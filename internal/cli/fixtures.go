package cli

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ShubhamAnand123/onlawthink/internal/infra/fixtureserver"
	"github.com/ShubhamAnand123/onlawthink/internal/infra/yamlfixtures"
	"github.com/ShubhamAnand123/onlawthink/internal/ports"
)

func fixturesCmd(g *globalFlags) *cobra.Command {
	c := &cobra.Command{
		Use:   "fixtures",
		Short: "Local directory service backed by YAML fixtures",
	}

	c.AddCommand(fixturesServeCmd(g))
	return c
}

func fixturesServeCmd(g *globalFlags) *cobra.Command {
	var file string
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the directory endpoints from a fixture file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(g.workspace, g.debug)
			if err != nil {
				return err
			}
			defer app.close()

			path := file
			if !filepath.IsAbs(path) {
				path = filepath.Join(app.root, path)
			}

			var loader ports.SnapshotLoader = yamlfixtures.NewLoader()
			snap, err := loader.LoadSnapshot(path)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			h := fixtureserver.New(snap, app.cfg.Service.Paths, app.log)
			app.log.Info("fixtures.loaded",
				zap.String("path", path),
				zap.Int("lawyers", len(snap.Providers)),
				zap.Int("case_domains", len(snap.CaseDomains)),
			)
			fmt.Printf("Serving %d lawyers from %s on %s (ctrl+c to stop)\n", len(snap.Providers), path, addr)

			return fixtureserver.Serve(ctx, addr, h.Router(), app.log)
		},
	}

	cmd.Flags().StringVar(&file, "file", "fixtures/lawyers.yaml", "Fixture file (relative to the workspace root)")
	cmd.Flags().StringVar(&addr, "addr", ":5000", "Listen address")
	return cmd
}
