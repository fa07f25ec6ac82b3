package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ShubhamAnand123/onlawthink/internal/domain"
	"github.com/ShubhamAnand123/onlawthink/internal/usecase"
)

func lawyersCmd(g *globalFlags) *cobra.Command {
	c := &cobra.Command{
		Use:   "lawyers",
		Short: "Query lawyers in the directory",
	}

	c.AddCommand(lawyersListCmd(g), lawyersSearchCmd(g), lawyersShowCmd(g))
	return c
}

func lawyersListCmd(g *globalFlags) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List every lawyer",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(g.workspace, g.debug)
			if err != nil {
				return err
			}
			defer app.close()

			uc := usecase.NewQueryDirectory(app.svc, app.session,
				usecase.WithViewLogger(app.log),
				usecase.WithRecorder(app.recorder),
			)
			report, err := uc.Execute(cmd.Context(), usecase.QueryRequest{Mode: domain.ModeAll})
			if err != nil {
				return err
			}
			return printReport(os.Stdout, report, format)
		},
	}

	cmd.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json")
	return cmd
}

func lawyersSearchCmd(g *globalFlags) *cobra.Command {
	var format string
	var caseDomain string

	cmd := &cobra.Command{
		Use:   "search",
		Short: "List lawyers handling a case domain",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(g.workspace, g.debug)
			if err != nil {
				return err
			}
			defer app.close()

			uc := usecase.NewQueryDirectory(app.svc, app.session,
				usecase.WithViewLogger(app.log),
				usecase.WithRecorder(app.recorder),
			)
			report, err := uc.Execute(cmd.Context(), usecase.QueryRequest{
				Mode:       domain.ModeByCaseDomain,
				CaseDomain: caseDomain,
				Submit:     true,
			})
			if err != nil {
				return err
			}
			return printReport(os.Stdout, report, format)
		},
	}

	cmd.Flags().StringVarP(&caseDomain, "case-domain", "d", "", "Case domain to query (see `onlawthink domains`)")
	cmd.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json")
	return cmd
}

func lawyersShowCmd(g *globalFlags) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show the profile and contact details of one lawyer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(g.workspace, g.debug)
			if err != nil {
				return err
			}
			defer app.close()

			uc := usecase.NewQueryDirectory(app.svc, app.session,
				usecase.WithViewLogger(app.log),
				usecase.WithRecorder(app.recorder),
			)
			report, err := uc.Execute(cmd.Context(), usecase.QueryRequest{Mode: domain.ModeAll})
			if err != nil {
				return err
			}

			p, err := findVisible(report, args[0])
			if err != nil {
				return err
			}
			return printProvider(os.Stdout, p, format)
		},
	}

	cmd.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json")
	return cmd
}

// findVisible looks id up among the records the report would display.
func findVisible(report usecase.DirectoryReport, id string) (domain.Provider, error) {
	if !report.State.RecordsVisible(report.Mode) {
		return domain.Provider{}, fmt.Errorf("lawyer %q not found: %s", id, report.State.Message)
	}
	p, ok := domain.FindProvider(report.State.Records, id)
	if !ok {
		return domain.Provider{}, fmt.Errorf("lawyer %q not found: %w", id, domain.ErrNotFound)
	}
	return p, nil
}

func domainsCmd(g *globalFlags) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "domains",
		Short: "List the case domains offered by the directory",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(g.workspace, g.debug)
			if err != nil {
				return err
			}
			defer app.close()

			uc := usecase.NewQueryDirectory(app.svc, app.session,
				usecase.WithViewLogger(app.log),
				usecase.WithRecorder(app.recorder),
			)
			report, err := uc.Execute(cmd.Context(), usecase.QueryRequest{Mode: domain.ModeByCaseDomain})
			if err != nil {
				return err
			}
			return printCatalog(os.Stdout, report.Catalog, format)
		},
	}

	cmd.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json")
	return cmd
}
