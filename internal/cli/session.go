package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ShubhamAnand123/onlawthink/internal/infra/session"
)

func loginCmd(g *globalFlags) *cobra.Command {
	var token string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Store a session token for this workspace",
		RunE: func(_ *cobra.Command, _ []string) error {
			app, err := loadApp(g.workspace, g.debug)
			if err != nil {
				return err
			}
			defer app.close()

			raw := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(token), "Bearer "))
			claims, err := app.session.Validate(raw)
			if err != nil {
				return fmt.Errorf("token rejected: %w", err)
			}
			if err := app.store.Save(raw); err != nil {
				return err
			}
			app.log.Info("session.saved", zap.String("token", session.Mask(raw)))

			fmt.Fprintf(os.Stdout, "Logged in (%s)\n", session.Mask(raw))
			if claims.Email != "" {
				fmt.Fprintf(os.Stdout, "Account: %s\n", claims.Email)
			}
			if claims.ExpiresAt != nil {
				fmt.Fprintf(os.Stdout, "Expires: %s\n", claims.ExpiresAt.Time.Format(time.RFC3339))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&token, "token", "", "Session token (JWT) issued by the directory service")
	_ = cmd.MarkFlagRequired("token")
	return cmd
}

func logoutCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored session token",
		RunE: func(_ *cobra.Command, _ []string) error {
			app, err := loadApp(g.workspace, g.debug)
			if err != nil {
				return err
			}
			defer app.close()

			if err := app.store.Clear(); err != nil {
				return err
			}
			app.log.Info("session.cleared")
			fmt.Fprintln(os.Stdout, "Logged out")
			return nil
		},
	}
}
