package main

import (
	"fmt"
	"os"

	identityapp "github.com/flexo/backend/internal/application/identity"
	"github.com/flexo/backend/internal/domain/identity"
	"github.com/flexo/backend/internal/infrastructure/auth"
	"github.com/flexo/backend/internal/infrastructure/persistence"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func userCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage users",
	}
	cmd.AddCommand(createUserCmd())
	return cmd
}

func createUserCmd() *cobra.Command {
	var req identityapp.CreateUserRequest

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a user, typically the first admin",
		Example: `  flexoctl user create --name "Ana Souza" --email ana@grafica.com.br --role admin
  FLEXO_USER_PASSWORD=s3cret-pass flexoctl user create --email op@grafica.com.br --name Op --role operator`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if req.Password == "" {
				req.Password = os.Getenv("FLEXO_USER_PASSWORD")
			}
			if req.Password == "" {
				return fmt.Errorf("a password is required: pass --password or set FLEXO_USER_PASSWORD")
			}

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			db, err := openDatabase(cfg)
			if err != nil {
				return err
			}
			defer db.Close()

			presets, err := identity.LoadRolePresets(cfg.App.RolesFile)
			if err != nil {
				return err
			}
			users := identityapp.NewUserService(
				persistence.NewGormUserRepository(db.DB),
				presets,
				auth.NewMemoryRevocations(),
				nil,
				identityapp.DefaultAuthServiceConfig(),
				log,
			)

			user, err := users.Create(cmd.Context(), req)
			if err != nil {
				return err
			}
			log.Info("User created", zap.String("user_id", user.ID.String()))
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%v\n", user.ID, user.Email, user.Role, user.AllowedRoutes)
			return nil
		},
	}

	cmd.Flags().StringVar(&req.Name, "name", "", "full name")
	cmd.Flags().StringVar(&req.Email, "email", "", "login email")
	cmd.Flags().StringVar(&req.Password, "password", "", "password (prefer FLEXO_USER_PASSWORD)")
	cmd.Flags().StringVar(&req.Role, "role", string(identity.RoleOperator), "admin, manager, operator or viewer")
	cmd.Flags().StringSliceVar(&req.AllowedRoutes, "routes", nil, "allowed route prefixes, defaults to the role preset")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}
