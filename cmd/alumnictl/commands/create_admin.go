package commands

import (
	"github.com/spf13/cobra"

	"github.com/yigit/alumnet/internal/app/repositories"
	"github.com/yigit/alumnet/internal/pkg/printer"
	"github.com/yigit/alumnet/internal/seed"
)

var adminAccount seed.AdminAccount

var createAdminCmd = &cobra.Command{
	Use:   "create-admin",
	Short: "Provision an approved administrator account",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(adminAccount.Password) < 6 {
			return printer.Error("Password too short", "admin passwords need at least 6 characters.", nil)
		}

		_, pool, lgr, err := connect(cmd.Context())
		if err != nil {
			return err
		}
		defer pool.Close()

		printer.Step("creating admin %s\n", adminAccount.Email)
		created, err := seed.EnsureAdmin(cmd.Context(), repositories.NewUserRepository(pool), adminAccount, lgr)
		if err != nil {
			return printer.Error("Cannot create admin", err.Error(), map[string]string{"email": adminAccount.Email})
		}
		if !created {
			printer.Warning("an account with email %s already exists\n", adminAccount.Email)
			return nil
		}
		printer.Success("admin %s created\n", adminAccount.Email)
		return nil
	},
}

func init() {
	createAdminCmd.Flags().StringVar(&adminAccount.Email, "email", "", "admin email address")
	createAdminCmd.Flags().StringVar(&adminAccount.Name, "name", "Administrator", "display name")
	createAdminCmd.Flags().StringVar(&adminAccount.Password, "password", "", "initial password")
	_ = createAdminCmd.MarkFlagRequired("email")
	_ = createAdminCmd.MarkFlagRequired("password")
	rootCmd.AddCommand(createAdminCmd)
}
