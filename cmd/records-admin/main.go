package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"academic-records-backend/config"
	"academic-records-backend/db"
	"academic-records-backend/initializers"
	usersprovider "academic-records-backend/lib/users"
	usersload "academic-records-backend/lib/users-load"
	usersapimodels "academic-records-backend/models/api/users"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "records-admin",
		Short:         "Maintenance commands for the academic records backend",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(migrateCmd(), loadUsersCmd(), createSuperuserCmd())
	return cmd
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database structure",
		RunE: func(cmd *cobra.Command, args []string) error {
			initializers.InitLogger()
			config.InitConfig()
			dbConf := config.Conf.Database
			return db.Connect(dbConf.Host, dbConf.Port, dbConf.Name, dbConf.User, dbConf.Password, *dbConf.DebugMode, true)
		},
	}
}

func loadUsersCmd() *cobra.Command {
	var sheet string
	cmd := &cobra.Command{
		Use:   "load-users <workbook.xlsx>",
		Short: "Create user accounts from a spreadsheet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()
			initializers.InitAllServices(ctx)

			file, err := os.Open(args[0])
			if err != nil {
				return errors.Wrap(err, "failed to open the workbook")
			}
			defer file.Close()

			result, err := usersload.Instance.Load(ctx, file, filepath.Base(args[0]), sheet, "")
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, username := range result.Created {
				fmt.Fprintf(out, "created %s\n", username)
			}
			for _, failure := range result.Failures {
				fmt.Fprintf(out, "row %d (%s): %s\n", failure.Row, failure.Username, failure.Error)
			}
			fmt.Fprintf(out, "%d created, %d failed\n", len(result.Created), len(result.Failures))
			return nil
		},
	}
	cmd.Flags().StringVar(&sheet, "sheet", "", "sheet name (defaults to the configured user sheet)")
	return cmd
}

func createSuperuserCmd() *cobra.Command {
	var request usersapimodels.UserData
	cmd := &cobra.Command{
		Use:   "create-superuser",
		Short: "Create an active staff superuser",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()
			initializers.InitAllServices(ctx)

			active := true
			request.IsActive = &active
			request.IsStaff = true
			request.IsSuperuser = true
			if err := request.Validate(); err != nil {
				return err
			}
			id, err := usersprovider.Instance.Create(request)
			if err != nil {
				return err
			}
			log.WithField("user_id", id).WithField("username", request.Username).Info("superuser created")
			return nil
		},
	}
	cmd.Flags().StringVar(&request.Username, "username", "", "login name")
	cmd.Flags().StringVar(&request.Password, "password", "", "password, at least 8 characters")
	cmd.Flags().StringVar(&request.Email, "email", "", "email address")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}
