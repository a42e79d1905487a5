package main

import (
	"context"
	"errors"

	"hospital-emr-backend/internal/database"
	"hospital-emr-backend/internal/models"
	"hospital-emr-backend/internal/repository"
	"hospital-emr-backend/internal/service"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// defaultSeedPassword is used when --password is not given. Change it after
// the first sign-in.
const defaultSeedPassword = "ChangeMe123!"

func seedUserCmd() *cobra.Command {
	var (
		hospitalID uint
		email      string
		name       string
		role       string
		password   string
	)

	cmd := &cobra.Command{
		Use:   "seed-user",
		Short: "Create or update a user of a hospital",
		RunE: func(cmd *cobra.Command, args []string) error {
			if hospitalID == 0 {
				return errors.New("--hospital-id is required")
			}

			cfg, log, err := bootstrap()
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			db, err := database.Connect(cfg, log)
			if err != nil {
				return err
			}
			defer database.Close(db, log)

			if password == "" {
				password = defaultSeedPassword
				log.Warn("no --password given, using the default seed password")
			}

			seeder := service.NewSeedService(repository.NewUserRepo(db), repository.NewHospitalRepo(db), log)
			user, err := seeder.SeedUser(context.Background(), service.SeedUserInput{
				HospitalID: hospitalID,
				Name:       name,
				Email:      email,
				Role:       models.Role(role),
				Password:   password,
			})
			if err != nil {
				log.Error("seed user failed", zap.Error(err))
				return err
			}

			log.Info("seed complete", zap.Uint("user_id", user.ID), zap.String("email", user.Email))
			return nil
		},
	}

	cmd.Flags().UintVar(&hospitalID, "hospital-id", 0, "hospital the user belongs to")
	cmd.Flags().StringVar(&email, "email", "", "login email, the upsert key")
	cmd.Flags().StringVar(&name, "name", "", "display name")
	cmd.Flags().StringVar(&role, "role", string(models.RoleAdmin), "user role")
	cmd.Flags().StringVar(&password, "password", "", "initial password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}
