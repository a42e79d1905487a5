package main

import (
	"hospital-emr-backend/internal/database"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func migrateCmd() *cobra.Command {
	var withSurveys bool

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
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

			surveys := withSurveys || cfg.Database.SurveysEnabled
			if err := database.Migrate(db, surveys); err != nil {
				return err
			}
			log.Info("database migrated", zap.Bool("surveys", surveys))
			return nil
		},
	}

	cmd.Flags().BoolVar(&withSurveys, "with-surveys", false, "also create the survey tables")
	return cmd
}
