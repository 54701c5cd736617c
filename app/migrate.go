package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	mysqlRepo "github.com/Guyuepp/food-reels/internal/repository/mysql"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		db, closeDB, err := openDB(cfg)
		if err != nil {
			return err
		}
		defer closeDB()

		if err := mysqlRepo.Migrate(db); err != nil {
			return err
		}
		logrus.Info("schema migrated")
		return nil
	},
}
