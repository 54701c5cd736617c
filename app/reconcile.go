package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	mysqlRepo "github.com/Guyuepp/food-reels/internal/repository/mysql"
	"github.com/Guyuepp/food-reels/internal/usecase/toggle"
)

var reconcileCmd = &cobra.Command{
	Use:   "reconcile",
	Short: "Recompute like and save counters from the edge tables",
	Long: `Recompute like and save counters from their edges and overwrite the ones that drifted.

Examples:
  food-reels reconcile
  food-reels reconcile --food 3f0c2f7e-8a51-4c1b-9d7e-2b1f2d1c6a90`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		foodID, _ := cmd.Flags().GetString("food")
		batch, _ := cmd.Flags().GetInt64("batch")

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if batch <= 0 {
			batch = cfg.ReconcileBatchSize
		}

		db, closeDB, err := openDB(cfg)
		if err != nil {
			return err
		}
		defer closeDB()

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		reconciler := toggle.NewReconciler(mysqlRepo.NewMembershipRepository(db), mysqlRepo.NewFoodDBRepository(db))

		if foodID != "" {
			reports, err := reconciler.ReconcileFood(ctx, foodID)
			if err != nil {
				return err
			}
			for _, r := range reports {
				logrus.WithFields(logrus.Fields{
					"food_id":  r.FoodID,
					"kind":     r.Kind,
					"stored":   r.Stored,
					"actual":   r.Actual,
					"repaired": r.Repaired,
				}).Info("counter checked")
			}
			return nil
		}

		repaired, err := reconciler.ReconcileAll(ctx, batch)
		if err != nil {
			return err
		}
		logrus.Infof("reconcile finished, %d counters repaired", repaired)
		return nil
	},
}

func init() {
	reconcileCmd.Flags().String("food", "", "reconcile a single food id")
	reconcileCmd.Flags().Int64("batch", 0, "foods per batch (default RECONCILE_BATCH_SIZE)")
}
