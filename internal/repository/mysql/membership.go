package mysql

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Guyuepp/food-reels/domain"
	"github.com/Guyuepp/food-reels/internal/repository/mysql/model"
)

type membershipRepository struct {
	DB *gorm.DB
}

var _ domain.MembershipStore = (*membershipRepository)(nil)

// NewMembershipRepository creates the store that keeps food_edges and the
// denormalized counters on foods consistent.
func NewMembershipRepository(db *gorm.DB) *membershipRepository {
	return &membershipRepository{DB: db}
}

func counterOf(f *model.Food, kind domain.EdgeKind) int64 {
	if kind == domain.EdgeSave {
		return f.SaveCount
	}
	return f.LikeCount
}

// Toggle runs the existence check, the edge mutation and the counter mutation
// in one transaction. The delete-first order lets the unique key on
// (user_id, food_id, kind) decide races: a concurrent insert of the same edge
// fails with a duplicate key and surfaces as ErrConflict.
func (m *membershipRepository) Toggle(ctx context.Context, e domain.Edge) (res domain.ToggleResult, err error) {
	col := e.Kind.CounterColumn()
	if col == "" {
		return res, domain.ErrBadParamInput
	}

	err = m.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var food model.Food
		if err := tx.Select("id").Take(&food, "id = ?", e.FoodID).Error; err != nil {
			return translate(err, "load food")
		}

		var users int64
		if err := tx.Model(&model.User{}).Where("id = ?", e.UserID).Count(&users).Error; err != nil {
			return translate(err, "load user")
		}
		if users == 0 {
			return domain.ErrUnauthenticated
		}

		deleted := tx.Where("user_id = ? AND food_id = ? AND kind = ?", e.UserID, e.FoodID, string(e.Kind)).
			Delete(&model.Edge{})
		if deleted.Error != nil {
			return translate(deleted.Error, "delete edge")
		}

		if deleted.RowsAffected > 0 {
			res.Active = false
			// floor at zero: the guard leaves the row untouched instead of going negative
			upd := tx.Model(&model.Food{}).
				Where("id = ? AND "+col+" > 0", e.FoodID).
				UpdateColumn(col, gorm.Expr(col+" - ?", 1))
			if upd.Error != nil {
				return translate(upd.Error, "decrement counter")
			}
			res.Clamped = upd.RowsAffected == 0
		} else {
			edge := model.NewEdgeFromDomain(e)
			if edge.CreatedAt.IsZero() {
				edge.CreatedAt = time.Now()
			}
			if err := tx.Create(&edge).Error; err != nil {
				return translate(err, "insert edge")
			}
			res.Active = true
			upd := tx.Model(&model.Food{}).
				Where("id = ?", e.FoodID).
				UpdateColumn(col, gorm.Expr(col+" + ?", 1))
			if upd.Error != nil {
				return translate(upd.Error, "increment counter")
			}
		}

		var after model.Food
		if err := tx.Select("id", col).Take(&after, "id = ?", e.FoodID).Error; err != nil {
			return translate(err, "read counter")
		}
		res.NewCount = counterOf(&after, e.Kind)
		return nil
	})
	if err != nil {
		return domain.ToggleResult{}, err
	}
	return res, nil
}

// Reconcile recounts the edges of every kind for one food and overwrites the
// counters that disagree. The food row is locked so toggles on it wait.
func (m *membershipRepository) Reconcile(ctx context.Context, foodID string) ([]domain.ReconcileReport, error) {
	reports := make([]domain.ReconcileReport, 0, len(domain.EdgeKinds))

	err := m.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var food model.Food
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Take(&food, "id = ?", foodID).Error; err != nil {
			return translate(err, "lock food")
		}

		for _, kind := range domain.EdgeKinds {
			var realCount int64
			if err := tx.Model(&model.Edge{}).
				Where("food_id = ? AND kind = ?", foodID, string(kind)).
				Count(&realCount).Error; err != nil {
				return translate(err, "count edges")
			}

			report := domain.ReconcileReport{
				FoodID: foodID,
				Kind:   kind,
				Stored: counterOf(&food, kind),
				Actual: realCount,
			}
			if report.Stored != report.Actual {
				if err := tx.Model(&model.Food{}).
					Where("id = ?", foodID).
					UpdateColumn(kind.CounterColumn(), realCount).Error; err != nil {
					return translate(err, "overwrite counter")
				}
				report.Repaired = true
				logrus.WithFields(logrus.Fields{
					"food_id": foodID,
					"kind":    kind,
					"stored":  report.Stored,
					"actual":  report.Actual,
				}).Warn("repaired drifted counter")
			}
			reports = append(reports, report)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return reports, nil
}
