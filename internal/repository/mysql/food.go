package mysql

import (
	"context"

	"gorm.io/gorm"

	"github.com/Guyuepp/food-reels/domain"
	"github.com/Guyuepp/food-reels/internal/repository"
	"github.com/Guyuepp/food-reels/internal/repository/mysql/model"
)

type foodRepository struct {
	DB *gorm.DB
}

// mysql层只负责数据库操作
var _ domain.FoodDBRepository = (*foodRepository)(nil)

// NewFoodDBRepository creates the database layer for foods
func NewFoodDBRepository(db *gorm.DB) *foodRepository {
	return &foodRepository{db}
}

func (m *foodRepository) Fetch(ctx context.Context, cursor string, num int64) (res []domain.Food, err error) {
	var foods []model.Food

	query := m.DB.WithContext(ctx).Model(&model.Food{})
	if cursor != "" {
		createdAt, id, err := repository.DecodeCursor(cursor)
		if err != nil {
			return nil, domain.ErrBadParamInput
		}
		if id == "" {
			query = query.Where("created_at < ?", createdAt)
		} else {
			query = query.Where("created_at < ? OR (created_at = ? AND id < ?)", createdAt, createdAt, id)
		}
	}

	repository.PageVerify(&num)
	err = query.Order("created_at desc, id desc").
		Limit(int(num)).
		Find(&foods).
		Error
	if err != nil {
		return nil, translate(err, "fetch foods")
	}

	res = make([]domain.Food, 0, len(foods))
	for i := range foods {
		res = append(res, foods[i].ToDomain())
	}

	return res, nil
}

func (m *foodRepository) GetByID(ctx context.Context, id string) (domain.Food, error) {
	var food model.Food
	if err := m.DB.WithContext(ctx).Take(&food, "id = ?", id).Error; err != nil {
		return domain.Food{}, translate(err, "get food")
	}
	return food.ToDomain(), nil
}

func (m *foodRepository) GetByIDs(ctx context.Context, ids []string) ([]domain.Food, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var foods []model.Food
	err := m.DB.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&foods).Error
	if err != nil {
		return nil, translate(err, "get foods")
	}

	res := make([]domain.Food, len(foods))
	for i := range foods {
		res[i] = foods[i].ToDomain()
	}
	return res, nil
}

func (m *foodRepository) FetchByPartner(ctx context.Context, partnerID string) ([]domain.Food, error) {
	var foods []model.Food
	err := m.DB.WithContext(ctx).
		Where("food_partner_id = ?", partnerID).
		Order("created_at desc").
		Find(&foods).Error
	if err != nil {
		return nil, translate(err, "fetch partner foods")
	}

	res := make([]domain.Food, len(foods))
	for i := range foods {
		res[i] = foods[i].ToDomain()
	}
	return res, nil
}

func (m *foodRepository) FetchSaved(ctx context.Context, userID string) ([]domain.SavedFood, error) {
	var edges []model.Edge
	err := m.DB.WithContext(ctx).
		Where("user_id = ? AND kind = ?", userID, string(domain.EdgeSave)).
		Order("created_at desc").
		Find(&edges).Error
	if err != nil {
		return nil, translate(err, "fetch saved edges")
	}
	if len(edges) == 0 {
		return nil, nil
	}

	ids := make([]string, len(edges))
	for i := range edges {
		ids[i] = edges[i].FoodID
	}
	foods, err := m.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]domain.Food, len(foods))
	for _, f := range foods {
		byID[f.ID] = f
	}

	res := make([]domain.SavedFood, 0, len(edges))
	for _, e := range edges {
		f, ok := byID[e.FoodID]
		if !ok {
			continue
		}
		res = append(res, domain.SavedFood{
			UserID:  e.UserID,
			Food:    f,
			SavedAt: e.CreatedAt,
		})
	}
	return res, nil
}

func (m *foodRepository) Store(ctx context.Context, f *domain.Food) error {
	f.LikeCount, f.SaveCount = 0, 0
	foodModel := model.NewFoodFromDomain(f)
	result := m.DB.WithContext(ctx).Create(foodModel)
	if result.Error != nil {
		return translate(result.Error, "store food")
	}
	f.CreatedAt = foodModel.CreatedAt
	f.UpdatedAt = foodModel.UpdatedAt
	return nil
}

func (m *foodRepository) FetchIDs(ctx context.Context, cursor string, limit int64) (ids []string, err error) {
	err = m.DB.WithContext(ctx).
		Model(&model.Food{}).
		Where("id > ?", cursor).
		Order("id").
		Limit(int(limit)).
		Pluck("id", &ids).Error
	if err != nil {
		return nil, translate(err, "fetch food ids")
	}
	return ids, nil
}
