package mysql

import (
	"context"

	"gorm.io/gorm"

	"github.com/Guyuepp/food-reels/domain"
	"github.com/Guyuepp/food-reels/internal/repository/mysql/model"
)

type partnerRepository struct {
	DB *gorm.DB
}

var (
	_ domain.FoodPartnerRepository = (*partnerRepository)(nil)
	_ domain.PrincipalStore        = (*partnerRepository)(nil)
)

func NewFoodPartnerRepository(db *gorm.DB) *partnerRepository {
	return &partnerRepository{
		DB: db,
	}
}

func (m *partnerRepository) GetByID(ctx context.Context, id string) (domain.FoodPartner, error) {
	var p model.FoodPartner
	if err := m.DB.WithContext(ctx).Take(&p, "id = ?", id).Error; err != nil {
		return domain.FoodPartner{}, translate(err, "get partner")
	}
	return p.ToDomain(), nil
}

func (m *partnerRepository) GetByEmail(ctx context.Context, email string) (domain.FoodPartner, error) {
	var p model.FoodPartner
	if err := m.DB.WithContext(ctx).Take(&p, "email = ?", email).Error; err != nil {
		return domain.FoodPartner{}, translate(err, "get partner by email")
	}
	return p.ToDomain(), nil
}

func (m *partnerRepository) GetByIDs(ctx context.Context, ids []string) ([]domain.FoodPartner, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var partners []model.FoodPartner
	err := m.DB.WithContext(ctx).Where("id IN ?", ids).Find(&partners).Error
	if err != nil {
		return nil, translate(err, "get partners")
	}
	res := make([]domain.FoodPartner, len(partners))
	for i := range partners {
		res[i] = partners[i].ToDomain()
	}
	return res, nil
}

func (m *partnerRepository) Insert(ctx context.Context, p *domain.FoodPartner) error {
	pm := model.NewFoodPartnerFromDomain(p)
	if err := m.DB.WithContext(ctx).Create(pm).Error; err != nil {
		return translate(err, "insert partner")
	}
	p.CreatedAt = pm.CreatedAt
	p.UpdatedAt = pm.UpdatedAt
	return nil
}

func (m *partnerRepository) Exists(ctx context.Context, id string) (bool, error) {
	var n int64
	err := m.DB.WithContext(ctx).Model(&model.FoodPartner{}).Where("id = ?", id).Count(&n).Error
	if err != nil {
		return false, translate(err, "partner exists")
	}
	return n > 0, nil
}
