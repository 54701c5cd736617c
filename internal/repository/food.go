package repository

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"github.com/Guyuepp/food-reels/domain"
)

const (
	FeedCacheTTL = 30 * time.Second
	feedGroupKey = "feed"
)

// foodRepository 协调层，协调缓存和数据库
type foodRepository struct {
	db           domain.FoodDBRepository
	cache        domain.FoodCache
	partnerRepo  domain.FoodPartnerRepository
	rebuildGroup singleflight.Group
}

var _ domain.FoodRepository = (*foodRepository)(nil)

// NewFoodRepository creates the coordinating repository. cache may be nil.
func NewFoodRepository(db domain.FoodDBRepository, cache domain.FoodCache, partnerRepo domain.FoodPartnerRepository) *foodRepository {
	return &foodRepository{
		db:          db,
		cache:       cache,
		partnerRepo: partnerRepo,
	}
}

// Fetch serves the first page from the logically expiring cache and every
// other page from the database. The cached page always holds PageMaxNum items.
func (r *foodRepository) Fetch(ctx context.Context, cursor string, num int64) ([]domain.Food, error) {
	PageVerify(&num)

	if cursor != "" || r.cache == nil {
		foods, err := r.db.Fetch(ctx, cursor, num)
		if err != nil {
			return nil, err
		}
		return r.fillPartnerDetails(ctx, foods)
	}

	foods, expired, err := r.cache.GetFeedWithLogicalExpire(ctx)
	if err == nil {
		if expired {
			go r.rebuildFeed(context.Background())
		}
		return foods[:min(int64(len(foods)), num)], nil
	}
	if !errors.Is(err, domain.ErrCacheMiss) {
		logrus.Warnf("failed to read feed cache: %v", err)
	}

	res, err, _ := r.rebuildGroup.Do(feedGroupKey, func() (any, error) {
		return r.loadFeed(ctx)
	})
	if err != nil {
		return nil, err
	}
	foods = res.([]domain.Food)
	return foods[:min(int64(len(foods)), num)], nil
}

func (r *foodRepository) loadFeed(ctx context.Context) ([]domain.Food, error) {
	foods, err := r.db.Fetch(ctx, "", PageMaxNum)
	if err != nil {
		return nil, err
	}
	foods, err = r.fillPartnerDetails(ctx, foods)
	if err != nil {
		return nil, err
	}

	go func(data []domain.Food) {
		if err := r.cache.SetFeedWithLogicalExpire(context.Background(), data, FeedCacheTTL); err != nil {
			logrus.Warnf("failed to set feed cache: %v", err)
		}
	}(foods)

	return foods, nil
}

// rebuildFeed 异步重建首页缓存
func (r *foodRepository) rebuildFeed(ctx context.Context) {
	_, err, _ := r.rebuildGroup.Do(feedGroupKey, func() (any, error) {
		return r.loadFeed(ctx)
	})
	if err != nil {
		logrus.Errorf("rebuildFeed failed: %v", err)
	}
}

func (r *foodRepository) InvalidateFeed(ctx context.Context) {
	if r.cache == nil {
		return
	}
	if err := r.cache.DeleteFeed(ctx); err != nil {
		logrus.Warnf("failed to invalidate feed cache: %v", err)
	}
}

func (r *foodRepository) GetByID(ctx context.Context, id string) (domain.Food, error) {
	food, err := r.db.GetByID(ctx, id)
	if err != nil {
		return domain.Food{}, err
	}
	foods, err := r.fillPartnerDetails(ctx, []domain.Food{food})
	if err != nil {
		return domain.Food{}, err
	}
	return foods[0], nil
}

func (r *foodRepository) GetByIDs(ctx context.Context, ids []string) ([]domain.Food, error) {
	foods, err := r.db.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	return r.fillPartnerDetails(ctx, foods)
}

func (r *foodRepository) FetchByPartner(ctx context.Context, partnerID string) ([]domain.Food, error) {
	return r.db.FetchByPartner(ctx, partnerID)
}

func (r *foodRepository) FetchSaved(ctx context.Context, userID string) ([]domain.SavedFood, error) {
	return r.db.FetchSaved(ctx, userID)
}

func (r *foodRepository) Store(ctx context.Context, f *domain.Food) error {
	if err := r.db.Store(ctx, f); err != nil {
		return err
	}
	r.InvalidateFeed(ctx)
	return nil
}

func (r *foodRepository) FetchIDs(ctx context.Context, cursor string, limit int64) ([]string, error) {
	return r.db.FetchIDs(ctx, cursor, limit)
}

// fillPartnerDetails 批量填充商家信息, never exposing password hashes
func (r *foodRepository) fillPartnerDetails(ctx context.Context, foods []domain.Food) ([]domain.Food, error) {
	if len(foods) == 0 {
		return foods, nil
	}

	partnerIDs := make([]string, 0, len(foods))
	seen := make(map[string]bool)
	for _, f := range foods {
		if !seen[f.Partner.ID] {
			partnerIDs = append(partnerIDs, f.Partner.ID)
			seen[f.Partner.ID] = true
		}
	}

	partners, err := r.partnerRepo.GetByIDs(ctx, partnerIDs)
	if err != nil {
		return nil, err
	}

	partnerMap := make(map[string]domain.FoodPartner, len(partners))
	for _, p := range partners {
		p.Password = ""
		partnerMap[p.ID] = p
	}

	for i := range foods {
		if p, ok := partnerMap[foods[i].Partner.ID]; ok {
			foods[i].Partner = p
		}
	}

	return foods, nil
}
