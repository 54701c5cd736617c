package food

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/Guyuepp/food-reels/domain"
	"github.com/Guyuepp/food-reels/internal/repository"
)

const bloomInitBatch = 1000

type Service struct {
	foodRepo    domain.FoodRepository
	partnerRepo domain.FoodPartnerRepository
	engine      domain.ToggleEngine
	content     domain.ContentStore
	bloomRepo   domain.BloomRepository
	validate    *validator.Validate
}

var _ domain.FoodUsecase = (*Service)(nil)

// NewService will create a new food service object. bloom may be nil.
func NewService(f domain.FoodRepository, p domain.FoodPartnerRepository, e domain.ToggleEngine, c domain.ContentStore, b domain.BloomRepository) *Service {
	return &Service{
		foodRepo:    f,
		partnerRepo: p,
		engine:      e,
		content:     c,
		bloomRepo:   b,
		validate:    validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Fetch returns a page of the feed and the cursor of the next page.
// The cursor is empty once the feed is exhausted.
func (s *Service) Fetch(ctx context.Context, cursor string, num int64) ([]domain.Food, string, error) {
	repository.PageVerify(&num)

	res, err := s.foodRepo.Fetch(ctx, cursor, num)
	if err != nil {
		return nil, "", err
	}

	nextCursor := ""
	if int64(len(res)) == num {
		last := res[len(res)-1]
		nextCursor = repository.EncodeCursor(last.CreatedAt, last.ID)
	}
	return res, nextCursor, nil
}

func (s *Service) Like(ctx context.Context, p domain.Principal, foodID string) (domain.ToggleResult, error) {
	return s.toggle(ctx, p, foodID, domain.EdgeLike)
}

func (s *Service) Save(ctx context.Context, p domain.Principal, foodID string) (domain.ToggleResult, error) {
	return s.toggle(ctx, p, foodID, domain.EdgeSave)
}

func (s *Service) toggle(ctx context.Context, p domain.Principal, foodID string, kind domain.EdgeKind) (domain.ToggleResult, error) {
	if s.bloomRepo != nil && foodID != "" {
		exists, err := s.bloomRepo.Exists(ctx, foodID)
		if err != nil {
			// 布隆过滤器不可用时直接查库
			logrus.Warnf("bloom filter check failed: %v", err)
		} else if !exists {
			return domain.ToggleResult{}, domain.ErrNotFound
		}
	}

	res, err := s.engine.Toggle(ctx, p, foodID, kind)
	if err != nil {
		return domain.ToggleResult{}, err
	}

	s.foodRepo.InvalidateFeed(ctx)
	return res, nil
}

// FetchSaved lists the foods saved by p, most recent first.
// Returns ErrNotFound when nothing is saved.
func (s *Service) FetchSaved(ctx context.Context, p domain.Principal) ([]domain.SavedFood, error) {
	if p.IsZero() || p.Kind != domain.PrincipalUser {
		return nil, domain.ErrUnauthenticated
	}

	saved, err := s.foodRepo.FetchSaved(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	if len(saved) == 0 {
		return nil, domain.ErrNotFound
	}
	return saved, nil
}

// GetPartner loads a partner profile and its foods concurrently.
func (s *Service) GetPartner(ctx context.Context, id string) (domain.FoodPartner, []domain.Food, error) {
	var (
		partner domain.FoodPartner
		foods   []domain.Food
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		partner, err = s.partnerRepo.GetByID(gctx, id)
		return err
	})
	g.Go(func() (err error) {
		foods, err = s.foodRepo.FetchByPartner(gctx, id)
		return err
	})
	if err := g.Wait(); err != nil {
		return domain.FoodPartner{}, nil, err
	}

	partner.Password = ""
	for i := range foods {
		foods[i].Partner = partner
	}
	return partner, foods, nil
}

type newFoodInput struct {
	Name        string `validate:"min=2,max=50"`
	Description string `validate:"min=2,max=500"`
	Video       []byte `validate:"min=1"`
}

// Create uploads the video and publishes a food owned by partner p.
func (s *Service) Create(ctx context.Context, p domain.Principal, in domain.NewFood) (domain.Food, error) {
	if p.IsZero() || p.Kind != domain.PrincipalPartner {
		return domain.Food{}, domain.ErrUnauthenticated
	}

	input := newFoodInput{
		Name:        strings.TrimSpace(in.Name),
		Description: strings.TrimSpace(in.Description),
		Video:       in.Video,
	}
	if err := s.validate.Struct(input); err != nil {
		return domain.Food{}, fmt.Errorf("%w: %v", domain.ErrBadParamInput, err)
	}

	id := uuid.NewString()
	url, err := s.content.Store(ctx, in.Video, id+strings.ToLower(filepath.Ext(in.FileName)))
	if err != nil {
		return domain.Food{}, err
	}

	f := domain.Food{
		ID:          id,
		Name:        input.Name,
		Description: input.Description,
		Video:       url,
		Partner:     domain.FoodPartner{ID: p.ID},
	}
	if err := s.foodRepo.Store(ctx, &f); err != nil {
		return domain.Food{}, err
	}

	if s.bloomRepo != nil {
		if err := s.bloomRepo.Add(ctx, f.ID); err != nil {
			logrus.Errorf("failed to add food %s to bloom filter: %v", f.ID, err)
		}
	}
	return f, nil
}

// InitBloomFilter loads every food id into the bloom filter.
func (s *Service) InitBloomFilter(ctx context.Context) error {
	if s.bloomRepo == nil {
		return nil
	}

	cursor, total := "", 0
	for {
		ids, err := s.foodRepo.FetchIDs(ctx, cursor, bloomInitBatch)
		if err != nil {
			return err
		}
		if len(ids) > 0 {
			if err := s.bloomRepo.BulkAdd(ctx, ids); err != nil {
				return err
			}
			total += len(ids)
		}
		if len(ids) < bloomInitBatch {
			break
		}
		cursor = ids[len(ids)-1]
	}

	logrus.Infof("bloom filter loaded with %d foods", total)
	return nil
}
