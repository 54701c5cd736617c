package auth

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/Guyuepp/food-reels/domain"
)

const (
	bcryptCost       = 10
	maxPasswordBytes = 72
	avatarBase       = "https://ui-avatars.com/api/?background=random&name="
)

type Service struct {
	userRepo    domain.UserRepository
	partnerRepo domain.FoodPartnerRepository
	tokens      domain.TokenIssuer
	stores      map[domain.PrincipalKind]domain.PrincipalStore
	validate    *validator.Validate
}

var _ domain.AuthUsecase = (*Service)(nil)

func NewService(u domain.UserRepository, p domain.FoodPartnerRepository, t domain.TokenIssuer) *Service {
	return &Service{
		userRepo:    u,
		partnerRepo: p,
		tokens:      t,
		stores: map[domain.PrincipalKind]domain.PrincipalStore{
			domain.PrincipalUser:    u,
			domain.PrincipalPartner: p,
		},
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

type credentials struct {
	Name     string `validate:"required,max=100"`
	Email    string `validate:"required,email,max=255"`
	Password string `validate:"required,min=6,max=72"`
}

type partnerInput struct {
	Name        string `validate:"required,max=100"`
	Email       string `validate:"required,email,max=255"`
	Password    string `validate:"required,min=6,max=72"`
	ContactName string `validate:"required,max=100"`
	Phone       string `validate:"required,max=32"`
	Address     string `validate:"required,max=255"`
}

func (s *Service) check(v any) error {
	if err := s.validate.Struct(v); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrBadParamInput, err)
	}
	return nil
}

// checkPasswordBytes enforces the bcrypt input limit, which counts bytes
// where the validator's max counts runes.
func checkPasswordBytes(password string) error {
	if len(password) > maxPasswordBytes {
		return fmt.Errorf("%w: password exceeds %d bytes", domain.ErrBadParamInput, maxPasswordBytes)
	}
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func avatarURL(name string) string {
	return avatarBase + url.QueryEscape(name)
}

func hashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", fmt.Errorf("%w: %v", domain.ErrBadParamInput, err)
		}
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hashed), nil
}

// emailTaken turns a lookup result into ErrConflict when the email is already registered.
func emailTaken(err error) error {
	switch {
	case err == nil:
		return domain.ErrConflict
	case errors.Is(err, domain.ErrNotFound):
		return nil
	default:
		return err
	}
}

func (s *Service) RegisterUser(ctx context.Context, name, email, password string) (domain.User, string, error) {
	in := credentials{Name: strings.TrimSpace(name), Email: normalizeEmail(email), Password: password}
	if err := s.check(in); err != nil {
		return domain.User{}, "", err
	}
	if err := checkPasswordBytes(in.Password); err != nil {
		return domain.User{}, "", err
	}

	_, err := s.userRepo.GetByEmail(ctx, in.Email)
	if err := emailTaken(err); err != nil {
		return domain.User{}, "", err
	}

	hashed, err := hashPassword(in.Password)
	if err != nil {
		return domain.User{}, "", err
	}

	now := time.Now().UTC()
	u := domain.User{
		ID:        uuid.NewString(),
		Name:      in.Name,
		Email:     in.Email,
		Password:  hashed,
		ImageURL:  avatarURL(in.Name),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.userRepo.Insert(ctx, &u); err != nil {
		return domain.User{}, "", err
	}

	token, err := s.tokens.Issue(domain.Principal{ID: u.ID, Kind: domain.PrincipalUser})
	if err != nil {
		return domain.User{}, "", err
	}
	logrus.WithField("user_id", u.ID).Info("user registered")

	u.Password = ""
	return u, token, nil
}

func (s *Service) LoginUser(ctx context.Context, email, password string) (domain.User, string, error) {
	u, err := s.userRepo.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.User{}, "", domain.ErrInvalidCredentials
		}
		return domain.User{}, "", err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) != nil {
		return domain.User{}, "", domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(domain.Principal{ID: u.ID, Kind: domain.PrincipalUser})
	if err != nil {
		return domain.User{}, "", err
	}

	u.Password = ""
	return u, token, nil
}

// RegisterPartner fills the id, avatar and password hash of p and persists it.
func (s *Service) RegisterPartner(ctx context.Context, p *domain.FoodPartner) (string, error) {
	in := partnerInput{
		Name:        strings.TrimSpace(p.Name),
		Email:       normalizeEmail(p.Email),
		Password:    p.Password,
		ContactName: strings.TrimSpace(p.ContactName),
		Phone:       strings.TrimSpace(p.Phone),
		Address:     strings.TrimSpace(p.Address),
	}
	if err := s.check(in); err != nil {
		return "", err
	}
	if err := checkPasswordBytes(in.Password); err != nil {
		return "", err
	}

	_, err := s.partnerRepo.GetByEmail(ctx, in.Email)
	if err := emailTaken(err); err != nil {
		return "", err
	}

	hashed, err := hashPassword(in.Password)
	if err != nil {
		return "", err
	}

	now := time.Now().UTC()
	*p = domain.FoodPartner{
		ID:          uuid.NewString(),
		Name:        in.Name,
		ContactName: in.ContactName,
		Phone:       in.Phone,
		Address:     in.Address,
		Email:       in.Email,
		Password:    hashed,
		ImageURL:    avatarURL(in.Name),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.partnerRepo.Insert(ctx, p); err != nil {
		return "", err
	}
	p.Password = ""

	logrus.WithField("partner_id", p.ID).Info("food partner registered")
	return s.tokens.Issue(domain.Principal{ID: p.ID, Kind: domain.PrincipalPartner})
}

func (s *Service) LoginPartner(ctx context.Context, email, password string) (domain.FoodPartner, string, error) {
	p, err := s.partnerRepo.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.FoodPartner{}, "", domain.ErrInvalidCredentials
		}
		return domain.FoodPartner{}, "", err
	}
	if bcrypt.CompareHashAndPassword([]byte(p.Password), []byte(password)) != nil {
		return domain.FoodPartner{}, "", domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(domain.Principal{ID: p.ID, Kind: domain.PrincipalPartner})
	if err != nil {
		return domain.FoodPartner{}, "", err
	}

	p.Password = ""
	return p, token, nil
}

// Resolve is the single path from a session token to a principal of either kind.
// Storage failures while checking the subject are returned as they are.
func (s *Service) Resolve(ctx context.Context, kind domain.PrincipalKind, token string) (domain.Principal, error) {
	store, ok := s.stores[kind]
	if !ok {
		return domain.Principal{}, domain.ErrUnauthenticated
	}

	p, err := s.tokens.Verify(token)
	if err != nil {
		return domain.Principal{}, domain.ErrUnauthenticated
	}
	if p.Kind != kind {
		return domain.Principal{}, domain.ErrUnauthenticated
	}

	exists, err := store.Exists(ctx, p.ID)
	if err != nil {
		return domain.Principal{}, err
	}
	if !exists {
		return domain.Principal{}, domain.ErrUnauthenticated
	}
	return p, nil
}

func (s *Service) Me(ctx context.Context, p domain.Principal) (domain.User, error) {
	if p.IsZero() || p.Kind != domain.PrincipalUser {
		return domain.User{}, domain.ErrUnauthenticated
	}
	u, err := s.GetUser(ctx, p.ID)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.User{}, domain.ErrUnauthenticated
	}
	return u, err
}

func (s *Service) GetUser(ctx context.Context, id string) (domain.User, error) {
	u, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return domain.User{}, err
	}
	u.Password = ""
	return u, nil
}
