package user

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/MikeMC777/shop-ecom/internal/auth"
)

var ErrBadCredentials = errors.New("invalid email or password")

// InvalidError carries the message for the first failing request field.
type InvalidError struct{ Message string }

func (e *InvalidError) Error() string { return e.Message }

type TokenIssuer interface {
	Issue(userID, role string) (string, error)
}

type Service struct {
	repo     Repository
	tokens   TokenIssuer
	validate *validator.Validate
	admins   map[string]bool
}

// NewService registers any of adminEmails with the admin role.
func NewService(repo Repository, tokens TokenIssuer, adminEmails ...string) *Service {
	admins := make(map[string]bool, len(adminEmails))
	for _, e := range adminEmails {
		admins[strings.ToLower(strings.TrimSpace(e))] = true
	}
	return &Service{repo: repo, tokens: tokens, validate: validator.New(), admins: admins}
}

var fieldMessages = map[string]string{
	"required": "%s is required",
	"email":    "%s must be a valid email",
	"min":      "%s must be at least %s characters",
}

// check turns the first validator failure into an InvalidError.
func (s *Service) check(v any) error {
	err := s.validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return &InvalidError{Message: err.Error()}
	}
	fe := verrs[0]
	field := strings.ToLower(fe.Field())
	tmpl, ok := fieldMessages[fe.Tag()]
	if !ok {
		return &InvalidError{Message: field + " is invalid"}
	}
	if fe.Param() != "" {
		return &InvalidError{Message: fmt.Sprintf(tmpl, field, fe.Param())}
	}
	return &InvalidError{Message: fmt.Sprintf(tmpl, field)}
}

func (s *Service) Register(ctx context.Context, in RegisterRequest) (*User, error) {
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	if err := s.check(in); err != nil {
		return nil, err
	}
	hash, err := HashPassword(in.Password)
	if err != nil {
		return nil, fmt.Errorf("hash error: %w", err)
	}
	u := &User{
		ID:           uuid.NewString(),
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: hash,
		Phone:        in.Phone,
		Address:      in.Address,
		Role:         auth.RoleUser,
	}
	if s.admins[u.Email] {
		u.Role = auth.RoleAdmin
	}
	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// Login returns the user and a signed token.
func (s *Service) Login(ctx context.Context, in LoginRequest) (*User, string, error) {
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	if err := s.check(in); err != nil {
		return nil, "", err
	}
	u, err := s.repo.GetByEmail(ctx, in.Email)
	if errors.Is(err, ErrNotFound) {
		return nil, "", ErrBadCredentials
	}
	if err != nil {
		return nil, "", err
	}
	if !CheckPassword(u.PasswordHash, in.Password) {
		return nil, "", ErrBadCredentials
	}
	tok, err := s.tokens.Issue(u.ID, u.Role)
	if err != nil {
		return nil, "", err
	}
	return u, tok, nil
}

func (s *Service) UpdateProfile(ctx context.Context, id string, in ProfileRequest) (*User, error) {
	if err := s.check(in); err != nil {
		return nil, err
	}
	u := &User{ID: id, Name: in.Name, Phone: in.Phone, Address: in.Address}
	updatePassword := in.Password != ""
	if updatePassword {
		h, err := HashPassword(in.Password)
		if err != nil {
			return nil, fmt.Errorf("hash error: %w", err)
		}
		u.PasswordHash = h
	}
	if err := s.repo.Update(ctx, u, updatePassword); err != nil {
		return nil, err
	}
	// Devolver el estado actual
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Get(ctx context.Context, id string) (*User, error) {
	return s.repo.GetByID(ctx, id)
}
