package services

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"restaurant_dashboard/internal/models"
	"restaurant_dashboard/internal/repositories"
	"restaurant_dashboard/internal/utils"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ProfileInput is the editable part of an admin profile.
type ProfileInput struct {
	FullName string `json:"full_name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone"`
	JobTitle string `json:"job_title"`
	Address  string `json:"address"`
	About    string `json:"about"`
}

// CreateAdminInput creates a user that can sign in together with its profile.
type CreateAdminInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Phone    string `json:"phone" validate:"required"`
	FullName string `json:"full_name" validate:"required"`
	JobTitle string `json:"job_title"`
	Address  string `json:"address"`
	About    string `json:"about"`
}

type AdminService struct {
	users    UserStore
	profiles ProfileStore
	log      logrus.FieldLogger
}

func NewAdminService(users UserStore, profiles ProfileStore, log logrus.FieldLogger) *AdminService {
	return &AdminService{users: users, profiles: profiles, log: log}
}

func (s *AdminService) CreateAdmin(ctx context.Context, in CreateAdminInput) (*models.AdminProfile, error) {
	if err := validateStruct(in); err != nil {
		return nil, err
	}

	user := &models.User{Email: in.Email, Password: in.Password}
	user.Prepare()

	existing, err := s.users.FindUserByEmail(ctx, user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hashed, err := utils.Hash(user.Password)
	if err != nil {
		return nil, err
	}
	user.PasswordHash = string(hashed)
	user.Password = ""

	if err := s.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	profile := &models.AdminProfile{
		UserID:   user.ID,
		FullName: in.FullName,
		Email:    user.Email,
		Phone:    in.Phone,
		JobTitle: in.JobTitle,
		Address:  in.Address,
		About:    in.About,
	}
	if err := s.profiles.Create(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to create admin profile: %w", err)
	}

	s.log.WithField("user_id", user.ID).Info("admin created")
	return profile, nil
}

// Bootstrap creates the first admin when the users table is empty. It does
// nothing once any user exists.
func (s *AdminService) Bootstrap(ctx context.Context, email, password string) error {
	if email == "" || password == "" {
		return nil
	}
	n, err := s.users.CountUsers(ctx)
	if err != nil {
		return fmt.Errorf("failed to count users: %w", err)
	}
	if n > 0 {
		return nil
	}

	_, err = s.CreateAdmin(ctx, CreateAdminInput{
		Email:    email,
		Password: password,
		Phone:    "-",
		FullName: "Administrator",
	})
	return err
}

func (s *AdminService) Profile(ctx context.Context, userID uuid.UUID) (*models.AdminProfile, error) {
	p, err := s.profiles.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	if p == nil {
		return nil, ErrProfileNotFound
	}
	return p, nil
}

func (s *AdminService) UpdateProfile(ctx context.Context, userID uuid.UUID, in ProfileInput) (*models.AdminProfile, error) {
	if err := validateStruct(in); err != nil {
		return nil, err
	}

	p := &models.AdminProfile{
		UserID:   userID,
		FullName: in.FullName,
		Email:    in.Email,
		Phone:    in.Phone,
		JobTitle: in.JobTitle,
		Address:  in.Address,
		About:    in.About,
	}
	if err := s.profiles.Update(ctx, p); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return s.Profile(ctx, userID)
}

// IsAdmin reports whether userID has an admin profile.
func (s *AdminService) IsAdmin(ctx context.Context, userID uuid.UUID) (bool, error) {
	p, err := s.profiles.GetByUserID(ctx, userID)
	if err != nil {
		return false, fmt.Errorf("failed to load profile: %w", err)
	}
	return p != nil, nil
}

// validateStruct turns the first failed tag into a ValidationError.
func validateStruct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}

	fe := verrs[0]
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return invalid(field, ErrRequired, "%s is required", field)
	case "email":
		return invalid(field, ErrInvalidFormat, "invalid email address")
	case "min":
		return invalid(field, ErrTooShort, "%s must be at least %s characters", field, fe.Param())
	default:
		return invalid(field, err, "%s is invalid", field)
	}
}
