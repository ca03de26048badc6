package user

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/mcpmarket/marketplace-manager/internal/errdef"
	"github.com/mcpmarket/marketplace-manager/pkg/model"
	"golang.org/x/crypto/scrypt"
)

func NewService(repository *repository) *Service {
	return &Service{repository}
}

type Service struct {
	repository *repository
}

func (s Service) SignUp(ctx context.Context, email string, password string) (*model.User, error) {
	hashedPassword, err := hashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("password hashing failed: %v", err)
	}

	u := &model.User{
		Email:    email,
		Password: hashedPassword,
	}

	err = s.repository.create(ctx, u)
	if err != nil {
		return nil, err
	}

	return u, nil
}

func (s Service) SignIn(email string, password string) (*model.User, error) {
	u, err := s.repository.findByEmail(context.Background(), email)
	if err != nil {
		if errdef.IsNotFound(err) {
			return nil, errdef.NewUnauthorized("invalid email or password")
		}
		return nil, err
	}

	match, err := comparePasswords(u.Password, password)
	if err != nil {
		return nil, err
	}
	if !match {
		return nil, errdef.NewUnauthorized("invalid email or password")
	}

	return u, nil
}

func (s Service) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	return s.repository.findByID(ctx, id)
}

// UpdateProfile mutates the allow-listed profile fields of the principal.
func (s Service) UpdateProfile(ctx context.Context, user *model.User, fullName *string, avatarURL *string) (*model.User, error) {
	if fullName != nil {
		user.FullName = *fullName
	}
	if avatarURL != nil {
		user.AvatarURL = *avatarURL
	}

	err := s.repository.updateProfile(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("failed to update profile: %v", err)
	}

	return user, nil
}

func hashPassword(password string) (string, error) {
	salt := make([]byte, 16)
	if _, err := rand.Read(salt); err != nil {
		return "", err
	}

	// using recommended cost parameters from - https://godoc.org/golang.org/x/crypto/scrypt
	hash, err := scrypt.Key([]byte(password), salt, 32768, 8, 1, 32)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%s.%s", hex.EncodeToString(hash), hex.EncodeToString(salt)), nil
}

func comparePasswords(storedPassword string, suppliedPassword string) (bool, error) {
	parts := strings.Split(storedPassword, ".")
	if len(parts) != 2 {
		return false, fmt.Errorf("stored password has invalid format")
	}

	salt, err := hex.DecodeString(parts[1])
	if err != nil {
		return false, fmt.Errorf("unable to decode salt: %v", err)
	}

	hash, err := scrypt.Key([]byte(suppliedPassword), salt, 32768, 8, 1, 32)
	if err != nil {
		return false, err
	}

	return hex.EncodeToString(hash) == parts[0], nil
}
