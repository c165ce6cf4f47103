package services

import (
	"fmt"

	"greenbasket/internal/models"
	"greenbasket/internal/repositories"

	"github.com/go-playground/validator/v10"
)

// UserService applies partial updates to an authenticated account record.
// Every operation mutates the in-memory record it is given and saves the
// whole record back; concurrent updates to the same account race
// last-write-wins, which matches the storage contract.
type UserService struct {
	userRepo repositories.UserRepository
	validate *validator.Validate
}

// NewUserService creates a new UserService.
func NewUserService(userRepo repositories.UserRepository) *UserService {
	return &UserService{
		userRepo: userRepo,
		validate: validator.New(),
	}
}

// UpdateProfile sets the provided profile fields. Empty inputs leave the
// current values untouched.
func (s *UserService) UpdateProfile(user *models.User, name, phone string) (*models.User, error) {
	if name != "" {
		user.Name = name
	}
	if phone != "" {
		user.Phone = phone
	}
	if err := asValidationError(s.validate.Struct(user)); err != nil {
		return nil, err
	}
	if err := s.userRepo.Save(user); err != nil {
		return nil, fmt.Errorf("failed to save profile: %w", err)
	}
	return user, nil
}

// ReplaceCart replaces the whole cart snapshot. There is no per-line merge:
// the submitted cart wins, an empty slice clears the cart.
func (s *UserService) ReplaceCart(user *models.User, items []models.CartItem) (models.CartItems, error) {
	cart := make(models.CartItems, len(items))
	for i, item := range items {
		item.ApplyDefaults()
		cart[i] = item
	}
	user.Cart = cart
	if err := s.userRepo.Save(user); err != nil {
		return nil, fmt.Errorf("failed to save cart: %w", err)
	}
	return user.Cart, nil
}

// ReplaceFavorites replaces the whole favorites list.
func (s *UserService) ReplaceFavorites(user *models.User, ids []string) (models.StringList, error) {
	user.Favorites = models.StringList(ids)
	if user.Favorites == nil {
		user.Favorites = models.StringList{}
	}
	if err := s.userRepo.Save(user); err != nil {
		return nil, fmt.Errorf("failed to save favorites: %w", err)
	}
	return user.Favorites, nil
}

// UpdateAddress replaces the embedded address wholesale. An empty address
// is a valid "clear" input; phone/pincode patterns are checked whenever the
// field is present.
func (s *UserService) UpdateAddress(user *models.User, address models.Address) (*models.Address, error) {
	if err := asValidationError(s.validate.Struct(address)); err != nil {
		return nil, err
	}
	user.Address = address
	if err := s.userRepo.Save(user); err != nil {
		return nil, fmt.Errorf("failed to save address: %w", err)
	}
	return &user.Address, nil
}

// SettingsUpdate carries the settings keys present in the request. Nil
// fields were not submitted and keep their current value.
type SettingsUpdate struct {
	ThemeMode   *string `json:"themeMode"`
	AccentColor *string `json:"accentColor"`
}

// UpdateSettings shallow-merges the provided keys into the stored settings.
// Unlike cart/favorites/address this is a merge, not a replace, so the
// caller never has to resend untouched keys.
func (s *UserService) UpdateSettings(user *models.User, update SettingsUpdate) (*models.Settings, error) {
	merged := user.Settings
	if update.ThemeMode != nil {
		merged.ThemeMode = *update.ThemeMode
	}
	if update.AccentColor != nil {
		merged.AccentColor = *update.AccentColor
	}
	if err := asValidationError(s.validate.Struct(merged)); err != nil {
		return nil, err
	}
	user.Settings = merged
	if err := s.userRepo.Save(user); err != nil {
		return nil, fmt.Errorf("failed to save settings: %w", err)
	}
	return &user.Settings, nil
}
