package services_test

import (
	"testing"

	"greenbasket/internal/models"
	"greenbasket/internal/services"

	"github.com/stretchr/testify/assert"
)

func TestUserService_UpdateProfile(t *testing.T) {
	mockRepo := new(MockUserRepository)
	userService := services.NewUserService(mockRepo)

	user := &models.User{ID: "user-1", Name: "Old Name", Email: "user@example.com", Phone: "1234567890"}

	// Only provided fields change; empty inputs leave current values.
	mockRepo.On("Save", user).Return(nil).Once()
	updated, err := userService.UpdateProfile(user, "New Name", "")
	assert.NoError(t, err)
	assert.Equal(t, "New Name", updated.Name)
	assert.Equal(t, "1234567890", updated.Phone)
	mockRepo.AssertExpectations(t)

	// Phone must be 10-15 digits; nothing is saved on failure.
	_, err = userService.UpdateProfile(user, "", "12345")
	var verr *services.ValidationError
	assert.ErrorAs(t, err, &verr)
	assert.Equal(t, "phone", verr.Details[0].Field)
	mockRepo.AssertExpectations(t)

	// Non-digit phone fails too.
	user.Phone = "1234567890"
	_, err = userService.UpdateProfile(user, "", "12345abcde")
	assert.ErrorAs(t, err, &verr)
	assert.Equal(t, "phone", verr.Details[0].Field)
}

func TestUserService_ReplaceCart(t *testing.T) {
	mockRepo := new(MockUserRepository)
	userService := services.NewUserService(mockRepo)

	user := &models.User{
		ID:   "user-1",
		Cart: models.CartItems{{Name: "Old Item", Price: 5, Quantity: 2, Measure: 1, Unit: "kg"}},
	}

	// Wholesale replace: the submitted cart wins, defaults fill in.
	mockRepo.On("Save", user).Return(nil).Twice()
	cart, err := userService.ReplaceCart(user, []models.CartItem{
		{Name: "Apple", Price: 10},
		{Name: "Orange Juice", Price: 90, Quantity: 3, Unit: "litre"},
	})
	assert.NoError(t, err)
	assert.Len(t, cart, 2)
	assert.Equal(t, 1, cart[0].Quantity)
	assert.Equal(t, float64(1), cart[0].Measure)
	assert.Equal(t, "kg", cart[0].Unit)
	assert.Equal(t, 3, cart[1].Quantity)
	assert.Equal(t, "litre", cart[1].Unit)

	// An empty slice clears the cart entirely, it is not a merge.
	cart, err = userService.ReplaceCart(user, []models.CartItem{})
	assert.NoError(t, err)
	assert.Empty(t, cart)
	assert.Empty(t, user.Cart)
	mockRepo.AssertExpectations(t)
}

func TestUserService_ReplaceFavorites(t *testing.T) {
	mockRepo := new(MockUserRepository)
	userService := services.NewUserService(mockRepo)

	user := &models.User{ID: "user-1", Favorites: models.StringList{"prod-1"}}

	mockRepo.On("Save", user).Return(nil).Twice()
	favorites, err := userService.ReplaceFavorites(user, []string{"prod-2", "prod-3"})
	assert.NoError(t, err)
	assert.Equal(t, models.StringList{"prod-2", "prod-3"}, favorites)

	favorites, err = userService.ReplaceFavorites(user, nil)
	assert.NoError(t, err)
	assert.Empty(t, favorites)
	mockRepo.AssertExpectations(t)
}

func TestUserService_UpdateAddress(t *testing.T) {
	mockRepo := new(MockUserRepository)
	userService := services.NewUserService(mockRepo)

	user := &models.User{ID: "user-1"}

	// Valid address with a 6-digit pincode.
	mockRepo.On("Save", user).Return(nil).Twice()
	address, err := userService.UpdateAddress(user, models.Address{
		Name:    "Test User",
		Phone:   "9876543210",
		Pincode: "123456",
		City:    "Pune",
	})
	assert.NoError(t, err)
	assert.Equal(t, "123456", address.Pincode)

	// A 5-digit pincode fails, naming the field.
	_, err = userService.UpdateAddress(user, models.Address{Pincode: "12345"})
	var verr *services.ValidationError
	assert.ErrorAs(t, err, &verr)
	assert.Equal(t, "pincode", verr.Details[0].Field)

	// Every failing field is reported, not just the first.
	_, err = userService.UpdateAddress(user, models.Address{Phone: "123", Pincode: "12345"})
	assert.ErrorAs(t, err, &verr)
	fields := []string{verr.Details[0].Field, verr.Details[1].Field}
	assert.Contains(t, fields, "phone")
	assert.Contains(t, fields, "pincode")

	// The empty address is a valid "clear" input.
	address, err = userService.UpdateAddress(user, models.Address{})
	assert.NoError(t, err)
	assert.Equal(t, models.Address{}, *address)
	mockRepo.AssertExpectations(t)
}

func TestUserService_UpdateSettings(t *testing.T) {
	mockRepo := new(MockUserRepository)
	userService := services.NewUserService(mockRepo)

	user := &models.User{ID: "user-1", Settings: models.Settings{ThemeMode: "dark"}}

	// Merge, not replace: accentColor changes, themeMode stays.
	accent := "#fff"
	mockRepo.On("Save", user).Return(nil).Twice()
	settings, err := userService.UpdateSettings(user, services.SettingsUpdate{AccentColor: &accent})
	assert.NoError(t, err)
	assert.Equal(t, "dark", settings.ThemeMode)
	assert.Equal(t, "#fff", settings.AccentColor)

	theme := "light"
	settings, err = userService.UpdateSettings(user, services.SettingsUpdate{ThemeMode: &theme})
	assert.NoError(t, err)
	assert.Equal(t, "light", settings.ThemeMode)
	assert.Equal(t, "#fff", settings.AccentColor)

	// themeMode is an enum; an invalid value changes nothing.
	bad := "neon"
	_, err = userService.UpdateSettings(user, services.SettingsUpdate{ThemeMode: &bad})
	var verr *services.ValidationError
	assert.ErrorAs(t, err, &verr)
	assert.Equal(t, "thememode", verr.Details[0].Field)
	assert.Equal(t, "light", user.Settings.ThemeMode)
	mockRepo.AssertExpectations(t)
}
