package handlers

import (
	"encoding/json"
	"log"

	"greenbasket/internal/models"
	"greenbasket/internal/services"

	"github.com/gofiber/fiber/v2"
)

// UserHandler handles HTTP requests for the authenticated account's
// profile, cart, favorites, address and settings.
type UserHandler struct {
	userService *services.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// RegisterRoutes registers the account routes with the Fiber app. All of
// them require authentication.
func (h *UserHandler) RegisterRoutes(router fiber.Router) {
	userRoutes := router.Group("/users")
	userRoutes.Get("/me", h.HandleGetMe)
	userRoutes.Put("/profile", h.HandleUpdateProfile)
	userRoutes.Put("/cart", h.HandleReplaceCart)
	userRoutes.Put("/favorites", h.HandleReplaceFavorites)
	userRoutes.Put("/address", h.HandleUpdateAddress)
	userRoutes.Put("/settings", h.HandleUpdateSettings)
}

// HandleGetMe returns the full account record. The password hash is never
// serialized.
func (h *UserHandler) HandleGetMe(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"user": currentUser(c),
	})
}

// ProfileUpdateRequest represents the request body for a profile update.
type ProfileUpdateRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// HandleUpdateProfile sets the provided profile fields.
func (h *UserHandler) HandleUpdateProfile(c *fiber.Ctx) error {
	var req ProfileUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	user, err := h.userService.UpdateProfile(currentUser(c), req.Name, req.Phone)
	if err != nil {
		if handled, respErr := respondValidation(c, "Invalid profile payload", err); handled {
			return respErr
		}
		log.Printf("Error updating profile: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not update profile",
		})
	}

	return c.JSON(fiber.Map{
		"ok":   true,
		"user": user,
	})
}

// HandleReplaceCart wholesale-replaces the cart snapshot.
func (h *UserHandler) HandleReplaceCart(c *fiber.Ctx) error {
	var req struct {
		Cart json.RawMessage `json:"cart"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	// Missing key, JSON null and any non-array value all fail the shape
	// check; a valid empty array decodes to a non-nil slice.
	var items []models.CartItem
	if req.Cart == nil || json.Unmarshal(req.Cart, &items) != nil || items == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "cart must be an array",
		})
	}

	cart, err := h.userService.ReplaceCart(currentUser(c), items)
	if err != nil {
		log.Printf("Error replacing cart: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not update cart",
		})
	}

	return c.JSON(fiber.Map{
		"ok":   true,
		"cart": cart,
	})
}

// HandleReplaceFavorites wholesale-replaces the favorites list.
func (h *UserHandler) HandleReplaceFavorites(c *fiber.Ctx) error {
	var req struct {
		Favorites json.RawMessage `json:"favorites"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	var ids []string
	if req.Favorites == nil || json.Unmarshal(req.Favorites, &ids) != nil || ids == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "favorites must be an array",
		})
	}

	favorites, err := h.userService.ReplaceFavorites(currentUser(c), ids)
	if err != nil {
		log.Printf("Error replacing favorites: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not update favorites",
		})
	}

	return c.JSON(fiber.Map{
		"ok":        true,
		"favorites": favorites,
	})
}

// HandleUpdateAddress wholesale-replaces the embedded address. An empty
// address object clears it.
func (h *UserHandler) HandleUpdateAddress(c *fiber.Ctx) error {
	var req struct {
		Address models.Address `json:"address"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	address, err := h.userService.UpdateAddress(currentUser(c), req.Address)
	if err != nil {
		if handled, respErr := respondValidation(c, "Invalid address payload", err); handled {
			return respErr
		}
		log.Printf("Error updating address: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not update address",
		})
	}

	return c.JSON(fiber.Map{
		"ok":      true,
		"address": address,
	})
}

// HandleUpdateSettings shallow-merges the provided settings keys.
func (h *UserHandler) HandleUpdateSettings(c *fiber.Ctx) error {
	var req struct {
		Settings services.SettingsUpdate `json:"settings"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	settings, err := h.userService.UpdateSettings(currentUser(c), req.Settings)
	if err != nil {
		if handled, respErr := respondValidation(c, "Invalid settings payload", err); handled {
			return respErr
		}
		log.Printf("Error updating settings: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not update settings",
		})
	}

	return c.JSON(fiber.Map{
		"ok":       true,
		"settings": settings,
	})
}
