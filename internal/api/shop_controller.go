package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/PennyPaws/petengine-go/internal/db/repositories/user_pet"
	"github.com/PennyPaws/petengine-go/internal/services/petshop"
	"github.com/gin-gonic/gin"
)

type ShopController struct {
	shop petshop.Service
}

func NewShopController(shop petshop.Service) *ShopController {
	return &ShopController{shop: shop}
}

func (sc *ShopController) GetCatalog(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"pets": sc.shop.Catalog()})
}

func (sc *ShopController) GetOwnedPets(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	pets, err := sc.shop.OwnedPets(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"pets": pets})
}

type purchaseRequest struct {
	TemplateID string `json:"template_id" binding:"required"`
}

func (sc *ShopController) Purchase(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req purchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	pet, err := sc.shop.Purchase(c.Request.Context(), userID, req.TemplateID)
	if err != nil {
		var insufficient *user_pet.InsufficientXPError
		switch {
		case errors.As(err, &insufficient):
			c.JSON(http.StatusPaymentRequired, gin.H{
				"error": fmt.Sprintf("not enough XP: need %d, have %d", insufficient.Need, insufficient.Have),
				"need":  insufficient.Need,
				"have":  insufficient.Have,
			})
		case errors.Is(err, petshop.ErrUnknownTemplate):
			c.JSON(http.StatusNotFound, gin.H{"error": "unknown pet template"})
		case errors.Is(err, user_pet.ErrStateNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "no pet state for user"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"pet": pet})
}

func (sc *ShopController) SwitchActive(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	petID := c.Param("id")
	if err := sc.shop.SwitchActivePet(c.Request.Context(), userID, petID); err != nil {
		if errors.Is(err, user_pet.ErrPetNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "pet not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"active_pet_id": petID})
}
