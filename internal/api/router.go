package api

import (
	"github.com/PennyPaws/petengine-go/config"
	"github.com/PennyPaws/petengine-go/internal/healthcheck"
	"github.com/PennyPaws/petengine-go/internal/services/cooldown"
	"github.com/gin-gonic/gin"
)

// NewRouter registers all API routes
func NewRouter(cfg config.Config, pets *PetController, shop *ShopController, limiter cooldown.Limiter) *gin.Engine {
	router := gin.Default()

	router.GET("/healthz", healthcheck.Handler())

	api := router.Group("/api", AuthMiddleware(cfg.AuthConfig.JWTSecret))
	{
		pet := api.Group("/pet")
		{
			pet.GET("/status", pets.GetStatus)
			pet.POST("/xp", pets.GrantXP)

			// Only the tap-style interactions are paced.
			interact := pet.Group("", RateLimitMiddleware(limiter))
			{
				interact.POST("/pet", pets.Pet)
				interact.POST("/hit", pets.Hit)
			}
		}

		shopRoutes := api.Group("/shop")
		{
			shopRoutes.GET("/catalog", shop.GetCatalog)
			shopRoutes.GET("/pets", shop.GetOwnedPets)
			shopRoutes.POST("/purchase", shop.Purchase)
			shopRoutes.PUT("/pets/:id/activate", shop.SwitchActive)
		}
	}

	return router
}
