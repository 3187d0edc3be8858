package server

import (
	"context"
	"fmt"

	"github.com/PennyPaws/petengine-go/config"
	"github.com/PennyPaws/petengine-go/internal/api"
	"github.com/PennyPaws/petengine-go/internal/catalog"
	"github.com/PennyPaws/petengine-go/internal/db"
	"github.com/PennyPaws/petengine-go/internal/db/repositories/pet_state"
	"github.com/PennyPaws/petengine-go/internal/db/repositories/user_pet"
	"github.com/PennyPaws/petengine-go/internal/services/cooldown"
	"github.com/PennyPaws/petengine-go/internal/services/petshop"
	"github.com/PennyPaws/petengine-go/internal/services/petstate"
	"github.com/go-redis/redis/v8"
)

func StartServer() error {
	cfg := config.LoadConfigOrPanic()
	fmt.Printf("Starting %s %s on port %d\n", cfg.AppConfig.APPName, cfg.AppConfig.Version, cfg.AppConfig.Port)

	database, err := db.Connect(cfg.DBConfig)
	if err != nil {
		return err
	}
	if err := database.Migrate(cfg.DBConfig, &pet_state.PetState{}, &user_pet.UserPet{}); err != nil {
		return err
	}

	limiter := cooldown.NewAllowAll()
	if cfg.RedisConfig.Addr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisConfig.Addr,
			Password: cfg.RedisConfig.Password,
			DB:       cfg.RedisConfig.DB,
		})
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			return fmt.Errorf("connect redis: %w", err)
		}
		limiter = cooldown.NewRedisLimiter(rdb)
	}

	cat := catalog.Default()
	stateRepo := pet_state.NewPetStateRepository(database)
	petRepo := user_pet.NewUserPetRepository(database)

	states := petstate.NewService(stateRepo, petRepo, cat)
	shop := petshop.NewService(petRepo, cat)

	router := api.NewRouter(cfg, api.NewPetController(states), api.NewShopController(shop), limiter)
	return router.Run(fmt.Sprintf(":%d", cfg.AppConfig.Port))
}
