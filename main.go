package main

import (
	"log"

	"github.com/PennyPaws/petengine-go/config"
	"github.com/PennyPaws/petengine-go/internal/db"
	"github.com/PennyPaws/petengine-go/internal/db/repositories/pet_state"
	"github.com/PennyPaws/petengine-go/internal/db/repositories/user_pet"
	"github.com/PennyPaws/petengine-go/internal/server"
	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:   "petengine",
		Short: "Pet progression backend service",
	}

	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Run the HTTP API server",
			RunE: func(cmd *cobra.Command, args []string) error {
				return server.StartServer()
			},
		},
		&cobra.Command{
			Use:   "migrate",
			Short: "Apply database migrations and exit",
			RunE: func(cmd *cobra.Command, args []string) error {
				cfg := config.LoadConfigOrPanic()
				database, err := db.Connect(cfg.DBConfig)
				if err != nil {
					return err
				}
				return database.Migrate(cfg.DBConfig, &pet_state.PetState{}, &user_pet.UserPet{})
			},
		},
	)

	if err := root.Execute(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}
