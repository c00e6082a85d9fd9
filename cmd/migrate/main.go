package main

import (
	"log"

	"github.com/safetyharish2002-gif/tatwadarsha-erp/app/config"
	"github.com/safetyharish2002-gif/tatwadarsha-erp/app/database"
)

// Applies the schema without starting the server. The server runs the same
// migrations at boot; this exists for provisioning a fresh database ahead of
// a deploy.
func main() {
	config.InitDB()
	db := config.GetDB()
	defer db.Close()

	if err := database.RunMigrations(db); err != nil {
		log.Fatal("Migration failed: ", err)
	}

	log.Println("Migration completed")
}
