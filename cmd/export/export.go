// Command export prints the demo dataset as JSON: it boots an isolated
// in-memory store, seeds it and dumps the three collections to stdout.
package main

import (
	"encoding/json"
	"log"
	"os"

	"gamerental/models"
	"gamerental/store"
)

type snapshot struct {
	Games     []models.Game     `json:"games"`
	Customers []models.Customer `json:"customers"`
	Rentals   []models.Rental   `json:"rentals"`
}

func main() {
	db, err := store.Open(":memory:")
	if err != nil {
		log.Fatal("Failed to open store:", err)
	}
	if err := store.Seed(db); err != nil {
		log.Fatal("Failed to seed demo data:", err)
	}

	var snap snapshot
	if err := db.Order("created_at, id").Find(&snap.Games).Error; err != nil {
		log.Fatal("Failed to read games:", err)
	}
	if err := db.Order("created_at, id").Find(&snap.Customers).Error; err != nil {
		log.Fatal("Failed to read customers:", err)
	}
	if err := db.Order("created_at, id").Find(&snap.Rentals).Error; err != nil {
		log.Fatal("Failed to read rentals:", err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(snap); err != nil {
		log.Fatal("Failed to encode snapshot:", err)
	}
}
