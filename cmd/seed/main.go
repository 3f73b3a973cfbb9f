// Command seed loads the dashboard catalog into MongoDB.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"
	"time"

	"workhub/config"
	"workhub/database"
	catalogRepo "workhub/database/repository/catalog"
)

func main() {
	file := flag.String("file", "", "JSON seed file (defaults to the demo data set)")
	flag.Parse()

	config.LoadConfig()

	seed := catalogRepo.DefaultSeed()
	if *file != "" {
		raw, err := os.ReadFile(*file)
		if err != nil {
			log.Fatalf("Failed to read seed file: %v", err)
		}
		seed = catalogRepo.Seed{}
		if err := json.Unmarshal(raw, &seed); err != nil {
			log.Fatalf("Failed to parse seed file: %v", err)
		}
	}

	database.InitDB()
	db := database.Database()

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	defer func() {
		if err := database.CloseDB(context.Background()); err != nil {
			log.Printf("Failed to disconnect: %v", err)
		}
	}()

	if err := catalogRepo.LoadSeed(ctx, db, seed); err != nil {
		log.Fatalf("Failed to load seed: %v", err)
	}
	if err := catalogRepo.EnsureIndexes(db); err != nil {
		log.Fatalf("Failed to create indexes: %v", err)
	}

	log.Printf("Seeded %s: %d bookings, %d members, %d leads, %d invoices, %d workspaces",
		config.AppConfig.DatabaseName, len(seed.Bookings), len(seed.Members), len(seed.Leads),
		len(seed.Invoices), len(seed.Workspaces))
}
