package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"

	"fitjourney/internal/database"
	"fitjourney/internal/modules/card"
	"fitjourney/internal/repository"
)

// Backfill ingests a legacy document export (a JSON array of loosely typed
// card documents) into the repository. Documents go through the normalizer,
// so holes and mistyped timestamps in the export are tolerated.
//
// Usage: backfill -file export.json
func main() {
	file := flag.String("file", "", "path to the JSON export")
	flag.Parse()
	if *file == "" {
		log.Fatal("usage: backfill -file export.json")
	}

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "fitjourney.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	data, err := os.ReadFile(*file)
	if err != nil {
		log.Fatal(err)
	}

	var docs []card.RawCard
	if err := json.Unmarshal(data, &docs); err != nil {
		log.Fatal("invalid export file:", err)
	}

	ctx := context.Background()
	cards := repository.NewCardRepository(db)
	normalizer := card.NewNormalizer(nil)

	imported := 0
	for _, doc := range docs {
		c := normalizer.Normalize(doc)
		if c.OwnerID == "" {
			log.Printf("skipping document without userid: %v", doc["id"])
			continue
		}
		if err := cards.Create(ctx, &c); err != nil {
			log.Printf("failed to import %s: %v", c.ID, err)
			continue
		}
		imported++
	}

	log.Printf("Imported %d of %d documents", imported, len(docs))
}
