package main

import (
	"context"
	"log"
	"os"
	"time"

	"golang.org/x/crypto/bcrypt"

	"fitjourney/internal/database"
	"fitjourney/internal/domain"
	"fitjourney/internal/repository"
)

// Seeds a local database with two demo users and a few progress cards so
// the dashboard and feed have something to show.
func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "fitjourney.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM progress_cards")
	db.Exec("DELETE FROM display_profiles")
	db.Exec("DELETE FROM users")

	ctx := context.Background()
	users := repository.NewUserRepository(db)
	cards := repository.NewCardRepository(db)

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal(err)
	}

	alice := &domain.User{Email: "alice@example.com", PasswordHash: string(hash), Provider: domain.ProviderPassword}
	bob := &domain.User{Email: "bob@example.com", PasswordHash: string(hash), Provider: domain.ProviderPassword}
	for _, u := range []*domain.User{alice, bob} {
		if err := users.Create(ctx, u); err != nil {
			log.Fatal("seed user failed:", err)
		}
	}

	now := time.Now()
	demo := []domain.ProgressCard{
		{
			OwnerID: alice.ID, Name: "Alice, day one",
			Age: 29, Height: 168, Weight: 80, Chest: 95, Waist: 90, Hips: 102,
			BeforeImage: "/static/uploads/demo/alice-before.jpg",
			AfterImage:  "/static/uploads/demo/alice-after.jpg",
			CreatedAt:   now.AddDate(0, -3, 0).UnixMilli(),
		},
		{
			OwnerID: alice.ID, Name: "Alice, three months in",
			Age: 29, Height: 168, Weight: 72, Chest: 92, Waist: 85, Hips: 99,
			BeforeImage: "/static/uploads/demo/alice-before-2.jpg",
			AfterImage:  "/static/uploads/demo/alice-after-2.jpg",
			CreatedAt:   now.UnixMilli(),
		},
		{
			OwnerID: bob.ID, Name: "Bob, getting started",
			Age: 35, Height: 182, Weight: 96, Chest: 108, Waist: 104, Hips: 106,
			BeforeImage: "/static/uploads/demo/bob-before.jpg",
			AfterImage:  "/static/uploads/demo/bob-after.jpg",
			CreatedAt:   now.AddDate(0, -1, 0).UnixMilli(),
		},
	}

	for i := range demo {
		if err := cards.Create(ctx, &demo[i]); err != nil {
			log.Fatal("seed card failed:", err)
		}
	}

	log.Printf("Seeded %d users and %d progress cards", 2, len(demo))
}
