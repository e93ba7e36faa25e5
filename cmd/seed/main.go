package main

import (
	"context"
	stderrors "errors"
	"log"

	"gorm.io/gorm"

	"gatehouse/internal/auth"
	"gatehouse/internal/config"
	"gatehouse/internal/db"
	"gatehouse/internal/model"
	"gatehouse/internal/repository"
)

// demoUser is a local-development fixture. Records that already exist (by
// email) are left untouched.
type demoUser struct {
	Email    string
	Password string
	Username string
}

var demoUsers = []demoUser{
	{Email: "alice@example.com", Password: "alice-password", Username: "alice"},
	{Email: "bob@example.com", Password: "bob-password", Username: "bob"},
	{Email: "carol@example.com", Password: "carol-password", Username: "carol"},
}

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.User{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	users := repository.NewUserRepository(gormDB)
	hasher := auth.NewBcryptHasher()

	ctx := context.Background()
	created, skipped := 0, 0
	for _, d := range demoUsers {
		_, err := users.FindByEmail(ctx, d.Email)
		if err == nil {
			log.Printf("Skipping %s: already exists", d.Email)
			skipped++
			continue
		}
		if !stderrors.Is(err, gorm.ErrRecordNotFound) {
			log.Fatalf("Failed to check %s: %v", d.Email, err)
		}

		digest, err := hasher.Hash(d.Password)
		if err != nil {
			log.Fatalf("Failed to hash password for %s: %v", d.Email, err)
		}
		user := &model.User{
			Email:    d.Email,
			Password: digest,
			Username: d.Username,
		}
		if err := users.Create(ctx, user); err != nil {
			log.Fatalf("Failed to create %s: %v", d.Email, err)
		}
		log.Printf("Created %s (%s)", d.Username, user.ID)
		created++
	}

	log.Printf("Seed complete: %d created, %d skipped", created, skipped)
}
