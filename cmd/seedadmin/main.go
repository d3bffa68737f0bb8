package main

import (
	"flag"
	"log"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm/clause"

	"github.com/EnamulBokshi/skillbridge-server/internal/config"
	dbpkg "github.com/EnamulBokshi/skillbridge-server/internal/db"
	"github.com/EnamulBokshi/skillbridge-server/internal/middleware"
	"github.com/EnamulBokshi/skillbridge-server/internal/models"
)

// Seeds (or resets the password of) the admin account.
func main() {
	email := flag.String("email", "admin@skillbridge.local", "admin email")
	password := flag.String("password", "", "admin password (required)")
	flag.Parse()

	if *password == "" {
		log.Fatal("missing -password")
	}

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	admin := models.User{
		ID:           uuid.NewString(),
		Email:        *email,
		PasswordHash: string(hash),
		Role:         middleware.RoleAdmin,
		Status:       "ACTIVE",
	}

	err = db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}},
		DoUpdates: clause.AssignmentColumns([]string{"password_hash", "role"}),
	}).Create(&admin).Error
	if err != nil {
		log.Fatalf("failed to seed admin: %v", err)
	}

	log.Printf("admin %s ready", *email)
}
