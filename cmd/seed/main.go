package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/segmentio/ksuid"
	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"

	"github.com/campusbridge/campusbridge/internal/config"
	"github.com/campusbridge/campusbridge/internal/database"
	"github.com/campusbridge/campusbridge/internal/models"
)

// seed bootstraps a deployment: it creates the singleton global admin and,
// optionally, a first college with an active subscription.
func main() {
	email := flag.String("email", "", "global admin email (required)")
	password := flag.String("password", "", "global admin password (required)")
	name := flag.String("name", "Global Admin", "global admin display name")
	collegeName := flag.String("college", "", "optional: create a college with this name")
	subMonths := flag.Int("sub-months", 12, "subscription length for the created college, in months")
	flag.Parse()

	if *email == "" || *password == "" {
		log.Fatal("usage: seed -email <email> -password <password> [-college <name>]")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if cfg.MongoDB.URI == "" {
		log.Fatal("MONGODB_URI is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := database.ConnectMongo(ctx, cfg.MongoDB.URI, cfg.MongoDB.Timeout)
	if err != nil {
		log.Fatalf("cannot connect to MongoDB: %v", err)
	}
	defer func() { _ = client.Disconnect(ctx) }()
	db := client.Database(cfg.MongoDB.Database)

	usersCol := db.Collection("users")
	if err := usersCol.FindOne(ctx, bson.M{"email": *email}).Err(); err == nil {
		log.Fatalf("account %s already exists", *email)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}
	now := time.Now().UTC()
	admin := &models.User{
		ID:           ksuid.New().String(),
		Email:        *email,
		Name:         *name,
		PasswordHash: string(hash),
		Role:         models.RoleGlobalAdmin,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if _, err := usersCol.InsertOne(ctx, admin); err != nil {
		log.Fatalf("failed to create global admin: %v", err)
	}
	log.Printf("created global admin %s (id=%s)", admin.Email, admin.ID)

	if *collegeName != "" {
		college := &models.College{
			ID:   ksuid.New().String(),
			Name: *collegeName,
			Subscription: models.Subscription{
				Active:    true,
				ExpiresAt: now.AddDate(0, *subMonths, 0),
			},
			CreatedAt: now,
			UpdatedAt: now,
		}
		if _, err := db.Collection("colleges").InsertOne(ctx, college); err != nil {
			log.Fatalf("failed to create college: %v", err)
		}
		log.Printf("created college %q (id=%s), subscription until %s", college.Name, college.ID, college.Subscription.ExpiresAt.Format("2006-01-02"))
	}
}
