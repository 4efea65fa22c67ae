package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/artloko1-gif/MastersCatering/internal/auth"
	"github.com/artloko1-gif/MastersCatering/internal/config"
	"github.com/artloko1-gif/MastersCatering/internal/content"
	"github.com/artloko1-gif/MastersCatering/internal/db"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Seeds the database with the default site content and the bootstrap admin
// user. Safe to run repeatedly: existing content is left untouched, the
// admin password is re-hashed on every run.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, cols, err := db.Connect(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Fatal(err)
	}
	defer client.Disconnect(context.Background())

	if err := db.EnsureIndexes(ctx, cols); err != nil {
		log.Fatal(err)
	}

	repo := content.NewMongoRepository(client, cols)
	_, found, err := repo.Load(ctx)
	if err != nil {
		log.Fatalf("seed load error: %v", err)
	}
	if found {
		log.Println("seed content: already present, skipping")
	} else {
		defaults := content.Default()
		defaults.Normalize()
		if err := repo.Publish(ctx, defaults); err != nil {
			log.Fatalf("seed content error: %v", err)
		}
		log.Printf("seed content: %d projects, %d locations", len(defaults.Projects), len(defaults.Locations))
	}

	username := envOrDefault("ADMIN_USER", "admin")
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		log.Println("seed admin: ADMIN_PASSWORD missing, skipping")
	} else if err := seedAdminUser(ctx, cols, username, os.Getenv("ADMIN_EMAIL"), password, cfg.Timezone); err != nil {
		log.Fatalf("seed admin error for %s: %v", username, err)
	}

	log.Println("seed completed")
}

func seedAdminUser(ctx context.Context, cols *db.Collections, username, email, password string, loc *time.Location) error {
	if cols == nil || cols.Users == nil {
		return nil
	}
	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}
	now := time.Now().In(loc)
	set := bson.M{
		"password_hash": hash,
		"role":          "admin",
		"updated_at":    now,
	}
	if email != "" {
		set["email"] = email
	}
	update := bson.M{
		"$set": set,
		"$setOnInsert": bson.M{
			"_id":        primitive.NewObjectID().Hex(),
			"username":   username,
			"created_at": now,
		},
	}
	_, err = cols.Users.UpdateOne(ctx, bson.M{"username": username}, update, options.Update().SetUpsert(true))
	return err
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
