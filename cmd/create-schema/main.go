package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/Amit12200412/ai-legal-assistant/models"
	"github.com/Amit12200412/ai-legal-assistant/repository"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

var sampleAccounts = []struct {
	username string
	password string
	lang     models.Language
}{
	{"amit", "12345", models.LangEnglish},
	{"prathamesh", "abcde", models.LangHindi},
	{"karishma", "xyz123", models.LangMarathi},
}

func main() {
	seed := flag.Bool("seed", false, "insert sample accounts after creating the schema")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: No .env file found, using environment variables")
	}

	ctx := context.Background()

	if connString := os.Getenv("DATABASE_URL"); connString != "" {
		pool, err := repository.NewPostgresPool(ctx, connString)
		if err != nil {
			log.Fatalf("Failed to initialize Postgres schema: %v", err)
		}
		defer pool.Close()
		log.Println("✓ Postgres schema created")

		if *seed {
			seedAccounts(ctx, repository.NewPostgresUserRepository(pool))
		}
		fmt.Println("\n✅ Database schema created successfully!")
		return
	}

	path := os.Getenv("SQLITE_PATH")
	if path == "" {
		path = "./data/legal.db"
	}

	db, err := repository.OpenSQLite(path)
	if err != nil {
		log.Fatalf("Failed to initialize SQLite schema: %v", err)
	}
	defer db.Close()
	log.Printf("✓ SQLite schema created at %s", path)

	if *seed {
		seedAccounts(ctx, repository.NewSQLiteUserRepository(db))
	}
	fmt.Println("\n✅ Database schema created successfully!")
}

func seedAccounts(ctx context.Context, users repository.UserRepository) {
	for _, sample := range sampleAccounts {
		hash, err := bcrypt.GenerateFromPassword([]byte(sample.password), bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("Failed to hash password: %v", err)
		}

		account := &models.Account{
			Username:     sample.username,
			PasswordHash: string(hash),
			Language:     sample.lang,
		}
		if err := users.Create(ctx, account); err != nil {
			if err == repository.ErrDuplicateUsername {
				log.Printf("Warning: user %q already exists, skipping", sample.username)
				continue
			}
			log.Fatalf("Failed to create sample user %q: %v", sample.username, err)
		}
		log.Printf("✓ Created sample user %q", sample.username)
	}
}
