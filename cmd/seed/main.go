package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"gridnav/internal/config"
	"gridnav/internal/domain/models/navigation"
	"gridnav/internal/repository/postgres"
	"gridnav/internal/service/urlstate"
)

type seedDocument struct {
	name      string
	workspace string
	withURLID bool
}

var seedDocuments = []seedDocument{
	{name: "Sales Report", workspace: "Finance", withURLID: true},
	{name: "Q3 Budget (draft)", workspace: "Finance", withURLID: true},
	{name: "Hiring Pipeline", workspace: "People", withURLID: true},
	{name: "Scratch", workspace: "People"},
}

func main() {
	dropTables := flag.Bool("drop-tables", false, "Drop all tables before seeding (fresh start)")
	schemaOnly := flag.Bool("schema-only", false, "Only set up schema, don't seed documents")
	clearData := flag.Bool("clear-data", false, "Clear all documents, workspaces and orgs (keep schema)")
	owner := flag.String("owner", "", "User ID (JWT subject) that owns the seeded documents")
	org := flag.String("org", "example", "Domain of the seeded org")
	flag.Parse()

	_ = godotenv.Load()
	cfg := config.Load()

	// SAFETY: Prevent destructive operations in production
	if cfg.Environment == "prod" && (*dropTables || *clearData) {
		log.Fatalf("🚫 BLOCKED: Cannot run destructive operations (--drop-tables or --clear-data) in production environment")
	}
	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL is required")
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	log.Printf("🌱 Seeding database (environment: %s, prefix: %s)", cfg.Environment, cfg.TablePrefix)

	ctx := context.Background()
	pool, err := postgres.CreateConnectionPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	tables := postgres.NewTableNames(cfg.TablePrefix)

	if *dropTables {
		log.Println("🗑️  Dropping all tables...")
		if err := postgres.DropSchema(ctx, pool, tables); err != nil {
			log.Fatalf("Failed to drop tables: %v", err)
		}
	}

	if err := postgres.EnsureSchema(ctx, pool, tables); err != nil {
		log.Fatalf("Failed to run schema: %v", err)
	}
	log.Println("✅ Schema ready")

	if *schemaOnly {
		return
	}

	if *clearData {
		if _, err := pool.Exec(ctx, "TRUNCATE "+tables.Documents+", "+tables.Workspaces+", "+tables.Orgs+" CASCADE"); err != nil {
			log.Fatalf("Failed to clear data: %v", err)
		}
		log.Println("✅ Data cleared successfully")
		return
	}

	if *owner == "" {
		log.Fatal("--owner is required when seeding documents")
	}

	if err := seed(ctx, pool, tables, *org, *owner, logger); err != nil {
		log.Fatalf("Failed to seed: %v", err)
	}
	log.Println("🎉 Seeding complete!")
}

func seed(ctx context.Context, pool *pgxpool.Pool, tables *postgres.TableNames, org, owner string, logger *slog.Logger) error {
	var orgID int
	err := pool.QueryRow(ctx, `
		INSERT INTO `+tables.Orgs+` (name, domain) VALUES ($1, $1)
		ON CONFLICT (domain) DO UPDATE SET name = EXCLUDED.name
		RETURNING id
	`, org).Scan(&orgID)
	if err != nil {
		return err
	}

	workspaces := map[string]int{}
	for _, doc := range seedDocuments {
		wsID, ok := workspaces[doc.workspace]
		if !ok {
			err := pool.QueryRow(ctx,
				`INSERT INTO `+tables.Workspaces+` (org_id, name) VALUES ($1, $2) RETURNING id`,
				orgID, doc.workspace,
			).Scan(&wsID)
			if err != nil {
				return err
			}
			workspaces[doc.workspace] = wsID
		}

		// Document ids are 32 alphanumerics; url ids are the shortest
		// prefix the URL decoder recognizes as one.
		id := strings.ReplaceAll(uuid.NewString(), "-", "")
		var urlID *string
		if doc.withURLID {
			prefix := id[:config.MinURLIDPrefixLength]
			urlID = &prefix
		}

		_, err := pool.Exec(ctx,
			`INSERT INTO `+tables.Documents+` (id, url_id, name, workspace_id, owner_id) VALUES ($1, $2, $3, $4, $5)`,
			id, urlID, doc.name, wsID, owner,
		)
		if err != nil {
			return err
		}

		ref := navigation.DocumentRef{ID: id, URLID: urlID, Name: doc.name, WorkspaceID: &wsID, Org: org}
		logger.Info("seeded document",
			"id", id,
			"name", doc.name,
			"workspace_id", wsID,
			"slug", urlstate.GetSlugIfNeeded(ref),
		)
	}
	return nil
}
