// Command-line tool for match housekeeping: purges persisted matches
// below the quality threshold and removes records orphaned by deleted
// jobs or candidates.
package main

import (
	"context"
	"flag"
	"log"
	"time"

	"go-talentmatch-backend/config"
	"go-talentmatch-backend/internal/repository/postgres"
	"go-talentmatch-backend/internal/usecase"
	"go-talentmatch-backend/pkg/database"
	"go-talentmatch-backend/pkg/logger"
)

func main() {
	purge := flag.Bool("purge", false, "delete matches below the persistence threshold")
	orphans := flag.Bool("orphans", false, "delete matches whose job or candidate no longer exists")
	timeout := flag.Duration("timeout", 5*time.Minute, "overall run timeout")
	flag.Parse()

	if !*purge && !*orphans {
		log.Fatal("nothing to do: pass -purge and/or -orphans")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init()

	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer dbPool.Close()

	matchRepo := postgres.NewMatchRepository(dbPool)
	jobRepo := postgres.NewJobRepository(dbPool)
	candidateRepo := postgres.NewCandidateRepository(dbPool)
	// maintenance paths never invoke the scorer
	matchUC := usecase.NewMatchUsecase(matchRepo, jobRepo, candidateRepo, nil, logger.Log)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	if *purge {
		count, err := matchUC.PurgeBelowThreshold(ctx)
		if err != nil {
			log.Fatalf("Purge failed: %v", err)
		}
		log.Printf("Purged %d low quality matches", count)
	}

	if *orphans {
		count, err := matchUC.CleanupOrphaned(ctx)
		if err != nil {
			log.Fatalf("Orphan cleanup failed: %v", err)
		}
		log.Printf("Removed %d orphaned matches", count)
	}
}
