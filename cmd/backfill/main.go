// Command backfill pushes published recipes into the external search index.
// It reindexes everything by default; -recipe-id targets a single recipe and
// -limit caps a full run.
package main

import (
	"Recipe-Platform-Backend/cmd/config"
	"Recipe-Platform-Backend/internal/utils"
	"Recipe-Platform-Backend/pkg/search"
	"context"
	"flag"
	"log"

	"github.com/joho/godotenv"
)

func main() {
	recipeID := flag.Uint("recipe-id", 0, "reindex only this recipe")
	limit := flag.Int("limit", 0, "max recipes to reindex (0 = all)")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, relying on config.yaml and environment")
	}
	utils.LoadConfig()

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	searchService := search.NewSearchService(search.LoadConfigFromEnv(), search.NewSearchRepository(db))
	processed, err := searchService.Backfill(context.Background(), uint(*recipeID), *limit)
	if err != nil {
		log.Fatalf("backfill failed: %v", err)
	}
	log.Printf("backfill complete, %d recipe(s) processed", processed)
}
