package main

import (
	"encoding/json"
	"flag"
	"log"
	"os"

	"github.com/example/typist/internal/config"
	"github.com/example/typist/internal/database"
	"github.com/example/typist/internal/legacy"
	"github.com/example/typist/pkg/models"
)

func main() {
	importFile := flag.String("import", "", "path to a legacy payload JSON file to import")
	flag.Parse()

	cfg := config.Load()

	db, err := database.Connect(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	importer := legacy.NewImporter(db)

	if *importFile == "" {
		version, err := db.CurrentVersion()
		if err != nil {
			log.Fatalf("Failed to read schema version: %v", err)
		}
		needed, err := importer.NeedsMigration()
		if err != nil {
			log.Fatalf("Failed to check migration state: %v", err)
		}
		log.Printf("Database %s at schema version %d", cfg.DatabasePath, version)
		log.Printf("Legacy migration needed: %v", needed)
		return
	}

	raw, err := os.ReadFile(*importFile)
	if err != nil {
		log.Fatalf("Failed to read payload file: %v", err)
	}
	var payload models.LegacyPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Fatalf("Failed to decode legacy payload: %v", err)
	}

	result, err := importer.Import(&payload)
	if err != nil {
		log.Fatalf("Import failed: %v", err)
	}

	log.Printf("Imported %d users, %d settings, %d stats, %d lesson rows, %d course rows, %d snippets, %d activity rows, %d daily results",
		result.Users, result.Settings, result.Stats, result.LessonRows,
		result.CourseRows, result.Snippets, result.ActivityRows, result.DailyResults)
	for _, note := range result.Skipped {
		log.Printf("Skipped %s", note)
	}
}
