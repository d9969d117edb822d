package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/vinnynacc/teammate-directory-api/internal/models"
	"github.com/vinnynacc/teammate-directory-api/internal/service"
	"github.com/vinnynacc/teammate-directory-api/pkg/config"
)

// legacyFile is the pre-expansion document kept next to the data file.
const legacyFile = "team.json"

var errNoLegacyDocument = errors.New("no legacy document")

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	legacyPath := filepath.Join(filepath.Dir(cfg.Store.DataFile), legacyFile)
	count, err := migrate(legacyPath, cfg.Store.DataFile)
	if errors.Is(err, errNoLegacyDocument) {
		log.Printf("no legacy document at %s, nothing to migrate", legacyPath)
		return
	}
	if err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	log.Printf("migrated %d records from %s to %s", count, legacyPath, cfg.Store.DataFile)
}

// migrate upgrades a legacy roster document to the current record shape:
// every loosely typed field is run through the same normalization the API
// applies, so list fields become arrays and link maps get their fixed keys.
// A missing legacy document returns errNoLegacyDocument and writes nothing.
func migrate(legacyPath, dataPath string) (int, error) {
	raw, err := os.ReadFile(legacyPath)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, errNoLegacyDocument
		}
		return 0, fmt.Errorf("read legacy document: %w", err)
	}

	var inputs []service.TeammateInput
	if err := json.Unmarshal(raw, &inputs); err != nil {
		return 0, fmt.Errorf("parse legacy document: %w", err)
	}

	records := make([]models.Teammate, 0, len(inputs))
	for _, input := range inputs {
		records = append(records, service.Expand(input, ""))
	}

	out, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return 0, fmt.Errorf("encode migrated document: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(dataPath), 0o755); err != nil {
		return 0, fmt.Errorf("prepare data directory: %w", err)
	}
	if err := os.WriteFile(dataPath, out, 0o644); err != nil {
		return 0, fmt.Errorf("write migrated document: %w", err)
	}

	return len(records), nil
}
