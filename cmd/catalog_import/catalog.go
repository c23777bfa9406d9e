package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/2beens/gympro/internal/exercises"
)

// readCatalog decodes the dataset json array. Entries without id or name are
// skipped, and for a repeated id the last entry wins.
func readCatalog(r io.Reader) ([]exercises.Exercise, int, error) {
	var raw []exercises.Exercise
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, 0, fmt.Errorf("decode catalog json: %w", err)
	}

	skipped := 0
	positions := make(map[string]int, len(raw))
	catalog := make([]exercises.Exercise, 0, len(raw))
	for _, e := range raw {
		e.ID = strings.TrimSpace(e.ID)
		e.Name = strings.TrimSpace(e.Name)
		if e.ID == "" || e.Name == "" {
			log.Warnf("skipping catalog entry without id or name: %+v", e)
			skipped++
			continue
		}

		if pos, ok := positions[e.ID]; ok {
			catalog[pos] = e
			skipped++
			continue
		}
		positions[e.ID] = len(catalog)
		catalog = append(catalog, e)
	}

	return catalog, skipped, nil
}
