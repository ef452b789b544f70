// Package seed loads the initial coffee catalog at startup.
package seed

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"coffeeapi/internal/model"
	"coffeeapi/internal/repository"
)

// Names is the fixed initial dataset.
var Names = []string{
	"Cafe Cereza",
	"Cafe Ganador",
	"Cafe Lareno",
	"Cafe Tres Pontas",
}

// Run stores one fresh record per entry in Names. Callers invoke it once on
// the first boot of a store. Any error must abort startup.
func Run(ctx context.Context, repo repository.CoffeeRepository, loc *time.Location) error {
	start := time.Now()

	batch := make([]model.Coffee, 0, len(Names))
	for _, n := range Names {
		batch = append(batch, model.NewCoffee(n))
	}

	stored, err := repo.SaveAll(ctx, batch)
	if err != nil {
		logJSON(loc, map[string]any{
			"event":         "seed_failed",
			"status":        "error",
			"error_message": err.Error(),
			"duration_ms":   time.Since(start).Milliseconds(),
		})
		return fmt.Errorf("seed: save coffees: %w", err)
	}

	logJSON(loc, map[string]any{
		"event":       "seed_success",
		"status":      "success",
		"inserted":    len(stored),
		"duration_ms": time.Since(start).Milliseconds(),
	})
	return nil
}

func logJSON(loc *time.Location, data map[string]any) {
	if loc == nil {
		loc = time.UTC
	}
	data["component"] = "seed"
	data["ts"] = time.Now().In(loc).Format(time.RFC3339Nano)
	if data["status"] == "error" {
		data["level"] = "error"
	} else {
		data["level"] = "info"
	}

	b, err := json.Marshal(data)
	if err != nil {
		log.Printf("failed to marshal seed log: %v", err)
		return
	}
	log.SetFlags(0)
	log.Println(string(b))
}
