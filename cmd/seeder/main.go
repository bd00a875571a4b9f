package main

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/Ware71/CIAGA-sub001/internal/scoring"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	_ "github.com/tursodatabase/libsql-client-go/libsql"
)

// Simplified config loading for the script
func loadConfig() map[string]string {
	err := godotenv.Load()
	if err != nil {
		log.Warn("No .env file found, reading from environment variables")
	}

	config := make(map[string]string)
	required := []string{"TURSO_PRIMARY_URL", "TURSO_AUTH_TOKEN"}

	for _, key := range required {
		if value, ok := os.LookupEnv(key); ok {
			config[key] = value
		} else {
			log.Fatalf("Error: Required environment variable %s is not set.", key)
		}
	}
	return config
}

// Standard par sequence and stroke indexes for the demo course.
var (
	demoPars    = []int{4, 3, 5, 4, 4, 3, 4, 5, 4, 4, 5, 3, 4, 4, 4, 3, 5, 4}
	demoIndexes = []int{7, 15, 1, 11, 5, 17, 9, 3, 13, 8, 2, 16, 10, 6, 12, 18, 4, 14}
)

func main() {
	log.Info("Starting database seeder...")
	cfg := loadConfig()

	// Connect directly to the primary database
	dbURL := fmt.Sprintf("%s?authToken=%s", cfg["TURSO_PRIMARY_URL"], cfg["TURSO_AUTH_TOKEN"])
	db, err := sql.Open("libsql", dbURL)
	if err != nil {
		log.Fatalf("Failed to open primary database: %s", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to connect to primary database: %s", err)
	}

	log.Info("Successfully connected to the primary database.")

	roundID := uuid.NewString()
	configBlob, _ := json.Marshal(scoring.FormatConfig{Format: scoring.FormatStableford})

	tx, err := db.Begin()
	if err != nil {
		log.Fatalf("Failed to begin transaction: %s", err)
	}

	_, err = tx.Exec(
		"INSERT INTO rounds (id, name, course_name, status, format_config, created_at) VALUES (?, ?, ?, ?, ?, ?)",
		roundID, "Seeded Stableford", "Seeded Links", "LIVE", string(configBlob), time.Now().UnixMilli(),
	)
	if err != nil {
		tx.Rollback()
		log.Fatalf("Failed to insert round: %s", err)
	}

	for i, par := range demoPars {
		_, err := tx.Exec(
			"INSERT INTO holes (round_id, number, par, yardage, stroke_index) VALUES (?, ?, ?, ?, ?)",
			roundID, i+1, par, 120+par*70, demoIndexes[i],
		)
		if err != nil {
			tx.Rollback()
			log.Fatalf("Failed to insert hole %d: %s", i+1, err)
		}
	}

	participants := []struct {
		id       string
		name     string
		handicap float64
	}{
		{"player-1", "Seeder Player A", 8},
		{"player-2", "Seeder Player B", 14.4},
		{"player-3", "Seeder Player C", 21},
		{"player-4", "Seeder Player D", 2.7},
	}
	for _, p := range participants {
		_, err := tx.Exec(
			"INSERT INTO participants (round_id, id, name, role, playing_handicap, course_handicap) VALUES (?, ?, ?, ?, ?, ?)",
			roundID, p.id, p.name, "PLAYER", p.handicap, p.handicap,
		)
		if err != nil {
			tx.Rollback()
			log.Fatalf("Failed to insert participant %s: %s", p.name, err)
		}
	}
	log.Info("Created seeded round.", "roundID", roundID)

	// Batch-insert a full card for every participant plus enough historical
	// corrections to make the event log worth projecting.
	const correctionsPerHole = 3

	startTime := time.Now()
	valueStrings := make([]string, 0, 256)
	valueArgs := make([]interface{}, 0, 256*7)
	total := 0

	for _, p := range participants {
		for i, par := range demoPars {
			hole := i + 1
			base := time.Now().Add(-time.Duration(len(demoPars)-i) * 12 * time.Minute)
			final := par + rand.Intn(4) - 1
			if final < 1 {
				final = 1
			}
			for c := 0; c <= correctionsPerHole; c++ {
				strokes := final
				if c < correctionsPerHole {
					strokes = par + rand.Intn(5) - 1
					if strokes < 1 {
						strokes = 1
					}
				}
				valueStrings = append(valueStrings, "(?, ?, ?, ?, ?, ?, ?)")
				valueArgs = append(valueArgs,
					uuid.NewString(), roundID, p.id, hole, strokes,
					base.Add(time.Duration(c)*time.Second).UnixMilli(), p.id,
				)
				total++
			}

			_, err := tx.Exec(
				"INSERT INTO hole_states (round_id, participant_id, hole, status) VALUES (?, ?, ?, ?)",
				roundID, p.id, hole, string(scoring.StatusCompleted),
			)
			if err != nil {
				tx.Rollback()
				log.Fatalf("Failed to insert hole state: %s", err)
			}
		}
	}

	stmt := fmt.Sprintf(
		"INSERT INTO score_events (id, round_id, participant_id, hole, strokes, created_at, author) VALUES %s;",
		strings.Join(valueStrings, ","),
	)
	if _, err := tx.Exec(stmt, valueArgs...); err != nil {
		tx.Rollback()
		log.Fatalf("Failed to execute batch insert: %s", err)
	}

	if err := tx.Commit(); err != nil {
		log.Fatalf("Failed to commit transaction: %s", err)
	}

	duration := time.Since(startTime)
	log.Info("Successfully seeded the round.", "events", total, "duration", duration)
}
