package round

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Ware71/CIAGA-sub001/internal/scoring"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// ErrRoundNotFound is returned when a round id resolves to nothing.
var ErrRoundNotFound = errors.New("round not found")

// ErrRoundFinished is returned for writes against a finished round; its
// scores and states are read-only.
var ErrRoundFinished = errors.New("round is finished")

// New creates a new RoundStore.
func New(db *sql.DB) RoundStore {
	return &store{db: db}
}

// CreateRound inserts a round together with its immutable hole, participant
// and team snapshots. The snapshots are written once and never updated.
func (s *store) CreateRound(r *Round) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.Status == "" {
		r.Status = StatusLive
	}
	if r.CreatedAt == 0 {
		r.CreatedAt = time.Now().UnixMilli()
	}

	configJSON, err := json.Marshal(r.Config)
	if err != nil {
		return fmt.Errorf("failed to marshal format config: %w", err)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}

	_, err = tx.Exec(`
		INSERT INTO rounds (id, name, course_name, status, format_config, created_at, finished_at)
		VALUES (?, ?, ?, ?, ?, ?, NULL)
	`, r.ID, r.Name, r.CourseName, r.Status, string(configJSON), r.CreatedAt)
	if err != nil {
		tx.Rollback()
		return err
	}

	for _, h := range r.Holes {
		_, err = tx.Exec(`
			INSERT INTO holes (round_id, number, par, yardage, stroke_index)
			VALUES (?, ?, ?, ?, ?)
		`, r.ID, h.Number, h.Par, h.Yardage, h.StrokeIndex)
		if err != nil {
			tx.Rollback()
			return err
		}
	}

	for _, t := range r.Teams {
		_, err = tx.Exec(`
			INSERT INTO teams (round_id, id, name, number)
			VALUES (?, ?, ?, ?)
		`, r.ID, t.ID, t.Name, t.Number)
		if err != nil {
			tx.Rollback()
			return err
		}
	}

	for _, p := range r.Participants {
		_, err = tx.Exec(`
			INSERT INTO participants (round_id, id, profile_id, name, role, team_id, playing_handicap, course_handicap)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		`, r.ID, p.ID, p.ProfileID, p.Name, p.Role, nullString(p.TeamID), p.PlayingHandicap, p.CourseHandicap)
		if err != nil {
			tx.Rollback()
			return err
		}
	}

	return tx.Commit()
}

func nullString(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// GetRound loads a round and its snapshots.
func (s *store) GetRound(roundID string) (*Round, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.getRound(roundID)
}

func (s *store) getRound(roundID string) (*Round, error) {
	var r Round
	var configJSON string
	var finishedAt sql.NullInt64
	err := s.db.QueryRow(`
		SELECT id, name, course_name, status, format_config, created_at, finished_at
		FROM rounds WHERE id = ?
	`, roundID).Scan(&r.ID, &r.Name, &r.CourseName, &r.Status, &configJSON, &r.CreatedAt, &finishedAt)
	if err == sql.ErrNoRows {
		return nil, ErrRoundNotFound
	}
	if err != nil {
		return nil, err
	}
	if finishedAt.Valid {
		r.FinishedAt = &finishedAt.Int64
	}
	if err := json.Unmarshal([]byte(configJSON), &r.Config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal format config: %w", err)
	}

	rows, err := s.db.Query(`
		SELECT number, par, yardage, stroke_index FROM holes
		WHERE round_id = ? ORDER BY number
	`, roundID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var h scoring.Hole
		if err := rows.Scan(&h.Number, &h.Par, &h.Yardage, &h.StrokeIndex); err != nil {
			return nil, err
		}
		r.Holes = append(r.Holes, h)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	teamRows, err := s.db.Query(`
		SELECT id, name, number FROM teams
		WHERE round_id = ? ORDER BY number
	`, roundID)
	if err != nil {
		return nil, err
	}
	defer teamRows.Close()
	for teamRows.Next() {
		var t scoring.Team
		if err := teamRows.Scan(&t.ID, &t.Name, &t.Number); err != nil {
			return nil, err
		}
		r.Teams = append(r.Teams, t)
	}
	if err := teamRows.Err(); err != nil {
		return nil, err
	}

	partRows, err := s.db.Query(`
		SELECT id, profile_id, name, role, team_id, playing_handicap, course_handicap
		FROM participants WHERE round_id = ? ORDER BY rowid
	`, roundID)
	if err != nil {
		return nil, err
	}
	defer partRows.Close()
	for partRows.Next() {
		var p scoring.Participant
		var profileID, teamID sql.NullString
		if err := partRows.Scan(&p.ID, &profileID, &p.Name, &p.Role, &teamID, &p.PlayingHandicap, &p.CourseHandicap); err != nil {
			return nil, err
		}
		if profileID.Valid {
			p.ProfileID = &profileID.String
		}
		p.TeamID = teamID.String
		r.Participants = append(r.Participants, p)
	}
	return &r, partRows.Err()
}

// ListRounds returns listing rows for all rounds, newest first.
func (s *store) ListRounds() ([]RoundInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT id, name, course_name, status, format_config, created_at
		FROM rounds ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var infos []RoundInfo
	for rows.Next() {
		var info RoundInfo
		var configJSON string
		if err := rows.Scan(&info.ID, &info.Name, &info.CourseName, &info.Status, &configJSON, &info.CreatedAt); err != nil {
			log.Error("Failed to scan round row", "error", err)
			continue
		}
		var cfg scoring.FormatConfig
		if err := json.Unmarshal([]byte(configJSON), &cfg); err == nil {
			info.Format = cfg.Format
		}
		infos = append(infos, info)
	}
	return infos, rows.Err()
}

// Events returns the full append-only score log for a round.
func (s *store) Events(roundID string) ([]scoring.ScoreEvent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.events(roundID)
}

func (s *store) events(roundID string) ([]scoring.ScoreEvent, error) {
	rows, err := s.db.Query(`
		SELECT id, participant_id, hole, strokes, created_at, author
		FROM score_events WHERE round_id = ? ORDER BY created_at
	`, roundID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []scoring.ScoreEvent
	for rows.Next() {
		var ev scoring.ScoreEvent
		var strokes sql.NullInt64
		if err := rows.Scan(&ev.ID, &ev.ParticipantID, &ev.Hole, &strokes, &ev.CreatedAt, &ev.Author); err != nil {
			return nil, err
		}
		if strokes.Valid {
			v := int(strokes.Int64)
			ev.Strokes = &v
		}
		events = append(events, ev)
	}
	return events, rows.Err()
}

// Snapshot assembles the immutable engine input for a round: the snapshots
// from creation time, the latest-per-key projection of the score log, and
// the current hole states.
func (s *store) Snapshot(roundID string) (*scoring.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, err := s.getRound(roundID)
	if err != nil {
		return nil, err
	}

	events, err := s.events(roundID)
	if err != nil {
		return nil, err
	}

	states := make(map[scoring.ScoreKey]scoring.HoleStatus)
	rows, err := s.db.Query(`
		SELECT participant_id, hole, status FROM hole_states WHERE round_id = ?
	`, roundID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var key scoring.ScoreKey
		var status scoring.HoleStatus
		if err := rows.Scan(&key.ParticipantID, &key.Hole, &status); err != nil {
			return nil, err
		}
		states[key] = status
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &scoring.Snapshot{
		Holes:        r.Holes,
		Participants: r.Participants,
		Teams:        r.Teams,
		Config:       r.Config,
		Scores:       scoring.LatestScores(events),
		States:       states,
	}, nil
}

// SubmitScore completes a hole with a numeric score.
func (s *store) SubmitScore(roundID, participantID string, hole, strokes int, author string) (*scoring.ScoreEvent, error) {
	return s.transition(roundID, participantID, hole, scoring.StatusCompleted, &strokes, author)
}

// MarkPickedUp records a pickup. No numeric score is stored; the engine
// synthesizes the penalty value.
func (s *store) MarkPickedUp(roundID, participantID string, hole int, author string) (*scoring.ScoreEvent, error) {
	return s.transition(roundID, participantID, hole, scoring.StatusPickedUp, nil, author)
}

// ClearHole resets a hole to not started.
func (s *store) ClearHole(roundID, participantID string, hole int, author string) (*scoring.ScoreEvent, error) {
	return s.transition(roundID, participantID, hole, scoring.StatusNotStarted, nil, author)
}

// transition validates the hole-entry transition and writes the event and
// the state in one transaction, so the log and the projection move together.
func (s *store) transition(roundID, participantID string, hole int, to scoring.HoleStatus, strokes *int, author string) (*scoring.ScoreEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireLive(roundID); err != nil {
		return nil, err
	}

	state, event, err := scoring.Transition(participantID, hole, to, strokes, author, time.Now().UnixMilli())
	if err != nil {
		return nil, err
	}
	event.ID = uuid.NewString()

	if err := s.write(roundID, event, state.Status); err != nil {
		return nil, err
	}
	return &event, nil
}

// ApplyEvent records an event that was produced by another instance and
// delivered over pub/sub. The event keeps its original id and timestamp;
// last-write-wins resolution happens at projection time, so out-of-order
// delivery is fine.
func (s *store) ApplyEvent(roundID string, event scoring.ScoreEvent, status scoring.HoleStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireLive(roundID); err != nil {
		return err
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	return s.write(roundID, event, status)
}

func (s *store) requireLive(roundID string) error {
	var status RoundStatus
	err := s.db.QueryRow("SELECT status FROM rounds WHERE id = ?", roundID).Scan(&status)
	if err == sql.ErrNoRows {
		return ErrRoundNotFound
	}
	if err != nil {
		return err
	}
	if status != StatusLive {
		return ErrRoundFinished
	}
	return nil
}

func (s *store) write(roundID string, event scoring.ScoreEvent, status scoring.HoleStatus) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}

	var strokes any
	if event.Strokes != nil {
		strokes = *event.Strokes
	}
	_, err = tx.Exec(`
		INSERT INTO score_events (id, round_id, participant_id, hole, strokes, created_at, author)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, event.ID, roundID, event.ParticipantID, event.Hole, strokes, event.CreatedAt, event.Author)
	if err != nil {
		tx.Rollback()
		return err
	}

	_, err = tx.Exec(`
		INSERT INTO hole_states (round_id, participant_id, hole, status)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(round_id, participant_id, hole) DO UPDATE SET status = excluded.status
	`, roundID, event.ParticipantID, event.Hole, status)
	if err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit()
}

// FinishRound marks a round finished; all score and state writes are
// rejected afterwards.
func (s *store) FinishRound(roundID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.Exec(`
		UPDATE rounds SET status = ?, finished_at = ? WHERE id = ? AND status = ?
	`, StatusFinished, time.Now().UnixMilli(), roundID, StatusLive)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		if err := s.requireLive(roundID); err != nil {
			return err
		}
	}
	return nil
}

// Clear removes everything. Test and operational tooling only.
func (s *store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, table := range []string{"hole_states", "score_events", "participants", "teams", "holes", "rounds"} {
		if _, err := s.db.Exec("DELETE FROM " + table); err != nil {
			log.Error("Failed to clear table", "table", table, "error", err)
		}
	}
}

// ClearRound removes a single round and its children.
func (s *store) ClearRound(roundID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.db.Exec("DELETE FROM rounds WHERE id = ?", roundID); err != nil {
		log.Error("Failed to clear round", "roundID", roundID, "error", err)
	}
}
