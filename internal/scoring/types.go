package scoring

// HoleStatus is the entry state of a single (participant, hole) cell.
type HoleStatus string

const (
	StatusNotStarted HoleStatus = "NOT_STARTED"
	StatusCompleted  HoleStatus = "COMPLETED"
	StatusPickedUp   HoleStatus = "PICKED_UP"
)

// Format identifies a competition format.
type Format string

const (
	FormatStrokeplay      Format = "STROKEPLAY"
	FormatStableford      Format = "STABLEFORD"
	FormatMatchplay       Format = "MATCHPLAY"
	FormatSkins           Format = "SKINS"
	FormatTeamStrokeplay  Format = "TEAM_STROKEPLAY"
	FormatTeamStableford  Format = "TEAM_STABLEFORD"
	FormatBestBall        Format = "BEST_BALL"
	FormatPairsStableford Format = "PAIRS_STABLEFORD"
	FormatScramble        Format = "SCRAMBLE"
	FormatGreensomes      Format = "GREENSOMES"
	FormatFoursomes       Format = "FOURSOMES"
	FormatRotatingPartner Format = "ROTATING_PARTNER"
)

// TeamScoringMode selects which member values count on a hole for the
// best-ball family.
type TeamScoringMode string

const (
	ModeBest  TeamScoringMode = "BEST"
	ModeWorst TeamScoringMode = "WORST"
	ModeAll   TeamScoringMode = "ALL"
)

// Hole is an immutable snapshot of one hole, taken from the course catalog
// when the round starts. Later catalog edits never touch it.
type Hole struct {
	Number      int `json:"number"`
	Par         int `json:"par"`
	Yardage     int `json:"yardage"`
	StrokeIndex int `json:"stroke_index"`
}

// Participant is one player in the round. PlayingHandicap is the handicap
// actually in effect for this round, after any allowance or override; the
// engine never re-derives it from CourseHandicap.
type Participant struct {
	ID              string  `json:"id"`
	ProfileID       *string `json:"profile_id,omitempty"` // nil for guests
	Name            string  `json:"name"`
	Role            string  `json:"role"`
	TeamID          string  `json:"team_id,omitempty"`
	PlayingHandicap float64 `json:"playing_handicap"`
	CourseHandicap  float64 `json:"course_handicap"`
}

// Team is a grouping entity for team formats.
type Team struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Number int    `json:"number"`
}

// ScoreEvent is one append-only entry in the score log. A nil Strokes value
// is a valid "clear" event. The current value for a (participant, hole) key
// is the event with the latest timestamp for that key.
type ScoreEvent struct {
	ID            string `json:"id"`
	ParticipantID string `json:"participant_id"`
	Hole          int    `json:"hole"`
	Strokes       *int   `json:"strokes"`
	CreatedAt     int64  `json:"created_at"` // unix millis
	Author        string `json:"author"`
}

// HoleState is the materialized projection of one (participant, hole) cell.
type HoleState struct {
	ParticipantID string     `json:"participant_id"`
	Hole          int        `json:"hole"`
	Status        HoleStatus `json:"status"`
}

// ScoreKey addresses one (participant, hole) cell.
type ScoreKey struct {
	ParticipantID string
	Hole          int
}

// PointsTable maps net-score-minus-par to stableford points.
type PointsTable map[int]int

// DefaultPointsTable is the standard stableford table: albatross 5, eagle 4,
// birdie 3, par 2, bogey 1, double bogey or worse 0.
func DefaultPointsTable() PointsTable {
	return PointsTable{-3: 5, -2: 4, -1: 3, 0: 2, 1: 1}
}

// Points looks up the stableford points for a net-minus-par difference.
// Differences below the lowest configured entry score as that entry;
// differences above the highest score zero.
func (t PointsTable) Points(diff int) int {
	if len(t) == 0 {
		t = DefaultPointsTable()
	}
	if v, ok := t[diff]; ok {
		return v
	}
	if diff < 0 {
		lowest := 0
		found := false
		for d := range t {
			if !found || d < lowest {
				lowest = d
				found = true
			}
		}
		if found && diff < lowest {
			return t[lowest]
		}
	}
	return 0
}

// FormatConfig is the per-round format configuration.
type FormatConfig struct {
	Format          Format          `json:"format"`
	PointsTable     PointsTable     `json:"points_table,omitempty"`
	Matchups        [][]string      `json:"matchups,omitempty"`
	TeamScoringMode TeamScoringMode `json:"team_scoring_mode,omitempty"`
	CountPerHole    int             `json:"count_per_hole,omitempty"`
	SideGames       []string        `json:"side_games,omitempty"`
}

// Snapshot is an immutable in-memory view of a round, assembled by the
// caller from the hole/participant/team snapshots, the latest-per-key score
// projection and the hole-state map. All engine computation runs over it
// without touching shared state.
type Snapshot struct {
	Holes        []Hole
	Participants []Participant
	Teams        []Team
	Config       FormatConfig
	Scores       map[ScoreKey]int
	States       map[ScoreKey]HoleStatus
}

// Status returns the entry state for a cell; absent cells are not started.
func (s *Snapshot) Status(participantID string, hole int) HoleStatus {
	if st, ok := s.States[ScoreKey{participantID, hole}]; ok {
		return st
	}
	return StatusNotStarted
}
