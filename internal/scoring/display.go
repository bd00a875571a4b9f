package scoring

import "strconv"

// ResultKind is a semantic hint telling the presentation layer what a hole
// result value means.
type ResultKind string

const (
	KindStrokes ResultKind = "STROKES"
	KindPoints  ResultKind = "POINTS"
	KindMatch   ResultKind = "MATCH" // +1 won, 0 halved, -1 lost
	KindSkins   ResultKind = "SKINS"
)

// HoleResult is one computed per-(entity, hole) value.
type HoleResult struct {
	Value int        `json:"value"`
	Kind  ResultKind `json:"kind"`
}

// Summary is one row of a leaderboard. Front, Back and Total are rendered
// values: numeric totals, match states like "2 UP", or the NoScore
// placeholder when no hole in the range carries a value yet.
type Summary struct {
	EntityID string `json:"entity_id"`
	Name     string `json:"name"`
	Front    string `json:"front"`
	Back     string `json:"back"`
	Total    string `json:"total"`
}

// NoScore is rendered instead of a numeric total when no hole in the range
// has a value, so an unfinished round never shows a misleading zero.
const NoScore = "-"

// DisplayData is the uniform output of every format calculator: a label,
// per-entity per-hole results, one summary per entity, and two flags the
// presentation layer needs to render and sort it. It is a plain value with
// no behavior attached.
type DisplayData struct {
	Label          string                        `json:"label"`
	Results        map[string]map[int]HoleResult `json:"results"` // entity id -> hole number -> result
	Summaries      []Summary                     `json:"summaries"`
	HigherIsBetter bool                          `json:"higher_is_better"`
	IsTeamView     bool                          `json:"is_team_view"`
}

func newDisplay(label string, higherIsBetter, teamView bool) *DisplayData {
	return &DisplayData{
		Label:          label,
		Results:        make(map[string]map[int]HoleResult),
		HigherIsBetter: higherIsBetter,
		IsTeamView:     teamView,
	}
}

func (d *DisplayData) setResult(entityID string, hole int, value int, kind ResultKind) {
	if d.Results[entityID] == nil {
		d.Results[entityID] = make(map[int]HoleResult)
	}
	d.Results[entityID][hole] = HoleResult{Value: value, Kind: kind}
}

// sumRange sums the values recorded for hole numbers in [lo, hi]. The second
// return is false when no hole in the range has a value.
func sumRange(values map[int]int, lo, hi int) (int, bool) {
	total := 0
	any := false
	for hole, v := range values {
		if hole >= lo && hole <= hi {
			total += v
			any = true
		}
	}
	return total, any
}

// renderRange renders a numeric range total, or the NoScore placeholder.
func renderRange(values map[int]int, lo, hi int) string {
	total, ok := sumRange(values, lo, hi)
	if !ok {
		return NoScore
	}
	return strconv.Itoa(total)
}

// renderTotal renders the sum over every hole with a value.
func renderTotal(values map[int]int) string {
	if len(values) == 0 {
		return NoScore
	}
	total := 0
	for _, v := range values {
		total += v
	}
	return strconv.Itoa(total)
}

// summarize builds the front-9 / back-9 / total summary shared by every
// numeric format.
func summarize(entityID, name string, values map[int]int) Summary {
	return Summary{
		EntityID: entityID,
		Name:     name,
		Front:    renderRange(values, 1, 9),
		Back:     renderRange(values, 10, 18),
		Total:    renderTotal(values),
	}
}
