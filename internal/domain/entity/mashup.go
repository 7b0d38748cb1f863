package entity

import (
	"time"

	"github.com/google/uuid"
)

// ExcerptLimit is the maximum number of characters kept from each source
// description in the response preview.
const ExcerptLimit = 100

// ExcerptMarker is appended to an excerpt only when the source was truncated.
const ExcerptMarker = "..."

// GeneratedAtLayout is the human-readable timestamp attached to each result.
const GeneratedAtLayout = "January 2, 2006 at 3:04 PM"

// MashupRequest is a validated create-mashup payload. Construct it through
// usecase.ParseMashupRequest; all three fields are guaranteed non-empty.
type MashupRequest struct {
	MashupName string `json:"mashup_name"`
	Game1Data  string `json:"game1_data"`
	Game2Data  string `json:"game2_data"`
}

// SourceGames carries truncated previews of the two input descriptions.
type SourceGames struct {
	Game1 string `json:"game1"`
	Game2 string `json:"game2"`
}

// MashupResult is the response for one successful generation. It is built
// once per call and never persisted.
type MashupResult struct {
	Success     bool        `json:"success"`
	Message     string      `json:"message"`
	ReportID    string      `json:"report_id"`
	MashupName  string      `json:"mashup_name"`
	Concept     string      `json:"concept"`
	SourceGames SourceGames `json:"source_games"`
	GeneratedAt string      `json:"generated_at"`
}

// NewMashupResult shapes a successful generation into the response form.
func NewMashupResult(req *MashupRequest, concept string) *MashupResult {
	return &MashupResult{
		Success:    true,
		Message:    "Game mashup created successfully!",
		ReportID:   NewReportID(),
		MashupName: req.MashupName,
		Concept:    concept,
		SourceGames: SourceGames{
			Game1: Excerpt(req.Game1Data),
			Game2: Excerpt(req.Game2Data),
		},
		GeneratedAt: time.Now().Format(GeneratedAtLayout),
	}
}

// NewReportID returns a short tracking identifier: the first 8 characters of
// a v4 UUID. Unique with high probability within a process lifetime; no
// guarantee across restarts.
func NewReportID() string {
	return uuid.NewString()[:8]
}

// Excerpt truncates a description to ExcerptLimit characters, appending the
// marker only when the original was longer. Counted in codepoints so a
// multi-byte description never splits mid-rune.
func Excerpt(s string) string {
	r := []rune(s)
	if len(r) <= ExcerptLimit {
		return s
	}
	return string(r[:ExcerptLimit]) + ExcerptMarker
}
