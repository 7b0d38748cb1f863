package entity

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExcerpt_ShortInputUnmodified(t *testing.T) {
	in := "a short description"
	assert.Equal(t, in, Excerpt(in))
}

func TestExcerpt_ExactLimitUnmodified(t *testing.T) {
	in := strings.Repeat("x", ExcerptLimit)
	assert.Equal(t, in, Excerpt(in))
}

func TestExcerpt_LongInputTruncated(t *testing.T) {
	in := strings.Repeat("x", ExcerptLimit+1)
	out := Excerpt(in)
	assert.Equal(t, strings.Repeat("x", ExcerptLimit)+ExcerptMarker, out)
}

func TestExcerpt_MultiByteRunesNotSplit(t *testing.T) {
	in := strings.Repeat("é", 150)
	out := Excerpt(in)
	assert.Equal(t, strings.Repeat("é", ExcerptLimit)+ExcerptMarker, out)
	assert.True(t, strings.HasSuffix(out, ExcerptMarker))
}

func TestNewReportID_Shape(t *testing.T) {
	id := NewReportID()
	require.Len(t, id, 8)
	for _, c := range id {
		assert.Contains(t, "0123456789abcdef", string(c))
	}
}

func TestNewReportID_DistinctAcrossCalls(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := NewReportID()
		assert.False(t, seen[id], "duplicate report id %q", id)
		seen[id] = true
	}
}

func TestNewMashupResult(t *testing.T) {
	req := &MashupRequest{
		MashupName: "Fusion Project",
		Game1Data:  strings.Repeat("a", 120),
		Game2Data:  "short",
	}

	res := NewMashupResult(req, "generated concept text")

	assert.True(t, res.Success)
	assert.Equal(t, "Game mashup created successfully!", res.Message)
	assert.Equal(t, "Fusion Project", res.MashupName)
	assert.Equal(t, "generated concept text", res.Concept)
	assert.Equal(t, strings.Repeat("a", 100)+"...", res.SourceGames.Game1)
	assert.Equal(t, "short", res.SourceGames.Game2)
	assert.Len(t, res.ReportID, 8)
	assert.NotEmpty(t, res.GeneratedAt)
}
