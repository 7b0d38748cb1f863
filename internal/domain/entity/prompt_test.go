package entity

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildMashupPrompt_Deterministic(t *testing.T) {
	a := BuildMashupPrompt("game one", "game two")
	b := BuildMashupPrompt("game one", "game two")
	assert.Equal(t, a, b)
}

func TestBuildMashupPrompt_EmbedsDescriptionsVerbatim(t *testing.T) {
	game1 := "Tetris with %s format verbs and {{template}} syntax"
	game2 := "Dark Souls\nwith\nnewlines"

	prompt := BuildMashupPrompt(game1, game2)

	assert.Contains(t, prompt, game1)
	assert.Contains(t, prompt, game2)
}

func TestBuildMashupPrompt_SectionOrder(t *testing.T) {
	prompt := BuildMashupPrompt("g1", "g2")

	sections := []string{
		"Game Title",
		"Genre & Core Concept",
		"Unique Selling Points",
		"Core Game Loop",
		"Key Mechanics Fusion",
		"Target Audience",
		"Monetization Strategy",
		"Marketing Hooks",
	}

	last := -1
	for _, s := range sections {
		idx := strings.Index(prompt, s)
		assert.Greater(t, idx, last, "section %q out of order", s)
		last = idx
	}
}

func TestDesignerPrompt(t *testing.T) {
	assert.Contains(t, DesignerPrompt.Text, "world-class game designer")
}
