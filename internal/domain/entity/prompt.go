package entity

import "fmt"

// Prompt is a named prompt template.
type Prompt struct {
	ID   string
	Text string
}

const designerPersona = "You are a world-class game designer known for creating innovative game concepts that successfully blend different genres and mechanics. You deliver creative, detailed, and marketable game ideas."

// DesignerPrompt is the fixed system-role instruction sent with every
// generation request.
var DesignerPrompt = Prompt{
	ID:   "game-designer",
	Text: designerPersona,
}

// mashupTemplate requests eight named sections in a fixed order. The section
// headings must stay stable: downstream formatting keys off them.
const mashupTemplate = `You are an expert game designer and creative director. I will give you two different games, and I want you to create an innovative mashup that combines the best elements of both into a completely new game concept.

**Game 1:**
%s

**Game 2:**
%s

Create a detailed game concept that fuses these two games together. Your response should include:

## 🎮 Game Title
Create an original, catchy title that doesn't use proper nouns from either source game.

## 🎯 Genre & Core Concept
Define the hybrid genre and explain the core fusion concept in 2-3 sentences.

## ⚡ Unique Selling Points
List 3-4 compelling features that make this mashup special and marketable.

## 🔄 Core Game Loop
Describe the primary gameplay cycle that players will experience repeatedly.

## 🎨 Key Mechanics Fusion
Explain how you're combining specific mechanics from both games in creative ways.

## 👥 Target Audience
Identify who would play this game and why it appeals to fans of both source games.

## 💰 Monetization Strategy
Suggest 2-3 ways to make this game profitable while keeping it player-friendly.

## 🚀 Marketing Hooks
Provide 3 compelling marketing angles that would grab attention.

IMPORTANT: Be creative and innovative. Don't just list features from both games - truly blend them into something new. Use professional language with perfect grammar and formatting.`

// BuildMashupPrompt embeds both game descriptions verbatim into the fixed
// template. Pure: identical inputs yield byte-identical output.
func BuildMashupPrompt(game1Data, game2Data string) string {
	return fmt.Sprintf(mashupTemplate, game1Data, game2Data)
}
