package repository

import "context"

// ConceptGenerator is the boundary to the external completion API.
type ConceptGenerator interface {
	// GenerateConcept performs one blocking completion call with the given
	// system instruction and user prompt. No retries.
	GenerateConcept(ctx context.Context, systemPrompt, userPrompt string) (string, error)
	// Ready reports whether the generator holds a usable credential.
	Ready() bool
}
