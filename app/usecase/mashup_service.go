package usecase

import (
	"context"
	"log/slog"
	"time"

	"mashup/internal/domain/entity"
	"mashup/internal/domain/repository"
	"mashup/internal/infrastructure/metrics"
)

type MashupUsecase interface {
	CreateMashup(ctx context.Context, payload map[string]interface{}) (*entity.MashupResult, error)
	GeneratorReady() bool
}

var _ MashupUsecase = (*MashupService)(nil)

// MashupService runs the full pipeline for one request:
// 1) validate the payload
// 2) build the prompt
// 3) generate the concept via the completion API
// 4) shape the result
// Stateless; safe for concurrent calls.
type MashupService struct {
	llm    repository.ConceptGenerator
	logger *slog.Logger
}

func NewMashupService(llm repository.ConceptGenerator, logger *slog.Logger) *MashupService {
	return &MashupService{
		llm:    llm,
		logger: logger,
	}
}

func (s *MashupService) CreateMashup(ctx context.Context, payload map[string]interface{}) (*entity.MashupResult, error) {
	startTime := time.Now()

	req, err := ParseMashupRequest(payload)
	if err != nil {
		metrics.IncError("usecase", "validation")
		return nil, err
	}

	if !s.llm.Ready() {
		metrics.IncError("usecase", "no_credential")
		return nil, entity.NewConfigurationError("OpenAI client is not initialized. Please check your API key and environment variables.")
	}

	s.logger.Info("creating mashup concept", "mashup_name", req.MashupName)

	userPrompt := entity.BuildMashupPrompt(req.Game1Data, req.Game2Data)

	concept, err := s.llm.GenerateConcept(ctx, entity.DesignerPrompt.Text, userPrompt)
	if err != nil {
		s.logger.Error("concept generation failed", "mashup_name", req.MashupName, "err", err)
		return nil, err
	}

	result := entity.NewMashupResult(req, concept)

	metrics.IncMashupsCreated()
	metrics.ObserveMashupDuration(time.Since(startTime))
	s.logger.Info("mashup concept created",
		"mashup_name", req.MashupName,
		"report_id", result.ReportID,
		"duration", time.Since(startTime),
	)

	return result, nil
}

func (s *MashupService) GeneratorReady() bool {
	return s.llm.Ready()
}
