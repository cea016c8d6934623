package analyzer

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"chartsight/internal/analysis"
	"chartsight/internal/api/vision"
	"chartsight/internal/model"
)

// ChartProvider supplies the raw analysis text for one chart image.
type ChartProvider interface {
	AnalyzeChart(ctx context.Context, imageDataURL string, language string) (string, error)
}

// Service orchestrates one analysis request: provider call, then
// normalization of whatever came back.
type Service struct {
	provider ChartProvider
	logger   zerolog.Logger
}

// NewService creates a new analysis service around the given provider.
func NewService(provider ChartProvider) *Service {
	return &Service{
		provider: provider,
		logger:   log.With().Str("component", "analyzer").Logger(),
	}
}

// AnalyzeImage runs one chart image through the provider and normalizes the
// response into a ChartAnalysis. A provider failure is the only error path;
// malformed provider output degrades to the default analysis instead.
// ImageURL is left blank for the boundary layer to fill in.
func (s *Service) AnalyzeImage(ctx context.Context, mimeType string, image []byte, language string) (model.ChartAnalysis, error) {
	dataURL := vision.EncodeDataURL(mimeType, image)

	raw, err := s.provider.AnalyzeChart(ctx, dataURL, language)
	if err != nil {
		return model.ChartAnalysis{}, fmt.Errorf("analyzing chart: %w", err)
	}

	result := analysis.BuildFromText(raw)

	s.logger.Info().
		Str("id", result.ID).
		Str("trend", string(result.Trend)).
		Int("confidence", result.Confidence).
		Int("indicators", len(result.Indicators)).
		Msg("Chart analysis completed")

	return result, nil
}
