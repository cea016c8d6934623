package server

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"chartsight/internal/analysis"
	"chartsight/internal/api/vision"
	"chartsight/internal/model"
)

// ChartAnalyzer turns one chart image into a ChartAnalysis.
type ChartAnalyzer interface {
	AnalyzeImage(ctx context.Context, mimeType string, image []byte, language string) (model.ChartAnalysis, error)
}

// ImageFetcher downloads a chart image from a URL.
type ImageFetcher interface {
	FetchImage(ctx context.Context, url string, maxBytes int64) ([]byte, string, error)
}

// HandlerOptions holds options for creating a new Handler.
type HandlerOptions struct {
	Analyzer        ChartAnalyzer
	Fetcher         ImageFetcher
	MaxUploadBytes  int64
	DefaultLanguage string
}

// Handler serves the analysis API.
type Handler struct {
	analyzer        ChartAnalyzer
	fetcher         ImageFetcher
	maxUploadBytes  int64
	defaultLanguage string
	logger          zerolog.Logger
}

// NewHandler creates a new API handler.
func NewHandler(opts HandlerOptions) *Handler {
	if opts.MaxUploadBytes == 0 {
		opts.MaxUploadBytes = 10 * 1024 * 1024
	}
	if opts.DefaultLanguage == "" {
		opts.DefaultLanguage = "th"
	}

	return &Handler{
		analyzer:        opts.Analyzer,
		fetcher:         opts.Fetcher,
		maxUploadBytes:  opts.MaxUploadBytes,
		defaultLanguage: opts.DefaultLanguage,
		logger:          log.With().Str("component", "api_handler").Logger(),
	}
}

// HandleAnalyze accepts a multipart request with either an image file or an
// imageUrl field, runs the analysis, and returns the envelope. Input problems
// are 400s; only a failed provider call produces a 500.
func (h *Handler) HandleAnalyze(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes+1024*1024)

	if err := r.ParseMultipartForm(h.maxUploadBytes); err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid multipart request")
		return
	}

	language := r.FormValue("language")
	if language != "th" && language != "en" {
		language = h.defaultLanguage
	}

	image, mimeType, imageURL, status, errMsg := h.readImage(r)
	if errMsg != "" {
		h.writeError(w, status, errMsg)
		return
	}

	result, err := h.analyzer.AnalyzeImage(r.Context(), mimeType, image, language)
	if err != nil {
		h.logger.Error().Err(err).Msg("Analysis failed")
		h.writeError(w, http.StatusInternalServerError, "Failed to analyze chart image")
		return
	}

	result.ImageURL = imageURL
	h.writeJSON(w, http.StatusOK, model.AnalysisResponse{Success: true, Data: &result})
}

// readImage pulls the image out of the request, from the uploaded file or,
// failing that, from the imageUrl field. It returns the bytes, the MIME type
// and the value to report back as the analysis ImageURL.
func (h *Handler) readImage(r *http.Request) (image []byte, mimeType, imageURL string, status int, errMsg string) {
	file, header, err := r.FormFile("file")
	if err != nil {
		url := r.FormValue("imageUrl")
		if url == "" {
			return nil, "", "", http.StatusBadRequest, "No file uploaded"
		}
		if h.fetcher == nil {
			return nil, "", "", http.StatusBadRequest, "Image URLs are not supported"
		}

		image, mimeType, err := h.fetcher.FetchImage(r.Context(), url, h.maxUploadBytes)
		if err != nil {
			h.logger.Warn().Err(err).Str("url", url).Msg("Image fetch failed")
			return nil, "", "", http.StatusBadRequest, "Could not fetch image from URL"
		}
		return image, mimeType, url, 0, ""
	}
	defer file.Close()

	if header.Size > h.maxUploadBytes {
		return nil, "", "", http.StatusBadRequest,
			fmt.Sprintf("File size must be less than %dMB", h.maxUploadBytes/(1024*1024))
	}

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, "", "", http.StatusBadRequest, "Could not read uploaded file"
	}

	mimeType = header.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = http.DetectContentType(data)
	}
	if !strings.HasPrefix(mimeType, "image/") {
		return nil, "", "", http.StatusBadRequest, "File must be an image"
	}

	return data, mimeType, vision.EncodeDataURL(mimeType, data), 0, ""
}

// HandleInterpret runs raw numeric indicator readings through the
// interpreter. The only rejected input is an undecodable body; everything
// else yields a complete analysis.
func (h *Handler) HandleInterpret(w http.ResponseWriter, r *http.Request) {
	var inputs analysis.IndicatorInputs
	if err := json.NewDecoder(r.Body).Decode(&inputs); err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	result := analysis.BuildFromIndicators(inputs)
	h.writeJSON(w, http.StatusOK, model.AnalysisResponse{Success: true, Data: &result})
}

// HandleHealth reports liveness.
func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

func (h *Handler) writeError(w http.ResponseWriter, status int, msg string) {
	h.writeJSON(w, status, model.AnalysisResponse{Success: false, Error: msg})
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error().Err(err).Msg("Failed to encode response")
	}
}
