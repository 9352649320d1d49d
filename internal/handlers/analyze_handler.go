package handlers

import (
	"context"
	"fmt"
	"mime/multipart"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"smarthire/internal/models"
	"smarthire/internal/services"
)

// Analyzer is the failover orchestrator as seen by the HTTP layer.
type Analyzer interface {
	Analyze(ctx context.Context, resumeText, jobText string) (*models.MatchAssessment, models.Tier)
}

type AnalyzeHandler struct {
	storage     services.StorageService
	extractor   services.ResumeExtractor
	analyzer    Analyzer
	maxFileSize int64
	logger      *zap.Logger
}

func NewAnalyzeHandler(
	storage services.StorageService,
	extractor services.ResumeExtractor,
	analyzer Analyzer,
	maxFileSize int64,
	logger *zap.Logger,
) *AnalyzeHandler {
	return &AnalyzeHandler{
		storage:     storage,
		extractor:   extractor,
		analyzer:    analyzer,
		maxFileSize: maxFileSize,
		logger:      logger,
	}
}

// HandleAnalyze handles POST /analyze-resume: extracts text from the
// uploaded PDF and runs the full three-tier analysis.
func (h *AnalyzeHandler) HandleAnalyze(c *fiber.Ctx) error {
	file, jobDescription, err := h.validateRequest(c)
	if err != nil {
		return err
	}

	extractedText, cleanup, err := h.extractResume(c, file)
	if err != nil {
		return err
	}
	defer cleanup()

	assessment, tier := h.analyzer.Analyze(c.UserContext(), extractedText, jobDescription)

	h.logger.Info("analysis request complete",
		zap.String("filename", file.Filename),
		zap.String("analysis_source", string(tier)),
		zap.Int("match_score", assessment.MatchScore),
	)

	return c.JSON(models.AnalysisResponse{
		Filename:       file.Filename,
		TextLength:     len(extractedText),
		ExtractedText:  extractedText,
		AIAnalysis:     assessment,
		AnalysisSource: tier,
	})
}

// HandleAnalyzeBasic handles POST /analyze-resume/basic: text extraction
// only, no AI analysis.
func (h *AnalyzeHandler) HandleAnalyzeBasic(c *fiber.Ctx) error {
	file, _, err := h.validateRequest(c)
	if err != nil {
		return err
	}

	extractedText, cleanup, err := h.extractResume(c, file)
	if err != nil {
		return err
	}
	defer cleanup()

	return c.JSON(models.ExtractionResponse{
		Filename:      file.Filename,
		TextLength:    len(extractedText),
		ExtractedText: extractedText,
	})
}

func (h *AnalyzeHandler) validateRequest(c *fiber.Ctx) (*multipart.FileHeader, string, error) {
	file, err := c.FormFile("file")
	if err != nil {
		return nil, "", fiber.NewError(fiber.StatusBadRequest, "resume file is required")
	}

	contentType := file.Header.Get("Content-Type")
	if contentType != "application/pdf" && contentType != "application/x-pdf" {
		h.logger.Warn("invalid upload content type",
			zap.String("content_type", contentType),
			zap.String("filename", file.Filename),
		)
		return nil, "", fiber.NewError(fiber.StatusBadRequest, "File must be a PDF document. Uploaded file is not a valid PDF.")
	}

	if !strings.HasSuffix(strings.ToLower(file.Filename), ".pdf") {
		return nil, "", fiber.NewError(fiber.StatusBadRequest, "File name must end with .pdf extension")
	}

	if file.Size == 0 {
		return nil, "", fiber.NewError(fiber.StatusBadRequest, "Uploaded file is empty or cannot be read")
	}

	if file.Size > h.maxFileSize {
		return nil, "", fiber.NewError(fiber.StatusBadRequest,
			fmt.Sprintf("Resume file too large. Max size: %d bytes", h.maxFileSize))
	}

	jobDescription := c.FormValue("job_description")
	if strings.TrimSpace(jobDescription) == "" {
		return nil, "", fiber.NewError(fiber.StatusBadRequest, "Job description cannot be empty or whitespace-only")
	}

	return file, jobDescription, nil
}

func (h *AnalyzeHandler) extractResume(c *fiber.Ctx, file *multipart.FileHeader) (string, func(), error) {
	filename, filePath, err := h.storage.SaveResume(file)
	if err != nil {
		return "", nil, fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("Resume analysis validation failed: %v", err))
	}

	cleanup := func() {
		if err := h.storage.DeleteFile(filename); err != nil {
			h.logger.Warn("failed to remove stored resume", zap.String("filename", filename), zap.Error(err))
		}
	}

	extractedText, err := h.extractor.ExtractText(filePath)
	if err != nil {
		cleanup()
		h.logger.Error("resume extraction failed", zap.String("filename", file.Filename), zap.Error(err))
		return "", nil, fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("Resume extraction failed: %v", err))
	}

	h.logger.Info("resume text extracted",
		zap.String("filename", file.Filename),
		zap.Int("text_length", len(extractedText)),
	)

	return extractedText, cleanup, nil
}
