package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"time"

	"fedfilter-backend/metrics"
	"fedfilter-backend/models"
	"fedfilter-backend/prompt"
	"fedfilter-backend/repository"
	"fedfilter-backend/storage"
	"fedfilter-backend/validation"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	// maxAttempts bounds the inference loop per extraction call
	maxAttempts = 5

	// retryTemperatureStep nudges the temperature upward on each retry so the
	// model is less likely to repeat the same malformed shape
	retryTemperatureStep = 0.05

	// DefaultTemperature is the base sampling temperature when the caller
	// does not supply one
	DefaultTemperature = 0.1
)

// ExtractionService converts natural-language procurement questions into
// structured filter groups
type ExtractionService struct {
	generator   Generator
	validator   *validation.Validator
	logger      *zap.Logger
	logRepo     *repository.ExtractionLogRepository
	archive     storage.Storage
	temperature float64
	recentDays  int
	now         func() time.Time
}

// ExtractionServiceOption is a functional option for ExtractionService
type ExtractionServiceOption func(*ExtractionService)

// WithGenerator sets the inference collaborator
func WithGenerator(g Generator) ExtractionServiceOption {
	return func(s *ExtractionService) {
		s.generator = g
	}
}

// WithValidator sets the closed-record validator
func WithValidator(v *validation.Validator) ExtractionServiceOption {
	return func(s *ExtractionService) {
		s.validator = v
	}
}

// WithLogger sets the logger
func WithLogger(logger *zap.Logger) ExtractionServiceOption {
	return func(s *ExtractionService) {
		s.logger = logger
	}
}

// WithExtractionLogRepository enables audit logging of extraction calls
func WithExtractionLogRepository(repo *repository.ExtractionLogRepository) ExtractionServiceOption {
	return func(s *ExtractionService) {
		s.logRepo = repo
	}
}

// WithArchive enables archiving of canonical results
func WithArchive(archive storage.Storage) ExtractionServiceOption {
	return func(s *ExtractionService) {
		s.archive = archive
	}
}

// WithDefaultTemperature sets the base sampling temperature
func WithDefaultTemperature(t float64) ExtractionServiceOption {
	return func(s *ExtractionService) {
		s.temperature = t
	}
}

// WithRecentWindow sets the day count behind "recent"/"latest" queries
func WithRecentWindow(days int) ExtractionServiceOption {
	return func(s *ExtractionService) {
		s.recentDays = days
	}
}

// WithClock overrides the time source, used by tests
func WithClock(now func() time.Time) ExtractionServiceOption {
	return func(s *ExtractionService) {
		s.now = now
	}
}

// NewExtractionService creates a new extraction service
func NewExtractionService(opts ...ExtractionServiceOption) *ExtractionService {
	s := &ExtractionService{
		logger:      zap.NewNop(),
		temperature: DefaultTemperature,
		recentDays:  prompt.DefaultRecentDays,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Extract converts one query into its canonical filter representation.
//
// The attempt loop is strictly sequential and bounded at maxAttempts. Only
// closed-record shape violations are retried; a provider failure or any
// other validation error aborts immediately. Timeouts are the caller's
// concern via ctx.
func (s *ExtractionService) Extract(ctx context.Context, query string, temperature *float64) (map[string]interface{}, error) {
	if s.generator == nil {
		return nil, ErrGeneratorNotSet
	}
	if s.validator == nil {
		return nil, ErrValidatorNotSet
	}

	base := s.temperature
	if temperature != nil {
		base = *temperature
	}

	started := s.now()
	systemInstruction := prompt.BuildSystemInstruction(started, s.recentDays)
	userInstruction := prompt.BuildUserInstruction(query)

	s.logger.Info("processing extraction query",
		zap.String("query", truncate(query, 100)),
		zap.Float64("temperature", base))

	var lastShapeErr *validation.ShapeError
	attempts := 0

	for attempt := 0; attempt < maxAttempts; attempt++ {
		attemptTemperature := base
		if attempt > 0 {
			attemptTemperature = base + retryTemperatureStep*float64(attempt)
		}

		attempts++
		metrics.ExtractionAttempts.Inc()

		raw, err := s.generator.Generate(ctx, systemInstruction, userInstruction, float32(attemptTemperature))
		if err != nil {
			// The client library owns transport retries; surface immediately.
			s.logger.Error("inference call failed",
				zap.Int("attempt", attempt+1),
				zap.Error(err))
			provErr := &ProviderError{Message: err.Error()}
			s.finish(ctx, query, base, attempts, started, nil, provErr)
			return nil, provErr
		}

		if err := s.validator.Validate([]byte(raw)); err != nil {
			var shapeErr *validation.ShapeError
			if errors.As(err, &shapeErr) {
				lastShapeErr = shapeErr
				metrics.ExtractionRetries.Inc()
				s.logger.Warn("shape violation, retrying",
					zap.Int("attempt", attempt+1),
					zap.Error(shapeErr))
				continue
			}
			extErr := &ExtractionError{Message: "failed to extract query", Details: err.Error()}
			s.finish(ctx, query, base, attempts, started, nil, extErr)
			return nil, extErr
		}

		var extraction models.QueryExtraction
		if err := json.Unmarshal([]byte(raw), &extraction); err != nil {
			extErr := &ExtractionError{Message: "failed to extract query", Details: err.Error()}
			s.finish(ctx, query, base, attempts, started, nil, extErr)
			return nil, extErr
		}
		if err := extraction.Validate(); err != nil {
			extErr := &ExtractionError{Message: "failed to extract query", Details: err.Error()}
			s.finish(ctx, query, base, attempts, started, nil, extErr)
			return nil, extErr
		}

		result := canonicalize(&extraction)
		s.logger.Info("extraction successful",
			zap.Int("attempt", attempt+1),
			zap.Int("filter_groups", len(extraction.FilterGroups)))
		s.finish(ctx, query, base, attempts, started, result, nil)
		return result, nil
	}

	extErr := &ExtractionError{Message: "failed to extract query"}
	if lastShapeErr != nil {
		extErr.Details = lastShapeErr.Error()
	}
	s.logger.Error("extraction retries exhausted",
		zap.Int("attempts", attempts),
		zap.String("details", extErr.Details))
	s.finish(ctx, query, base, attempts, started, nil, extErr)
	return nil, extErr
}

// finish records metrics, the audit row, and the result artifact. Audit and
// archive writes are best-effort: a failure is logged, never surfaced.
func (s *ExtractionService) finish(ctx context.Context, query string, temperature float64, attempts int, started time.Time, result map[string]interface{}, extractErr error) {
	duration := s.now().Sub(started)
	metrics.ExtractionDuration.Observe(duration.Seconds())
	metrics.ExtractionRequests.WithLabelValues(outcomeLabel(extractErr)).Inc()
	if extractErr != nil {
		metrics.ExtractionFailures.WithLabelValues(outcomeLabel(extractErr)).Inc()
	}

	if s.logRepo == nil && s.archive == nil {
		return
	}

	id := uuid.New()

	if s.archive != nil && result != nil {
		data, err := json.Marshal(result)
		if err == nil {
			if key, saveErr := s.archive.Save(ctx, id, bytes.NewReader(data)); saveErr != nil {
				s.logger.Warn("failed to archive extraction artifact", zap.Error(saveErr))
			} else {
				s.logger.Debug("extraction artifact archived", zap.String("key", key))
			}
		}
	}

	if s.logRepo != nil {
		logEntry := &models.ExtractionLog{
			ID:          id,
			Query:       query,
			Temperature: temperature,
			Attempts:    attempts,
			Success:     extractErr == nil,
			Result:      result,
			DurationMS:  duration.Milliseconds(),
		}
		if extractErr != nil {
			code := outcomeLabel(extractErr)
			detail := extractErr.Error()
			logEntry.ErrorCode = &code
			logEntry.ErrorDetail = &detail
		}
		if err := s.logRepo.Create(ctx, logEntry); err != nil {
			s.logger.Warn("failed to write extraction audit log", zap.Error(err))
		}
	}
}

func outcomeLabel(err error) string {
	if err == nil {
		return "success"
	}
	var provErr *ProviderError
	if errors.As(err, &provErr) {
		return "provider_failure"
	}
	return "extraction_failed"
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
