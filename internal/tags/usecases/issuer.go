package usecases

//go:generate mockgen -source=./issuer.go -destination=../../../test/unit/doubles/tags/usecases/issuer_mock.go -package=usecases -mock_names=Issuer=MockIssuer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"tagback-server/cmd/config"
	tagsDomain "tagback-server/internal/tags/domain"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	_defaultMaxAttempts = 5
	_maxBatchSize       = 1000

	_metricKeyCodesIssued    = "codes_issued"
	_metricKeyCodeCollisions = "code_collisions"
)

var ErrInvalidBatchSize = fmt.Errorf("batch size must be between 1 and %d", _maxBatchSize)

type Issuer interface {
	Issue(ctx context.Context, batch string) (tagsDomain.Tag, error)
	IssueBatch(ctx context.Context, count int, batch string) ([]tagsDomain.Tag, error)
}

func NewIssuer(cfg config.IssuerConfig, repository TagRepository) (*SimpleIssuer, error) {
	maxAttempts := cfg.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = _defaultMaxAttempts
	}

	issuer := &SimpleIssuer{
		repository:     repository,
		maxAttempts:    maxAttempts,
		metricCounters: make(map[string]metric.Float64Counter),
	}

	if err := issuer.initializeMetrics(); err != nil {
		return nil, fmt.Errorf("initializing metrics: %w", err)
	}

	return issuer, nil
}

var _ Issuer = (*SimpleIssuer)(nil)

type SimpleIssuer struct {
	repository     TagRepository
	maxAttempts    int
	metricCounters map[string]metric.Float64Counter
}

// Issue draws codes until one is stored. The existence check only saves a
// round trip; the unique index on the code is what decides a collision.
func (s *SimpleIssuer) Issue(ctx context.Context, batch string) (tagsDomain.Tag, error) {
	for attempt := 1; attempt <= s.maxAttempts; attempt++ {
		code, err := tagsDomain.GenerateCode(nil)
		if err != nil {
			return tagsDomain.Tag{}, fmt.Errorf("generating code: %w", err)
		}

		exists, err := s.repository.ExistsByCode(ctx, code)
		if err != nil {
			return tagsDomain.Tag{}, fmt.Errorf("checking code: %w", err)
		}
		if exists {
			s.recordCollision(ctx, "precheck")
			continue
		}

		tag := tagsDomain.NewTag(code, batch)
		err = s.repository.Create(ctx, tag)
		if errors.Is(err, ErrDuplicateCode) {
			s.recordCollision(ctx, "insert")
			continue
		}
		if err != nil {
			return tagsDomain.Tag{}, fmt.Errorf("storing tag: %w", err)
		}

		s.recordIssued(ctx, batch)
		return tag, nil
	}

	slog.Error("tag code issuance exhausted", slog.Int("attempts", s.maxAttempts))
	return tagsDomain.Tag{}, ErrIssuanceExhausted
}

func (s *SimpleIssuer) IssueBatch(ctx context.Context, count int, batch string) ([]tagsDomain.Tag, error) {
	if count < 1 || count > _maxBatchSize {
		return nil, ErrInvalidBatchSize
	}

	tags := make([]tagsDomain.Tag, 0, count)
	for range count {
		tag, err := s.Issue(ctx, batch)
		if err != nil {
			return tags, err
		}
		tags = append(tags, tag)
	}

	slog.Info("tag codes issued", slog.Int("count", len(tags)), slog.String("batch", batch))
	return tags, nil
}

func (s *SimpleIssuer) initializeMetrics() error {
	meter := otel.Meter("tag-issuer")

	issuedCounter, err := meter.Float64Counter(
		"tagback_server_codes_issued_total",
		metric.WithDescription("Total number of tag codes issued"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return fmt.Errorf("creating issued counter: %w", err)
	}

	collisionCounter, err := meter.Float64Counter(
		"tagback_server_code_collisions_total",
		metric.WithDescription("Total number of generated tag codes that were already taken"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return fmt.Errorf("creating collision counter: %w", err)
	}

	s.metricCounters[_metricKeyCodesIssued] = issuedCounter
	s.metricCounters[_metricKeyCodeCollisions] = collisionCounter
	return nil
}

func (s *SimpleIssuer) recordIssued(ctx context.Context, batch string) {
	if counter, exists := s.metricCounters[_metricKeyCodesIssued]; exists {
		counter.Add(ctx, 1, metric.WithAttributes(attribute.String("batch", batch)))
	}
}

func (s *SimpleIssuer) recordCollision(ctx context.Context, stage string) {
	slog.Warn("tag code collision", slog.String("stage", stage))
	if counter, exists := s.metricCounters[_metricKeyCodeCollisions]; exists {
		counter.Add(ctx, 1, metric.WithAttributes(attribute.String("stage", stage)))
	}
}
