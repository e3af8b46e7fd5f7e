package usecases

//go:generate mockgen -source=./submission_service.go -destination=../../../test/unit/doubles/checklist/usecases/submission_service_mock.go -package=usecases -mock_names=SubmissionService=MockSubmissionService

import (
	"context"
	"fmt"
	"log/slog"
	checklistDomain "tagback-server/internal/checklist/domain"
	itemsDomain "tagback-server/internal/items/domain"
	shareddomain "tagback-server/internal/shared_kernel/domain"
	tagsDomain "tagback-server/internal/tags/domain"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	_metricKeySubmissionsAccepted = "submissions_accepted"
	_metricKeySubmissionsRejected = "submissions_rejected"
)

type SubmitRequest struct {
	Answers   []checklistDomain.Answer
	Submitter checklistDomain.Submitter
	Location  *shareddomain.GeoPoint
	Client    shareddomain.ClientInfo
}

type SubmissionService interface {
	Submit(ctx context.Context, code string, request SubmitRequest) (checklistDomain.Submission, error)
	ListSubmissions(ctx context.Context, ownerID, itemID shareddomain.ID, pagination Pagination) ([]checklistDomain.Submission, int, error)
}

func NewSubmissionService(
	repository SubmissionRepository,
	tags TagResolver,
	items ItemAuthorizer,
	notifier SubmissionNotifier,
) (*SimpleSubmissionService, error) {
	service := &SimpleSubmissionService{
		repository:     repository,
		tags:           tags,
		items:          items,
		notifier:       notifier,
		metricCounters: make(map[string]metric.Float64Counter),
	}

	if err := service.initializeMetrics(); err != nil {
		return nil, fmt.Errorf("initializing metrics: %w", err)
	}

	return service, nil
}

var _ SubmissionService = (*SimpleSubmissionService)(nil)

type SimpleSubmissionService struct {
	repository     SubmissionRepository
	tags           TagResolver
	items          ItemAuthorizer
	notifier       SubmissionNotifier
	metricCounters map[string]metric.Float64Counter
}

func (s *SimpleSubmissionService) Submit(ctx context.Context, code string, request SubmitRequest) (checklistDomain.Submission, error) {
	view, err := s.tags.ResolveTag(ctx, code)
	if err != nil {
		return checklistDomain.Submission{}, err
	}
	if !view.Item.IsChecklist() {
		return checklistDomain.Submission{}, ErrNotChecklist
	}

	item := view.Item.Item
	definitions := itemsDomain.ChecklistItems(item)

	verr := &shareddomain.ValidationError{}
	verr.Add(request.Submitter.Validate()...)
	if request.Location != nil {
		verr.Add(shareddomain.FieldErrors(request.Location.Validate())...)
	}
	verr.Add(shareddomain.FieldErrors(checklistDomain.ValidateSubmission(definitions, request.Answers))...)
	if verr.HasErrors() {
		s.recordSubmission(ctx, _metricKeySubmissionsRejected, item.TagTypeID)
		return checklistDomain.Submission{}, verr
	}

	submission := checklistDomain.NewSubmission(view.Tag.ID, item.ID, definitions, request.Answers,
		request.Submitter, request.Location, request.Client)

	scan := tagsDomain.NewScan(view.Tag, tagsDomain.ScanKindChecklist, request.Client)
	scan.Location = request.Location
	scan.Finder = shareddomain.FinderContact{
		Name:  submission.SubmitterName,
		Email: submission.SubmitterEmail,
	}

	if err := s.repository.CreateWithScan(ctx, submission, scan); err != nil {
		return checklistDomain.Submission{}, fmt.Errorf("storing submission: %w", err)
	}

	slog.Info("checklist submitted",
		slog.String("item_id", item.ID.String()),
		slog.String("submission_id", submission.ID.String()),
		slog.Int("results", len(submission.Results)))

	s.recordSubmission(ctx, _metricKeySubmissionsAccepted, item.TagTypeID)
	s.tags.AnnounceScan(ctx, scan)
	s.notifier.NotifyChecklistSubmitted(ctx, SubmissionNotice{Item: item, Submission: submission})

	return submission, nil
}

func (s *SimpleSubmissionService) ListSubmissions(ctx context.Context, ownerID, itemID shareddomain.ID, pagination Pagination) ([]checklistDomain.Submission, int, error) {
	if _, err := s.items.GetItem(ctx, ownerID, itemID); err != nil {
		return nil, 0, err
	}

	submissions, total, err := s.repository.FindAllByItem(ctx, itemID, pagination)
	if err != nil {
		return nil, 0, fmt.Errorf("finding submissions: %w", err)
	}

	return submissions, total, nil
}

func (s *SimpleSubmissionService) initializeMetrics() error {
	meter := otel.Meter("checklist-submissions")

	acceptedCounter, err := meter.Float64Counter(
		"tagback_server_checklist_submissions_accepted_total",
		metric.WithDescription("Total number of checklist submissions stored"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return fmt.Errorf("creating accepted counter: %w", err)
	}

	rejectedCounter, err := meter.Float64Counter(
		"tagback_server_checklist_submissions_rejected_total",
		metric.WithDescription("Total number of checklist submissions rejected by validation"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return fmt.Errorf("creating rejected counter: %w", err)
	}

	s.metricCounters[_metricKeySubmissionsAccepted] = acceptedCounter
	s.metricCounters[_metricKeySubmissionsRejected] = rejectedCounter
	return nil
}

func (s *SimpleSubmissionService) recordSubmission(ctx context.Context, key string, tagTypeID shareddomain.ID) {
	if counter, exists := s.metricCounters[key]; exists {
		counter.Add(ctx, 1, metric.WithAttributes(attribute.String("tag_type_id", tagTypeID.String())))
	}
}
