package persistence

import (
	"context"
	"fmt"
	"log/slog"
	checklistDomain "tagback-server/internal/checklist/domain"
	"tagback-server/internal/checklist/persistence/internal"
	"tagback-server/internal/checklist/usecases"
	"tagback-server/internal/infra/pubsub"
	"tagback-server/internal/infra/sql"
	"tagback-server/internal/shared_kernel/avro"
	shareddomain "tagback-server/internal/shared_kernel/domain"
	tagsDomain "tagback-server/internal/tags/domain"
)

const _checklistSubmissionsTopic = "checklist_submissions"

// ScanWriter records a scan inside someone else's transaction.
type ScanWriter interface {
	RecordWithin(ctx context.Context, tx sql.ORM, scan tagsDomain.Scan) error
	Publish(ctx context.Context, scan tagsDomain.Scan)
}

func NewSubmissionRepository(
	publisherFactory pubsub.PublisherFactory,
	orm sql.ORM,
	scans ScanWriter,
) (*SimpleSubmissionRepository, error) {
	publisher, err := publisherFactory.New(_checklistSubmissionsTopic, &avro.AvroChecklistSubmission{})
	if err != nil {
		return nil, fmt.Errorf("creating publisher: %w", err)
	}

	err = orm.AutoMigrate(&internal.ChecklistSubmission{})
	if err != nil {
		return nil, fmt.Errorf("auto migrating: %w", err)
	}

	return &SimpleSubmissionRepository{
		publisher: publisher,
		orm:       orm,
		scans:     scans,
	}, nil
}

var _ usecases.SubmissionRepository = (*SimpleSubmissionRepository)(nil)

type SimpleSubmissionRepository struct {
	publisher pubsub.Publisher
	orm       sql.ORM
	scans     ScanWriter
}

func (r *SimpleSubmissionRepository) CreateWithScan(ctx context.Context, submission checklistDomain.Submission, scan tagsDomain.Scan) error {
	err := r.orm.WithContext(ctx).Transaction(func(tx sql.ORM) error {
		entity := internal.FromSubmission(submission)
		if err := tx.WithContext(ctx).Create(&entity).Error(); err != nil {
			return fmt.Errorf("creating submission in database: %w", err)
		}

		return r.scans.RecordWithin(ctx, tx, scan)
	})
	if err != nil {
		return err
	}

	r.publish(ctx, submission, scan.Code)
	r.scans.Publish(ctx, scan)
	return nil
}

func (r *SimpleSubmissionRepository) FindAllByItem(
	ctx context.Context,
	itemID shareddomain.ID,
	pagination usecases.Pagination,
) ([]checklistDomain.Submission, int, error) {
	var total int64
	err := r.orm.
		WithContext(ctx).
		Model(&internal.ChecklistSubmission{}).
		Where("item_id = ?", itemID.String()).
		Count(&total).
		Error()
	if err != nil {
		return nil, 0, fmt.Errorf("counting submissions: %w", err)
	}

	var entities []internal.ChecklistSubmission
	err = r.orm.
		WithContext(ctx).
		Where("item_id = ?", itemID.String()).
		Order("created_at DESC").
		Limit(pagination.Limit).
		Offset(pagination.Offset).
		Find(&entities).
		Error()
	if err != nil {
		return nil, 0, fmt.Errorf("database query: %w", err)
	}

	result := make([]checklistDomain.Submission, len(entities))
	for i, entity := range entities {
		result[i] = entity.ToDomain()
	}

	return result, int(total), nil
}

func (r *SimpleSubmissionRepository) publish(ctx context.Context, submission checklistDomain.Submission, code tagsDomain.Code) {
	message := &avro.AvroChecklistSubmission{
		ID:          submission.ID.String(),
		ItemID:      submission.ItemID.String(),
		Code:        code.String(),
		ResultCount: len(submission.Results),
		SubmittedAt: submission.CreatedAt,
	}
	if submission.SubmitterName != "" {
		name := submission.SubmitterName
		message.SubmittedBy = &name
	}

	if err := r.publisher.Publish(ctx, pubsub.Key(message.ItemID), message); err != nil {
		slog.Error("publishing checklist submission",
			slog.String("submission_id", message.ID),
			slog.String("error", err.Error()))
	}
}
