package postgres

import (
	"context"

	"thoughts/internal/domain/entity"
	"thoughts/internal/domain/repository"
	"thoughts/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// thoughtRepository implements the repository.ThoughtRepository interface using GORM.
type thoughtRepository struct {
	db *gorm.DB
}

// NewThoughtRepository is the constructor for thoughtRepository.
func NewThoughtRepository(db *gorm.DB) repository.ThoughtRepository {
	return &thoughtRepository{db: db}
}

// Find returns the thoughts matching the query, ordered and paginated.
func (repo *thoughtRepository) Find(ctx context.Context, query repository.ThoughtQuery, sort repository.Sort, skip, limit int) ([]*entity.Thought, error) {
	var thoughtMs []model.ThoughtModel
	err := repo.applyQuery(repo.db.WithContext(ctx), query).
		Order(orderClause(sort)).
		Offset(skip).
		Limit(limit).
		Find(&thoughtMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list thoughts")
	}

	thoughts := make([]*entity.Thought, 0, len(thoughtMs))
	for i := range thoughtMs {
		thoughts = append(thoughts, toThoughtDomain(&thoughtMs[i]))
	}

	return thoughts, nil
}

// Count returns the total number of thoughts matching the query,
// independent of pagination.
func (repo *thoughtRepository) Count(ctx context.Context, query repository.ThoughtQuery) (int64, error) {
	var count int64
	err := repo.applyQuery(repo.db.WithContext(ctx).Model(&model.ThoughtModel{}), query).
		Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to count thoughts")
	}

	return count, nil
}

// FindByID retrieves a single thought by its unique ID.
func (repo *thoughtRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Thought, error) {
	var thoughtM model.ThoughtModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&thoughtM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrThoughtNotFound
		}

		return nil, errors.Wrap(err, "failed to find thought by id")
	}

	return toThoughtDomain(&thoughtM), nil
}

// Insert persists a new thought and fills in its generated fields.
func (repo *thoughtRepository) Insert(ctx context.Context, thought *entity.Thought) error {
	thoughtM := fromThoughtDomain(thought)

	if err := repo.db.WithContext(ctx).Create(thoughtM).Error; err != nil {
		return errors.Wrap(err, "failed to insert thought")
	}

	thought.ID = thoughtM.ID
	thought.Hearts = thoughtM.Hearts
	thought.CreatedAt = thoughtM.CreatedAt
	thought.UpdatedAt = thoughtM.UpdatedAt

	return nil
}

// UpdateMessage replaces the message of the thought owned by authorID in a
// single UPDATE ... RETURNING statement. Zero rows affected covers both an
// absent id and an ownership mismatch.
func (repo *thoughtRepository) UpdateMessage(ctx context.Context, id, authorID uuid.UUID, message string) (*entity.Thought, error) {
	var thoughtM model.ThoughtModel
	result := repo.db.WithContext(ctx).
		Model(&thoughtM).
		Clauses(clause.Returning{}).
		Where("id = ? AND author_id = ?", id, authorID).
		Update("message", message)
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, "failed to update thought message")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrThoughtNotFound
	}

	return toThoughtDomain(&thoughtM), nil
}

// DeleteOwned removes the thought owned by authorID and returns the deleted
// record via DELETE ... RETURNING.
func (repo *thoughtRepository) DeleteOwned(ctx context.Context, id, authorID uuid.UUID) (*entity.Thought, error) {
	var thoughtM model.ThoughtModel
	result := repo.db.WithContext(ctx).
		Clauses(clause.Returning{}).
		Where("id = ? AND author_id = ?", id, authorID).
		Delete(&thoughtM)
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, "failed to delete thought")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrThoughtNotFound
	}

	return toThoughtDomain(&thoughtM), nil
}

// IncrementHearts adds one to the like counter with a single atomic
// UPDATE ... SET hearts = hearts + 1 ... RETURNING, so concurrent likes on
// the same thought never lose updates.
func (repo *thoughtRepository) IncrementHearts(ctx context.Context, id uuid.UUID) (*entity.Thought, error) {
	var thoughtM model.ThoughtModel
	result := repo.db.WithContext(ctx).
		Model(&thoughtM).
		Clauses(clause.Returning{}).
		Where("id = ?", id).
		Update("hearts", gorm.Expr("hearts + 1"))
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, "failed to increment hearts")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrThoughtNotFound
	}

	return toThoughtDomain(&thoughtM), nil
}

// applyQuery translates the filter predicate into WHERE clauses with AND
// semantics. The tag filter uses JSONB containment against the tags column.
func (repo *thoughtRepository) applyQuery(db *gorm.DB, query repository.ThoughtQuery) *gorm.DB {
	if query.Tag != nil {
		db = db.Where("tags @> ?", datatypes.NewJSONSlice([]string{string(*query.Tag)}))
	}
	if query.MinHearts != nil {
		db = db.Where("hearts >= ?", *query.MinHearts)
	}
	if query.AuthorID != nil {
		db = db.Where("author_id = ?", *query.AuthorID)
	}

	return db
}

// orderClause maps a whitelisted sort to a SQL ORDER BY expression. Only
// repository.SortKey values reach this point, so the column names are fixed.
func orderClause(sort repository.Sort) string {
	column := "created_at"
	switch sort.Key {
	case repository.SortHearts:
		column = "hearts"
	case repository.SortMessage:
		column = "message"
	case repository.SortCreatedAt:
		column = "created_at"
	}

	if sort.Descending {
		return column + " DESC"
	}

	return column + " ASC"
}

// --- Mapper Functions ---

// toThoughtDomain converts a GORM ThoughtModel to a domain Thought entity.
func toThoughtDomain(data *model.ThoughtModel) *entity.Thought {
	if data == nil {
		return nil
	}

	tags := make([]entity.Tag, 0, len(data.Tags))
	for _, tag := range data.Tags {
		tags = append(tags, entity.Tag(tag))
	}

	return &entity.Thought{
		ID:        data.ID,
		Message:   data.Message,
		Tags:      tags,
		Hearts:    data.Hearts,
		AuthorID:  data.AuthorID,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromThoughtDomain converts a domain Thought entity to a GORM ThoughtModel.
func fromThoughtDomain(data *entity.Thought) *model.ThoughtModel {
	if data == nil {
		return nil
	}

	tags := make([]string, 0, len(data.Tags))
	for _, tag := range data.Tags {
		tags = append(tags, string(tag))
	}

	return &model.ThoughtModel{
		ID:       data.ID,
		Message:  data.Message,
		Tags:     datatypes.NewJSONSlice(tags),
		Hearts:   data.Hearts,
		AuthorID: data.AuthorID,
	}
}
