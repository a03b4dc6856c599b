package bookrepo

import (
	"context"
	"errors"
	"fmt"

	"bookstore/internal/core/domain/model/book"
	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormBookRepository implements BookRepository using GORM.
type GormBookRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormBookRepository creates a new GORM book repository.
func NewGormBookRepository(db *gorm.DB, tracker aggregateTracker) *GormBookRepository {
	return &GormBookRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new book to the database.
func (r *GormBookRepository) Add(ctx context.Context, aggregate *book.Book) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a book by ID.
func (r *GormBookRepository) Get(ctx context.Context, id kernel.UUID) (*book.Book, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto BookDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("book", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// FindByTitleAndAuthor retrieves a book by its natural key.
// When duplicate natural keys exist, the earliest registered row wins.
func (r *GormBookRepository) FindByTitleAndAuthor(ctx context.Context, title string, author string) (*book.Book, error) {
	var dto BookDTO
	err := r.db.WithContext(ctx).
		Where("title = ? AND author = ?", title, author).
		Order("created_at ASC, id ASC").
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("book", fmt.Sprintf("%s/%s", title, author))
		}
		return nil, err
	}

	return toDomain(dto)
}
