// Package books provides the catalog store: persistence and retrieval of
// book records in the single "books" table.
//
// # Usage
//
//	repo := books.NewRepository(db)
//	if err := repo.Initialize(); err != nil { ... }
//	err := repo.Insert(&entities.Book{Title: "Dune", ReadStatus: entities.ReadStatusRead})
//	found, err := repo.Search(entities.SearchFieldTitle, "dun")
package books

import (
	"fmt"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/mrlokans/library/internal/entities"
)

// likeEscaper makes LIKE wildcards in a search term match literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// Repository handles all book record database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new books repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Initialize creates the books table when it is missing. Safe to call on
// every start-up; existing rows are left untouched.
func (r *Repository) Initialize() error {
	if err := r.db.AutoMigrate(&entities.Book{}); err != nil {
		return fmt.Errorf("migrate books table: %w", err)
	}
	return nil
}

// Insert appends a new record. The assigned ID is written back to book;
// any ID already set on it is ignored.
func (r *Repository) Insert(book *entities.Book) error {
	book.ID = 0
	if err := r.db.Create(book).Error; err != nil {
		return fmt.Errorf("insert book %q: %w", book.Title, err)
	}
	return nil
}

// DeleteByTitle removes every record whose title matches exactly
// (case-sensitive) and returns how many were removed.
func (r *Repository) DeleteByTitle(title string) (int64, error) {
	result := r.db.Where("title = ?", title).Delete(&entities.Book{})
	if result.Error != nil {
		return 0, fmt.Errorf("delete books titled %q: %w", title, result.Error)
	}
	return result.RowsAffected, nil
}

// ListAll returns every record in storage order.
func (r *Repository) ListAll() ([]entities.Book, error) {
	var books []entities.Book
	if err := r.db.Order("id ASC").Find(&books).Error; err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	return books, nil
}

// Search returns records whose field contains term as a case-insensitive
// substring. Fields outside the SearchField enumeration are rejected before
// any query runs.
func (r *Repository) Search(field entities.SearchField, term string) ([]entities.Book, error) {
	column, ok := field.Column()
	if !ok {
		return nil, fmt.Errorf("%w: %d", entities.ErrInvalidSearchField, field)
	}

	pattern := "%" + likeEscaper.Replace(term) + "%"

	var books []entities.Book
	err := r.db.
		Where("LOWER(?) LIKE LOWER(?) ESCAPE '\\'", clause.Column{Name: column}, pattern).
		Order("id ASC").
		Find(&books).Error
	if err != nil {
		return nil, fmt.Errorf("search books by %s: %w", column, err)
	}
	return books, nil
}

// CountTotal returns the number of records.
func (r *Repository) CountTotal() (int64, error) {
	var total int64
	if err := r.db.Model(&entities.Book{}).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("count books: %w", err)
	}
	return total, nil
}

// CountRead returns the number of records marked as read.
func (r *Repository) CountRead() (int64, error) {
	var read int64
	err := r.db.Model(&entities.Book{}).
		Where("read_status = ?", entities.ReadStatusRead).
		Count(&read).Error
	if err != nil {
		return 0, fmt.Errorf("count read books: %w", err)
	}
	return read, nil
}
