package data

import (
	"context"
	"sync"

	"github.com/pkg/errors"
	"github.com/senomas/bookql/graph/model"
	"gorm.io/gorm"
)

var Models = []interface{}{&model.Author{}, &model.Book{}}

// GormStore keeps the sequences in SQL tables. The id policy matches
// MemoryStore, so count and insert run under one mutex.
type GormStore struct {
	DB *gorm.DB
	mu sync.Mutex
}

var _ Store = (*GormStore)(nil)

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{DB: db}
}

// Migrate recreates the tables. Book carries no foreign key constraint so a
// dangling author id can be stored.
func (s *GormStore) Migrate() error {
	if err := s.DB.Migrator().DropTable(Models...); err != nil {
		return errors.Wrap(err, "drop tables")
	}
	if err := s.DB.AutoMigrate(Models...); err != nil {
		return errors.Wrap(err, "auto migrate")
	}
	return nil
}

func (s *GormStore) AddAuthor(ctx context.Context, input model.NewAuthor) (*model.Author, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var count int64
	if result := s.DB.WithContext(ctx).Model(&model.Author{}).Count(&count); result.Error != nil {
		return nil, errors.Wrap(result.Error, "count authors")
	}
	author := &model.Author{
		ID:   NextID(int(count)),
		Name: input.Name,
	}
	result := s.DB.WithContext(ctx).Create(author)
	if result.Error != nil {
		return nil, errors.Wrapf(result.Error, "create author %q", input.Name)
	} else if result.RowsAffected != 1 {
		return nil, errors.Errorf("RowsAffected %v", result.RowsAffected)
	}
	return author, nil
}

func (s *GormStore) Author(ctx context.Context, id int) (*model.Author, error) {
	var authors []*model.Author
	result := s.DB.WithContext(ctx).Where("id = ?", id).Limit(1).Find(&authors)
	if result.Error != nil {
		return nil, errors.Wrapf(result.Error, "find author %v", id)
	}
	if len(authors) == 0 {
		return nil, nil
	}
	return authors[0], nil
}

func (s *GormStore) Authors(ctx context.Context) ([]*model.Author, error) {
	authors := []*model.Author{}
	if result := s.DB.WithContext(ctx).Order("id").Find(&authors); result.Error != nil {
		return nil, errors.Wrap(result.Error, "list authors")
	}
	return authors, nil
}

func (s *GormStore) AuthorsByID(ctx context.Context, ids []int) ([]*model.Author, error) {
	authors := []*model.Author{}
	if len(ids) == 0 {
		return authors, nil
	}
	if result := s.DB.WithContext(ctx).Where("id IN ?", ids).Order("id").Find(&authors); result.Error != nil {
		return nil, errors.Wrap(result.Error, "find authors")
	}
	return authors, nil
}

func (s *GormStore) AddBook(ctx context.Context, input model.NewBook) (*model.Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var count int64
	if result := s.DB.WithContext(ctx).Model(&model.Book{}).Count(&count); result.Error != nil {
		return nil, errors.Wrap(result.Error, "count books")
	}
	book := &model.Book{
		ID:       NextID(int(count)),
		Name:     input.Name,
		AuthorID: input.AuthorID,
	}
	result := s.DB.WithContext(ctx).Create(book)
	if result.Error != nil {
		return nil, errors.Wrapf(result.Error, "create book %q", input.Name)
	} else if result.RowsAffected != 1 {
		return nil, errors.Errorf("RowsAffected %v", result.RowsAffected)
	}
	return book, nil
}

func (s *GormStore) Book(ctx context.Context, id int) (*model.Book, error) {
	var books []*model.Book
	result := s.DB.WithContext(ctx).Where("id = ?", id).Limit(1).Find(&books)
	if result.Error != nil {
		return nil, errors.Wrapf(result.Error, "find book %v", id)
	}
	if len(books) == 0 {
		return nil, nil
	}
	return books[0], nil
}

func (s *GormStore) Books(ctx context.Context) ([]*model.Book, error) {
	books := []*model.Book{}
	if result := s.DB.WithContext(ctx).Order("id").Find(&books); result.Error != nil {
		return nil, errors.Wrap(result.Error, "list books")
	}
	return books, nil
}

func (s *GormStore) BooksByAuthor(ctx context.Context, authorIDs []int) ([]*model.Book, error) {
	books := []*model.Book{}
	if len(authorIDs) == 0 {
		return books, nil
	}
	if result := s.DB.WithContext(ctx).Where("author_id IN ?", authorIDs).Order("id").Find(&books); result.Error != nil {
		return nil, errors.Wrap(result.Error, "find books by author")
	}
	return books, nil
}
