package repository

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/adenisov/bookstore-service/internal/errs"
	"github.com/adenisov/bookstore-service/internal/model"
)

var bookColumns = []string{
	"id", "book_uid", "title", "author", "genre", "isbn", "summary", "publisher",
	"publication_date", "page_count", "language", "cover_image_url",
	"quantity", "price", "low_stock_threshold", "created_at", "updated_at",
}

func (r *repository) ListBooks(ctx context.Context, f model.BookFilter) ([]model.Book, error) {
	q := qb.Select(bookColumns...).
		From(booksTableName).
		OrderBy("title")

	if f.Genre != "" {
		q = q.Where(sq.Eq{"genre": f.Genre})
	}
	if f.Language != "" {
		q = q.Where(sq.Eq{"language": f.Language})
	}
	if f.InStock {
		q = q.Where(sq.Gt{"quantity": 0})
	}

	query, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}

	books := make([]model.Book, 0)
	if err := r.db.SelectContext(ctx, &books, query, args...); err != nil {
		return nil, err
	}
	return books, nil
}

func (r *repository) GetBook(ctx context.Context, bookUid string) (model.Book, error) {
	query, args, err := qb.Select(bookColumns...).
		From(booksTableName).
		Where(sq.Eq{"book_uid": bookUid}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Book{}, err
	}

	var book model.Book
	if err := r.db.GetContext(ctx, &book, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Book{}, errs.ErrNotFound
		}
		return model.Book{}, err
	}
	return book, nil
}

func (r *repository) GetBooksByUids(ctx context.Context, bookUids []string) ([]model.Book, error) {
	query, args, err := qb.Select(bookColumns...).
		From(booksTableName).
		Where(sq.Eq{"book_uid": bookUids}).
		ToSql()
	if err != nil {
		return nil, err
	}

	var books []model.Book
	if err := r.db.SelectContext(ctx, &books, query, args...); err != nil {
		return nil, err
	}
	return books, nil
}

func (r *repository) CreateBook(ctx context.Context, book model.Book) (model.Book, error) {
	query, args, err := qb.Insert(booksTableName).
		Columns("book_uid", "title", "author", "genre", "isbn", "summary", "publisher",
			"publication_date", "page_count", "language", "cover_image_url",
			"quantity", "price", "low_stock_threshold").
		Values(uuid.New(), book.Title, book.Author, book.Genre, book.ISBN, book.Summary,
			book.Publisher, book.PublicationDate, book.PageCount, book.Language,
			book.CoverImageUrl, book.Quantity, book.Price, book.LowStockThreshold).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return model.Book{}, err
	}

	var created model.Book
	if err := r.db.GetContext(ctx, &created, query, args...); err != nil {
		r.log.Error("CreateBook", zap.String("q", query), zap.Any("args", args))
		return model.Book{}, mapPgError(err)
	}
	return created, nil
}

func (r *repository) UpdateBook(ctx context.Context, bookUid string, req model.BookCreateRequest) (model.Book, error) {
	query, args, err := qb.Update(booksTableName).
		Set("title", req.Title).
		Set("author", req.Author).
		Set("genre", req.Genre).
		Set("isbn", req.ISBN).
		Set("summary", req.Summary).
		Set("publisher", req.Publisher).
		Set("publication_date", req.PublicationDate.Time).
		Set("page_count", req.PageCount).
		Set("language", req.Language).
		Set("cover_image_url", req.CoverImageUrl).
		Set("quantity", req.Quantity).
		Set("price", req.Price).
		Set("low_stock_threshold", req.LowStockThreshold).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"book_uid": bookUid}).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return model.Book{}, err
	}

	var updated model.Book
	if err := r.db.GetContext(ctx, &updated, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Book{}, errs.ErrNotFound
		}
		return model.Book{}, mapPgError(err)
	}
	return updated, nil
}

func (r *repository) DeleteBook(ctx context.Context, bookUid string) error {
	query, args, err := qb.Delete(booksTableName).
		Where(sq.Eq{"book_uid": bookUid}).
		ToSql()
	if err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errs.ErrNotFound
	}
	return nil
}
