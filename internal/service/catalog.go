package service

import (
	"context"

	"github.com/adenisov/bookstore-service/internal/model"
)

func (s *Service) ListBooks(ctx context.Context, f model.BookFilter) ([]model.Book, error) {
	return s.repo.ListBooks(ctx, f)
}

func (s *Service) GetBook(ctx context.Context, bookUid string) (model.Book, error) {
	return s.repo.GetBook(ctx, bookUid)
}

func (s *Service) CreateBook(ctx context.Context, req model.BookCreateRequest) (model.Book, error) {
	book := model.Book{
		Title:             req.Title,
		Author:            req.Author,
		Genre:             req.Genre,
		ISBN:              req.ISBN,
		Summary:           req.Summary,
		Publisher:         req.Publisher,
		PublicationDate:   req.PublicationDate.Time,
		PageCount:         req.PageCount,
		Language:          req.Language,
		CoverImageUrl:     req.CoverImageUrl,
		Quantity:          req.Quantity,
		Price:             req.Price,
		LowStockThreshold: req.LowStockThreshold,
	}
	if book.PageCount < 1 {
		book.PageCount = 1
	}
	if book.LowStockThreshold < 1 {
		book.LowStockThreshold = 5
	}
	return s.repo.CreateBook(ctx, book)
}

func (s *Service) UpdateBook(ctx context.Context, bookUid string, req model.BookCreateRequest) (model.Book, error) {
	if req.PageCount < 1 {
		req.PageCount = 1
	}
	if req.LowStockThreshold < 1 {
		req.LowStockThreshold = 5
	}
	updated, err := s.repo.UpdateBook(ctx, bookUid, req)
	if err != nil {
		return model.Book{}, err
	}
	if updated.Quantity <= updated.LowStockThreshold {
		s.notifyLowStock([]model.LowStock{{
			BookUid:   updated.BookUid,
			Title:     updated.Title,
			Quantity:  updated.Quantity,
			Threshold: updated.LowStockThreshold,
		}})
	}
	return updated, nil
}

func (s *Service) DeleteBook(ctx context.Context, bookUid string) error {
	return s.repo.DeleteBook(ctx, bookUid)
}
