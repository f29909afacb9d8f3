package repository

import (
	"context"

	"go.uber.org/zap"

	"github.com/adenisov/bookstore-service/internal/model"
)

const itemCountLateral = `lateral (
	select coalesce(sum(quantity), 0) as items
	from order_items
	where sale_id = s.id
) it on true`

func (r *repository) DailySales(ctx context.Context, f model.ReportFilter) ([]model.DailySales, error) {
	filter, err := BuildFilter(f)
	if err != nil {
		return nil, err
	}

	q := qb.Select(
		"to_char(s.order_date, 'YYYY-MM-DD') as day",
		"coalesce(sum(s.total_price), 0) as total_sales",
		"coalesce(sum(it.items), 0) as total_items",
		"count(distinct s.id) as order_count",
	).
		From(salesTableName + " s").
		Join(itemCountLateral).
		GroupBy("day").
		OrderBy("day")
	if len(filter) > 0 {
		q = q.Where(filter)
	}

	query, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}
	r.log.Debug("DailySales", zap.String("query", query), zap.Any("args", args))

	stats := make([]model.DailySales, 0)
	if err := r.db.SelectContext(ctx, &stats, query, args...); err != nil {
		return nil, err
	}
	return stats, nil
}

func (r *repository) TopGenres(ctx context.Context, f model.ReportFilter, limit int) ([]model.GenreSales, error) {
	filter, err := BuildFilter(f)
	if err != nil {
		return nil, err
	}

	q := qb.Select(
		"b.genre",
		"coalesce(sum(oi.quantity), 0) as total_sales",
		"coalesce(sum(oi.price * oi.quantity), 0) as revenue",
	).
		From(orderItemsTableName + " oi").
		Join(salesTableName + " s on s.id = oi.sale_id").
		Join(booksTableName + " b on b.id = oi.book_id").
		GroupBy("b.genre").
		OrderBy("total_sales desc").
		Limit(uint64(limit))
	if len(filter) > 0 {
		q = q.Where(filter)
	}

	query, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}

	genres := make([]model.GenreSales, 0)
	if err := r.db.SelectContext(ctx, &genres, query, args...); err != nil {
		return nil, err
	}
	return genres, nil
}

func (r *repository) TopBooks(ctx context.Context, f model.ReportFilter, limit int) ([]model.BookSales, error) {
	filter, err := BuildFilter(f)
	if err != nil {
		return nil, err
	}

	q := qb.Select(
		"b.book_uid",
		"b.title",
		"b.author",
		"b.isbn",
		"coalesce(sum(oi.quantity), 0) as total_sold",
		"coalesce(sum(oi.price * oi.quantity), 0) as revenue",
	).
		From(orderItemsTableName + " oi").
		Join(salesTableName + " s on s.id = oi.sale_id").
		Join(booksTableName + " b on b.id = oi.book_id").
		GroupBy("b.book_uid", "b.title", "b.author", "b.isbn").
		OrderBy("total_sold desc").
		Limit(uint64(limit))
	if len(filter) > 0 {
		q = q.Where(filter)
	}

	query, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}

	books := make([]model.BookSales, 0)
	if err := r.db.SelectContext(ctx, &books, query, args...); err != nil {
		return nil, err
	}
	return books, nil
}

// SummaryCells scans the filtered order set once, grouped by
// (type, status). The service fans the cells out into the summary
// facets so every facet reflects the same snapshot.
func (r *repository) SummaryCells(ctx context.Context, f model.ReportFilter) ([]model.SummaryCell, error) {
	filter, err := BuildFilter(f)
	if err != nil {
		return nil, err
	}

	q := qb.Select(
		"s.type",
		"s.status",
		"count(*) as order_count",
		"coalesce(sum(s.total_price), 0) as revenue",
		"coalesce(sum(it.items), 0) as item_count",
	).
		From(salesTableName + " s").
		Join(itemCountLateral).
		GroupBy("s.type", "s.status").
		OrderBy("s.type", "s.status")
	if len(filter) > 0 {
		q = q.Where(filter)
	}

	query, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}

	cells := make([]model.SummaryCell, 0)
	if err := r.db.SelectContext(ctx, &cells, query, args...); err != nil {
		return nil, err
	}
	return cells, nil
}
