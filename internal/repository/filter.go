package repository

import (
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/adenisov/bookstore-service/internal/model"
)

// BuildFilter turns a sparse filter into predicates over the sales
// table (aliased "s"). Title and genre constrain a sale through its
// line items, so they are expressed as one EXISTS against order_items
// joined to books (aliased "b"). Absent fields add no predicate.
func BuildFilter(f model.ReportFilter) (sq.And, error) {
	var and sq.And

	// The date range is inclusive on both calendar days regardless of
	// the time-of-day stored on the order.
	if f.StartDate != nil {
		and = append(and, sq.GtOrEq{"s.order_date": startOfDay(*f.StartDate)})
	}
	if f.EndDate != nil {
		and = append(and, sq.Lt{"s.order_date": startOfDay(*f.EndDate).AddDate(0, 0, 1)})
	}
	if f.Type != "" {
		and = append(and, sq.Eq{"s.type": f.Type})
	}
	if f.Status != "" {
		and = append(and, sq.Eq{"s.status": f.Status})
	}
	if f.CustomerUid != "" {
		and = append(and, sq.Expr("s.customer_id = (select id from customers where customer_uid = ?)", f.CustomerUid))
	}

	var item sq.And
	if f.BookTitle != "" {
		or := sq.Or{}
		for _, token := range strings.Fields(f.BookTitle) {
			or = append(or, sq.ILike{"b.title": "%" + token + "%"})
		}
		item = append(item, or)
	}
	if f.Genre != "" {
		genres := splitGenres(f.Genre)
		if len(genres) == 1 {
			item = append(item, sq.Eq{"b.genre": genres[0]})
		} else if len(genres) > 1 {
			item = append(item, sq.Eq{"b.genre": genres})
		}
	}
	if len(item) > 0 {
		inner, args, err := item.ToSql()
		if err != nil {
			return nil, err
		}
		and = append(and, sq.Expr(
			"exists (select 1 from "+orderItemsTableName+" oi join "+booksTableName+
				" b on b.id = oi.book_id where oi.sale_id = s.id and "+inner+")", args...))
	}

	return and, nil
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func splitGenres(s string) []string {
	var genres []string
	for _, g := range strings.Split(s, ",") {
		if g = strings.TrimSpace(g); g != "" {
			genres = append(genres, g)
		}
	}
	return genres
}
