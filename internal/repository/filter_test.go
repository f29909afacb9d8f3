package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/adenisov/bookstore-service/internal/model"
)

func date(s string) *time.Time {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}
	return &t
}

func TestBuildFilter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		filter   model.ReportFilter
		wantSQL  string
		wantArgs []interface{}
	}{
		{
			name:     "empty filter adds no predicates",
			filter:   model.ReportFilter{},
			wantSQL:  "",
			wantArgs: nil,
		},
		{
			name: "single day range covers the whole day",
			filter: model.ReportFilter{
				StartDate: date("2024-03-10"),
				EndDate:   date("2024-03-10"),
			},
			wantSQL: "(s.order_date >= ? AND s.order_date < ?)",
			wantArgs: []interface{}{
				time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
				time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC),
			},
		},
		{
			name: "type and status",
			filter: model.ReportFilter{
				Type:   model.SaleTypeOnline,
				Status: model.StatusShipped,
			},
			wantSQL:  "(s.type = ? AND s.status = ?)",
			wantArgs: []interface{}{model.SaleTypeOnline, model.StatusShipped},
		},
		{
			name:   "customer resolved through customer_uid",
			filter: model.ReportFilter{CustomerUid: "9f8b6a2c"},
			wantSQL: "(s.customer_id = (select id from customers" +
				" where customer_uid = ?))",
			wantArgs: []interface{}{"9f8b6a2c"},
		},
		{
			name:   "title tokens match any token through line items",
			filter: model.ReportFilter{BookTitle: "war peace"},
			wantSQL: "(exists (select 1 from order_items oi join books b on b.id = oi.book_id" +
				" where oi.sale_id = s.id and ((b.title ILIKE ? OR b.title ILIKE ?))))",
			wantArgs: []interface{}{"%war%", "%peace%"},
		},
		{
			name:   "single genre",
			filter: model.ReportFilter{Genre: "fantasy"},
			wantSQL: "(exists (select 1 from order_items oi join books b on b.id = oi.book_id" +
				" where oi.sale_id = s.id and (b.genre = ?)))",
			wantArgs: []interface{}{"fantasy"},
		},
		{
			name:   "genre list",
			filter: model.ReportFilter{Genre: "fantasy, horror"},
			wantSQL: "(exists (select 1 from order_items oi join books b on b.id = oi.book_id" +
				" where oi.sale_id = s.id and (b.genre IN (?,?))))",
			wantArgs: []interface{}{"fantasy", "horror"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			and, err := BuildFilter(tt.filter)
			require.NoError(t, err)

			if tt.wantSQL == "" {
				require.Empty(t, and)
				return
			}
			sql, args, err := and.ToSql()
			require.NoError(t, err)
			require.Equal(t, tt.wantSQL, sql)
			require.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestBuildFilter_CombinesSaleAndItemPredicates(t *testing.T) {
	t.Parallel()

	and, err := BuildFilter(model.ReportFilter{
		StartDate: date("2024-01-01"),
		Status:    model.StatusReceived,
		Genre:     "fantasy",
	})
	require.NoError(t, err)
	require.Len(t, and, 3)

	sql, args, err := and.ToSql()
	require.NoError(t, err)
	require.Contains(t, sql, "s.order_date >= ?")
	require.Contains(t, sql, "s.status = ?")
	require.Contains(t, sql, "exists (select 1 from order_items oi")
	require.Len(t, args, 3)
}

func TestSplitGenres(t *testing.T) {
	t.Parallel()

	require.Equal(t, []string{"fantasy"}, splitGenres("fantasy"))
	require.Equal(t, []string{"fantasy", "horror"}, splitGenres(" fantasy ,horror,"))
	require.Nil(t, splitGenres(" , "))
}
