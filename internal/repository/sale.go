package repository

import (
	"context"
	"database/sql"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/adenisov/bookstore-service/internal/errs"
	"github.com/adenisov/bookstore-service/internal/model"
)

// decrementStockQuery succeeds only when enough stock remains, so two
// concurrent orders can never jointly drive quantity negative.
const decrementStockQuery = `
update books
    set quantity = quantity - $1, updated_at = now()
where id = $2 and quantity >= $1
returning book_uid, title, quantity, low_stock_threshold`

func (r *repository) CreateSale(ctx context.Context, sale model.Sale, items []model.OrderItem) (string, []model.LowStock, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return "", nil, err
	}
	defer tx.Rollback() //nolint:errcheck

	var lowStock []model.LowStock
	for _, item := range items {
		var after model.LowStock
		err := tx.QueryRowxContext(ctx, decrementStockQuery, item.Quantity, item.BookID).StructScan(&after)
		if err != nil {
			if !errors.Is(err, sql.ErrNoRows) {
				return "", nil, err
			}
			var available int
			if err := tx.GetContext(ctx, &available,
				`select quantity from books where id = $1`, item.BookID); err != nil {
				if errors.Is(err, sql.ErrNoRows) {
					return "", nil, &errs.UnknownBookError{BookUid: item.BookUid}
				}
				return "", nil, err
			}
			return "", nil, &errs.InsufficientStockError{
				BookUid:   item.BookUid,
				Requested: item.Quantity,
				Available: available,
			}
		}
		if after.Quantity <= after.Threshold {
			lowStock = append(lowStock, after)
		}
	}

	var street, city, state, zip *string
	if addr := sale.ShippingAddress; addr != nil {
		street, city, state, zip = &addr.Street, &addr.City, &addr.State, &addr.ZipCode
	}

	query, args, err := qb.Insert(salesTableName).
		Columns("sale_uid", "type", "status", "total_price", "payment_method",
			"customer_id", "employee_id", "street", "city", "state", "zip_code").
		Values(uuid.New(), sale.Type, model.StatusPending, sale.TotalPrice, sale.PaymentMethod,
			sale.CustomerID, sale.EmployeeID, street, city, state, zip).
		Suffix("returning id, sale_uid").
		ToSql()
	if err != nil {
		return "", nil, err
	}

	var saleID int
	var saleUid string
	if err := tx.QueryRowContext(ctx, query, args...).Scan(&saleID, &saleUid); err != nil {
		r.log.Error("CreateSale", zap.String("q", query), zap.Any("args", args))
		return "", nil, err
	}

	itemsQuery := qb.Insert(orderItemsTableName).
		Columns("sale_id", "book_id", "quantity", "price")
	for _, item := range items {
		itemsQuery = itemsQuery.Values(saleID, item.BookID, item.Quantity, item.Price)
	}
	query, args, err = itemsQuery.ToSql()
	if err != nil {
		return "", nil, err
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return "", nil, err
	}

	if sale.CustomerID != nil {
		if _, err := tx.ExecContext(ctx, `
update customers
    set order_count = order_count + 1,
        total_spent = total_spent + $1,
        last_purchase = now(),
        updated_at = now()
where id = $2`, sale.TotalPrice, *sale.CustomerID); err != nil {
			return "", nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return "", nil, err
	}
	return saleUid, lowStock, nil
}

type saleRow struct {
	ID            int                 `db:"id"`
	SaleUid       string              `db:"sale_uid"`
	Type          model.SaleType      `db:"type"`
	Status        model.OrderStatus   `db:"status"`
	OrderDate     time.Time           `db:"order_date"`
	TotalPrice    float64             `db:"total_price"`
	PaymentMethod model.PaymentMethod `db:"payment_method"`
	CustomerID    *int                `db:"customer_id"`
	EmployeeID    *int                `db:"employee_id"`
	CustomerUid   *string             `db:"customer_uid"`
	EmployeeUid   *string             `db:"employee_uid"`
	Street        *string             `db:"street"`
	City          *string             `db:"city"`
	State         *string             `db:"state"`
	ZipCode       *string             `db:"zip_code"`
	CreatedAt     time.Time           `db:"created_at"`
	UpdatedAt     time.Time           `db:"updated_at"`
}

func (row saleRow) toModel() model.Sale {
	s := model.Sale{
		ID:            row.ID,
		SaleUid:       row.SaleUid,
		Type:          row.Type,
		Status:        row.Status,
		OrderDate:     row.OrderDate,
		TotalPrice:    row.TotalPrice,
		PaymentMethod: row.PaymentMethod,
		CustomerID:    row.CustomerID,
		EmployeeID:    row.EmployeeID,
		CustomerUid:   row.CustomerUid,
		EmployeeUid:   row.EmployeeUid,
		CreatedAt:     row.CreatedAt,
		UpdatedAt:     row.UpdatedAt,
	}
	if row.Street != nil {
		s.ShippingAddress = &model.Address{
			Street:  *row.Street,
			City:    deref(row.City),
			State:   deref(row.State),
			ZipCode: deref(row.ZipCode),
		}
	}
	return s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

var saleSelectColumns = []string{
	"s.id", "s.sale_uid", "s.type", "s.status", "s.order_date", "s.total_price",
	"s.payment_method", "s.customer_id", "s.employee_id",
	"c.customer_uid", "e.employee_uid",
	"s.street", "s.city", "s.state", "s.zip_code", "s.created_at", "s.updated_at",
}

func saleQuery() sq.SelectBuilder {
	return qb.Select(saleSelectColumns...).
		From(salesTableName + " s").
		LeftJoin(customersTableName + " c on c.id = s.customer_id").
		LeftJoin(employeesTableName + " e on e.id = s.employee_id")
}

func (r *repository) GetSale(ctx context.Context, saleUid string) (model.Sale, error) {
	query, args, err := saleQuery().
		Where(sq.Eq{"s.sale_uid": saleUid}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Sale{}, err
	}

	var row saleRow
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Sale{}, errs.ErrNotFound
		}
		return model.Sale{}, err
	}

	sales := []model.Sale{row.toModel()}
	if err := r.attachItems(ctx, sales); err != nil {
		return model.Sale{}, err
	}
	return sales[0], nil
}

func (r *repository) ListSales(ctx context.Context, f model.ReportFilter) ([]model.Sale, error) {
	filter, err := BuildFilter(f)
	if err != nil {
		return nil, err
	}

	q := saleQuery().OrderBy("s.order_date desc")
	if len(filter) > 0 {
		q = q.Where(filter)
	}
	query, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}
	r.log.Debug("ListSales", zap.String("query", query), zap.Any("args", args))

	var rows []saleRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, err
	}

	sales := make([]model.Sale, 0, len(rows))
	for _, row := range rows {
		sales = append(sales, row.toModel())
	}
	if err := r.attachItems(ctx, sales); err != nil {
		return nil, err
	}
	return sales, nil
}

// attachItems loads line items for the given sales and reconstructs
// the per-item book snapshot from the current books table.
func (r *repository) attachItems(ctx context.Context, sales []model.Sale) error {
	if len(sales) == 0 {
		return nil
	}

	saleIDs := make([]int, 0, len(sales))
	byID := make(map[int]*model.Sale, len(sales))
	for i := range sales {
		saleIDs = append(saleIDs, sales[i].ID)
		byID[sales[i].ID] = &sales[i]
	}

	query, args, err := qb.Select("oi.id", "oi.sale_id", "oi.book_id", "oi.quantity", "oi.price", "b.book_uid").
		From(orderItemsTableName + " oi").
		Join(booksTableName + " b on b.id = oi.book_id").
		Where(sq.Eq{"oi.sale_id": saleIDs}).
		OrderBy("oi.id").
		ToSql()
	if err != nil {
		return err
	}

	var items []model.OrderItem
	if err := r.db.SelectContext(ctx, &items, query, args...); err != nil {
		return err
	}

	bookIDs := make([]int, 0, len(items))
	for _, item := range items {
		bookIDs = append(bookIDs, item.BookID)
	}
	books := make(map[int]model.Book)
	if len(bookIDs) > 0 {
		query, args, err := qb.Select(bookColumns...).
			From(booksTableName).
			Where(sq.Eq{"id": bookIDs}).
			ToSql()
		if err != nil {
			return err
		}
		var rows []model.Book
		if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
			return err
		}
		for _, b := range rows {
			books[b.ID] = b
		}
	}

	for _, item := range items {
		s, ok := byID[item.SaleID]
		if !ok {
			continue
		}
		if b, ok := books[item.BookID]; ok {
			book := b
			item.BookDetails = &book
		}
		s.OrderItems = append(s.OrderItems, item)
		s.TotalItems += item.Quantity
	}
	return nil
}

func (r *repository) UpdateSale(ctx context.Context, saleUid string, req model.SaleUpdateRequest) (model.Sale, error) {
	q := qb.Update(salesTableName).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"sale_uid": saleUid}).
		Suffix("returning sale_uid")

	// total_price is a creation-time snapshot and is never recomputed.
	if req.Status != "" {
		q = q.Set("status", req.Status)
	}
	if req.PaymentMethod != "" {
		q = q.Set("payment_method", req.PaymentMethod)
	}

	query, args, err := q.ToSql()
	if err != nil {
		return model.Sale{}, err
	}

	var uid string
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&uid); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Sale{}, errs.ErrNotFound
		}
		return model.Sale{}, err
	}
	return r.GetSale(ctx, uid)
}

func (r *repository) DeleteSale(ctx context.Context, saleUid string) error {
	query, args, err := qb.Delete(salesTableName).
		Where(sq.Eq{"sale_uid": saleUid}).
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
