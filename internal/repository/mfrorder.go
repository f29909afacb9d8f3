package repository

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/adenisov/bookstore-service/internal/errs"
	"github.com/adenisov/bookstore-service/internal/model"
)

var mfrOrderColumns = []string{
	"id", "mfr_order_uid", "order_number", "supplier_name", "status",
	"total_cost", "order_date", "expected_delivery_date", "created_at", "updated_at",
}

func (r *repository) ListMfrOrders(ctx context.Context, f model.MfrOrderFilter) ([]model.MfrOrder, error) {
	q := qb.Select(mfrOrderColumns...).
		From(mfrOrdersTableName).
		OrderBy("order_date desc")

	if f.SupplierName != "" {
		q = q.Where(sq.Eq{"supplier_name": f.SupplierName})
	}
	if f.Status != "" {
		q = q.Where(sq.Eq{"status": f.Status})
	}

	query, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}

	orders := make([]model.MfrOrder, 0)
	if err := r.db.SelectContext(ctx, &orders, query, args...); err != nil {
		return nil, err
	}
	if err := r.attachMfrItems(ctx, orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *repository) GetMfrOrder(ctx context.Context, mfrOrderUid string) (model.MfrOrder, error) {
	query, args, err := qb.Select(mfrOrderColumns...).
		From(mfrOrdersTableName).
		Where(sq.Eq{"mfr_order_uid": mfrOrderUid}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.MfrOrder{}, err
	}

	var order model.MfrOrder
	if err := r.db.GetContext(ctx, &order, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.MfrOrder{}, errs.ErrNotFound
		}
		return model.MfrOrder{}, err
	}

	orders := []model.MfrOrder{order}
	if err := r.attachMfrItems(ctx, orders); err != nil {
		return model.MfrOrder{}, err
	}
	return orders[0], nil
}

func (r *repository) attachMfrItems(ctx context.Context, orders []model.MfrOrder) error {
	if len(orders) == 0 {
		return nil
	}

	orderIDs := make([]int, 0, len(orders))
	byID := make(map[int]*model.MfrOrder, len(orders))
	for i := range orders {
		orderIDs = append(orderIDs, orders[i].ID)
		byID[orders[i].ID] = &orders[i]
	}

	query, args, err := qb.Select("mi.id", "mi.mfr_order_id", "mi.book_id", "mi.quantity", "b.book_uid").
		From(mfrOrderItemsTableName + " mi").
		Join(booksTableName + " b on b.id = mi.book_id").
		Where(sq.Eq{"mi.mfr_order_id": orderIDs}).
		OrderBy("mi.id").
		ToSql()
	if err != nil {
		return err
	}

	var items []model.MfrOrderItem
	if err := r.db.SelectContext(ctx, &items, query, args...); err != nil {
		return err
	}
	for _, item := range items {
		if o, ok := byID[item.MfrOrderID]; ok {
			o.BooksOrdered = append(o.BooksOrdered, item)
		}
	}
	return nil
}

func (r *repository) CreateMfrOrder(ctx context.Context, order model.MfrOrder, items []model.MfrOrderItemRequest) (model.MfrOrder, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return model.MfrOrder{}, err
	}
	defer tx.Rollback() //nolint:errcheck

	bookIDs, err := resolveBookIDs(ctx, tx, items)
	if err != nil {
		return model.MfrOrder{}, err
	}

	query, args, err := qb.Insert(mfrOrdersTableName).
		Columns("mfr_order_uid", "order_number", "supplier_name", "status",
			"total_cost", "expected_delivery_date").
		Values(uuid.New(), order.OrderNumber, order.SupplierName, model.StatusPending,
			order.TotalCost, order.ExpectedDeliveryDate).
		Suffix("returning mfr_order_uid, id").
		ToSql()
	if err != nil {
		return model.MfrOrder{}, err
	}

	var orderUid string
	var orderID int
	if err := tx.QueryRowContext(ctx, query, args...).Scan(&orderUid, &orderID); err != nil {
		return model.MfrOrder{}, err
	}

	itemsQuery := qb.Insert(mfrOrderItemsTableName).
		Columns("mfr_order_id", "book_id", "quantity")
	for _, item := range items {
		itemsQuery = itemsQuery.Values(orderID, bookIDs[item.BookUid], item.Quantity)
	}
	query, args, err = itemsQuery.ToSql()
	if err != nil {
		return model.MfrOrder{}, err
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return model.MfrOrder{}, err
	}

	if err := tx.Commit(); err != nil {
		return model.MfrOrder{}, err
	}
	return r.GetMfrOrder(ctx, orderUid)
}

func resolveBookIDs(ctx context.Context, tx *sqlx.Tx, items []model.MfrOrderItemRequest) (map[string]int, error) {
	uids := make([]string, 0, len(items))
	for _, item := range items {
		uids = append(uids, item.BookUid)
	}

	query, args, err := qb.Select("book_uid", "id").
		From(booksTableName).
		Where(sq.Eq{"book_uid": uids}).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := tx.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bookIDs := make(map[string]int, len(uids))
	for rows.Next() {
		var uid string
		var id int
		if err := rows.Scan(&uid, &id); err != nil {
			return nil, err
		}
		bookIDs[uid] = id
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, item := range items {
		if _, ok := bookIDs[item.BookUid]; !ok {
			return nil, &errs.UnknownBookError{BookUid: item.BookUid}
		}
	}
	return bookIDs, nil
}

// UpdateMfrOrder applies the update and, when the order transitions to
// received, restocks the ordered books in the same transaction.
func (r *repository) UpdateMfrOrder(ctx context.Context, mfrOrderUid string, req model.MfrOrderUpdateRequest) (model.MfrOrder, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return model.MfrOrder{}, err
	}
	defer tx.Rollback() //nolint:errcheck

	var before struct {
		ID     int               `db:"id"`
		Status model.OrderStatus `db:"status"`
	}
	if err := tx.GetContext(ctx, &before,
		`select id, status from mfr_orders where mfr_order_uid = $1 for update`, mfrOrderUid); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.MfrOrder{}, errs.ErrNotFound
		}
		return model.MfrOrder{}, err
	}

	q := qb.Update(mfrOrdersTableName).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": before.ID})
	if req.Status != "" {
		q = q.Set("status", req.Status)
	}
	if req.TotalCost != nil {
		q = q.Set("total_cost", *req.TotalCost)
	}
	if req.ExpectedDeliveryDate != nil {
		q = q.Set("expected_delivery_date", req.ExpectedDeliveryDate.Time)
	}
	query, args, err := q.ToSql()
	if err != nil {
		return model.MfrOrder{}, err
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return model.MfrOrder{}, err
	}

	if req.Status == model.StatusReceived && before.Status != model.StatusReceived {
		if _, err := tx.ExecContext(ctx, `
update books b
    set quantity = b.quantity + mi.quantity, updated_at = now()
from mfr_order_items mi
where mi.mfr_order_id = $1 and b.id = mi.book_id`, before.ID); err != nil {
			return model.MfrOrder{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return model.MfrOrder{}, err
	}
	return r.GetMfrOrder(ctx, mfrOrderUid)
}

func (r *repository) DeleteMfrOrder(ctx context.Context, mfrOrderUid string) error {
	query, args, err := qb.Delete(mfrOrdersTableName).
		Where(sq.Eq{"mfr_order_uid": mfrOrderUid}).
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

func (r *repository) HasPendingMfrOrderForBook(ctx context.Context, bookUid string) (bool, error) {
	const q = `
select exists (
	select 1
	from mfr_orders mo
	join mfr_order_items mi on mi.mfr_order_id = mo.id
	join books b on b.id = mi.book_id
	where b.book_uid = $1 and mo.status = 'pending'
)`
	var exists bool
	if err := r.db.QueryRowContext(ctx, q, bookUid).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}
