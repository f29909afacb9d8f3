package repository

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/adenisov/bookstore-service/internal/errs"
	"github.com/adenisov/bookstore-service/internal/model"
)

var customerColumns = []string{
	"id", "customer_uid", "first_name", "last_name", "email", "phone",
	"street", "city", "state", "zip", "user_id",
	"order_count", "total_spent", "last_purchase", "created_at", "updated_at",
}

func (r *repository) ListCustomers(ctx context.Context) ([]model.Customer, error) {
	query, args, err := qb.Select(customerColumns...).
		From(customersTableName).
		OrderBy("last_name", "first_name").
		ToSql()
	if err != nil {
		return nil, err
	}

	customers := make([]model.Customer, 0)
	if err := r.db.SelectContext(ctx, &customers, query, args...); err != nil {
		return nil, err
	}
	return customers, nil
}

func (r *repository) GetCustomer(ctx context.Context, customerUid string) (model.Customer, error) {
	query, args, err := qb.Select(customerColumns...).
		From(customersTableName).
		Where(sq.Eq{"customer_uid": customerUid}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Customer{}, err
	}

	var customer model.Customer
	if err := r.db.GetContext(ctx, &customer, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Customer{}, errs.ErrNotFound
		}
		return model.Customer{}, err
	}
	return customer, nil
}

func (r *repository) CreateCustomer(ctx context.Context, c model.Customer) (model.Customer, error) {
	query, args, err := qb.Insert(customersTableName).
		Columns("customer_uid", "first_name", "last_name", "email", "phone",
			"street", "city", "state", "zip", "user_id").
		Values(uuid.New(), c.FirstName, c.LastName, c.Email, c.Phone,
			c.Street, c.City, c.State, c.Zip, c.UserID).
		Suffix("returning " + joinColumns(customerColumns)).
		ToSql()
	if err != nil {
		return model.Customer{}, err
	}

	var created model.Customer
	if err := r.db.GetContext(ctx, &created, query, args...); err != nil {
		return model.Customer{}, mapPgError(err)
	}
	return created, nil
}

func (r *repository) UpdateCustomer(ctx context.Context, customerUid string, req model.CustomerUpsertRequest) (model.Customer, error) {
	query, args, err := qb.Update(customersTableName).
		Set("first_name", req.FirstName).
		Set("last_name", req.LastName).
		Set("email", req.Email).
		Set("phone", req.Phone).
		Set("street", req.Street).
		Set("city", req.City).
		Set("state", req.State).
		Set("zip", req.Zip).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"customer_uid": customerUid}).
		Suffix("returning " + joinColumns(customerColumns)).
		ToSql()
	if err != nil {
		return model.Customer{}, err
	}

	var updated model.Customer
	if err := r.db.GetContext(ctx, &updated, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Customer{}, errs.ErrNotFound
		}
		return model.Customer{}, mapPgError(err)
	}
	return updated, nil
}

func (r *repository) DeleteCustomer(ctx context.Context, customerUid string) error {
	query, args, err := qb.Delete(customersTableName).
		Where(sq.Eq{"customer_uid": customerUid}).
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
