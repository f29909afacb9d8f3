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

var userColumns = []string{
	"id", "user_uid", "email", "first_name", "last_name", "password_hash",
	"role", "is_active", "last_login", "customer_id", "employee_id",
	"created_at", "updated_at",
}

// CreateUserWithProfile inserts the user and, for the customer role, a
// blank linked customer profile in the same transaction. A profile
// failure rolls the user back, so no half-registered account survives.
func (r *repository) CreateUserWithProfile(ctx context.Context, user model.User) (model.User, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return model.User{}, err
	}
	defer tx.Rollback() //nolint:errcheck

	query, args, err := qb.Insert(usersTableName).
		Columns("user_uid", "email", "first_name", "last_name", "password_hash", "role").
		Values(uuid.New(), user.Email, user.FirstName, user.LastName, user.PasswordHash, user.Role).
		Suffix("returning " + joinColumns(userColumns)).
		ToSql()
	if err != nil {
		return model.User{}, err
	}

	var created model.User
	if err := tx.GetContext(ctx, &created, query, args...); err != nil {
		return model.User{}, mapPgError(err)
	}

	if created.Role == model.RoleCustomer {
		query, args, err := qb.Insert(customersTableName).
			Columns("customer_uid", "first_name", "last_name", "user_id").
			Values(uuid.New(), created.FirstName, created.LastName, created.ID).
			Suffix("returning id").
			ToSql()
		if err != nil {
			return model.User{}, err
		}
		var customerID int
		if err := tx.QueryRowContext(ctx, query, args...).Scan(&customerID); err != nil {
			return model.User{}, mapPgError(err)
		}
		if _, err := tx.ExecContext(ctx,
			`update users set customer_id = $1, updated_at = now() where id = $2`,
			customerID, created.ID); err != nil {
			return model.User{}, err
		}
		created.CustomerID = &customerID
	}

	if err := tx.Commit(); err != nil {
		return model.User{}, err
	}
	return created, nil
}

func (r *repository) GetUser(ctx context.Context, userUid string) (model.User, error) {
	query, args, err := qb.Select(userColumns...).
		From(usersTableName).
		Where(sq.Eq{"user_uid": userUid}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.User{}, err
	}

	var user model.User
	if err := r.db.GetContext(ctx, &user, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.User{}, errs.ErrNotFound
		}
		return model.User{}, err
	}
	return user, nil
}

func (r *repository) GetUserByEmail(ctx context.Context, email string) (model.User, error) {
	query, args, err := qb.Select(userColumns...).
		From(usersTableName).
		Where(sq.Eq{"email": email}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.User{}, err
	}

	var user model.User
	if err := r.db.GetContext(ctx, &user, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.User{}, errs.ErrNotFound
		}
		return model.User{}, err
	}
	return user, nil
}

func (r *repository) UpdateLastLogin(ctx context.Context, userID int) error {
	_, err := r.db.ExecContext(ctx,
		`update users set last_login = now(), updated_at = now() where id = $1`, userID)
	return err
}

// DeleteUserAndProfile removes the user and its linked profile in one
// transaction. This is the explicit replacement for the cascade the
// original system hid in a change-stream listener.
func (r *repository) DeleteUserAndProfile(ctx context.Context, userUid string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback() //nolint:errcheck

	var user model.User
	query, args, err := qb.Select(userColumns...).
		From(usersTableName).
		Where(sq.Eq{"user_uid": userUid}).
		ToSql()
	if err != nil {
		return err
	}
	if err := tx.GetContext(ctx, &user, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return errs.ErrNotFound
		}
		return err
	}

	if _, err := tx.ExecContext(ctx, `delete from users where id = $1`, user.ID); err != nil {
		return err
	}
	if user.CustomerID != nil {
		if _, err := tx.ExecContext(ctx, `delete from customers where id = $1`, *user.CustomerID); err != nil {
			return err
		}
	}
	if user.EmployeeID != nil {
		if _, err := tx.ExecContext(ctx, `delete from employees where id = $1`, *user.EmployeeID); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (r *repository) GetCustomerByID(ctx context.Context, id int) (model.Customer, error) {
	query, args, err := qb.Select(customerColumns...).
		From(customersTableName).
		Where(sq.Eq{"id": id}).
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

func (r *repository) GetEmployeeByID(ctx context.Context, id int) (model.Employee, error) {
	query, args, err := qb.Select(employeeColumns...).
		From(employeesTableName).
		Where(sq.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Employee{}, err
	}

	var employee model.Employee
	if err := r.db.GetContext(ctx, &employee, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Employee{}, errs.ErrNotFound
		}
		return model.Employee{}, err
	}
	return employee, nil
}
