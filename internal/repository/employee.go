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

var employeeColumns = []string{
	"id", "employee_uid", "first_name", "last_name", "email", "phone",
	"street", "city", "state", "zip", "job_title", "role", "hire_date",
	"salary", "is_active", "user_id", "created_at", "updated_at",
}

func (r *repository) ListEmployees(ctx context.Context) ([]model.Employee, error) {
	query, args, err := qb.Select(employeeColumns...).
		From(employeesTableName).
		OrderBy("last_name", "first_name").
		ToSql()
	if err != nil {
		return nil, err
	}

	employees := make([]model.Employee, 0)
	if err := r.db.SelectContext(ctx, &employees, query, args...); err != nil {
		return nil, err
	}
	return employees, nil
}

func (r *repository) GetEmployee(ctx context.Context, employeeUid string) (model.Employee, error) {
	query, args, err := qb.Select(employeeColumns...).
		From(employeesTableName).
		Where(sq.Eq{"employee_uid": employeeUid}).
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

func (r *repository) CreateEmployee(ctx context.Context, e model.Employee) (model.Employee, error) {
	query, args, err := qb.Insert(employeesTableName).
		Columns("employee_uid", "first_name", "last_name", "email", "phone",
			"street", "city", "state", "zip", "job_title", "role", "salary", "user_id").
		Values(uuid.New(), e.FirstName, e.LastName, e.Email, e.Phone,
			e.Street, e.City, e.State, e.Zip, e.JobTitle, e.Role, e.Salary, e.UserID).
		Suffix("returning " + joinColumns(employeeColumns)).
		ToSql()
	if err != nil {
		return model.Employee{}, err
	}

	var created model.Employee
	if err := r.db.GetContext(ctx, &created, query, args...); err != nil {
		return model.Employee{}, mapPgError(err)
	}
	return created, nil
}

func (r *repository) UpdateEmployee(ctx context.Context, employeeUid string, req model.EmployeeUpsertRequest) (model.Employee, error) {
	query, args, err := qb.Update(employeesTableName).
		Set("first_name", req.FirstName).
		Set("last_name", req.LastName).
		Set("email", req.Email).
		Set("phone", req.Phone).
		Set("street", req.Street).
		Set("city", req.City).
		Set("state", req.State).
		Set("zip", req.Zip).
		Set("job_title", req.JobTitle).
		Set("role", req.Role).
		Set("salary", req.Salary).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"employee_uid": employeeUid}).
		Suffix("returning " + joinColumns(employeeColumns)).
		ToSql()
	if err != nil {
		return model.Employee{}, err
	}

	var updated model.Employee
	if err := r.db.GetContext(ctx, &updated, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Employee{}, errs.ErrNotFound
		}
		return model.Employee{}, mapPgError(err)
	}
	return updated, nil
}

func (r *repository) DeleteEmployee(ctx context.Context, employeeUid string) error {
	query, args, err := qb.Delete(employeesTableName).
		Where(sq.Eq{"employee_uid": employeeUid}).
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
