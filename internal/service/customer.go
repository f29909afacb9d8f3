package service

import (
	"context"

	"github.com/adenisov/bookstore-service/internal/model"
)

func (s *Service) ListCustomers(ctx context.Context) ([]model.Customer, error) {
	return s.repo.ListCustomers(ctx)
}

func (s *Service) GetCustomer(ctx context.Context, customerUid string) (model.Customer, error) {
	return s.repo.GetCustomer(ctx, customerUid)
}

func (s *Service) CreateCustomer(ctx context.Context, req model.CustomerUpsertRequest) (model.Customer, error) {
	c := model.Customer{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Street:    req.Street,
		City:      req.City,
		State:     req.State,
		Zip:       req.Zip,
	}
	return s.repo.CreateCustomer(ctx, c)
}

func (s *Service) UpdateCustomer(ctx context.Context, customerUid string, req model.CustomerUpsertRequest) (model.Customer, error) {
	return s.repo.UpdateCustomer(ctx, customerUid, req)
}

func (s *Service) DeleteCustomer(ctx context.Context, customerUid string) error {
	return s.repo.DeleteCustomer(ctx, customerUid)
}

func (s *Service) ListEmployees(ctx context.Context) ([]model.Employee, error) {
	return s.repo.ListEmployees(ctx)
}

func (s *Service) GetEmployee(ctx context.Context, employeeUid string) (model.Employee, error) {
	return s.repo.GetEmployee(ctx, employeeUid)
}

func (s *Service) CreateEmployee(ctx context.Context, req model.EmployeeUpsertRequest) (model.Employee, error) {
	e := model.Employee{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Street:    req.Street,
		City:      req.City,
		State:     req.State,
		Zip:       req.Zip,
		JobTitle:  req.JobTitle,
		Role:      req.Role,
		Salary:    req.Salary,
		IsActive:  true,
	}
	return s.repo.CreateEmployee(ctx, e)
}

func (s *Service) UpdateEmployee(ctx context.Context, employeeUid string, req model.EmployeeUpsertRequest) (model.Employee, error) {
	return s.repo.UpdateEmployee(ctx, employeeUid, req)
}

func (s *Service) DeleteEmployee(ctx context.Context, employeeUid string) error {
	return s.repo.DeleteEmployee(ctx, employeeUid)
}
