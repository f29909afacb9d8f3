package model

import "time"

type Role string

const (
	RoleCustomer Role = "customer"
	RoleEmployee Role = "employee"
	RoleAdmin    Role = "admin"
)

type User struct {
	ID           int        `json:"-" db:"id"`
	UserUid      string     `json:"userUid" db:"user_uid"`
	Email        string     `json:"email" db:"email"`
	FirstName    string     `json:"firstName" db:"first_name"`
	LastName     string     `json:"lastName" db:"last_name"`
	PasswordHash string     `json:"-" db:"password_hash"`
	Role         Role       `json:"role" db:"role"`
	IsActive     bool       `json:"isActive" db:"is_active"`
	LastLogin    *time.Time `json:"lastLogin,omitempty" db:"last_login"`
	CustomerID   *int       `json:"-" db:"customer_id"`
	EmployeeID   *int       `json:"-" db:"employee_id"`
	CreatedAt    time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time  `json:"updatedAt" db:"updated_at"`
}

type UserCreateRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6"`
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Role      Role   `json:"role" validate:"omitempty,oneof=customer employee admin"`
}

type AuthRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type Customer struct {
	ID           int        `json:"-" db:"id"`
	CustomerUid  string     `json:"customerUid" db:"customer_uid"`
	FirstName    string     `json:"firstName" db:"first_name"`
	LastName     string     `json:"lastName" db:"last_name"`
	Email        string     `json:"email" db:"email"`
	Phone        string     `json:"phone" db:"phone"`
	Street       string     `json:"street" db:"street"`
	City         string     `json:"city" db:"city"`
	State        string     `json:"state" db:"state"`
	Zip          string     `json:"zip" db:"zip"`
	UserID       *int       `json:"-" db:"user_id"`
	OrderCount   int        `json:"orderCount" db:"order_count"`
	TotalSpent   float64    `json:"totalSpent" db:"total_spent"`
	LastPurchase *time.Time `json:"lastPurchase,omitempty" db:"last_purchase"`
	CreatedAt    time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time  `json:"updatedAt" db:"updated_at"`
}

type CustomerUpsertRequest struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone" validate:"required"`
	Street    string `json:"street"`
	City      string `json:"city"`
	State     string `json:"state"`
	Zip       string `json:"zip"`
}

type Employee struct {
	ID          int       `json:"-" db:"id"`
	EmployeeUid string    `json:"employeeUid" db:"employee_uid"`
	FirstName   string    `json:"firstName" db:"first_name"`
	LastName    string    `json:"lastName" db:"last_name"`
	Email       string    `json:"email" db:"email"`
	Phone       string    `json:"phone" db:"phone"`
	Street      string    `json:"street" db:"street"`
	City        string    `json:"city" db:"city"`
	State       string    `json:"state" db:"state"`
	Zip         string    `json:"zip" db:"zip"`
	JobTitle    string    `json:"jobTitle" db:"job_title"`
	Role        Role      `json:"role" db:"role"`
	HireDate    time.Time `json:"hireDate" db:"hire_date"`
	Salary      float64   `json:"salary" db:"salary"`
	IsActive    bool      `json:"isActive" db:"is_active"`
	UserID      *int      `json:"-" db:"user_id"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}

type EmployeeUpsertRequest struct {
	FirstName string  `json:"firstName" validate:"required"`
	LastName  string  `json:"lastName" validate:"required"`
	Email     string  `json:"email" validate:"required,email"`
	Phone     string  `json:"phone" validate:"required"`
	Street    string  `json:"street"`
	City      string  `json:"city"`
	State     string  `json:"state"`
	Zip       string  `json:"zip"`
	JobTitle  string  `json:"jobTitle" validate:"required"`
	Role      Role    `json:"role" validate:"required,oneof=employee admin"`
	Salary    float64 `json:"salary" validate:"min=0"`
}

type ProfileKind string

const (
	ProfileCustomer ProfileKind = "customer"
	ProfileEmployee ProfileKind = "employee"
)

// Profile is the tagged variant resolved from a user's role: exactly
// one of Customer or Employee is set.
type Profile struct {
	Kind     ProfileKind `json:"kind"`
	Customer *Customer   `json:"customer,omitempty"`
	Employee *Employee   `json:"employee,omitempty"`
}
