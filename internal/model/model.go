package model

import (
	"time"
)

type SaleType string

const (
	SaleTypeInstore SaleType = "instore"
	SaleTypeOnline  SaleType = "online"
)

type OrderStatus string

const (
	StatusPending  OrderStatus = "pending"
	StatusShipped  OrderStatus = "shipped"
	StatusReceived OrderStatus = "received"
	StatusCanceled OrderStatus = "canceled"
)

type PaymentMethod string

const (
	PaymentCash   PaymentMethod = "cash"
	PaymentCredit PaymentMethod = "credit"
	PaymentDebit  PaymentMethod = "debit"
)

type Book struct {
	ID                int       `json:"-" db:"id"`
	BookUid           string    `json:"bookUid" db:"book_uid"`
	Title             string    `json:"title" db:"title"`
	Author            string    `json:"author" db:"author"`
	Genre             string    `json:"genre" db:"genre"`
	ISBN              string    `json:"isbn" db:"isbn"`
	Summary           string    `json:"summary" db:"summary"`
	Publisher         string    `json:"publisher" db:"publisher"`
	PublicationDate   time.Time `json:"publicationDate" db:"publication_date"`
	PageCount         int       `json:"pageCount" db:"page_count"`
	Language          string    `json:"language" db:"language"`
	CoverImageUrl     string    `json:"coverImageUrl" db:"cover_image_url"`
	Quantity          int       `json:"quantity" db:"quantity"`
	Price             float64   `json:"price" db:"price"`
	LowStockThreshold int       `json:"lowStockThreshold" db:"low_stock_threshold"`
	CreatedAt         time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt         time.Time `json:"updatedAt" db:"updated_at"`
}

type BookCreateRequest struct {
	Title             string  `json:"title" validate:"required"`
	Author            string  `json:"author" validate:"required"`
	Genre             string  `json:"genre" validate:"required"`
	ISBN              string  `json:"isbn" validate:"required"`
	Summary           string  `json:"summary"`
	Publisher         string  `json:"publisher"`
	PublicationDate   Date    `json:"publicationDate"`
	PageCount         int     `json:"pageCount" validate:"omitempty,min=1"`
	Language          string  `json:"language"`
	CoverImageUrl     string  `json:"coverImageUrl"`
	Quantity          int     `json:"quantity" validate:"min=0"`
	Price             float64 `json:"price" validate:"min=0"`
	LowStockThreshold int     `json:"lowStockThreshold" validate:"omitempty,min=1"`
}

type BookFilter struct {
	Genre    string
	Language string
	InStock  bool
}

// Date accepts both YYYY-MM-DD and RFC 3339 payloads.
type Date struct {
	time.Time
}

func (d *Date) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" || s == `""` {
		return nil
	}
	if len(s) >= 2 && s[0] == '"' {
		s = s[1 : len(s)-1]
	}
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		d.Time = t
		return nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

type Address struct {
	Street  string `json:"street" db:"street"`
	City    string `json:"city" db:"city"`
	State   string `json:"state" db:"state"`
	ZipCode string `json:"zipCode" db:"zip_code"`
}

type OrderItemRequest struct {
	BookUid  string `json:"bookId" validate:"required"`
	Quantity int    `json:"quantity" validate:"required,min=1"`
}

type PlaceOrderRequest struct {
	Type            SaleType           `json:"type" validate:"required,oneof=instore online"`
	OrderItems      []OrderItemRequest `json:"orderItems" validate:"required,min=1,dive"`
	PaymentMethod   PaymentMethod      `json:"paymentMethod" validate:"required,oneof=cash credit debit"`
	CustomerUid     string             `json:"customerId"`
	EmployeeUid     string             `json:"employeeId"`
	ShippingAddress *Address           `json:"shippingAddress"`
}

// OrderItem carries the price snapshot taken at order creation.
// BookDetails is reconstructed from the books table on read.
type OrderItem struct {
	ID          int     `json:"-" db:"id"`
	SaleID      int     `json:"-" db:"sale_id"`
	BookID      int     `json:"-" db:"book_id"`
	BookUid     string  `json:"bookId" db:"book_uid"`
	Quantity    int     `json:"quantity" db:"quantity"`
	Price       float64 `json:"price" db:"price"`
	BookDetails *Book   `json:"bookDetails,omitempty" db:"-"`
}

type Sale struct {
	ID              int           `json:"-" db:"id"`
	SaleUid         string        `json:"saleUid" db:"sale_uid"`
	Type            SaleType      `json:"type" db:"type"`
	Status          OrderStatus   `json:"orderStatus" db:"status"`
	OrderDate       time.Time     `json:"orderDate" db:"order_date"`
	TotalPrice      float64       `json:"totalPrice" db:"total_price"`
	PaymentMethod   PaymentMethod `json:"paymentMethod" db:"payment_method"`
	CustomerID      *int          `json:"-" db:"customer_id"`
	EmployeeID      *int          `json:"-" db:"employee_id"`
	CustomerUid     *string       `json:"customerId,omitempty" db:"customer_uid"`
	EmployeeUid     *string       `json:"employeeId,omitempty" db:"employee_uid"`
	ShippingAddress *Address      `json:"shippingAddress,omitempty" db:"-"`
	OrderItems      []OrderItem   `json:"orderItems" db:"-"`
	TotalItems      int           `json:"totalItems" db:"-"`
	CreatedAt       time.Time     `json:"createdAt" db:"created_at"`
	UpdatedAt       time.Time     `json:"updatedAt" db:"updated_at"`
}

type SaleUpdateRequest struct {
	Status        OrderStatus   `json:"orderStatus" validate:"omitempty,oneof=pending shipped received canceled"`
	PaymentMethod PaymentMethod `json:"paymentMethod" validate:"omitempty,oneof=cash credit debit"`
}

// LowStock identifies a book left at or below its threshold after a
// stock mutation.
type LowStock struct {
	BookUid   string `db:"book_uid"`
	Title     string `db:"title"`
	Quantity  int    `db:"quantity"`
	Threshold int    `db:"low_stock_threshold"`
}
