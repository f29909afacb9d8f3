package model

import "time"

type MfrOrderItem struct {
	ID         int    `json:"-" db:"id"`
	MfrOrderID int    `json:"-" db:"mfr_order_id"`
	BookID     int    `json:"-" db:"book_id"`
	BookUid    string `json:"bookId" db:"book_uid"`
	Quantity   int    `json:"quantity" db:"quantity"`
}

type MfrOrder struct {
	ID                   int            `json:"-" db:"id"`
	MfrOrderUid          string         `json:"mfrOrderUid" db:"mfr_order_uid"`
	OrderNumber          string         `json:"orderNumber" db:"order_number"`
	SupplierName         string         `json:"supplierName" db:"supplier_name"`
	Status               OrderStatus    `json:"status" db:"status"`
	TotalCost            float64        `json:"totalCost" db:"total_cost"`
	OrderDate            time.Time      `json:"orderDate" db:"order_date"`
	ExpectedDeliveryDate time.Time      `json:"expectedDeliveryDate" db:"expected_delivery_date"`
	BooksOrdered         []MfrOrderItem `json:"booksOrdered" db:"-"`
	CreatedAt            time.Time      `json:"createdAt" db:"created_at"`
	UpdatedAt            time.Time      `json:"updatedAt" db:"updated_at"`
}

type MfrOrderItemRequest struct {
	BookUid  string `json:"bookId" validate:"required"`
	Quantity int    `json:"quantity" validate:"required,min=1"`
}

type MfrOrderCreateRequest struct {
	OrderNumber          string                `json:"orderNumber" validate:"required"`
	SupplierName         string                `json:"supplierName" validate:"required"`
	BooksOrdered         []MfrOrderItemRequest `json:"booksOrdered" validate:"required,min=1,dive"`
	TotalCost            float64               `json:"totalCost" validate:"min=0"`
	ExpectedDeliveryDate Date                  `json:"expectedDeliveryDate"`
}

type MfrOrderUpdateRequest struct {
	Status               OrderStatus `json:"status" validate:"omitempty,oneof=pending shipped received canceled"`
	TotalCost            *float64    `json:"totalCost" validate:"omitempty,min=0"`
	ExpectedDeliveryDate *Date       `json:"expectedDeliveryDate"`
}

type MfrOrderFilter struct {
	SupplierName string
	Status       OrderStatus
}
