package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/IBM/sarama"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/adenisov/bookstore-service/internal/errs"
	"github.com/adenisov/bookstore-service/internal/model"
	"github.com/adenisov/bookstore-service/pkg/breaker"
	"github.com/adenisov/bookstore-service/pkg/kafka"
)

// PlaceOrder validates the requested line items against the catalog,
// snapshots authoritative prices, persists the order and decrements
// stock. The repository performs the check-and-decrement as one
// conditional update per book inside a single transaction, so a
// failure on any line leaves no partial stock mutation behind.
func (s *Service) PlaceOrder(ctx context.Context, req model.PlaceOrderRequest) (model.Sale, error) {
	uids := make([]string, 0, len(req.OrderItems))
	seen := make(map[string]struct{}, len(req.OrderItems))
	for _, item := range req.OrderItems {
		if _, ok := seen[item.BookUid]; !ok {
			seen[item.BookUid] = struct{}{}
			uids = append(uids, item.BookUid)
		}
	}

	books, err := s.repo.GetBooksByUids(ctx, uids)
	if err != nil {
		return model.Sale{}, err
	}
	byUid := make(map[string]model.Book, len(books))
	for _, b := range books {
		byUid[b.BookUid] = b
	}

	// The client never supplies prices: every line gets the book's
	// current price as its immutable snapshot. The stock check runs
	// against the sum requested per book across all lines.
	requested := make(map[string]int, len(uids))
	items := make([]model.OrderItem, 0, len(req.OrderItems))
	var total float64
	for _, line := range req.OrderItems {
		book, ok := byUid[line.BookUid]
		if !ok {
			return model.Sale{}, &errs.UnknownBookError{BookUid: line.BookUid}
		}
		requested[line.BookUid] += line.Quantity
		if requested[line.BookUid] > book.Quantity {
			return model.Sale{}, &errs.InsufficientStockError{
				BookUid:   line.BookUid,
				Requested: requested[line.BookUid],
				Available: book.Quantity,
			}
		}
		items = append(items, model.OrderItem{
			BookID:   book.ID,
			BookUid:  book.BookUid,
			Quantity: line.Quantity,
			Price:    book.Price,
		})
		total += book.Price * float64(line.Quantity)
	}

	if req.Type == model.SaleTypeOnline && req.ShippingAddress == nil {
		return model.Sale{}, errs.ErrShippingAddress
	}

	sale := model.Sale{
		Type:            req.Type,
		PaymentMethod:   req.PaymentMethod,
		TotalPrice:      total,
		ShippingAddress: req.ShippingAddress,
	}
	if req.CustomerUid != "" {
		customer, err := s.repo.GetCustomer(ctx, req.CustomerUid)
		if err != nil {
			return model.Sale{}, err
		}
		sale.CustomerID = &customer.ID
	}
	if req.EmployeeUid != "" {
		employee, err := s.repo.GetEmployee(ctx, req.EmployeeUid)
		if err != nil {
			return model.Sale{}, err
		}
		sale.EmployeeID = &employee.ID
	}

	saleUid, lowStock, err := s.repo.CreateSale(ctx, sale, items)
	if err != nil {
		return model.Sale{}, err
	}
	s.notifyLowStock(lowStock)

	return s.repo.GetSale(ctx, saleUid)
}

// notifyLowStock is best effort: the order is already committed, so a
// broker failure is logged, not surfaced to the caller.
func (s *Service) notifyLowStock(lowStock []model.LowStock) {
	if s.producer == nil {
		return
	}
	for _, ls := range lowStock {
		event := kafka.LowStockEvent{
			BookUid:   ls.BookUid,
			Title:     ls.Title,
			Quantity:  ls.Quantity,
			Threshold: ls.Threshold,
			Timestamp: time.Now().UTC(),
		}
		data, err := json.Marshal(event)
		if err != nil {
			s.log.Error("notifyLowStock marshal", zap.Error(err))
			continue
		}
		msg := &sarama.ProducerMessage{Topic: kafka.LowStockTopic, Value: sarama.StringEncoder(data)}
		err = s.publish.Call(func() error {
			_, _, sendErr := s.producer.SendMessage(msg)
			return sendErr
		})
		switch {
		case errors.Is(err, breaker.ErrOpen):
			s.log.Warn("notifyLowStock skipped, publisher breaker open", zap.String("bookUid", ls.BookUid))
		case err != nil:
			s.log.Error("notifyLowStock send", zap.String("bookUid", ls.BookUid), zap.Error(err))
		}
	}
}

// EnsureRestockDraft drafts a pending manufacturer order for a book
// that dropped to its low stock threshold, unless one is already
// pending. Invoked by the restock consumer.
func (s *Service) EnsureRestockDraft(ctx context.Context, bookUid string) error {
	book, err := s.repo.GetBook(ctx, bookUid)
	if err != nil {
		return err
	}
	if book.Quantity > book.LowStockThreshold {
		return nil
	}

	pending, err := s.repo.HasPendingMfrOrderForBook(ctx, bookUid)
	if err != nil {
		return err
	}
	if pending {
		return nil
	}

	// draft enough to bring stock back to twice the threshold,
	// never less than one threshold's worth
	quantity := book.LowStockThreshold*2 - book.Quantity
	if quantity < book.LowStockThreshold {
		quantity = book.LowStockThreshold
	}
	supplier := book.Publisher
	if supplier == "" {
		supplier = "unknown"
	}

	order := model.MfrOrder{
		OrderNumber:          "AUTO-" + bookUid[:8],
		SupplierName:         supplier,
		ExpectedDeliveryDate: time.Now().UTC().AddDate(0, 0, defaultDeliveryDays),
	}
	created, err := s.repo.CreateMfrOrder(ctx, order, []model.MfrOrderItemRequest{
		{BookUid: bookUid, Quantity: quantity},
	})
	if err != nil {
		return err
	}
	s.log.Info("restock draft created",
		zap.String("bookUid", bookUid),
		zap.String("mfrOrderUid", created.MfrOrderUid),
		zap.Int("quantity", quantity))
	return nil
}
