package service

import (
	"context"
	"log"
	"mime/multipart"
	"strconv"

	"print4me/internal/domain"
	"print4me/internal/metrics"
	"print4me/internal/port"
	"print4me/internal/pricing"
	"print4me/internal/validator"
)

// SubmitInput is the DTO for a print request.
type SubmitInput struct {
	Order domain.RawOrder
	Files []*multipart.FileHeader
}

// QuoteInput is the DTO for a price preview.
type QuoteInput struct {
	ColorMode string `json:"colorMode"`
	PaperSize string `json:"paperSize"`
	Sides     string `json:"sides"`
	Copies    int    `json:"copies"`
	Pages     int    `json:"pages"`
}

// OrderService defines the print order contract.
type OrderService interface {
	Submit(ctx context.Context, input SubmitInput) (*domain.Receipt, error)
	Quote(ctx context.Context, input QuoteInput) (*domain.PriceQuote, error)
}

type orderService struct {
	validator  *validator.OrderValidator
	storage    port.TempStorage
	dispatcher *Dispatcher
	metrics    *metrics.Metrics
}

// NewOrderService creates a new OrderService implementation.
func NewOrderService(
	v *validator.OrderValidator,
	storage port.TempStorage,
	dispatcher *Dispatcher,
	m *metrics.Metrics,
) OrderService {
	return &orderService{
		validator:  v,
		storage:    storage,
		dispatcher: dispatcher,
		metrics:    m,
	}
}

// Submit stores, validates and prices an order, then queues the admin
// notification. The receipt is returned before the email is sent. Rejected
// orders have their files removed before Submit returns.
func (s *orderService) Submit(ctx context.Context, input SubmitInput) (*domain.Receipt, error) {
	files, err := storeFiles(ctx, s.storage, input.Files)
	if err != nil {
		s.metrics.OrderRejected("storage")
		return nil, err
	}

	order, err := s.validator.Validate(ctx, input.Order, files)
	if err != nil {
		cleanup(ctx, s.storage, files)
		s.metrics.OrderRejected("validation")
		return nil, err
	}

	pages := order.TotalPages()
	order.Quote = pricing.Quote(order.Options, 0, pages)

	if order.ClientPages > 0 && order.ClientPages != pages {
		log.Printf("orderService.Submit: order %s client reported %d pages, billing %d", order.ID, order.ClientPages, pages)
	}
	log.Printf("orderService.Submit: order %s accepted (%d files, %d pages, %s %s)",
		order.ID, len(order.Items), pages, order.Quote.Currency, pricing.FormatAmount(order.Quote.GrandTotal))

	s.dispatcher.Dispatch(NotificationJob{Order: order})
	s.metrics.OrderAccepted(pages)

	return &domain.Receipt{
		OrderID:        order.ID,
		Pages:          pages,
		EstimatedTotal: order.Quote.GrandTotal,
		Quote:          order.Quote,
	}, nil
}

// Quote prices a hypothetical order the same way Submit would.
func (s *orderService) Quote(_ context.Context, input QuoteInput) (*domain.PriceQuote, error) {
	raw := domain.RawOrder{
		ColorMode: input.ColorMode,
		PaperSize: input.PaperSize,
		Sides:     input.Sides,
		Pages:     strconv.Itoa(input.Pages),
	}
	if input.Copies != 0 {
		raw.Copies = strconv.Itoa(input.Copies)
	}
	opts, pages, err := validator.ValidateQuote(raw)
	if err != nil {
		return nil, err
	}
	q := pricing.Quote(opts, 0, pages)
	return &q, nil
}
