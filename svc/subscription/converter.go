package subscription

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/dmitrymomot/storekit/pkg/logger"
	"github.com/dmitrymomot/storekit/svc/cart"
)

// Batch is one checkout's worth of subscription upserts.
type Batch struct {
	ID         uuid.UUID `json:"request_id"`
	CustomerID string    `json:"customer_id"`
	Records    []Record  `json:"items"`
}

// Dispatcher applies a conversion batch to the subscription registry, local
// or remote. It returns the number of records it reports as created; zero
// with a nil error means the channel did not report an explicit count.
type Dispatcher interface {
	Dispatch(ctx context.Context, batch Batch) (int, error)
}

// Result is the explicit outcome of a conversion call: either a created
// count or an error, never a side-channel status field.
type Result struct {
	OK      bool
	Created int
	Err     error
}

// Converter materializes subscription records from recurring-flagged cart
// lines after a checkout is confirmed.
type Converter struct {
	dispatcher Dispatcher
	log        *slog.Logger
}

// ConverterOption configures a Converter.
type ConverterOption func(*Converter)

// WithConverterLogger sets the converter logger, ignoring nil for safety.
func WithConverterLogger(log *slog.Logger) ConverterOption {
	return func(c *Converter) {
		if log != nil {
			c.log = log
		}
	}
}

// NewConverter creates a converter bound to a dispatch channel.
// A nil dispatcher returns ErrNilDispatcher: the caller's wiring is
// incomplete and the converter must not be used.
func NewConverter(d Dispatcher, opts ...ConverterOption) (*Converter, error) {
	if d == nil {
		return nil, ErrNilDispatcher
	}

	c := &Converter{
		dispatcher: d,
		log:        slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Convert turns the recurring-flagged lines of items into one batched
// subscription upsert. Call it exactly once per successful checkout, strictly
// after checkout confirmation.
//
// Zero flagged lines short-circuit to success with Created 0 and no dispatch.
// A rejected batch yields Created 0 and the rejection wrapped in
// ErrBatchRejected; records applied before a partial failure are not rolled
// back, and the converter never retries on its own.
func (c *Converter) Convert(ctx context.Context, items []cart.LineItem, customerID string) Result {
	var records []Record
	for _, item := range items {
		if !item.Subscribe {
			continue
		}
		records = append(records, Record{
			ID:          item.Key,
			ItemID:      item.ProductID,
			DisplayName: item.Name,
			FileURL:     item.ImageURL,
			Interval:    NormalizeInterval(item.Interval),
		})
	}

	if len(records) == 0 {
		return Result{OK: true, Created: 0}
	}

	batch := Batch{
		ID:         uuid.New(),
		CustomerID: customerID,
		Records:    records,
	}

	created, err := c.dispatcher.Dispatch(ctx, batch)
	if err != nil {
		c.log.ErrorContext(ctx, "subscription conversion rejected",
			logger.Component("subscription.converter"),
			logger.CustomerID(customerID),
			slog.String("batch_id", batch.ID.String()),
			logger.Error(err))
		return Result{OK: false, Created: 0, Err: errors.Join(ErrBatchRejected, err)}
	}

	// Fall back to the flagged count when the channel reports no explicit count
	if created <= 0 {
		created = len(records)
	}

	c.log.InfoContext(ctx, "cart converted to subscriptions",
		logger.Component("subscription.converter"),
		logger.CustomerID(customerID),
		slog.String("batch_id", batch.ID.String()),
		slog.Int("created", created))

	return Result{OK: true, Created: created}
}
