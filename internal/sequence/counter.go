package sequence

import (
	"context"
	"log"

	"gorm.io/gorm"

	"github.com/VimashaVishvani/MediWise-Healthcare-System-sub001/internal/httperr"
	"github.com/VimashaVishvani/MediWise-Healthcare-System-sub001/internal/models"
)

// CounterAllocator serializes allocations through a single worker
// goroutine that owns a persisted counter row. The counter only
// advances after the new value is durably written, so a storage failure
// never burns a code.
type CounterAllocator struct {
	db       *gorm.DB
	requests chan request
}

type request struct {
	ctx   context.Context
	reply chan result
}

type result struct {
	code string
	err  error
}

func NewCounterAllocator(db *gorm.DB) (*CounterAllocator, error) {
	row := models.SequenceCounter{Name: CounterName}
	if err := db.FirstOrCreate(&row, models.SequenceCounter{Name: CounterName}).Error; err != nil {
		return nil, err
	}

	a := &CounterAllocator{
		db:       db,
		requests: make(chan request),
	}

	go a.worker(row.Value)
	return a, nil
}

func (a *CounterAllocator) worker(value int64) {
	for req := range a.requests {
		if err := req.ctx.Err(); err != nil {
			req.reply <- result{err: err}
			continue
		}

		next := value + 1
		err := a.db.WithContext(req.ctx).
			Model(&models.SequenceCounter{}).
			Where("name = ?", CounterName).
			Update("value", next).Error
		if err != nil {
			log.Println("sequence counter write failed:", err)
			req.reply <- result{err: httperr.ErrBusiness(httperr.CodeAllocationUnavailable)}
			continue
		}

		value = next
		req.reply <- result{code: Format(next)}
	}
}

func (a *CounterAllocator) Next(ctx context.Context) (string, error) {
	reply := make(chan result, 1)

	select {
	case a.requests <- request{ctx: ctx, reply: reply}:
	case <-ctx.Done():
		return "", ctx.Err()
	}

	res := <-reply
	return res.code, res.err
}

var _ Allocator = (*CounterAllocator)(nil)
