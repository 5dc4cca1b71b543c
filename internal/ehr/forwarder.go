package ehr

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/rmayuresh772/inflectionzone-reancare-service/internal/domain"
)

const (
	defaultQueueSize  = 256
	defaultMaxRetries = 3
	baseRetryDelay    = 500 * time.Millisecond
)

// Forwarder delivers clinical records to the EHR store from a background
// worker. Enqueue never blocks the request path; a full queue drops the
// record with a warning. Delivery failures are retried with backoff and are
// never surfaced to API callers.
type Forwarder struct {
	store      domain.EHRStore
	queue      chan domain.EHRRecord
	maxRetries int

	stopOnce sync.Once
	done     chan struct{}
	wg       sync.WaitGroup
}

// NewForwarder creates a forwarder with the given queue capacity and retry
// budget. Zero or negative values fall back to defaults.
func NewForwarder(store domain.EHRStore, queueSize, maxRetries int) *Forwarder {
	if queueSize <= 0 {
		queueSize = defaultQueueSize
	}
	if maxRetries <= 0 {
		maxRetries = defaultMaxRetries
	}
	return &Forwarder{
		store:      store,
		queue:      make(chan domain.EHRRecord, queueSize),
		maxRetries: maxRetries,
		done:       make(chan struct{}),
	}
}

// Start launches the background delivery worker.
func (f *Forwarder) Start() {
	f.wg.Add(1)
	go f.run()
}

// Enqueue queues a record for background delivery. It returns false when the
// queue is full or the forwarder has been stopped; the record is dropped.
func (f *Forwarder) Enqueue(record domain.EHRRecord) bool {
	select {
	case <-f.done:
		return false
	default:
	}

	select {
	case f.queue <- record:
		return true
	default:
		slog.Warn("EHR forward queue full, dropping record",
			slog.String("patient_user_id", record.PatientUserID),
			slog.String("record_id", record.RecordID),
			slog.String("type", string(record.Type)),
		)
		return false
	}
}

// Stop signals shutdown, drains buffered records, and waits for in-flight
// deliveries to finish. The queue channel is never closed, so an Enqueue
// racing Stop cannot panic; a record slipping in during the drain is dropped
// with the queue.
func (f *Forwarder) Stop() {
	f.stopOnce.Do(func() {
		close(f.done)
	})
	f.wg.Wait()
}

func (f *Forwarder) run() {
	defer f.wg.Done()
	for {
		select {
		case record := <-f.queue:
			f.deliver(record)
		case <-f.done:
			for {
				select {
				case record := <-f.queue:
					f.deliver(record)
				default:
					return
				}
			}
		}
	}
}

// deliver attempts delivery with exponential backoff. Permanent failure is
// logged and the record is abandoned.
func (f *Forwarder) deliver(record domain.EHRRecord) {
	var lastErr error
	for attempt := 1; attempt <= f.maxRetries; attempt++ {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		lastErr = f.store.AddRecord(ctx, record)
		cancel()
		if lastErr == nil {
			slog.Debug("EHR record forwarded",
				slog.String("patient_user_id", record.PatientUserID),
				slog.String("record_id", record.RecordID),
				slog.String("type", string(record.Type)),
				slog.Int("attempt", attempt),
			)
			return
		}
		if attempt < f.maxRetries {
			time.Sleep(baseRetryDelay * time.Duration(1<<(attempt-1)))
		}
	}

	slog.Error("EHR record delivery failed after retries",
		slog.String("patient_user_id", record.PatientUserID),
		slog.String("record_id", record.RecordID),
		slog.String("type", string(record.Type)),
		slog.Int("attempts", f.maxRetries),
		slog.Any("error", lastErr),
	)
}
