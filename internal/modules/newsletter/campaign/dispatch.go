package campaign

import (
	"context"
	"sync"
)

// Recipient is one dispatch target.
type Recipient struct {
	Email       string
	Locale      string
	CancelToken string
}

// SendFunc delivers one rendered newsletter to one recipient.
type SendFunc func(ctx context.Context, r Recipient) error

// RecipientError records one failed delivery.
type RecipientError struct {
	Email string `json:"email"`
	Error string `json:"error"`
}

// DispatchResult aggregates the outcome of a full campaign send.
type DispatchResult struct {
	Delivered int              `json:"delivered"`
	Failed    int              `json:"failed"`
	Errors    []RecipientError `json:"errors,omitempty"`
}

// Dispatch sends to every recipient in batches. Recipients within a batch
// are sent concurrently, batches run one after another so the provider is
// never hit with the whole list at once. Individual failures are collected,
// never retried, and never stop the remaining sends. A cancelled context
// stops before the next batch; in-flight sends complete.
func Dispatch(ctx context.Context, recipients []Recipient, batchSize int, send SendFunc) DispatchResult {
	if batchSize < 1 {
		batchSize = 1
	}

	var (
		mu     sync.Mutex
		result DispatchResult
	)

	for start := 0; start < len(recipients); start += batchSize {
		if ctx.Err() != nil {
			mu.Lock()
			for _, r := range recipients[start:] {
				result.Failed++
				result.Errors = append(result.Errors, RecipientError{Email: r.Email, Error: ctx.Err().Error()})
			}
			mu.Unlock()
			break
		}

		end := start + batchSize
		if end > len(recipients) {
			end = len(recipients)
		}

		var wg sync.WaitGroup
		for _, r := range recipients[start:end] {
			wg.Add(1)
			go func(r Recipient) {
				defer wg.Done()
				err := send(ctx, r)
				mu.Lock()
				defer mu.Unlock()
				if err != nil {
					result.Failed++
					result.Errors = append(result.Errors, RecipientError{Email: r.Email, Error: err.Error()})
					return
				}
				result.Delivered++
			}(r)
		}
		wg.Wait()
	}

	return result
}
