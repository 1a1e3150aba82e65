package campaign

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
)

func makeRecipients(n int) []Recipient {
	rs := make([]Recipient, n)
	for i := range rs {
		rs[i] = Recipient{Email: fmt.Sprintf("subscriber%03d@example.com", i), Locale: "ko"}
	}
	return rs
}

func TestDispatchPartialFailure(t *testing.T) {
	recipients := makeRecipients(100)
	failing := map[string]bool{
		"subscriber010@example.com": true,
		"subscriber050@example.com": true,
		"subscriber099@example.com": true,
	}

	var calls int32
	result := Dispatch(context.Background(), recipients, 20, func(_ context.Context, r Recipient) error {
		atomic.AddInt32(&calls, 1)
		if failing[r.Email] {
			return errors.New("recipient rejected")
		}
		return nil
	})

	if calls != 100 {
		t.Errorf("send calls = %d, want 100 (failures must not stop the batch)", calls)
	}
	if result.Delivered != 97 {
		t.Errorf("Delivered = %d, want 97", result.Delivered)
	}
	if result.Failed != 3 {
		t.Errorf("Failed = %d, want 3", result.Failed)
	}
	if len(result.Errors) != 3 {
		t.Errorf("Errors = %d, want 3", len(result.Errors))
	}
}

func TestDispatchBatchesSequentially(t *testing.T) {
	recipients := makeRecipients(45)

	var mu sync.Mutex
	inFlight, peak := 0, 0

	Dispatch(context.Background(), recipients, 20, func(context.Context, Recipient) error {
		mu.Lock()
		inFlight++
		if inFlight > peak {
			peak = inFlight
		}
		mu.Unlock()

		mu.Lock()
		inFlight--
		mu.Unlock()
		return nil
	})

	if peak > 20 {
		t.Errorf("peak concurrency = %d, want <= batch size 20", peak)
	}
}

func TestDispatchEveryFailureRecorded(t *testing.T) {
	recipients := makeRecipients(5)
	result := Dispatch(context.Background(), recipients, 2, func(context.Context, Recipient) error {
		return errors.New("smtp down")
	})

	if result.Delivered != 0 || result.Failed != 5 {
		t.Errorf("result = %+v, want 0 delivered, 5 failed", result)
	}
}

func TestDispatchEmptyList(t *testing.T) {
	result := Dispatch(context.Background(), nil, 20, func(context.Context, Recipient) error {
		t.Fatal("send must not be called with no recipients")
		return nil
	})
	if result.Delivered != 0 || result.Failed != 0 {
		t.Errorf("result = %+v, want zero", result)
	}
}

func TestDispatchCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	recipients := makeRecipients(10)
	result := Dispatch(ctx, recipients, 5, func(context.Context, Recipient) error {
		t.Fatal("send must not run after cancellation")
		return nil
	})

	if result.Failed != 10 {
		t.Errorf("Failed = %d, want 10 (remaining recipients counted as failed)", result.Failed)
	}
}

func TestDispatchBatchSizeFloor(t *testing.T) {
	recipients := makeRecipients(3)
	var calls int32
	result := Dispatch(context.Background(), recipients, 0, func(context.Context, Recipient) error {
		atomic.AddInt32(&calls, 1)
		return nil
	})
	if calls != 3 || result.Delivered != 3 {
		t.Errorf("calls=%d result=%+v", calls, result)
	}
}
