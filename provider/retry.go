// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package provider

import (
	"context"
	"log/slog"
	"time"

	"github.com/poiesic/placesearch/core"
)

// RetryingSearcher wraps another searcher and retries transport
// failures with exponential backoff. Bad-query and no-results failures
// are final answers and return immediately.
type RetryingSearcher struct {
	inner       BasicSearcher
	maxAttempts int
	baseDelay   time.Duration
}

var _ BiasedSearcher = (*RetryingSearcher)(nil)

// NewRetryingSearcher wraps inner with up to maxAttempts attempts per
// call, doubling baseDelay between attempts.
func NewRetryingSearcher(inner BasicSearcher, maxAttempts int, baseDelay time.Duration) (*RetryingSearcher, error) {
	if inner == nil {
		return nil, ErrSearcherRequired
	}
	if maxAttempts <= 0 {
		return nil, ErrInvalidMaxAttempts
	}
	return &RetryingSearcher{
		inner:       inner,
		maxAttempts: maxAttempts,
		baseDelay:   baseDelay,
	}, nil
}

func (r *RetryingSearcher) Search(ctx context.Context, query string) ([]core.Place, error) {
	var results []core.Place
	err := retryWithBackoff(ctx, func() error {
		var err error
		results, err = r.inner.Search(ctx, query)
		return err
	}, r.maxAttempts, r.baseDelay)
	return results, err
}

// SearchBiased forwards the bias when the wrapped searcher supports it
// and degrades to the plain call when it does not.
func (r *RetryingSearcher) SearchBiased(ctx context.Context, query string, bias core.Region) ([]core.Place, error) {
	biased, ok := r.inner.(BiasedSearcher)
	if !ok {
		return r.Search(ctx, query)
	}

	var results []core.Place
	err := retryWithBackoff(ctx, func() error {
		var err error
		results, err = biased.SearchBiased(ctx, query, bias)
		return err
	}, r.maxAttempts, r.baseDelay)
	return results, err
}

// retryWithBackoff retries an operation with exponential backoff.
// Only transport-kind failures are retried; any other failure is
// returned from the attempt that produced it.
func retryWithBackoff(ctx context.Context, operation func() error, maxAttempts int, baseDelay time.Duration) error {
	if maxAttempts <= 0 {
		return ErrInvalidMaxAttempts
	}

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		// Check context before attempting
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		lastErr = operation()
		if lastErr == nil {
			if attempt > 1 {
				slog.Debug("search succeeded after retry", "attempt", attempt)
			}
			return nil
		}

		if KindOf(lastErr) != KindTransport {
			return lastErr
		}

		slog.Debug("search failed, will retry", "attempt", attempt, "maxAttempts", maxAttempts, "error", lastErr)

		// Don't sleep after the last attempt
		if attempt == maxAttempts {
			break
		}

		// Calculate exponential backoff: baseDelay * 2^(attempt-1)
		delay := baseDelay
		for i := 1; i < attempt; i++ {
			delay *= 2
		}

		// Sleep with context awareness
		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
			// Continue to next attempt
		}
	}

	return lastErr
}
