package ordersink

import (
	"context"
	"errors"
)

// Multi fans a record out to every configured sink. Each sink gets the
// record even if an earlier one failed; the joined error reports every
// failure.
type Multi []Sink

func (m Multi) Append(ctx context.Context, rec Record) error {
	var errs []error
	for _, sink := range m {
		if err := sink.Append(ctx, rec); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
