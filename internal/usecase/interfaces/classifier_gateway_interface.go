package interfaces

import (
	"context"
	"errors"

	"civic_pulse/internal/domain/entities"
)

// ErrClassifierUnavailable covers every transport, timeout and
// malformed-response failure of the classification service. The caller must
// not fail the submission on it; the risk level falls back to the
// client-supplied value or the default.
var ErrClassifierUnavailable = errors.New("classifier unavailable")

// IClassifierGateway abstracts the external image-classification HTTP
// service. One synchronous attempt per submission, no retries.

type IClassifierGateway interface {
	Classify(ctx context.Context, photoPath string) (entities.Classification, error)
}
