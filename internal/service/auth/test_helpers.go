package auth

import (
	"time"

	"github.com/subtrackr/subtrackr-api/internal/config"
)

// NewJWTServiceWithTimeFunc creates a JWT service whose notion of "now" is
// supplied by the caller. Used by tests to exercise expiry without sleeping.
func NewJWTServiceWithTimeFunc(
	cfg config.AuthConfig,
	timeFunc func() time.Time,
) (JWTService, error) {
	svc, err := NewJWTService(cfg)
	if err != nil {
		return nil, err
	}
	impl := svc.(*hmacJWTService)
	impl.timeFunc = timeFunc
	return impl, nil
}
