package guard

import (
	"fmt"

	"github.com/google/uuid"

	"streamhub/internal/domain"
)

// Authorize decides whether actorID may mutate a resource recorded as owned by
// ownerID. override bypasses the equality check (admin deletion path). It has
// no side effects; callers run it before every owned-resource write.
func Authorize(actorID, ownerID uuid.UUID, override bool) error {
	if actorID == uuid.Nil {
		return fmt.Errorf("%w: missing actor identity", domain.ErrUnauthenticated)
	}
	if override || actorID == ownerID {
		return nil
	}
	return fmt.Errorf("%w: you are not the owner of this resource", domain.ErrForbidden)
}
