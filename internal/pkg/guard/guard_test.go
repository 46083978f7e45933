package guard

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"streamhub/internal/domain"
)

func TestAuthorize(t *testing.T) {
	owner := uuid.New()
	stranger := uuid.New()

	t.Run("Owner Allowed", func(t *testing.T) {
		assert.NoError(t, Authorize(owner, owner, false))
	})

	t.Run("Stranger Forbidden", func(t *testing.T) {
		err := Authorize(stranger, owner, false)
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("Override Allows Stranger", func(t *testing.T) {
		assert.NoError(t, Authorize(stranger, owner, true))
	})

	t.Run("Nil Actor Unauthenticated", func(t *testing.T) {
		err := Authorize(uuid.Nil, owner, false)
		assert.ErrorIs(t, err, domain.ErrUnauthenticated)
	})

	t.Run("Nil Actor Unauthenticated Even With Override", func(t *testing.T) {
		err := Authorize(uuid.Nil, owner, true)
		assert.ErrorIs(t, err, domain.ErrUnauthenticated)
	})
}
