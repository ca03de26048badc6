package errdef

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrdef(t *testing.T) {
	t.Run("NotFound", func(t *testing.T) {
		err := NewNotFound("server %q not found", "abc")

		assert.True(t, IsNotFound(err))
		assert.False(t, IsBadRequest(err))
		assert.EqualError(t, err, `server "abc" not found`)
	})

	t.Run("WrappedNotFound", func(t *testing.T) {
		err := fmt.Errorf("listing: %w", NewNotFound("gone"))

		assert.True(t, IsNotFound(err))
	})

	t.Run("Unauthorized", func(t *testing.T) {
		err := NewUnauthorized("no session")

		assert.True(t, IsUnauthorized(err))
		assert.False(t, IsNotFound(err))
	})

	t.Run("Duplicated", func(t *testing.T) {
		err := NewDuplicated("server already saved")

		assert.True(t, IsDuplicated(err))
	})

	t.Run("BadGateway", func(t *testing.T) {
		err := NewBadGateway("github returned 502")

		assert.True(t, IsBadGateway(err))
		assert.False(t, IsBadRequest(err))
	})

	t.Run("PlainErrorMatchesNothing", func(t *testing.T) {
		err := fmt.Errorf("boom")

		assert.False(t, IsNotFound(err))
		assert.False(t, IsBadRequest(err))
		assert.False(t, IsUnauthorized(err))
		assert.False(t, IsDuplicated(err))
		assert.False(t, IsBadGateway(err))
	})
}
