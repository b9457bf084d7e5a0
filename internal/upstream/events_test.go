package upstream

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnwrapRegistrationList(t *testing.T) {
	t.Run("bare list", func(t *testing.T) {
		records := unwrapRegistrationList([]byte(`[{"id":"r1"},{"id":"r2"}]`))
		require.Len(t, records, 2)
		assert.Equal(t, "r1", records[0]["id"])
	})

	t.Run("enveloped list", func(t *testing.T) {
		records := unwrapRegistrationList([]byte(`{"success":true,"data":[{"id":"r1"}]}`))
		require.Len(t, records, 1)
		assert.Equal(t, "r1", records[0]["id"])
	})

	t.Run("doubly wrapped list", func(t *testing.T) {
		records := unwrapRegistrationList([]byte(`{"data":{"registrations":[{"id":"r1"}]}}`))
		require.Len(t, records, 1)
		assert.Equal(t, "r1", records[0]["id"])
	})

	t.Run("unrecognized shapes yield nothing", func(t *testing.T) {
		assert.Nil(t, unwrapRegistrationList([]byte(`{"data":{"something":"else"}}`)))
		assert.Nil(t, unwrapRegistrationList([]byte(`{"success":true}`)))
		assert.Nil(t, unwrapRegistrationList([]byte(`"a string"`)))
	})
}
