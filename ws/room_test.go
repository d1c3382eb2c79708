package ws

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoomKeyCanonicalOrder(t *testing.T) {
	assert.Equal(t, "A_B", RoomKey("A", "B"))
	assert.Equal(t, "A_B", RoomKey("B", "A"))
}

func TestRoomKeySameForBothParticipants(t *testing.T) {
	a := "64f1c2d9e4b0a1b2c3d4e5f6"
	b := "64f1c2d9e4b0a1b2c3d4e5a0"

	assert.Equal(t, RoomKey(a, b), RoomKey(b, a))
}

func TestRoomKeyGeneralizesToMoreParticipants(t *testing.T) {
	assert.Equal(t, "a_b_c", RoomKey("c", "a", "b"))
}

func TestRoomKeyDoesNotMutateInput(t *testing.T) {
	ids := []string{"z", "a"}
	RoomKey(ids...)
	assert.Equal(t, []string{"z", "a"}, ids)
}
