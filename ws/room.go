package ws

import (
	"sort"
	"strings"
)

// RoomKey computes the canonical room identifier for a set of participants:
// the ids sorted lexicographically and joined with "_". Every participant of
// a conversation derives the same key regardless of argument order, which is
// the only thing binding the parties to one shared channel.
func RoomKey(participants ...string) string {
	ids := append([]string(nil), participants...)
	sort.Strings(ids)
	return strings.Join(ids, "_")
}
