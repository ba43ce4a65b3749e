package session

import (
	"errors"

	"github.com/ssamant/pathway/internal/contract"
)

// ErrKeyNotFound is returned when a promote targets an option that is not
// in the current result set, typically because a newer submission replaced
// the set while a compare panel stayed open.
var ErrKeyNotFound = errors.New("pathway option not in current result set")

// Promote returns a new ordered sequence with the option identified by key
// first and every other option in its original relative order — a stable
// partition, not a re-sort. Promoting the element already at rank 0
// returns the input unchanged. The input is never mutated.
func Promote(ranked []contract.PathwayOption, key string) ([]contract.PathwayOption, error) {
	idx := -1
	for i, o := range ranked {
		if o.Key() == key {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, ErrKeyNotFound
	}
	if idx == 0 {
		return ranked, nil
	}

	out := make([]contract.PathwayOption, 0, len(ranked))
	out = append(out, ranked[idx])
	for i, o := range ranked {
		if i != idx {
			out = append(out, o)
		}
	}
	return out, nil
}
