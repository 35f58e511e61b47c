package prompt

// Round runs one prompt round for a variable-length collection. It returns
// the collected value and whether the operator asked for another round.
type Round[T any] func(round int) (value T, more bool, err error)

// Collect repeatedly invokes round, accumulating values until a round signals
// no-continue. Values whose key duplicates an already-collected entry are
// silently dropped, but the round's continue signal is still honored, so a
// duplicate answer never ends the loop early. The result preserves first-seen
// order and contains no two elements with an equal key.
//
// The loop terminates as soon as more is false, even on the very first round.
func Collect[T any](round Round[T], key func(T) string) ([]T, error) {
	var collected []T
	seen := make(map[string]struct{})

	for n := 0; ; n++ {
		value, more, err := round(n)
		if err != nil {
			return nil, err
		}

		k := key(value)
		if _, dup := seen[k]; !dup {
			seen[k] = struct{}{}
			collected = append(collected, value)
		}

		if !more {
			return collected, nil
		}
	}
}
