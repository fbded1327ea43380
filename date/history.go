package date

import (
	"iter"
	"slices"
	"sort"
)

// History stores a chronological series of values, each associated with a specific date.
// Dates are unique and the series is always sorted.
type History[T any] struct {
	days   []Date
	values []T
}

// Len returns the number of days in the history.
func (h *History[T]) Len() int { return len(h.days) }

// chronological sorts a history by day.
type chronological[T any] struct{ *History[T] }

func (s chronological[T]) Less(i, j int) bool { return s.days[i].Before(s.days[j]) }

func (s chronological[T]) Swap(i, j int) {
	s.days[i], s.days[j] = s.days[j], s.days[i]
	s.values[i], s.values[j] = s.values[j], s.values[i]
}

// insert adds a new day, keeping the series sorted.
func (h *History[T]) insert(on Date, v T) {
	n := len(h.days)
	h.days, h.values = append(h.days, on), append(h.values, v)
	// Chronological appends are the common case and need no sort.
	if n > 0 && on.Before(h.days[n-1]) {
		sort.Sort(chronological[T]{h})
	}
}

// Set records v on day 'on'. An existing value at that date is overwritten.
func (h *History[T]) Set(on Date, v T) *History[T] {
	if i := slices.Index(h.days, on); i >= 0 {
		h.values[i] = v
		return h
	}
	h.insert(on, v)
	return h
}

// Merge combines v into the value recorded on day 'on' using merge(existing, v).
// If there is no value on that day yet, v is recorded as is.
func (h *History[T]) Merge(on Date, v T, merge func(existing, v T) T) *History[T] {
	if i := slices.Index(h.days, on); i >= 0 {
		h.values[i] = merge(h.values[i], v)
		return h
	}
	h.insert(on, v)
	return h
}

// Values returns an iterator over all date/value pairs in chronological order.
func (h *History[T]) Values() iter.Seq2[Date, T] {
	return func(yield func(Date, T) bool) {
		for i, on := range h.days {
			if !yield(on, h.values[i]) {
				return
			}
		}
	}
}
