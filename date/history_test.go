package date

import "testing"

func TestSet(t *testing.T) {
	h := new(History[string])
	d1, v1 := New(2025, 07, 01), "25 Jul 1"
	d2, v2 := New(2024, 07, 01), "24 Jul 1"

	// Appending two values in reverse order and checking that everything is
	// as expected at every step of the way.

	if h.Len() != 0 {
		t.Errorf("History.Len() = %v want 0", h.Len())
	}

	h.Set(d1, v1)
	if h.Len() != 1 {
		t.Errorf("Set(d1, v1).Len() = %v want 1", h.Len())
	}

	h.Set(d2, v2)
	if h.Len() != 2 {
		t.Errorf("Set(d2, v2).Len() = %v want 2", h.Len())
	}

	if h.days[0] != d2 || h.days[1] != d1 {
		t.Errorf("history days = %v want [%v %v]", h.days, d2, d1)
	}
	if h.values[0] != v2 || h.values[1] != v1 {
		t.Errorf("history values = %v want [%v %v]", h.values, v2, v1)
	}

	h.Set(d1, "overwritten")
	if h.values[1] != "overwritten" || h.Len() != 2 {
		t.Errorf("Set(d1) on existing day: values = %q, Len() = %d want %q last, 2", h.values, h.Len(), "overwritten")
	}
}

func TestMerge(t *testing.T) {
	h := new(History[int])
	add := func(a, b int) int { return a + b }
	d1, d2 := New(2024, 1, 1), New(2024, 1, 2)

	h.Merge(d1, 10, add).Merge(d1, -3, add).Merge(d2, 5, add)

	var days []Date
	var values []int
	for on, v := range h.Values() {
		days = append(days, on)
		values = append(values, v)
	}
	if len(days) != 2 || days[0] != d1 || days[1] != d2 {
		t.Errorf("Values() days = %v want [%v %v]", days, d1, d2)
	}
	if len(values) != 2 || values[0] != 7 || values[1] != 5 {
		t.Errorf("Values() values = %v want [7 5]", values)
	}
}
