package planner

import (
	"math/rand"
	"time"
)

// Window is the daily publishing window, hours in UTC.
type Window struct {
	StartHour   int
	EndHour     int
	SlotMinutes int
}

// defaultSlotMinutes is the slot granularity used when a window carries a
// non-positive SlotMinutes.
const defaultSlotMinutes = 15

// SlotCount returns the number of discrete slots the window holds.
func (w Window) SlotCount() int {
	return (w.EndHour - w.StartHour) * 60 / w.SlotMinutes
}

// Slots generates every discrete slot timestamp for the given day,
// in window order.
func (w Window) Slots(day time.Time) []time.Time {
	base := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	slots := make([]time.Time, 0, w.SlotCount())
	for h := w.StartHour; h < w.EndHour; h++ {
		for m := 0; m < 60; m += w.SlotMinutes {
			slots = append(slots, base.Add(time.Duration(h)*time.Hour+time.Duration(m)*time.Minute))
		}
	}
	return slots
}

// assignSlots shuffles the day's slots and pairs slot i with selection i,
// so distribution events spread across the window instead of bursting.
// Selections beyond the window's capacity are returned separately as
// dropped: they get no slot and no retry until the next planning run.
func assignSlots(selected []Selection, day time.Time, w Window, rng *rand.Rand) (assigned []assignment, dropped []Selection) {
	slots := w.Slots(day)
	rng.Shuffle(len(slots), func(i, j int) {
		slots[i], slots[j] = slots[j], slots[i]
	})

	for i, sel := range selected {
		if i >= len(slots) {
			dropped = append(dropped, sel)
			continue
		}
		assigned = append(assigned, assignment{Selection: sel, At: slots[i]})
	}
	return assigned, dropped
}

type assignment struct {
	Selection
	At time.Time
}
