package engine

// The initial-scroll heuristic is a one-shot: armed on period entry (new
// ViewModel, mode switch, navigation), consumed exactly once by the renderer
// after its first real layout pass, and never re-armed by item-list changes
// within the same period. That makes the "grid resets to 6am while the user
// is mid-interaction" failure unreachable: an item added after first render
// cannot fire a second scroll. Arming while a scroll is pending replaces the
// pending one rather than stacking.

func (vm *ViewModel) armAutoScroll() {
	if vm.closed {
		return
	}
	vm.scrollPending = true
}

// TakeAutoScroll consumes the pending one-shot scroll. The first call after
// a period entry returns the target hour and true; further calls return
// false until the next mode or period change re-arms it. Renderers call this
// after layout so the grid has real dimensions to scroll within.
func (vm *ViewModel) TakeAutoScroll() (hour int, ok bool) {
	if vm.closed || !vm.scrollPending {
		return 0, false
	}
	vm.scrollPending = false
	return vm.OptimalStartHour(), true
}

// OptimalStartHour is the earliest local start hour among the period's timed
// items, or the configured default when the period is empty. Items carried
// over from before the period contribute nothing; their start hour belongs
// to another day.
func (vm *ViewModel) OptimalStartHour() int {
	periodStart := vm.PeriodStart()
	best := -1
	for _, date := range vm.VisibleDates() {
		for _, w := range vm.TimedItemsOn(date) {
			if w.Item.Start.Before(periodStart) {
				continue
			}
			if h := w.Item.Start.Hour(); best == -1 || h < best {
				best = h
			}
		}
	}
	if best == -1 {
		return vm.cfg.DefaultScrollHour
	}
	return best
}

// Close tears the view model down: a pending scroll is cancelled and the
// one-shot can never fire again.
func (vm *ViewModel) Close() {
	vm.closed = true
	vm.scrollPending = false
}
