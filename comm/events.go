// Copyright 2026 The Oasis Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package comm

// StatusChangedEvent describes one component status transition.
type StatusChangedEvent struct {
	ComponentId string
	Old, New    Status
}

// ItemChangedEvent describes one exchange item's value set being refreshed.
type ItemChangedEvent struct {
	ComponentId string
	ItemId      string
}

// StatusChangedListener receives a StatusChangedEvent.
type StatusChangedListener func(StatusChangedEvent)

// ItemChangedListener receives an ItemChangedEvent.
type ItemChangedListener func(ItemChangedEvent)

// EventBroadcaster fans status-change and item-change notifications out to
// any number of listeners, in registration order, synchronously on the
// calling goroutine (single-process cooperative scheduling, spec.md §5).
// A launcher embeds one to drive progress logging and diagnostics without
// components needing to know who, if anyone, is watching.
type EventBroadcaster struct {
	statusListeners []StatusChangedListener
	itemListeners   []ItemChangedListener
}

// OnStatusChanged registers l to be called on every future StatusChanged
// broadcast.
func (b *EventBroadcaster) OnStatusChanged(l StatusChangedListener) {
	b.statusListeners = append(b.statusListeners, l)
}

// OnItemChanged registers l to be called on every future ItemChanged
// broadcast.
func (b *EventBroadcaster) OnItemChanged(l ItemChangedListener) {
	b.itemListeners = append(b.itemListeners, l)
}

// BroadcastStatusChanged notifies every registered status listener.
func (b *EventBroadcaster) BroadcastStatusChanged(e StatusChangedEvent) {
	for _, l := range b.statusListeners {
		l(e)
	}
}

// BroadcastItemChanged notifies every registered item listener.
func (b *EventBroadcaster) BroadcastItemChanged(e ItemChangedEvent) {
	for _, l := range b.itemListeners {
		l(e)
	}
}

// WatchedComponent wraps a Component, broadcasting a StatusChangedEvent
// through bus whenever Update, Initialize, Validate, Prepare or Finish move
// its status, and an ItemChangedEvent for each output refreshed during
// Update. It is a drop-in Component, so a launcher can wrap every configured
// component uniformly regardless of whether anything is actually watching.
type WatchedComponent struct {
	Component
	bus *EventBroadcaster
}

// Watch wraps c so every lifecycle call broadcasts through bus.
func Watch(c Component, bus *EventBroadcaster) *WatchedComponent {
	return &WatchedComponent{Component: c, bus: bus}
}

func (w *WatchedComponent) call(step func() error, itemEvents bool) error {
	before := w.Component.Status()
	err := step()
	after := w.Component.Status()
	if after != before {
		w.bus.BroadcastStatusChanged(StatusChangedEvent{ComponentId: w.Component.Id(), Old: before, New: after})
	}
	if err == nil && itemEvents {
		for _, out := range w.Component.Outputs() {
			w.bus.BroadcastItemChanged(ItemChangedEvent{ComponentId: w.Component.Id(), ItemId: out.ItemId()})
		}
	}
	return err
}

func (w *WatchedComponent) Initialize() error { return w.call(w.Component.Initialize, false) }
func (w *WatchedComponent) Validate() error   { return w.call(w.Component.Validate, false) }
func (w *WatchedComponent) Prepare() error    { return w.call(w.Component.Prepare, false) }
func (w *WatchedComponent) Update() error     { return w.call(w.Component.Update, true) }
func (w *WatchedComponent) Finish() error     { return w.call(w.Component.Finish, false) }
