package notifier

import (
	"fmt"
	"strings"
)

// KeyFunc identifies a component for deduplication inside one batch.
type KeyFunc func(ExpiringComponent) string

// ByComponentID treats every row as distinct unless it is the same component.
func ByComponentID(c ExpiringComponent) string {
	return fmt.Sprintf("id:%d", c.ID)
}

// ByNameSerial collapses components that share a name and serial number, even
// across ships. The separator keeps "AB"+"C" apart from "A"+"BC".
func ByNameSerial(c ExpiringComponent) string {
	serial := ""
	if c.SerialNumber != nil {
		serial = *c.SerialNumber
	}
	return c.Name + "\x00" + serial
}

// KeyFuncFor maps the NOTIFIER_DEDUP_KEY setting to a KeyFunc.
func KeyFuncFor(name string) (KeyFunc, error) {
	switch strings.ToLower(name) {
	case "", "id":
		return ByComponentID, nil
	case "name_serial":
		return ByNameSerial, nil
	default:
		return nil, fmt.Errorf("unknown dedup key %q", name)
	}
}

// FanOut assigns expiring components to subscribers.
//
// Components are grouped by type in input order. Each subscriber gets the
// concatenation of the groups for its types, in the order the types are
// listed, with duplicates (by key) dropped keeping the first occurrence.
// Subscribers with nothing to receive produce no batch.
func FanOut(components []ExpiringComponent, subscribers []Subscriber, key KeyFunc) []Batch {
	if len(components) == 0 || len(subscribers) == 0 {
		return nil
	}
	if key == nil {
		key = ByComponentID
	}

	byType := make(map[uint][]ExpiringComponent)
	for _, c := range components {
		byType[c.ComponentTypeID] = append(byType[c.ComponentTypeID], c)
	}

	var batches []Batch
	for _, sub := range subscribers {
		seen := make(map[string]struct{})
		var picked []ExpiringComponent

		for _, typeID := range sub.TypeIDs {
			for _, c := range byType[typeID] {
				k := key(c)
				if _, dup := seen[k]; dup {
					continue
				}
				seen[k] = struct{}{}
				picked = append(picked, c)
			}
		}

		if len(picked) > 0 {
			batches = append(batches, Batch{TelegramID: sub.TelegramID, Components: picked})
		}
	}
	return batches
}
