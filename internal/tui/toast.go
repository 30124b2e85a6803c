package tui

import (
	"time"

	"github.com/MKhiriev/go-device-sync/models"
)

const (
	toastLifetime = 5 * time.Second
	maxToasts     = 4
)

// toastQueue keeps the most recent notifications until they expire.
type toastQueue struct {
	items []models.Notification
}

func (q *toastQueue) push(n models.Notification) {
	q.items = append(q.items, n)
	if len(q.items) > maxToasts {
		q.items = q.items[len(q.items)-maxToasts:]
	}
}

func (q *toastQueue) expire(now time.Time) {
	live := q.items[:0]
	for _, n := range q.items {
		if now.Sub(n.At) < toastLifetime {
			live = append(live, n)
		}
	}
	q.items = live
}

func (q toastQueue) list() []models.Notification {
	return q.items
}
