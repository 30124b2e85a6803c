package models

import "time"

// InboxEntry is a received share kept in the local inbox. The content stays
// encrypted at rest; it is decrypted only when the user opens the entry.
type InboxEntry struct {
	SharedFile

	ReceivedAt time.Time
	OpenedAt   *time.Time
}
