// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// SyncEventKind tags the variant held by a [SyncEvent].
type SyncEventKind int

const (
	EventHeartbeat SyncEventKind = iota + 1
	EventShareAvailable
	EventError
)

// String returns the wire name of the event kind.
func (k SyncEventKind) String() string {
	switch k {
	case EventHeartbeat:
		return "heartbeat"
	case EventShareAvailable:
		return "share_available"
	case EventError:
		return "error"
	default:
		return "unknown"
	}
}

// SyncEvent is a typed event received from the server push stream.
// Exactly one of Heartbeat, Share or Message is meaningful, selected by Kind.
type SyncEvent struct {
	Kind SyncEventKind

	// Heartbeat carries the server timestamp of a heartbeat event.
	Heartbeat Heartbeat

	// Share is the payload of a share_available event.
	Share SharedFile

	// Message describes an error event.
	Message string

	// ReceivedAt is the local time the event was decoded.
	ReceivedAt time.Time
}

// Heartbeat is the payload of a heartbeat event.
type Heartbeat struct {
	Timestamp string `json:"timestamp"`
}

// NewHeartbeatEvent builds a heartbeat event.
func NewHeartbeatEvent(timestamp string) SyncEvent {
	return SyncEvent{Kind: EventHeartbeat, Heartbeat: Heartbeat{Timestamp: timestamp}}
}

// NewShareAvailableEvent builds a share_available event.
func NewShareAvailableEvent(share SharedFile) SyncEvent {
	return SyncEvent{Kind: EventShareAvailable, Share: share}
}

// NewErrorEvent builds an error event.
func NewErrorEvent(message string) SyncEvent {
	return SyncEvent{Kind: EventError, Message: message}
}
