// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/MKhiriev/go-device-sync/models"
)

const (
	sseEventHeartbeat      = "heartbeat"
	sseEventShareAvailable = "share_available"

	// MaxEventFrameSize bounds the bytes buffered for one frame. The largest
	// valid share_available frame is about 1.4 MiB of base64.
	MaxEventFrameSize = 4 << 20
)

// EventDecoder turns a server-push byte stream into typed events.
//
// Frames look like
//
//	event: heartbeat
//	data: {"timestamp":"2024-01-01T00:00:00Z"}
//
// terminated by a blank line. Multiple data lines are concatenated. A frame
// with an unknown or empty type, or a payload that does not decode, becomes
// an [models.EventError] event; the stream itself keeps going.
//
// A frame larger than [MaxEventFrameSize] is dropped while it is read and
// reported as an error event once its terminating blank line arrives.
type EventDecoder struct {
	reader       *bufio.Reader
	eventType    string
	data         strings.Builder
	oversized    bool
	maxFrameSize int
	now          func() time.Time
}

func NewEventDecoder(r io.Reader) *EventDecoder {
	return &EventDecoder{
		reader:       bufio.NewReader(r),
		maxFrameSize: MaxEventFrameSize,
		now:          time.Now,
	}
}

// Next blocks until a complete frame is read and returns its event. It
// returns io.EOF when the stream ends cleanly; a partial frame at the end of
// the stream is discarded.
func (d *EventDecoder) Next() (models.SyncEvent, error) {
	for {
		line, err := d.readLine()
		if line != "" {
			if event, ok := d.processLine(line); ok {
				return event, nil
			}
		}
		if err != nil {
			d.reset()
			return models.SyncEvent{}, err
		}
	}
}

// readLine reads up to and including the next newline. Once the frame grows
// past the limit the rest of the line is discarded and "" is returned.
func (d *EventDecoder) readLine() (string, error) {
	var line []byte
	dropped := false
	for {
		chunk, err := d.reader.ReadSlice('\n')
		if !dropped && d.data.Len()+len(line)+len(chunk) > d.maxFrameSize {
			dropped = true
			line = nil
			d.oversized = true
			d.data.Reset()
		}
		if !dropped {
			line = append(line, chunk...)
		}
		if errors.Is(err, bufio.ErrBufferFull) {
			continue
		}
		return string(line), err
	}
}

// processLine consumes one line and reports whether it completed a frame.
func (d *EventDecoder) processLine(line string) (models.SyncEvent, bool) {
	line = strings.TrimRight(line, "\r\n")

	switch {
	case line == "" && d.oversized:
		d.reset()
		event := models.NewErrorEvent(fmt.Sprintf("event frame exceeds %d bytes", d.maxFrameSize))
		event.ReceivedAt = d.now()
		return event, true
	case line == "":
		if d.data.Len() == 0 {
			d.eventType = ""
			return models.SyncEvent{}, false
		}
		event := parseEvent(d.eventType, d.data.String())
		event.ReceivedAt = d.now()
		d.reset()
		return event, true
	case strings.HasPrefix(line, ":"):
		// comment / keep-alive
	case strings.HasPrefix(line, "event:"):
		d.eventType = strings.TrimSpace(strings.TrimPrefix(line, "event:"))
	case d.oversized:
		// rest of a dropped frame
	case strings.HasPrefix(line, "data:"):
		chunk := strings.TrimPrefix(line, "data:")
		d.data.WriteString(strings.TrimPrefix(chunk, " "))
	}
	return models.SyncEvent{}, false
}

func (d *EventDecoder) reset() {
	d.eventType = ""
	d.data.Reset()
	d.oversized = false
}

// parseEvent maps a flushed frame to a typed event.
func parseEvent(eventType, payload string) models.SyncEvent {
	switch eventType {
	case sseEventHeartbeat:
		var hb models.Heartbeat
		if err := json.Unmarshal([]byte(payload), &hb); err != nil {
			return models.NewErrorEvent(fmt.Sprintf("malformed heartbeat payload: %v", err))
		}
		return models.NewHeartbeatEvent(hb.Timestamp)
	case sseEventShareAvailable:
		var share models.SharedFile
		if err := json.Unmarshal([]byte(payload), &share); err != nil {
			return models.NewErrorEvent(fmt.Sprintf("malformed share_available payload: %v", err))
		}
		if share.ShareID == "" {
			return models.NewErrorEvent("share_available payload has no share_id")
		}
		return models.NewShareAvailableEvent(share)
	case "":
		return models.NewErrorEvent("event without a type")
	default:
		return models.NewErrorEvent(fmt.Sprintf("unknown event type %q", eventType))
	}
}
