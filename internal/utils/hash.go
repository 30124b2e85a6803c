// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"encoding/hex"
	"strings"
	"sync"

	"github.com/zeebo/blake3"
)

// hasherPool is a package-level pool of reusable BLAKE3 hashers.
var hasherPool = sync.Pool{
	New: func() any {
		return blake3.New()
	},
}

// FileHash computes the BLAKE3-256 digest of data and returns it as a
// lowercase hex string. It is the value carried in the file_hash field of a
// share.
//
// Behavior:
//   - Retrieves a hasher from sync.Pool
//   - Resets it, writes the data, computes the sum
//   - Resets again and returns it to the pool
//
// Example usage:
//
//	hash := utils.FileHash([]byte("hello"))
func FileHash(data []byte) string {
	h := hasherPool.Get().(*blake3.Hasher)
	h.Reset()
	_, _ = h.Write(data)
	sum := h.Sum(nil)
	h.Reset()
	hasherPool.Put(h)

	return hex.EncodeToString(sum)
}

// VerifyFileHash reports whether data matches the expected hex digest.
// Comparison is case-insensitive. An empty expected hash always matches,
// since older senders do not transmit one.
func VerifyFileHash(data []byte, expected string) bool {
	expected = strings.TrimSpace(expected)
	if expected == "" {
		return true
	}
	return strings.EqualFold(FileHash(data), expected)
}
