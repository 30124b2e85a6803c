// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It activates the device from configuration, provisions the device key pair,
// starts background synchronization and runs the terminal UI until the user
// quits.
package client
