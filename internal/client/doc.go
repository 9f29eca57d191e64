// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive feed client runtime.
//
// It wires the terminal UI, the sync session and background workers into a
// single process lifecycle and tears them down in order on exit.
package client
