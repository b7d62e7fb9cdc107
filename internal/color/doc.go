// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package color decorates terminal output with ANSI SGR sequences.
//
// Colour is decided once at start-up: NO_COLOR disables it, FORCE_COLOR enables it,
// and otherwise it is on only when stdout is a terminal (golang.org/x/term).
package color
