// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package ctxlog carries a *slog.Logger in a context.Context.
//
// The default logger writes to stderr through PrettyHandler, so command output on
// stdout stays machine readable. The level comes from the <EXE>_LOG_LEVEL environment
// variable, e.g. KATA_LOG_LEVEL=DEBUG, and can be changed at runtime through LevelVar.
package ctxlog
