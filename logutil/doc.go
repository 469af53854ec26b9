// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package logutil provides the shared logging setup for jdk-core.
//
// It wraps log/slog with a process-global logger configured once via
// SetupLogger, plus a ComponentLogger that scopes records to a named
// component. Debug logging can also be forced with JDK_CORE_DEBUG=true.
//
// Probing code logs at debug level only: detection is a library concern
// and must stay quiet unless the caller asks for diagnostics.
//
// # Example Usage
//
//	logutil.SetupLogger(true, false)
//	log := logutil.NewLogger("prober")
//	log.Debug("validated JDK", "path", info.Path)
package logutil
