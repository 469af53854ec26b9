// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package cliout provides output formatting for the jdk-probe CLI.
// It supports human-readable text with ANSI styling and machine-readable
// JSON. Colors are applied only when stdout is a terminal.
package cliout
