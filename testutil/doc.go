// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package testutil provides common testing utilities for jdk-core.
// It includes helpers for building fixture directory trees, capturing
// stdout, and creating temporary directories with automatic cleanup.
package testutil
