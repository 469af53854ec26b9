// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package cli assembles the cobra commands for the jdk-probe binary:
// detect (probe one directory), scan (enumerate and probe well-known
// installation roots), env (host and platform summary), and version.
package cli
