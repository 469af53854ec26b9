// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package hostutil summarizes the host machine for diagnostic output.
//
// It wraps github.com/shirou/gopsutil/v4/host, which reads platform
// details from the appropriate native source (procfs on Linux, sysctl on
// macOS/BSD, the Windows API on Windows). The jdk-probe CLI prints this
// summary so probe reports can be tied to the machine they ran on.
package hostutil
