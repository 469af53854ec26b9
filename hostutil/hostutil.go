// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package hostutil

import (
	"context"
	"fmt"
	"runtime"

	"github.com/shirou/gopsutil/v4/host"
)

// Summary describes the host a probe ran on.
type Summary struct {
	OS              string `json:"os"`
	Platform        string `json:"platform"`
	PlatformVersion string `json:"platformVersion"`
	KernelArch      string `json:"kernelArch"`
	Hostname        string `json:"hostname"`
}

// Describe collects a host summary. When platform details cannot be read
// (restricted containers, unusual platforms), the summary falls back to
// runtime.GOOS/GOARCH rather than failing: diagnostics must not break
// probing.
func Describe(ctx context.Context) Summary {
	summary := Summary{
		OS:         runtime.GOOS,
		KernelArch: runtime.GOARCH,
	}

	info, err := host.InfoWithContext(ctx)
	if err != nil {
		return summary
	}

	summary.OS = info.OS
	summary.Platform = info.Platform
	summary.PlatformVersion = info.PlatformVersion
	summary.Hostname = info.Hostname
	if info.KernelArch != "" {
		summary.KernelArch = info.KernelArch
	}
	return summary
}

// String renders the summary as a single human-readable line.
func (s Summary) String() string {
	if s.Platform == "" {
		return fmt.Sprintf("%s/%s", s.OS, s.KernelArch)
	}
	return fmt.Sprintf("%s %s (%s, %s)", s.Platform, s.PlatformVersion, s.OS, s.KernelArch)
}
