// Package platform describes the running operating system for prompts.
package platform

import (
	"context"
	"runtime"
	"strings"
	"sync"

	"github.com/shirou/gopsutil/v3/host"

	"github.com/custodia-labs/driverfinder/internal/core/ports/driven"
	"github.com/custodia-labs/driverfinder/internal/logger"
)

// Ensure Probe implements the interface.
var _ driven.PlatformProbe = (*Probe)(nil)

// Probe builds platform labels from gopsutil host information.
// The label is computed on first use and cached.
type Probe struct {
	info func(ctx context.Context) (*host.InfoStat, error)

	once  sync.Once
	label string
}

// NewProbe creates a probe backed by host.InfoWithContext.
func NewProbe() *Probe {
	return &Probe{info: host.InfoWithContext}
}

// Label returns "<platform> <version> <bitness>", e.g. "Microsoft Windows 10 Pro 10.0.19045 64-bit".
func (p *Probe) Label(ctx context.Context) string {
	p.once.Do(func() {
		info, err := p.info(ctx)
		if err != nil || info == nil {
			logger.Debug("host info unavailable: %v", err)
			p.label = runtimeLabel()
			return
		}
		p.label = formatLabel(info)
	})
	return p.label
}

// formatLabel renders host info, filling gaps from the runtime.
func formatLabel(info *host.InfoStat) string {
	name := strings.TrimSpace(info.Platform)
	if name == "" {
		name = strings.TrimSpace(info.OS)
	}
	if name == "" {
		return runtimeLabel()
	}

	parts := []string{name}
	if v := strings.TrimSpace(info.PlatformVersion); v != "" && !strings.Contains(name, v) {
		parts = append(parts, v)
	}

	arch := info.KernelArch
	if arch == "" {
		arch = runtime.GOARCH
	}
	parts = append(parts, bitness(arch))

	return strings.Join(parts, " ")
}

func runtimeLabel() string {
	return runtime.GOOS + " " + bitness(runtime.GOARCH)
}

// bitness maps an architecture name to "64-bit" or "32-bit".
func bitness(arch string) string {
	switch strings.ToLower(arch) {
	case "x86_64", "amd64", "arm64", "aarch64", "ppc64", "ppc64le", "s390x", "riscv64", "loong64", "mips64", "mips64le":
		return "64-bit"
	default:
		return "32-bit"
	}
}
