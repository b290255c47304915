package platform

import (
	"context"
	"errors"
	"runtime"
	"testing"

	"github.com/shirou/gopsutil/v3/host"
	"github.com/stretchr/testify/assert"
)

func TestFormatLabel(t *testing.T) {
	tests := []struct {
		name string
		info host.InfoStat
		want string
	}{
		{
			name: "windows",
			info: host.InfoStat{OS: "windows", Platform: "Microsoft Windows 10 Pro", PlatformVersion: "10.0.19045 Build 19045", KernelArch: "x86_64"},
			want: "Microsoft Windows 10 Pro 10.0.19045 Build 19045 64-bit",
		},
		{
			name: "linux",
			info: host.InfoStat{OS: "linux", Platform: "ubuntu", PlatformVersion: "22.04", KernelArch: "aarch64"},
			want: "ubuntu 22.04 64-bit",
		},
		{
			name: "32-bit",
			info: host.InfoStat{Platform: "debian", PlatformVersion: "12", KernelArch: "i686"},
			want: "debian 12 32-bit",
		},
		{
			name: "platform missing",
			info: host.InfoStat{OS: "freebsd", KernelArch: "amd64"},
			want: "freebsd 64-bit",
		},
		{
			name: "version already in name",
			info: host.InfoStat{Platform: "Windows 11", PlatformVersion: "11", KernelArch: "amd64"},
			want: "Windows 11 64-bit",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := tt.info
			assert.Equal(t, tt.want, formatLabel(&info))
		})
	}
}

func TestFormatLabel_Empty(t *testing.T) {
	assert.Equal(t, runtimeLabel(), formatLabel(&host.InfoStat{}))
}

func TestProbe_FallsBackOnError(t *testing.T) {
	p := &Probe{info: func(context.Context) (*host.InfoStat, error) {
		return nil, errors.New("no wmi")
	}}

	assert.Equal(t, runtime.GOOS+" "+bitness(runtime.GOARCH), p.Label(context.Background()))
}

func TestProbe_CachesLabel(t *testing.T) {
	calls := 0
	p := &Probe{info: func(context.Context) (*host.InfoStat, error) {
		calls++
		return &host.InfoStat{Platform: "ubuntu", PlatformVersion: "24.04", KernelArch: "x86_64"}, nil
	}}

	assert.Equal(t, "ubuntu 24.04 64-bit", p.Label(context.Background()))
	assert.Equal(t, "ubuntu 24.04 64-bit", p.Label(context.Background()))
	assert.Equal(t, 1, calls)
}

func TestBitness(t *testing.T) {
	assert.Equal(t, "64-bit", bitness("AMD64"))
	assert.Equal(t, "64-bit", bitness("arm64"))
	assert.Equal(t, "32-bit", bitness("386"))
	assert.Equal(t, "32-bit", bitness("arm"))
}
