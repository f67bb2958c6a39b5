// Package crashdump records panics of the host to disk so they can be
// reported after the process is gone.
package crashdump

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"runtime"
	"runtime/debug"
	"time"

	"github.com/towelWet/TowelHost/internal/host"
	"github.com/towelWet/TowelHost/pkg/config"
)

const (
	shortIDLength = 8
	panicNilStr   = "panic(nil)"
)

// CrashInfo is the content of one dump file.
type CrashInfo struct {
	ID         string         `json:"id"`
	Timestamp  time.Time      `json:"timestamp"`
	Version    string         `json:"version"`
	PanicValue string         `json:"panic_value"`
	StackTrace string         `json:"stack_trace"`
	Runtime    RuntimeInfo    `json:"runtime"`
	Host       *HostInfo      `json:"host,omitempty"`
	Config     *config.Config `json:"config,omitempty"`
}

// RuntimeInfo describes the Go runtime at crash time.
type RuntimeInfo struct {
	GOOS         string `json:"goos"`
	GOARCH       string `json:"goarch"`
	GoVersion    string `json:"go_version"`
	NumGoroutine int    `json:"num_goroutine"`
	NumCPU       int    `json:"num_cpu"`
}

// HostInfo is what the host was doing when it crashed.
type HostInfo struct {
	Name       string  `json:"name"`
	Status     string  `json:"status"`
	PluginName string  `json:"plugin_name,omitempty"`
	AudioState string  `json:"audio_state"`
	SampleRate float64 `json:"sample_rate,omitempty"`
	BlockSize  int     `json:"block_size,omitempty"`
	AudioError string  `json:"audio_error,omitempty"`
}

// Source provides the host state. A nil Source is allowed.
type Source interface {
	Snapshot() host.Snapshot
}

// Collect builds a CrashInfo from a recovered panic value. src and cfg may be nil.
func Collect(recovered any, version string, src Source, cfg *config.Config) *CrashInfo {
	now := time.Now()
	value := formatPanicValue(recovered)

	info := &CrashInfo{
		ID:         crashID(now, value),
		Timestamp:  now,
		Version:    version,
		PanicValue: value,
		StackTrace: string(debug.Stack()),
		Runtime: RuntimeInfo{
			GOOS:         runtime.GOOS,
			GOARCH:       runtime.GOARCH,
			GoVersion:    runtime.Version(),
			NumGoroutine: runtime.NumGoroutine(),
			NumCPU:       runtime.NumCPU(),
		},
		Config: cfg,
	}

	if src != nil {
		info.Host = hostInfo(src)
	}

	return info
}

// hostInfo takes a snapshot, tolerating a host left locked by the panic.
func hostInfo(src Source) *HostInfo {
	done := make(chan host.Snapshot, 1)

	go func() {
		defer func() { _ = recover() }()

		done <- src.Snapshot()
	}()

	select {
	case snap := <-done:
		return &HostInfo{
			Name:       snap.Name,
			Status:     snap.Status.String(),
			PluginName: snap.PluginName,
			AudioState: snap.AudioState.String(),
			SampleRate: snap.Audio.SampleRate,
			BlockSize:  snap.Audio.BlockSize,
			AudioError: snap.AudioError,
		}
	case <-time.After(snapshotTimeout):
		return nil
	}
}

const snapshotTimeout = 100 * time.Millisecond

// formatPanicValue renders a recovered value, including panic(nil).
func formatPanicValue(v any) string {
	if v == nil {
		return panicNilStr
	}

	if _, ok := v.(*runtime.PanicNilError); ok {
		return panicNilStr
	}

	if err, ok := v.(error); ok {
		return err.Error()
	}

	return fmt.Sprintf("%v", v)
}

// crashID returns crash-<timestamp>-<hash of time and value>.
func crashID(ts time.Time, value string) string {
	sum := sha256.Sum256(fmt.Appendf(nil, "%d-%s", ts.UnixNano(), value))

	return fmt.Sprintf("crash-%s-%s", ts.Format("20060102T150405"), hex.EncodeToString(sum[:])[:shortIDLength])
}
