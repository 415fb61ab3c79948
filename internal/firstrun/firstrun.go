// Package firstrun decides whether the setup wizard must run and records
// when it has completed.
package firstrun

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"

	"office97/internal/logger"
	"office97/internal/startup"
)

// MarkerName is the marker file kept in the user-data directory.
const MarkerName = ".office97-setup-done"

// ShouldRunSetup is false when args carry a direct-app switch or
// --no-setup, and otherwise true exactly when the marker is missing.
func ShouldRunSetup(args []string, markerExists bool) bool {
	return required(startup.ParseArgs(args), markerExists)
}

func required(f startup.Flags, markerExists bool) bool {
	if f.SkipsSetup() {
		return false
	}
	return !markerExists
}

// Marker is the persisted "setup has completed" fact.
type Marker struct {
	path   string
	logger logger.Logger
	now    func() time.Time
}

func NewMarker(userDataDir string, log logger.Logger) *Marker {
	if log == nil {
		log = logger.NoOpLogger{}
	}
	return &Marker{
		path:   filepath.Join(userDataDir, MarkerName),
		logger: log,
		now:    time.Now,
	}
}

func (m *Marker) Path() string {
	return m.path
}

// Exists treats any stat failure as absence.
func (m *Marker) Exists() bool {
	info, err := os.Stat(m.path)
	return err == nil && !info.IsDir()
}

// SetupRequired applies the gate to already-parsed switches.
func (m *Marker) SetupRequired(f startup.Flags) bool {
	return required(f, m.Exists())
}

// MarkDone records completion. Failures are logged and swallowed; setup is
// simply offered again on the next run.
func (m *Marker) MarkDone() {
	if err := m.write(); err != nil {
		m.logger.Warning("FirstRun", "could not record setup completion", map[string]interface{}{
			"path":  m.path,
			"error": err.Error(),
		})
		return
	}
	m.logger.Info("FirstRun", "setup completion recorded", map[string]interface{}{
		"path": m.path,
	})
}

// Completed returns the timestamp stored in the marker.
func (m *Marker) Completed() (time.Time, error) {
	data, err := os.ReadFile(m.path)
	if err != nil {
		return time.Time{}, err
	}
	return time.Parse(time.RFC3339Nano, string(data))
}

func (m *Marker) write() error {
	dir := filepath.Dir(m.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create user data dir: %w", err)
	}

	lock := flock.New(m.path + ".lock")
	locked, err := lock.TryLock()
	if err != nil {
		return fmt.Errorf("lock marker: %w", err)
	}
	if !locked {
		return errors.New("marker is being written by another instance")
	}
	defer func() {
		_ = lock.Unlock()
		_ = os.Remove(m.path + ".lock")
	}()

	tmp, err := os.CreateTemp(dir, MarkerName+".*")
	if err != nil {
		return fmt.Errorf("create temp marker: %w", err)
	}
	stamp := m.now().UTC().Format(time.RFC3339Nano)
	if _, err := tmp.WriteString(stamp); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write marker: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close marker: %w", err)
	}
	if err := os.Rename(tmp.Name(), m.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("install marker: %w", err)
	}
	return nil
}
