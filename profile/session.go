package profile

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"
)

// ErrProfile indicates a profile that could not be started or written.
var ErrProfile = errors.New("profile")

// Written describes a profile file written by [Session.Stop].
type Written struct {
	Name string
	Path string
}

// Session is a running profiling session.
//
// Create instances with [Config.Start].
type Session struct {
	cpu       *os.File
	snapshots []snapshot
	prevMutex int
	block     bool
	mutex     bool
	stopped   bool
}

// Start applies the sampling rates of enabled block and mutex profiles and
// starts CPU profiling if enabled. End the session with [Session.Stop].
func (c *Config) Start() (*Session, error) {
	s := &Session{
		snapshots: c.snapshots(),
		block:     c.Block != "",
		mutex:     c.Mutex != "",
	}

	if s.block {
		runtime.SetBlockProfileRate(c.BlockRate)
	}

	if s.mutex {
		s.prevMutex = runtime.SetMutexProfileFraction(c.MutexFraction)
	}

	if c.CPU == "" {
		return s, nil
	}

	f, err := os.Create(c.CPU) //nolint:gosec // Profile path from CLI flag is expected.
	if err != nil {
		s.restoreRates()

		return nil, fmt.Errorf("%w: creating cpu profile: %w", ErrProfile, err)
	}

	err = pprof.StartCPUProfile(f)
	if err != nil {
		s.restoreRates()

		return nil, fmt.Errorf("%w: starting cpu profile: %w", ErrProfile, errors.Join(err, f.Close()))
	}

	s.cpu = f
	s.snapshots = append([]snapshot{{"cpu", c.CPU}}, s.snapshots...)

	return s, nil
}

// Stop ends CPU profiling, writes every enabled snapshot profile, and
// restores the sampling rates changed by [Config.Start]. It returns the
// profiles written, in order, even when a later one fails. Calling Stop again
// does nothing.
func (s *Session) Stop() ([]Written, error) {
	if s.stopped {
		return nil, nil
	}

	s.stopped = true

	defer s.restoreRates()

	var written []Written

	for _, snap := range s.snapshots {
		var err error
		if snap.name == "cpu" {
			err = s.stopCPU()
		} else {
			err = writeProfile(snap.name, snap.path)
		}

		if err != nil {
			return written, fmt.Errorf("%w: %s: %w", ErrProfile, snap.name, err)
		}

		written = append(written, Written{Name: snap.name, Path: snap.path})
	}

	return written, nil
}

func (s *Session) stopCPU() error {
	pprof.StopCPUProfile()

	err := s.cpu.Close()
	if err != nil {
		return fmt.Errorf("closing: %w", err)
	}

	return nil
}

func (s *Session) restoreRates() {
	if s.block {
		runtime.SetBlockProfileRate(0)
	}

	if s.mutex {
		runtime.SetMutexProfileFraction(s.prevMutex)
	}
}

// writeProfile writes the named pprof profile to path.
func writeProfile(name, path string) error {
	prof := pprof.Lookup(name)
	if prof == nil {
		return fmt.Errorf("unknown profile %q", name)
	}

	f, err := os.Create(path) //nolint:gosec // Profile path from CLI flag is expected.
	if err != nil {
		return fmt.Errorf("creating: %w", err)
	}

	err = prof.WriteTo(f, 0)
	if err != nil {
		return fmt.Errorf("writing: %w", errors.Join(err, f.Close()))
	}

	err = f.Close()
	if err != nil {
		return fmt.Errorf("closing: %w", err)
	}

	return nil
}
