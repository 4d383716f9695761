package player

import (
	"fmt"

	"github.com/shirou/gopsutil/process"
)

// Detector looks for a running desktop playback client.
type Detector struct {
	conf *Configuration

	processes func() ([]*process.Process, error)
}

func NewDetector(conf *Configuration) *Detector {
	return &Detector{
		conf:      conf,
		processes: process.Processes,
	}
}

// Find returns the PIDs of all processes matching the configured
// ProcessName.
func (this *Detector) Find() (result []int32, _ error) {
	if this.conf.ProcessName.IsZero() {
		return nil, nil
	}

	candidates, err := this.processes()
	if err != nil {
		return nil, fmt.Errorf("cannot list processes: %w", err)
	}

	for _, candidate := range candidates {
		name, err := candidate.Name()
		if err != nil {
			// Process vanished or is not accessible.
			continue
		}
		if this.conf.ProcessName.MatchString(name) {
			result = append(result, candidate.Pid)
		}
	}
	return
}

// IsRunning reports whether at least one matching process exists. If no
// ProcessName is configured it is always true.
func (this *Detector) IsRunning() (bool, error) {
	if this.conf.ProcessName.IsZero() {
		return true, nil
	}
	pids, err := this.Find()
	if err != nil {
		return false, err
	}
	return len(pids) > 0, nil
}
