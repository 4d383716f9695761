//go:build !windows && !darwin && !linux

package volume

import (
	"fmt"
	"runtime"
)

func NewSystem() (Actuator, error) {
	return nil, fmt.Errorf("volume type %v is not supported on %s; use %v or %v", TypeSystem, runtime.GOOS, TypeCommand, TypeNone)
}
