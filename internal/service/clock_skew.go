package service

import "time"

// DefaultSkewTolerance is the drift allowed between a sidecar timestamp and
// the mtime the cloud client gave the snapshot file.
const DefaultSkewTolerance = 2 * time.Second

// ClockSkewPolicy decides how far the snapshot file mtime can be trusted
// relative to the timestamp recorded in its sidecar. Both inputs and the
// result have whole-second precision.
type ClockSkewPolicy interface {
	EffectiveRemoteTime(sidecar, file time.Time) time.Time
}

// NewClockSkewPolicy picks the policy for platform (a GOOS value).
func NewClockSkewPolicy(platform string) ClockSkewPolicy {
	if platform == "windows" {
		return toleranceSkewPolicy{tolerance: DefaultSkewTolerance}
	}
	return latestSkewPolicy{}
}

// latestSkewPolicy trusts whichever timestamp is later.
type latestSkewPolicy struct{}

func (latestSkewPolicy) EffectiveRemoteTime(sidecar, file time.Time) time.Time {
	sidecar, file = sidecar.Truncate(time.Second), file.Truncate(time.Second)
	if file.After(sidecar) {
		return file
	}
	return sidecar
}

// toleranceSkewPolicy treats timestamps within tolerance of each other as
// the same write and otherwise prefers the significantly later one. On
// whole seconds it selects the same value as latestSkewPolicy.
type toleranceSkewPolicy struct {
	tolerance time.Duration
}

func (p toleranceSkewPolicy) EffectiveRemoteTime(sidecar, file time.Time) time.Time {
	sidecar, file = sidecar.Truncate(time.Second), file.Truncate(time.Second)

	switch {
	case sidecar.After(file.Add(p.tolerance)):
		return sidecar
	case file.After(sidecar.Add(p.tolerance)):
		return file
	case file.After(sidecar):
		return file
	default:
		return sidecar
	}
}
