// Package version keeps track of the fork versions a beacon state can be in.
package version

const (
	Phase0 = iota
	Altair
)

// String returns the fork name of the given version number.
func String(version int) string {
	switch version {
	case Phase0:
		return "phase0"
	case Altair:
		return "altair"
	default:
		return "unknown version"
	}
}
