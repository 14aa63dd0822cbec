package radialsampler

// Geographic domain limits.
const (
	maxLatDeg     = 90
	fullCircleDeg = 360
)

// maxWebPoints caps the web size a single configuration may request.
const maxWebPoints = 1 << 20

// Synoptic-scale web parameters following Loikith & Broccoli (2012):
// 10 degree bearing resolution with rings out to continental scale.
const (
	// SynopticRingSpacingKm is the distance between synoptic rings.
	SynopticRingSpacingKm = 50

	// SynopticMaxRadiusKm is the outermost synoptic ring distance.
	SynopticMaxRadiusKm = 2000

	// SynopticBearingStepDeg is the synoptic bearing resolution.
	SynopticBearingStepDeg = 10
)

// spanEpsilon absorbs floating point fuzz when deriving step counts from
// ranges (so 0:50:1000 yields the 1000 km ring).
const spanEpsilon = 1e-9
