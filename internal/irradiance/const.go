package irradiance

// Named defaults. The radiometric constants are empirical calibration values,
// not physical laws; all of them are overridable per computation via Params.
const (
	// CalibrationDivisor maps raw accumulated W/m² onto the display unit
	// calibrated against the reference configuration (10 m, 10 W).
	CalibrationDivisor = 0.005
	// NearFieldCoeff and NearFieldThreshold drive the approximate
	// finite-source correction: when L < NearFieldThreshold*max(ls,hs) the
	// field is scaled by 1 + NearFieldCoeff*max(ls,hs)/L.
	NearFieldCoeff     = 0.1
	NearFieldThreshold = 10.0

	// Adaptive source sampling: clamp(accuracy/10, MinSourceSamples, MaxSourceSamples)
	// samples per axis when Params.SourceSamples == 0.
	MinSourceSamples = 2
	MaxSourceSamples = 10

	// Default run parameters (also the zero-value fill-ins for JSON configs).
	Power          = 500.0 // W
	Standoff       = 500.0 // m
	ReceiverLength = 100.0 // m
	ReceiverHeight = 100.0 // m
	SourceLength   = 1.0   // m
	SourceHeight   = 1.0   // m
	PlacementX     = 50.0  // m
	PlacementY     = 50.0  // m
	Accuracy       = 30

	PNGOut = "field.png"
	Gamma  = 0.5

	// LogFloor bounds the log display mode away from zero cells.
	LogFloor = 1e-10

	// Parallel path engages only when every worker gets at least this many
	// source samples; below that the goroutine setup dominates.
	minSamplesPerWorker = 2
)
