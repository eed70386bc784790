package core

// DefaultNominalFPS is the frame rate at which all "per frame" tuning values are expressed.
const DefaultNominalFPS = 40

// StepNormalizer converts measured frame durations into a dimensionless step
// multiplier. Motion and decay rates are tuned as "units per nominal frame"
// and multiplied by the returned dt before being applied.
//
// Firing cadence does not go through the normalizer; it compares wall-clock
// timestamps directly so it stays periodic regardless of frame jitter.
type StepNormalizer struct {
	nominalMS float64 // Nominal frame duration in milliseconds
	maxDT     float64 // Upper bound for a single step, 0 = unbounded
}

// NewStepNormalizer creates a normalizer for the given nominal frame rate.
// maxDT bounds a single step (e.g. after the process was suspended); pass 0
// to disable the bound.
func NewStepNormalizer(nominalFPS, maxDT float64) (*StepNormalizer, error) {
	if nominalFPS <= 0 {
		return nil, ConfigErrorf("timing.nominal_fps", "must be positive, got %v", nominalFPS)
	}
	if maxDT < 0 {
		return nil, ConfigErrorf("timing.max_dt", "must not be negative, got %v", maxDT)
	}
	return &StepNormalizer{
		nominalMS: 1000.0 / nominalFPS,
		maxDT:     maxDT,
	}, nil
}

// NominalMillis returns the nominal frame duration in milliseconds.
func (n *StepNormalizer) NominalMillis() float64 {
	return n.nominalMS
}

// DT returns elapsedMS divided by the nominal frame duration.
// Negative samples (clock went backwards) produce 0.
func (n *StepNormalizer) DT(elapsedMS float64) float64 {
	if elapsedMS <= 0 {
		return 0
	}
	dt := elapsedMS / n.nominalMS
	if n.maxDT > 0 && dt > n.maxDT {
		dt = n.maxDT
	}
	return dt
}
