package tree

// Physics tunes the integrator of a tree.
type Physics struct {
	Repulsion    float64 `toml:"repulsion"`
	Spring       float64 `toml:"spring"`
	RestLength   float64 `toml:"rest_length"`
	RestPerDepth float64 `toml:"rest_per_depth"`
	Upward       float64 `toml:"upward"`
	Damping      float64 `toml:"damping"`
	MinDist2     float64 `toml:"min_dist2"`
}

// DefaultPhysics returns the standard integrator parameters.
func DefaultPhysics() Physics {
	return Physics{
		Repulsion:    3.2,
		Spring:       2.6,
		RestLength:   7.8,
		RestPerDepth: 1.35,
		Upward:       3.0,
		Damping:      0.86,
		MinDist2:     0.25,
	}
}

// Spawn controls the procedural shape of a new tree.
type Spawn struct {
	MinChildren      int     `toml:"min_children"`
	MaxChildren      int     `toml:"max_children"`
	GrandchildChance float64 `toml:"grandchild_chance"`
	MinGrandchildren int     `toml:"min_grandchildren"`
	MaxGrandchildren int     `toml:"max_grandchildren"`
	BaseRadius       float64 `toml:"base_radius"`
	RadiusPerDepth   float64 `toml:"radius_per_depth"`
	BaseLift         float64 `toml:"base_lift"`
	LiftPerDepth     float64 `toml:"lift_per_depth"`
	LiftJitter       float64 `toml:"lift_jitter"`
	AngleJitter      float64 `toml:"angle_jitter"`
	Spread           float64 `toml:"spread"`
	Segments         int     `toml:"segments"`
}

// DefaultSpawn returns 4 to 6 children, each with an 85% chance of 2 or 3
// grandchildren.
func DefaultSpawn() Spawn {
	return Spawn{
		MinChildren:      4,
		MaxChildren:      6,
		GrandchildChance: 0.85,
		MinGrandchildren: 2,
		MaxGrandchildren: 3,
		BaseRadius:       4.6,
		RadiusPerDepth:   1.75,
		BaseLift:         2.2,
		LiftPerDepth:     1.1,
		LiftJitter:       0.8,
		AngleJitter:      0.5,
		Spread:           1.5,
		Segments:         48,
	}
}

// Growth times the reveal animation, in milliseconds.
type Growth struct {
	BaseDuration     float64 `toml:"base_duration_ms"`
	DurationPerDepth float64 `toml:"duration_per_depth_ms"`
	DelayPerDepth    float64 `toml:"delay_per_depth_ms"`
	MaxDepthDelay    float64 `toml:"max_depth_delay_ms"`
	IndexStagger     float64 `toml:"index_stagger_ms"`
	WaveEvery        int     `toml:"wave_every"`
	WaveDelay        float64 `toml:"wave_delay_ms"`
	ScaleDuration    float64 `toml:"scale_duration_ms"`
	MinScale         float64 `toml:"min_scale"`
}

// DefaultGrowth returns the standard wave timing.
func DefaultGrowth() Growth {
	return Growth{
		BaseDuration:     550,
		DurationPerDepth: 120,
		DelayPerDepth:    150,
		MaxDepthDelay:    400,
		IndexStagger:     90,
		WaveEvery:        4,
		WaveDelay:        160,
		ScaleDuration:    420,
		MinScale:         0.0001,
	}
}
