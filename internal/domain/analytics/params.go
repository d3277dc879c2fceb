package analytics

// Params holds the policy thresholds for one dataset. These are tuning
// knobs, not structural invariants: the engine only requires that they are
// applied consistently.
type Params struct {
	PassThresholdPct    float64 // minimum accuracy for a streak-qualifying event
	EasyMinPct          float64 // derived difficulty: accuracy >= EasyMinPct -> easy
	MediumMinPct        float64 // derived difficulty: accuracy >= MediumMinPct -> medium
	TrendBandPct        float64 // deltas within +-TrendBandPct count as stable
	DipThresholdPct     float64 // recent average this far below overall -> dip
	SlowSecPerUnit      float64 // average seconds per unit above this -> pacing hint
	SpeedMaxSecPerUnit  float64 // speed_accurate: seconds per unit must be below this
	SpeedMinAccuracyPct float64 // speed_accurate: accuracy must be at least this
	StreakTarget        int     // streak achievement fires when the streak reaches this
	VolumeTarget        int     // volume achievement fires at this event count
	RecentScoresCap     int     // per-category score ring size
	ImprovementMinSize  int     // minimum ring length before improvement is computed
	RecentWindow        int     // activity-log entries compared against the running average
	ActivityLogCap      int     // bounded recent-activity log length
	MonthlyBucketCap    int     // rolling calendar months retained
}

// QuizParams are the defaults for the quiz dataset.
func QuizParams() Params {
	return Params{
		PassThresholdPct:    70,
		EasyMinPct:          80,
		MediumMinPct:        60,
		TrendBandPct:        5,
		DipThresholdPct:     10,
		SlowSecPerUnit:      90,
		SpeedMaxSecPerUnit:  30,
		SpeedMinAccuracyPct: 80,
		StreakTarget:        5,
		VolumeTarget:        10,
		RecentScoresCap:     10,
		ImprovementMinSize:  6,
		RecentWindow:        5,
		ActivityLogCap:      100,
		MonthlyBucketCap:    12,
	}
}

// ProgrammingParams are the defaults for the programming dataset. Problem
// attempts keep a much shorter activity log than quizzes.
func ProgrammingParams() Params {
	p := QuizParams()
	p.ActivityLogCap = 10
	return p
}
