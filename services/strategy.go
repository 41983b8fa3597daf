package services

// RetailCycle is one quarter of the development calendar. Development
// runs three months, consumer launch lands four months after the cycle
// closes.
type RetailCycle struct {
	Name        string   `json:"name"`
	StartMonth  int      `json:"startMonth"`
	EndMonth    int      `json:"endMonth"`
	TargetDates []string `json:"targetDates"`
	// Span geometry over a 12-month row, as percentages.
	Left        float64 `json:"left"`
	Width       float64 `json:"width"`
	LaunchLeft  float64 `json:"launchLeft"`
}

var retailCycles = []RetailCycle{
	{Name: "Summer Readiness", StartMonth: 0, EndMonth: 2, TargetDates: []string{"Memorial Day", "Father's Day", "Summer Travel"}},
	{Name: "Back-to-School & Harvest", StartMonth: 3, EndMonth: 5, TargetDates: []string{"Back to School", "Labor Day", "Halloween Prep"}},
	{Name: "Holiday Gifting", StartMonth: 6, EndMonth: 8, TargetDates: []string{"Black Friday", "Cyber Monday", "Christmas", "Hanukkah"}},
	{Name: "Spring & Love", StartMonth: 9, EndMonth: 11, TargetDates: []string{"New Year's", "Valentine's Day", "Mother's Day"}},
}

// StrategyCycles returns the retail development calendar with span
// geometry precomputed for the annual flow chart.
func StrategyCycles() []RetailCycle {
	cycles := make([]RetailCycle, len(retailCycles))
	copy(cycles, retailCycles)
	for i := range cycles {
		c := &cycles[i]
		c.Left = float64(c.StartMonth) / 12 * 100
		c.Width = float64(c.EndMonth-c.StartMonth+1) / 12 * 100
		c.LaunchLeft = float64(c.EndMonth+4) / 12 * 100
	}
	return cycles
}

// CycleForMonth returns the cycle covering the given month (0-11), or
// nil when none matches.
func CycleForMonth(month int) *RetailCycle {
	cycles := StrategyCycles()
	for i := range cycles {
		if month >= cycles[i].StartMonth && month <= cycles[i].EndMonth {
			return &cycles[i]
		}
	}
	return nil
}
