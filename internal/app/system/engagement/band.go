package engagement

// Band is the display bucket for a score on the dashboard.
type Band struct {
	Label string // High | Medium | At Risk
	Color string // hex fill used by the chart
	Class string // css modifier
}

var (
	bandHigh   = Band{Label: "High", Color: "#10b981", Class: "high"}
	bandMedium = Band{Label: "Medium", Color: "#f59e0b", Class: "medium"}
	bandAtRisk = Band{Label: "At Risk", Color: "#ef4444", Class: "at-risk"}
)

// BandFor maps a score to its display band: 70+ is High, 40+ Medium,
// anything lower At Risk.
func BandFor(score float64) Band {
	switch {
	case score >= 70:
		return bandHigh
	case score >= 40:
		return bandMedium
	default:
		return bandAtRisk
	}
}
