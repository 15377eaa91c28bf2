package dashboard

// Region identifies one independently loading display area of the page.
type Region int

const (
	RegionMetrics Region = iota
	RegionCharts
	RegionRecent
	RegionAudit
)

var regionNames = map[Region]string{
	RegionMetrics: "metrics",
	RegionCharts:  "charts",
	RegionRecent:  "recent",
	RegionAudit:   "audit",
}

// Regions lists every region in page order.
var Regions = []Region{RegionMetrics, RegionCharts, RegionRecent, RegionAudit}

func (r Region) String() string {
	if n, ok := regionNames[r]; ok {
		return n
	}
	return "unknown"
}

// ParseRegion maps a URL segment onto a Region.
func ParseRegion(s string) (Region, bool) {
	for r, n := range regionNames {
		if n == s {
			return r, true
		}
	}
	return 0, false
}

// loading reports the flag that belongs to r.
func (l Loading) loading(r Region) bool {
	switch r {
	case RegionMetrics:
		return l.Metrics
	case RegionCharts:
		return l.Charts
	case RegionRecent:
		return l.RecentContent
	case RegionAudit:
		return l.AuditLogs
	}
	return false
}

func (l *Loading) clear(r Region) {
	switch r {
	case RegionMetrics:
		l.Metrics = false
	case RegionCharts:
		l.Charts = false
	case RegionRecent:
		l.RecentContent = false
	case RegionAudit:
		l.AuditLogs = false
	}
}
