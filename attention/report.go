package attention

import "sort"

// recentEfficiencyWindow bounds how many trailing cycles feed the
// RecentEfficiency figure.
const recentEfficiencyWindow = 10

// topPriorityCount bounds the TopPriority list of the report.
const topPriorityCount = 5

// NodePriority pairs a node id with its current composite priority.
type NodePriority struct {
	ID       string
	Priority float64
}

// Report summarizes allocator behavior over its history.
// All rates are percentages in [0, 100].
type Report struct {
	TotalNodes        int
	BudgetUtilization float64 // last cycle's used budget / total budget
	SuccessRate       float64 // share of feedback entries above 0.5
	WasteReduction    float64 // complement of the wasted-feedback share
	RecentEfficiency  float64 // mean cycle efficiency over the trailing window
	TopPriority       []NodePriority
	HistoryLength     int
}

// Report produces the utilization/success/waste summary for the current
// state. Read-only; calling it never advances the cycle.
func (a *Allocator) Report() Report {
	r := Report{
		TotalNodes:        len(a.order),
		BudgetUtilization: a.used / a.budget * 100,
		HistoryLength:     len(a.efficiencies),
	}

	if a.feedbackSeen > 0 {
		r.SuccessRate = float64(a.successes) / float64(a.feedbackSeen) * 100
		wasteRate := float64(a.wasted) / float64(a.feedbackSeen)
		r.WasteReduction = (1.0 - wasteRate) * 100
	}

	if n := len(a.efficiencies); n > 0 {
		start := n - recentEfficiencyWindow
		if start < 0 {
			start = 0
		}
		sum := 0.0
		for _, e := range a.efficiencies[start:] {
			sum += e
		}
		r.RecentEfficiency = sum / float64(n-start) * 100
	}

	// Current top priorities, stable on ties by registration order.
	priorities := make([]NodePriority, 0, len(a.order))
	for _, id := range a.order {
		priorities = append(priorities, NodePriority{ID: id, Priority: a.nodes[id].value.Total()})
	}
	sort.SliceStable(priorities, func(i, j int) bool {
		return priorities[i].Priority > priorities[j].Priority
	})
	if len(priorities) > topPriorityCount {
		priorities = priorities[:topPriorityCount]
	}
	r.TopPriority = priorities

	return r
}
