package domain

// TicketStats holds per-status counts for a set of tickets.
// Total always equals Open + InProgress + Closed + Other.
type TicketStats struct {
	Total      int `json:"total"`
	Open       int `json:"open"`
	InProgress int `json:"in_progress"`
	Closed     int `json:"closed"`
	Other      int `json:"other"`
}

// ComputeStats counts tickets by status in a single pass. Statuses outside
// the known buckets only contribute to Total and Other.
func ComputeStats(tickets []Ticket) TicketStats {
	var stats TicketStats
	for _, t := range tickets {
		stats.Total++
		switch t.Status {
		case TicketStatusOpen:
			stats.Open++
		case TicketStatusInProgress:
			stats.InProgress++
		case TicketStatusClosed:
			stats.Closed++
		default:
			stats.Other++
		}
	}
	return stats
}
