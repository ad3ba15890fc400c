package entity

import "time"

// AdminStats is the dashboard summary over all listings and messages.
type AdminStats struct {
	TotalShops         int            `json:"totalShops"`
	PendingShops       int            `json:"pendingApprovals"`
	ApprovedShops      int            `json:"approvedShops"`
	RejectedShops      int            `json:"rejectedShops"`
	CategoriesInUse    int            `json:"totalCategories"`
	DistrictsInUse     int            `json:"totalDistricts"`
	ContactMessages    int            `json:"contactMessages"`
	UnreadMessages     int            `json:"unreadMessages"`
	ApprovedByCategory map[string]int `json:"approvedByCategory"`
	ApprovedByDistrict map[string]int `json:"approvedByDistrict"`
	GeneratedAt        time.Time      `json:"generatedAt"`
}

// ComputeAdminStats summarises a snapshot of listings and contact messages.
// Categories and districts in use are counted over approved listings only.
func ComputeAdminStats(shops []*Shop, messages []*ContactMessage, now time.Time) AdminStats {
	stats := AdminStats{
		TotalShops:         len(shops),
		ContactMessages:    len(messages),
		ApprovedByCategory: make(map[string]int),
		ApprovedByDistrict: make(map[string]int),
		GeneratedAt:        now,
	}

	for _, s := range shops {
		switch s.Status() {
		case StatusPending:
			stats.PendingShops++
		case StatusApproved:
			stats.ApprovedShops++
			if s.Category != "" {
				stats.ApprovedByCategory[s.Category]++
			}
			if s.District != "" {
				stats.ApprovedByDistrict[s.District]++
			}
		case StatusRejected:
			stats.RejectedShops++
		}
	}
	stats.CategoriesInUse = len(stats.ApprovedByCategory)
	stats.DistrictsInUse = len(stats.ApprovedByDistrict)

	for _, m := range messages {
		if !m.Read {
			stats.UnreadMessages++
		}
	}

	return stats
}
