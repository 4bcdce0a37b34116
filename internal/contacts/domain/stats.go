package domain

// RecentWindowDays bounds "recent" in contact stats.
const RecentWindowDays = 30

type Stats struct {
	TotalContacts  int64 `json:"totalContacts"`
	TotalCompanies int64 `json:"totalCompanies"`
	RecentContacts int64 `json:"recentContacts"`
}
