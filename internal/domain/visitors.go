package domain

// AdminVisitorStats aggregates visitors over the last Days days.
type AdminVisitorStats struct {
	Days          int               `json:"days"`
	TotalVisitors int64             `json:"totalVisitors"`
	ByDay         []DailyVisitors   `json:"byDay"`
	ByCountry     []CountryVisitors `json:"byCountry"`
}

type DailyVisitors struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

type CountryVisitors struct {
	Country string `json:"country"`
	Count   int64  `json:"count"`
}
