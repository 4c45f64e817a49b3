package model

type BinActivityRecord struct {
	Location      string `json:"location" example:"C2449"`
	ActivityCount int    `json:"activity_count" example:"12"`
}

// ActivityReport is the per-prefix tally of a bin activity CSV, sorted by
// descending count. MinActivity and MaxActivity are 0 for an empty report.
type ActivityReport struct {
	Records         []BinActivityRecord `json:"activity_data"`
	MinActivity     int                 `json:"min_activity"`
	MaxActivity     int                 `json:"max_activity"`
	TotalActivities int                 `json:"total_activities"`
}
