package domain

// Stats summarises accounts and requests.
type Stats struct {
	Requesters        int64 `json:"requesters"`
	Volunteers        int64 `json:"volunteers"`
	AwaitingVolunteer int64 `json:"awaiting_volunteer"`
	InProgress        int64 `json:"in_progress"`
	Done              int64 `json:"done"`
	Cancelled         int64 `json:"cancelled"`
}
