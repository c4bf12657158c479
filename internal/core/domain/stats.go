package domain

// AdminStats is the dashboard summary shown on the admin console.
type AdminStats struct {
	Users         int64
	Products      int64
	OrdersPending int64
	TicketsOpen   int64
}
