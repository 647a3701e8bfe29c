package models

type Stats struct {
	TotalUsers     int `json:"total_users"`
	TotalEvents    int `json:"total_events"`
	TotalOrders    int `json:"total_orders"`
	UpcomingEvents int `json:"upcoming_events"`
}
