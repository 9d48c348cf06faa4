package response

import (
	"court-booking/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type StatsResponse struct {
	TotalBookings     int64   `json:"total_bookings"`
	TotalUsers        int64   `json:"total_users"`
	TotalRevenue      float64 `json:"total_revenue"`
	TotalRevenueMinor int64   `json:"total_revenue_minor"`
}

func FromStatsView(v *queries.StatsView) *StatsResponse {
	res := &StatsResponse{}
	_ = copier.Copy(res, v)
	res.TotalRevenue = float64(v.TotalRevenueMinor) / 100.0
	return res
}
