package dto

import "time"

// ChangeUserStatusRequest là DTO cho request đổi trạng thái user (admin)
type ChangeUserStatusRequest struct {
	ID     uint `json:"id" binding:"required"`
	Status int  `json:"status"`
}

// UserResponse là DTO cho response của user
type UserResponse struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	PhoneNumber string    `json:"phoneNumber"`
	Avatar      string    `json:"avatar"`
	Role        int       `json:"role"`
	Status      int       `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

// DashboardStatsResponse là DTO cho thống kê dashboard của admin
type DashboardStatsResponse struct {
	TotalUsers       int64   `json:"totalUsers"`
	TotalCustomers   int64   `json:"totalCustomers"`
	TotalHouseOwners int64   `json:"totalHouseOwners"`
	TotalProperties  int64   `json:"totalProperties"`
	TotalRooms       int64   `json:"totalRooms"`
	TotalBookings    int64   `json:"totalBookings"`
	TotalReviews     int64   `json:"totalReviews"`
	TotalRevenue     float64 `json:"totalRevenue"`
}
