package controllers

import (
	"strconv"

	"homestay/constants"
	"homestay/dto"
	"homestay/middleware"
	"homestay/models"
	"homestay/response"
	"homestay/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AdminController struct {
	db  *gorm.DB
	svc *services.UserService
}

func NewAdminController(db *gorm.DB) *AdminController {
	return &AdminController{
		db:  db,
		svc: services.NewUserService(services.UserServiceOptions{DB: db}),
	}
}

// GetDashboardStats thống kê tổng quan cho dashboard admin
func (ctrl *AdminController) GetDashboardStats(c *gin.Context) {
	var stats dto.DashboardStatsResponse

	type counter struct {
		dest  *int64
		query *gorm.DB
	}

	counts := []counter{
		{&stats.TotalUsers, ctrl.db.Model(&models.User{})},
		{&stats.TotalCustomers, ctrl.db.Model(&models.User{}).Where("role = ?", constants.RoleCustomer)},
		{&stats.TotalHouseOwners, ctrl.db.Model(&models.User{}).Where("role = ?", constants.RoleHouseOwner)},
		{&stats.TotalProperties, ctrl.db.Model(&models.Property{})},
		{&stats.TotalRooms, ctrl.db.Model(&models.Room{})},
		{&stats.TotalBookings, ctrl.db.Model(&models.Booking{})},
		{&stats.TotalReviews, ctrl.db.Model(&models.Review{})},
	}

	for _, counter := range counts {
		if err := counter.query.Count(counter.dest).Error; err != nil {
			response.ServerError(c)
			return
		}
	}

	// Doanh thu tính trên booking đã hoàn thành
	err := ctrl.db.Model(&models.Booking{}).
		Where("status = ?", constants.BookingStatusCompleted).
		Select("COALESCE(SUM(final_amount), 0)").
		Scan(&stats.TotalRevenue).Error
	if err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, stats)
}

// GetProperties lấy toàn bộ chỗ ở cho admin, gồm cả chưa xác minh
// và đã ngừng hoạt động
func (ctrl *AdminController) GetProperties(c *gin.Context) {
	verifiedFilter := c.DefaultQuery("isVerified", "")
	activeFilter := c.DefaultQuery("isActive", "")

	page := 0
	limit := 10
	if p, err := strconv.Atoi(c.DefaultQuery("page", "0")); err == nil && p >= 0 {
		page = p
	}
	if l, err := strconv.Atoi(c.DefaultQuery("limit", "10")); err == nil && l > 0 {
		limit = l
	}

	tx := ctrl.db.Model(&models.Property{})
	if verifiedFilter != "" {
		tx = tx.Where("is_verified = ?", verifiedFilter == "true")
	}
	if activeFilter != "" {
		tx = tx.Where("is_active = ?", activeFilter == "true")
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		response.ServerError(c)
		return
	}

	var properties []models.Property
	if err := tx.Preload("Owner").Order("created_at DESC").
		Offset(page * limit).Limit(limit).Find(&properties).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.SuccessWithPagination(c, properties, page, limit, int(total))
}

// GetUsers lấy danh sách user, filter theo role và status
func (ctrl *AdminController) GetUsers(c *gin.Context) {
	roleFilter := c.DefaultQuery("role", "")
	statusFilter := c.DefaultQuery("status", "")

	page := 0
	limit := 10
	if p, err := strconv.Atoi(c.DefaultQuery("page", "0")); err == nil && p >= 0 {
		page = p
	}
	if l, err := strconv.Atoi(c.DefaultQuery("limit", "10")); err == nil && l > 0 {
		limit = l
	}

	tx := ctrl.db.Model(&models.User{})
	if roleFilter != "" {
		if role, err := strconv.Atoi(roleFilter); err == nil {
			tx = tx.Where("role = ?", role)
		}
	}
	if statusFilter != "" {
		if status, err := strconv.Atoi(statusFilter); err == nil {
			tx = tx.Where("status = ?", status)
		}
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		response.ServerError(c)
		return
	}

	var users []models.User
	if err := tx.Order("created_at DESC").Offset(page * limit).Limit(limit).Find(&users).Error; err != nil {
		response.ServerError(c)
		return
	}

	userResponses := make([]dto.UserResponse, 0, len(users))
	for _, user := range users {
		userResponses = append(userResponses, dto.UserResponse{
			ID:          user.ID,
			Name:        user.Name,
			Email:       user.Email,
			PhoneNumber: user.PhoneNumber,
			Avatar:      user.Avatar,
			Role:        user.Role,
			Status:      user.Status,
			CreatedAt:   user.CreatedAt,
		})
	}

	response.SuccessWithPagination(c, userResponses, page, limit, int(total))
}

// ChangeUserStatus khóa/mở khóa tài khoản user
func (ctrl *AdminController) ChangeUserStatus(c *gin.Context) {
	actor := middleware.GetActor(c)

	var input dto.ChangeUserStatusRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	user, err := ctrl.svc.ChangeStatus(c.Request.Context(), input.ID, input.Status, actor)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, dto.UserResponse{
		ID:          user.ID,
		Name:        user.Name,
		Email:       user.Email,
		PhoneNumber: user.PhoneNumber,
		Avatar:      user.Avatar,
		Role:        user.Role,
		Status:      user.Status,
		CreatedAt:   user.CreatedAt,
	})
}

// DeleteUser xóa user, chỗ ở và phòng của chủ nhà bị vô hiệu hóa
func (ctrl *AdminController) DeleteUser(c *gin.Context) {
	actor := middleware.GetActor(c)

	userID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	if err := ctrl.svc.Delete(c.Request.Context(), uint(userID), actor); err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, gin.H{"deleted": userID})
}
