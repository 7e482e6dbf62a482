package controllers

import (
	"strconv"
	"strings"

	"homestay/config"
	"homestay/dto"
	"homestay/middleware"
	"homestay/models"
	"homestay/policy"
	"homestay/response"
	"homestay/validator"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/gin-gonic/gin"
)

func convertProperty(p models.Property) dto.PropertyResponse {
	return dto.PropertyResponse{
		ID:            p.ID,
		OwnerID:       p.OwnerID,
		Name:          p.Name,
		Description:   p.Description,
		Address:       p.Address,
		Ward:          p.Ward,
		District:      p.District,
		Province:      p.Province,
		Img:           p.Img,
		IsVerified:    p.IsVerified,
		IsActive:      p.IsActive,
		TotalRooms:    p.TotalRooms,
		AverageRating: p.AverageRating,
		TotalReviews:  p.TotalReviews,
	}
}

// normalizeInput bỏ dấu tiếng Việt và chuyển về chữ thường để so khớp tên
func normalizeInput(input string) string {
	return strings.ToLower(unidecode.Unidecode(input))
}

// GetAllProperties lấy danh sách chỗ ở đang hoạt động.
// Filter tên không phân biệt dấu, filter theo tỉnh, có phân trang.
func GetAllProperties(c *gin.Context) {
	nameFilter := c.DefaultQuery("name", "")
	provinceFilter := c.DefaultQuery("province", "")

	page := 0
	limit := 10
	if p, err := strconv.Atoi(c.DefaultQuery("page", "0")); err == nil && p >= 0 {
		page = p
	}
	if l, err := strconv.Atoi(c.DefaultQuery("limit", "10")); err == nil && l > 0 {
		limit = l
	}

	tx := config.DB.Where("is_active = ?", true)
	if provinceFilter != "" {
		tx = tx.Where("province = ?", provinceFilter)
	}

	var properties []models.Property
	if err := tx.Order("created_at DESC").Find(&properties).Error; err != nil {
		response.ServerError(c)
		return
	}

	// So khớp tên sau khi bỏ dấu nên phải filter trên bộ nhớ
	filtered := make([]models.Property, 0, len(properties))
	normalizedName := normalizeInput(nameFilter)
	for _, property := range properties {
		if nameFilter != "" && !strings.Contains(normalizeInput(property.Name), normalizedName) {
			continue
		}
		filtered = append(filtered, property)
	}

	total := len(filtered)
	start := page * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	propertyResponses := make([]dto.PropertyResponse, 0, end-start)
	for _, property := range filtered[start:end] {
		propertyResponses = append(propertyResponses, convertProperty(property))
	}

	response.SuccessWithPagination(c, propertyResponses, page, limit, total)
}

// GetOwnerProperties lấy toàn bộ chỗ ở của chủ nhà đang đăng nhập,
// gồm cả chỗ ở đã ngừng hoạt động để chủ nhà còn quản lý được
func GetOwnerProperties(c *gin.Context) {
	actor := middleware.GetActor(c)

	page := 0
	limit := 10
	if p, err := strconv.Atoi(c.DefaultQuery("page", "0")); err == nil && p >= 0 {
		page = p
	}
	if l, err := strconv.Atoi(c.DefaultQuery("limit", "10")); err == nil && l > 0 {
		limit = l
	}

	tx := config.DB.Model(&models.Property{}).Where("owner_id = ?", actor.ID)

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		response.ServerError(c)
		return
	}

	var properties []models.Property
	if err := tx.Order("created_at DESC").Offset(page * limit).Limit(limit).Find(&properties).Error; err != nil {
		response.ServerError(c)
		return
	}

	propertyResponses := make([]dto.PropertyResponse, 0, len(properties))
	for _, property := range properties {
		propertyResponses = append(propertyResponses, convertProperty(property))
	}

	response.SuccessWithPagination(c, propertyResponses, page, limit, int(total))
}

// GetPropertyDetail lấy chi tiết chỗ ở kèm danh sách phòng
func GetPropertyDetail(c *gin.Context) {
	propertyID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	var property models.Property
	if err := config.DB.Preload("Rooms", "is_active = ?", true).
		First(&property, propertyID).Error; err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, property)
}

// CreateProperty tạo chỗ ở mới, chủ sở hữu là user đang đăng nhập
func CreateProperty(c *gin.Context) {
	actor := middleware.GetActor(c)

	var input dto.CreatePropertyRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	if err := policy.Authorize(actor, policy.ActionPropertyWrite, policy.Resource{OwnerID: actor.ID}); err != nil {
		response.FromError(c, err)
		return
	}

	property := models.Property{
		OwnerID:     actor.ID,
		Name:        input.Name,
		Description: input.Description,
		Address:     input.Address,
		Ward:        input.Ward,
		District:    input.District,
		Province:    input.Province,
		Img:         input.Img,
	}

	if err := validator.ValidateProperty(&property); err != nil {
		response.FromError(c, err)
		return
	}

	if err := config.DB.Create(&property).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Created(c, convertProperty(property))
}

// UpdateProperty cập nhật thông tin chỗ ở
func UpdateProperty(c *gin.Context) {
	actor := middleware.GetActor(c)

	var input dto.UpdatePropertyRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	var property models.Property
	if err := config.DB.First(&property, input.ID).Error; err != nil {
		response.NotFound(c)
		return
	}

	if err := policy.Authorize(actor, policy.ActionPropertyWrite, policy.Resource{OwnerID: property.OwnerID}); err != nil {
		response.FromError(c, err)
		return
	}

	if input.Name != "" {
		property.Name = input.Name
	}
	if input.Description != "" {
		property.Description = input.Description
	}
	if input.Address != "" {
		property.Address = input.Address
	}
	if input.Ward != "" {
		property.Ward = input.Ward
	}
	if input.District != "" {
		property.District = input.District
	}
	if input.Province != "" {
		property.Province = input.Province
	}
	if len(input.Img) > 0 {
		property.Img = input.Img
	}

	if err := validator.ValidateProperty(&property); err != nil {
		response.FromError(c, err)
		return
	}

	if err := config.DB.Save(&property).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, convertProperty(property))
}

// ChangePropertyStatus bật/tắt trạng thái hoạt động của chỗ ở
func ChangePropertyStatus(c *gin.Context) {
	actor := middleware.GetActor(c)

	var input dto.ChangePropertyStatusRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	var property models.Property
	if err := config.DB.First(&property, input.ID).Error; err != nil {
		response.NotFound(c)
		return
	}

	if err := policy.Authorize(actor, policy.ActionPropertyWrite, policy.Resource{OwnerID: property.OwnerID}); err != nil {
		response.FromError(c, err)
		return
	}

	if err := config.DB.Model(&property).Update("is_active", input.IsActive).Error; err != nil {
		response.ServerError(c)
		return
	}

	property.IsActive = input.IsActive
	response.Success(c, convertProperty(property))
}

// VerifyProperty xác minh chỗ ở, chỉ admin
func VerifyProperty(c *gin.Context) {
	actor := middleware.GetActor(c)

	var input dto.VerifyPropertyRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	if err := policy.Authorize(actor, policy.ActionPropertyVerify, policy.Resource{}); err != nil {
		response.FromError(c, err)
		return
	}

	var property models.Property
	if err := config.DB.First(&property, input.ID).Error; err != nil {
		response.NotFound(c)
		return
	}

	if err := config.DB.Model(&property).Update("is_verified", input.IsVerified).Error; err != nil {
		response.ServerError(c)
		return
	}

	property.IsVerified = input.IsVerified
	response.Success(c, convertProperty(property))
}
