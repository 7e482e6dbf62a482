package controllers

import (
	"log"
	"strconv"
	"time"

	"homestay/config"
	"homestay/dto"
	"homestay/middleware"
	"homestay/models"
	"homestay/response"
	"homestay/services"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type ReviewController struct {
	db  *gorm.DB
	rdb *redis.Client
	svc *services.ReviewService
}

func NewReviewController(db *gorm.DB, rdb *redis.Client) *ReviewController {
	return &ReviewController{
		db:  db,
		rdb: rdb,
		svc: services.NewReviewService(db),
	}
}

func convertReview(r models.Review) dto.ReviewResponse {
	return dto.ReviewResponse{
		ID:          r.ID,
		BookingID:   r.BookingID,
		PropertyID:  r.PropertyID,
		RoomID:      r.RoomID,
		Comment:     r.Comment,
		Star:        r.Star,
		Cleanliness: r.Cleanliness,
		Location:    r.Location,
		Value:       r.Value,
		CreatedAt:   r.CreateAt,
		UpdatedAt:   r.UpdateAt,
		Guest: dto.UserInfo{
			ID:     r.Guest.ID,
			Name:   r.Guest.Name,
			Avatar: r.Guest.Avatar,
		},
	}
}

func (ctrl *ReviewController) invalidateCache(propertyID uint) {
	if ctrl.rdb == nil {
		return
	}
	key := services.ReviewsCacheKey(strconv.Itoa(int(propertyID)))
	if err := services.DeleteFromRedis(config.Ctx, ctrl.rdb, key); err != nil {
		log.Printf("Lỗi khi xóa cache đánh giá: %v", err)
	}
}

// GetReviews lấy danh sách đánh giá của một chỗ ở
func (ctrl *ReviewController) GetReviews(c *gin.Context) {
	propertyIDFilter := c.DefaultQuery("propertyId", "")
	if propertyIDFilter == "" {
		response.BadRequest(c, "Thiếu propertyId")
		return
	}

	cacheKey := services.ReviewsCacheKey(propertyIDFilter)
	if ctrl.rdb != nil {
		var cached []dto.ReviewResponse
		if err := services.GetFromRedis(config.Ctx, ctrl.rdb, cacheKey, &cached); err == nil && len(cached) > 0 {
			response.Success(c, cached)
			return
		}
	}

	propertyID, err := strconv.Atoi(propertyIDFilter)
	if err != nil {
		response.BadRequest(c, "propertyId không hợp lệ")
		return
	}

	var reviews []models.Review
	if err := ctrl.db.Preload("Guest").
		Where("property_id = ?", propertyID).
		Order("create_at DESC").
		Find(&reviews).Error; err != nil {
		response.ServerError(c)
		return
	}

	reviewResponses := make([]dto.ReviewResponse, 0, len(reviews))
	for _, review := range reviews {
		reviewResponses = append(reviewResponses, convertReview(review))
	}

	if ctrl.rdb != nil {
		if err := services.SetToRedis(config.Ctx, ctrl.rdb, cacheKey, reviewResponses, 10*time.Minute); err != nil {
			log.Printf("Lỗi khi lưu danh sách đánh giá vào Redis: %v", err)
		}
	}

	response.Success(c, reviewResponses)
}

// GetMyReviews lấy danh sách đánh giá do chính khách đang đăng nhập viết
func (ctrl *ReviewController) GetMyReviews(c *gin.Context) {
	actor := middleware.GetActor(c)

	var reviews []models.Review
	if err := ctrl.db.Preload("Guest").
		Where("guest_id = ?", actor.ID).
		Order("create_at DESC").
		Find(&reviews).Error; err != nil {
		response.ServerError(c)
		return
	}

	reviewResponses := make([]dto.ReviewResponse, 0, len(reviews))
	for _, review := range reviews {
		reviewResponses = append(reviewResponses, convertReview(review))
	}

	response.Success(c, reviewResponses)
}

// CreateReview tạo đánh giá cho booking đã hoàn thành
func (ctrl *ReviewController) CreateReview(c *gin.Context) {
	actor := middleware.GetActor(c)

	var input dto.CreateReviewRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	review, err := ctrl.svc.Create(c.Request.Context(), input, actor)
	if err != nil {
		response.FromError(c, err)
		return
	}

	ctrl.invalidateCache(review.PropertyID)
	response.Created(c, convertReview(*review))
}

// UpdateReview cập nhật đánh giá của chính mình
func (ctrl *ReviewController) UpdateReview(c *gin.Context) {
	actor := middleware.GetActor(c)

	var input dto.UpdateReviewRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	review, err := ctrl.svc.Update(c.Request.Context(), input, actor)
	if err != nil {
		response.FromError(c, err)
		return
	}

	ctrl.invalidateCache(review.PropertyID)
	response.Success(c, convertReview(*review))
}

// DeleteReview xóa đánh giá
func (ctrl *ReviewController) DeleteReview(c *gin.Context) {
	actor := middleware.GetActor(c)

	reviewID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	var review models.Review
	if err := ctrl.db.First(&review, reviewID).Error; err != nil {
		response.NotFound(c)
		return
	}

	if err := ctrl.svc.Delete(c.Request.Context(), uint(reviewID), actor); err != nil {
		response.FromError(c, err)
		return
	}

	ctrl.invalidateCache(review.PropertyID)
	response.Success(c, gin.H{"deleted": reviewID})
}
