package routes

import (
	"context"
	"net/http"

	"homestay/constants"
	"homestay/controllers"
	"homestay/middleware"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"homestay/services/notification"
)

func SetupRoutes(router *gin.Engine, db *gorm.DB, redisCli *redis.Client, cld *cloudinary.Cloudinary, m *melody.Melody) {

	notifier := notification.NewMelodyService(m)
	bookingController := controllers.NewBookingController(db, redisCli, notifier)
	reviewController := controllers.NewReviewController(db, redisCli)
	adminController := controllers.NewAdminController(db)

	v1 := router.Group("/api/v1")
	v1.Use(middleware.SessionMiddleware())

	v1.POST("/auth/register", controllers.Register)
	v1.POST("/auth/login", controllers.Login)
	v1.DELETE("/auth/logout", controllers.Logout)
	v1.GET("/profile", middleware.AuthMiddleware(), controllers.GetProfile)

	v1.GET("/properties", controllers.GetAllProperties)
	v1.GET("/my/properties", middleware.AuthMiddleware(constants.RoleHouseOwner, constants.RoleAdmin), controllers.GetOwnerProperties)
	v1.GET("/properties/:id", controllers.GetPropertyDetail)
	v1.POST("/properties", middleware.AuthMiddleware(constants.RoleHouseOwner, constants.RoleAdmin), controllers.CreateProperty)
	v1.PUT("/properties", middleware.AuthMiddleware(constants.RoleHouseOwner, constants.RoleAdmin), controllers.UpdateProperty)
	v1.PUT("/propertyStatus", middleware.AuthMiddleware(constants.RoleHouseOwner, constants.RoleAdmin), controllers.ChangePropertyStatus)
	v1.PUT("/propertyVerify", middleware.AuthMiddleware(constants.RoleAdmin), controllers.VerifyProperty)

	v1.GET("/rooms", controllers.GetAllRooms)
	v1.GET("/my/rooms", middleware.AuthMiddleware(constants.RoleHouseOwner, constants.RoleAdmin), controllers.GetOwnerRooms)
	v1.GET("/rooms/:id", controllers.GetRoomDetail)
	v1.GET("/rooms/:id/bookedDates", controllers.GetRoomBookedDates)
	v1.POST("/rooms", middleware.AuthMiddleware(constants.RoleHouseOwner, constants.RoleAdmin), controllers.CreateRoom)
	v1.PUT("/rooms", middleware.AuthMiddleware(constants.RoleHouseOwner, constants.RoleAdmin), controllers.UpdateRoom)
	v1.PUT("/roomStatus", middleware.AuthMiddleware(constants.RoleHouseOwner, constants.RoleAdmin), controllers.ChangeRoomStatus)
	v1.POST("/rooms/blockDates", middleware.AuthMiddleware(constants.RoleHouseOwner, constants.RoleAdmin), controllers.BlockRoomDates)
	v1.POST("/rooms/unblockDates", middleware.AuthMiddleware(constants.RoleHouseOwner, constants.RoleAdmin), controllers.UnblockRoomDates)

	v1.GET("/bookings", middleware.AuthMiddleware(), bookingController.GetBookings)
	v1.GET("/bookings/:id", middleware.AuthMiddleware(), bookingController.GetBookingDetail)
	v1.POST("/bookings", middleware.AuthMiddleware(), bookingController.CreateBooking)
	v1.PUT("/bookingStatus", middleware.AuthMiddleware(constants.RoleHouseOwner, constants.RoleAdmin), bookingController.ChangeBookingStatus)
	v1.PUT("/bookings/:id/cancel", middleware.AuthMiddleware(), bookingController.CancelBooking)
	v1.PUT("/paymentStatus", middleware.AuthMiddleware(constants.RoleHouseOwner, constants.RoleAdmin), bookingController.ChangePaymentStatus)

	v1.GET("/reviews", reviewController.GetReviews)
	v1.GET("/my/reviews", middleware.AuthMiddleware(), reviewController.GetMyReviews)
	v1.POST("/reviews", middleware.AuthMiddleware(), reviewController.CreateReview)
	v1.PUT("/reviews", middleware.AuthMiddleware(), reviewController.UpdateReview)
	v1.DELETE("/reviews/:id", middleware.AuthMiddleware(), reviewController.DeleteReview)

	v1.GET("/admin/stats", middleware.AuthMiddleware(constants.RoleAdmin), adminController.GetDashboardStats)
	v1.GET("/admin/properties", middleware.AuthMiddleware(constants.RoleAdmin), adminController.GetProperties)
	v1.GET("/admin/users", middleware.AuthMiddleware(constants.RoleAdmin), adminController.GetUsers)
	v1.PUT("/admin/userStatus", middleware.AuthMiddleware(constants.RoleAdmin), adminController.ChangeUserStatus)
	v1.DELETE("/admin/users/:id", middleware.AuthMiddleware(constants.RoleAdmin), adminController.DeleteUser)

	v1.POST("/img/multi-upload", middleware.AuthMiddleware(constants.RoleHouseOwner, constants.RoleAdmin), func(c *gin.Context) {
		form, er := c.MultipartForm()
		if er != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Không có file"})
			return
		}
		files := form.File["files"]
		if len(files) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Không có file"})
			return
		}

		var urls []string
		for _, file := range files {
			src, err := file.Open()
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Lỗi khi mở file"})
				return
			}
			defer src.Close()

			ctx := context.Background()
			resp, err := cld.Upload.Upload(ctx, src, uploader.UploadParams{Folder: "uploads"})
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload thất bại"})
				return
			}
			urls = append(urls, resp.SecureURL)
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Upload thành công",
			"urls":    urls,
		})
	})
}
