package middleware

import (
	"strings"

	"homestay/policy"
	"homestay/response"
	"homestay/services"

	"github.com/gin-gonic/gin"
)

const actorKey = "actor"

// AuthMiddleware xác thực token và gán Actor vào context.
// Nếu truyền roles thì user phải có một trong các role đó.
func AuthMiddleware(roles ...int) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		userID, userRole, err := services.GetUserIDFromToken(tokenString)
		if err != nil {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		// Kiểm tra role nếu có yêu cầu
		if len(roles) > 0 {
			hasRole := false
			for _, role := range roles {
				if role == userRole {
					hasRole = true
					break
				}
			}
			if !hasRole {
				response.Forbidden(c)
				c.Abort()
				return
			}
		}

		// Actor truyền tường minh xuống service, không dùng state ngầm
		c.Set(actorKey, policy.Actor{ID: userID, Role: userRole})
		c.Next()
	}
}

// GetActor lấy Actor đã xác thực từ context.
// Trả về Actor rỗng nếu request chưa qua AuthMiddleware.
func GetActor(c *gin.Context) policy.Actor {
	value, exists := c.Get(actorKey)
	if !exists {
		return policy.Actor{}
	}
	actor, ok := value.(policy.Actor)
	if !ok {
		return policy.Actor{}
	}
	return actor
}
