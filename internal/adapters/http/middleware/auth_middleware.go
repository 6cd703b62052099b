package middleware

import (
	"errors"
	"strings"

	"literaryhub/internal/config"
	"literaryhub/internal/core/domain"
	"literaryhub/internal/pkg/jwt"
	"literaryhub/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// Locals keys set by AuthMiddleware
const (
	LocalUserID = "userID"
	LocalName   = "name"
	LocalEmail  = "email"
	LocalRole   = "role"
)

// AuthMiddleware creates authentication middleware
func AuthMiddleware(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		accessToken := tokenFromRequest(c)

		// No token found
		if accessToken == "" {
			return response.Unauthorized(c, "Không có token, truy cập bị từ chối")
		}

		// Validate token
		claims, err := jwt.ValidateAccessToken(accessToken, cfg.JWT.Secret)
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				return response.Unauthorized(c, "Phiên đăng nhập đã hết hạn")
			}
			return response.Unauthorized(c, "Token không hợp lệ")
		}

		// Set user info in context
		c.Locals(LocalUserID, claims.UserID)
		c.Locals(LocalName, claims.Name)
		c.Locals(LocalEmail, claims.Email)
		c.Locals(LocalRole, claims.Role)

		return c.Next()
	}
}

// tokenFromRequest reads the access_token cookie, then the Bearer header
func tokenFromRequest(c *fiber.Ctx) string {
	if token := c.Cookies("access_token"); token != "" {
		return token
	}

	authHeader := c.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	return ""
}

// RoleMiddleware creates role-based authorization middleware
func RoleMiddleware(allowedRoles ...domain.Role) fiber.Handler {
	names := make([]string, len(allowedRoles))
	for i, r := range allowedRoles {
		names[i] = string(r)
	}
	denied := "Quyền truy cập bị từ chối: Yêu cầu vai trò " + strings.Join(names, " hoặc ")

	return func(c *fiber.Ctx) error {
		role, ok := c.Locals(LocalRole).(string)
		if !ok {
			return response.Unauthorized(c, "Không tìm thấy thông tin người dùng, vui lòng đăng nhập lại")
		}

		// Check if user's role is in allowed roles
		for _, allowedRole := range allowedRoles {
			if domain.Role(role) == allowedRole {
				return c.Next()
			}
		}

		return response.Forbidden(c, denied)
	}
}

// AdminOnly middleware allows only the admin role
func AdminOnly() fiber.Handler {
	return RoleMiddleware(domain.RoleAdmin)
}

// StaffOnly middleware allows admins and librarians
func StaffOnly() fiber.Handler {
	return RoleMiddleware(domain.RoleAdmin, domain.RoleLibrarian)
}

// CurrentActor returns the authenticated caller
func CurrentActor(c *fiber.Ctx) domain.Actor {
	userID, _ := c.Locals(LocalUserID).(string)
	name, _ := c.Locals(LocalName).(string)
	role, _ := c.Locals(LocalRole).(string)
	return domain.Actor{UserID: userID, Name: name, Role: domain.Role(role)}
}
