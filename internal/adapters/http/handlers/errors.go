package handlers

import (
	"log"

	"literaryhub/internal/core/domain"
	"literaryhub/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// Fallback messages for unexpected failures
const (
	msgInvalidBody  = "Dữ liệu gửi lên không hợp lệ"
	msgServerError  = "Lỗi máy chủ, vui lòng thử lại sau"
	msgForbidden    = "Bạn không có quyền thực hiện thao tác này"
	msgInvalidState = "Trạng thái không hợp lệ"
)

// respondError maps a service error to an HTTP response:
// NotFound -> 404, RuleViolation -> 400, anything else -> 500
func respondError(c *fiber.Ctx, err error, op string) error {
	if rej, ok := domain.AsRejected(err); ok {
		switch rej.Kind {
		case domain.KindNotFound:
			return response.NotFound(c, rej.Message)
		case domain.KindRuleViolation:
			return response.BadRequest(c, rej.Message)
		}
	}

	log.Printf("❌ %s failed: %v", op, err)
	return response.InternalServerError(c, msgServerError)
}
