package services

// Messages returned to readers and staff
const (
	MsgBookNotFound     = "Sách không tồn tại"
	MsgDailyLimit       = "Hôm nay đã hết lượt mượn cho sách này (Giới hạn %d/ngày). Vui lòng quay lại vào ngày mai."
	MsgAlreadyBorrowing = "Bạn đang mượn sách này rồi"
	MsgWeeklyLimit      = "Bạn đã đạt giới hạn mượn tối đa %d cuốn sách trong tuần này. Vui lòng quay lại sau."
	MsgBorrowed         = "Mượn sách thành công!"
	MsgBorrowNotFound   = "Không tìm thấy bản ghi mượn sách"
	MsgAlreadyReturned  = "Sách này đã được trả trước đó"
	MsgReturned         = "Trả sách thành công!"
	MsgLateFee          = "Phí trễ hạn: %s"

	MsgBookMissing   = "Book not found"
	MsgBookExists    = "Mã sách đã tồn tại"
	MsgBookDeleted   = "Book deleted successfully"
	MsgNewsNotFound  = "News not found"
	MsgNewsDeleted   = "News deleted successfully"
	MsgUserExists    = "Người dùng đã tồn tại"
	MsgBadLogin      = "Thông tin đăng nhập không hợp lệ"
	MsgUserNotFound  = "Không tìm thấy người dùng"
	MsgWrongPassword = "Mật khẩu hiện tại không đúng"
	MsgProfileSaved  = "Cập nhật thành công!"
	MsgPasswordSaved = "Đổi mật khẩu thành công!"
	MsgAvatarSaved   = "Cập nhật ảnh đại diện thành công!"
	MsgHeartbeat     = "Heartbeat updated"

	MsgFavoriteAdded   = "Đã thêm vào yêu thích!"
	MsgFavoriteRemoved = "Đã xóa khỏi yêu thích!"

	MsgRoleSaved      = "Cập nhật vai trò thành công!"
	MsgInvalidRole    = "Vai trò không hợp lệ"
	MsgSelfRole       = "Không thể thay đổi vai trò của chính mình"
	MsgUserDeleted    = "Đã xóa người dùng"
	MsgSelfDelete     = "Không thể xóa tài khoản của chính mình"
	MsgUserHasBorrows = "Người dùng đang mượn sách, vui lòng thu hồi sách trước khi xóa"

	MsgSystemReset = "Hệ thống đã được reset và nạp dữ liệu mẫu (Sách & Tin tức) thành công."
)
