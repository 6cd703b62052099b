package config

import (
	"literaryhub/internal/adapters/persistence/models"

	"gorm.io/datatypes"
)

func intPtr(v int) *int {
	return &v
}

// SampleBooks returns the starter catalog (B001-B005)
func SampleBooks() []*models.Book {
	return []*models.Book{
		{
			BookID:           "B001",
			Title:            "Truyện Kiều",
			AlternativeTitle: "Đoạn Trường Tân Thanh",
			Author: models.BookAuthor{
				Name:      "Nguyễn Du",
				BirthYear: intPtr(1765),
				DeathYear: intPtr(1820),
				Era:       "Lễ giáo phong kiến Trung đại",
			},
			YearOfCreation:   "Đầu thế kỷ XIX (khoảng 1805-1809)",
			Genre:            "Truyện thơ Nôm",
			ImageURL:         "https://images.unsplash.com/photo-1544947950-fa07a98d237f?q=80&w=1000&auto=format&fit=crop",
			LiteraryPeriod:   "Văn học Trung đại",
			ContentSummary:   "Tác phẩm kể về cuộc đời 15 năm lưu lạc, chìm nổi của Thúy Kiều - một người con gái tài sắc vẹn toàn nhưng bị định mệnh nghiệt ngã vùi dập. Qua đó, Nguyễn Du phơi bày bộ mặt tàn bạo của xã hội phong kiến và đề cao khát vọng tự do, công lý.",
			ArtisticValue:    "Bút pháp tả cảnh ngụ tình bậc thầy, ngôn ngữ Nôm đạt đến đỉnh cao rực rỡ, nghệ thuật xây dựng nhân vật sắc sảo.",
			IdeologicalValue: "Tiếng khóc thương cho thân phận con người, đặc biệt là người phụ nữ; khát vọng tình yêu lứa đôi và sự công bằng trong xã hội.",
			Stock:            intPtr(20),
			TotalQuantity:    50,
			Keywords:         datatypes.JSONSlice[string]{"Nguyễn Du", "Thúy Kiều", "Văn học Trung đại", "Tố Như"},
		},
		{
			BookID: "B002",
			Title:  "Lục Vân Tiên",
			Author: models.BookAuthor{
				Name:      "Nguyễn Đình Chiểu",
				BirthYear: intPtr(1822),
				DeathYear: intPtr(1888),
				Era:       "Cận đại - Chống Pháp",
			},
			YearOfCreation:   "Khoảng thập niên 1850",
			Genre:            "Truyện thơ Nôm",
			ImageURL:         "https://images.unsplash.com/photo-1512820790803-83ca734da794?q=80&w=1000&auto=format&fit=crop",
			LiteraryPeriod:   "Văn học Cận đại",
			ContentSummary:   "Câu chuyện về người anh hùng Lục Vân Tiên thẳng thắn, chính trực, sẵn sàng cứu khốn phò nguy. Tác phẩm đề cao đạo lý làm người: trung, hiếu, tiết, nghĩa.",
			ArtisticValue:    "Ngôn ngữ Nam Bộ mộc mạc, bình dị, dễ đi vào lòng người dân dã.",
			IdeologicalValue: "Tuyên dương những tấm gương đạo đức sáng ngời, bài trừ cái ác, cái gian nịnh.",
			Stock:            intPtr(15),
			TotalQuantity:    30,
			Keywords:         datatypes.JSONSlice[string]{"Đồ Chiểu", "Nam Bộ", "Đạo lý", "Chính nghĩa"},
		},
		{
			BookID: "B003",
			Title:  "Số Đỏ",
			Author: models.BookAuthor{
				Name:      "Vũ Trọng Phụng",
				BirthYear: intPtr(1912),
				DeathYear: intPtr(1939),
				Era:       "Hiện đại (1930-1945)",
			},
			YearOfCreation:   "1936",
			Genre:            "Tiểu thuyết trào phúng",
			ImageURL:         "https://images.unsplash.com/photo-1541963463532-d68292c34b19?q=80&w=1000&auto=format&fit=crop",
			LiteraryPeriod:   "Văn học Hiện đại",
			ContentSummary:   "Hành trình thăng tiến lạ lùng của Xuân Tóc Đỏ từ một kẻ nhặt banh quần vợt thành 'bậc vĩ nhân', qua đó giễu cợt sâu cay sự lố lăng của xã hội tư sản thành thị Hà Nội thời Pháp thuộc.",
			ArtisticValue:    "Nghệ thuật trào phúng sắc sảo, ngôn từ phóng túng, xây dựng những hình tượng nhân vật bất tử.",
			IdeologicalValue: "Phê phán lối sống 'âu hóa' rởm đời, sự giả dối và mục nát của xã hội thượng lưu nửa mùa.",
			Stock:            intPtr(25),
			TotalQuantity:    40,
			Keywords:         datatypes.JSONSlice[string]{"Vũ Trọng Phụng", "Trào phúng", "Xuân Tóc Đỏ", "Âu hóa"},
		},
		{
			BookID: "B004",
			Title:  "Tắt Đèn",
			Author: models.BookAuthor{
				Name:      "Ngô Tất Tố",
				BirthYear: intPtr(1893),
				DeathYear: intPtr(1954),
			},
			YearOfCreation:   "1937",
			Genre:            "Tiểu thuyết hiện thực",
			ImageURL:         "https://images.unsplash.com/photo-1491841251911-c44c30c34548?q=80&w=1000&auto=format&fit=crop",
			LiteraryPeriod:   "Văn học Hiện đại",
			ContentSummary:   "Bức tranh ngột ngạt về nông thôn Việt Nam dưới ách thống trị của thực dân phong kiến qua bi kịch sưu thuế của gia đình chị Dậu.",
			ArtisticValue:    "Bút pháp hiện thực nghiêm ngặt, giàu kịch tính, khắc họa thành công hình tượng người nông dân mạnh mẽ.",
			IdeologicalValue: "Tố cáo tội ác của chế độ cũ và ngợi ca vẻ đẹp tâm hồn, sức sống tiềm tàng của người phụ nữ nông dân.",
			Stock:            intPtr(10),
			TotalQuantity:    20,
			Keywords:         datatypes.JSONSlice[string]{"Ngô Tất Tố", "Hiện thực", "Chị Dậu", "Sưu thuế"},
		},
		{
			BookID: "B005",
			Title:  "Vang Bóng Một Thời",
			Author: models.BookAuthor{
				Name:      "Nguyễn Tuân",
				BirthYear: intPtr(1910),
				DeathYear: intPtr(1987),
			},
			YearOfCreation:   "1940",
			Genre:            "Tập truyện ngắn",
			ImageURL:         "https://images.unsplash.com/photo-1474932430478-3a7fb0142a30?q=80&w=1000&auto=format&fit=crop",
			LiteraryPeriod:   "Văn học Hiện đại",
			ContentSummary:   "Những câu chuyện về 'những con người tài hoa - nghệ sĩ' với những thú vui tao nhã đang dần mai một trước sự tấn công của lối sống mới.",
			ArtisticValue:    "Ngôn từ giàu hình ảnh, trau chuốt, tinh tế; cách nhìn đời qua lăng kính văn hóa truyền thống.",
			IdeologicalValue: "Hoài cổ về những giá trị thẩm mỹ truyền thống cao đẹp, lòng tự tôn dân tộc.",
			Stock:            intPtr(12),
			TotalQuantity:    15,
			Keywords:         datatypes.JSONSlice[string]{"Nguyễn Tuân", "Tài hoa", "Truyền thống", "Tao nhã"},
		},
	}
}

// SampleNews returns the starter announcements
func SampleNews() []*models.News {
	return []*models.News{
		{
			Title:       "Ngày hội đọc sách 2026: Kết nối di sản văn học",
			Summary:     "Sự kiện lớn nhất năm thu hút hàng ngàn độc giả tham gia với các hoạt động triển lãm sách quý hiếm và thảo luận cùng các chuyên gia.",
			Content:     "Chúng tôi hân hạnh thông báo Ngày hội đọc sách 2026 sẽ diễn ra vào tháng tới. Đây là cơ hội để các bạn tiếp cận với những bản thảo cổ và các tác phẩm di sản chưa từng được công bố rộng rãi. Chương trình bao gồm các buổi tọa đàm về bảo tồn văn học và workshop sáng tác trẻ.",
			Type:        "event",
			IsPinned:    true,
			IsPublished: true,
			Author:      "Ban tổ chức",
		},
		{
			Title:       "Khai trương phòng đọc kỹ thuật số LiteraryHub",
			Summary:     "Trải nghiệm không gian đọc sách hiện đại với hàng ngàn đầu sách e-book và audio book chất lượng cao hoàn toàn miễn phí.",
			Content:     "Từ ngày 15/02, LiteraryHub chính thức đi vào hoạt động phòng đọc kỹ thuật số. Độc giả có thể mượn máy tính bảng và sử dụng thư viện điện tử của chúng tôi ngay tại chỗ. Đây là bước tiến quan trọng trong việc hiện đại hóa thư viện di sản.",
			Type:        "notice",
			IsPinned:    true,
			IsPublished: true,
			Author:      "Admin",
		},
		{
			Title:       "Giao lưu cùng Tác giả trẻ: Hơi thở đương đại trong văn thơ",
			Summary:     "Buổi gặp gỡ thân mật cùng các cây bút trẻ đang làm mới nền văn học Việt Nam.",
			Content:     "Tham gia buổi giao lưu để lắng nghe những chia sẻ về hành trình sáng tác và cách các tác giả trẻ lồng ghép yếu tố di sản vào tác phẩm hiện đại. Buổi giao lưu sẽ có phần ký tặng sách và thảo luận tự do.",
			Type:        "event",
			IsPinned:    false,
			IsPublished: true,
			Author:      "Phòng nội dung",
		},
		{
			Title:       "Ra mắt bộ sưu tập sách di sản 'Hồi ức Thăng Long'",
			Summary:     "Bộ sách tập hợp những tư liệu hiếm về đời sống và văn hóa Thăng Long xưa qua các thời kỳ.",
			Content:     "LiteraryHub vừa tiếp nhận và hoàn tất số hóa bộ sưu tập 'Hồi ức Thăng Long'. Các tập sách này hiện đã có sẵn trên kệ và trong thư mục đọc trực tuyến của chúng tôi. Mời các bạn đón đọc.",
			Type:        "newbook",
			IsPinned:    false,
			IsPublished: true,
			Author:      "Thủ thư",
		},
	}
}
