package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type author struct {
	Name string `json:"name" validate:"required"`
}

type bookRequest struct {
	BookID string `json:"bookId" validate:"required,max=5"`
	Email  string `json:"email" validate:"omitempty,email"`
	Stock  *int   `json:"stock" validate:"omitempty,min=0"`
	Type   string `json:"type" validate:"omitempty,oneof=news event"`
	Author author `json:"author"`
}

func TestStruct(t *testing.T) {
	v := New()
	neg := -1

	cases := []struct {
		name string
		in   bookRequest
		want string
	}{
		{"valid", bookRequest{BookID: "B001", Author: author{Name: "Nguyễn Du"}}, ""},
		{"required", bookRequest{Author: author{Name: "x"}}, "bookId is required"},
		{"max", bookRequest{BookID: "B000001", Author: author{Name: "x"}}, "bookId must be at most 5 characters"},
		{"email", bookRequest{BookID: "B1", Email: "nope", Author: author{Name: "x"}}, "email must be a valid email"},
		{"min", bookRequest{BookID: "B1", Stock: &neg, Author: author{Name: "x"}}, "stock must be at least 0"},
		{"oneof", bookRequest{BookID: "B1", Type: "blog", Author: author{Name: "x"}}, "type must be one of: news event"},
		{"nested", bookRequest{BookID: "B1"}, "author.name is required"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := v.Struct(tc.in)
			if tc.want == "" {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, tc.want)
		})
	}
}
