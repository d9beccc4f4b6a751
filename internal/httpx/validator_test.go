package httpx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRequest struct {
	Username string  `validate:"required,min=3,max=32,username"`
	Title    string  `validate:"required,max=200,excludesall=0x2C"`
	Status   string  `validate:"omitempty,book_status"`
	Rating   float64 `validate:"omitempty,gte=1,lte=5"`
}

func TestValidateStruct_Valid(t *testing.T) {
	errs := ValidateStruct(testRequest{
		Username: "alice",
		Title:    "Dune",
		Status:   "Not Started",
		Rating:   4.5,
	})
	assert.Empty(t, errs)
}

func TestValidateStruct_Required(t *testing.T) {
	errs := ValidateStruct(testRequest{})
	require.Len(t, errs, 2)
	assert.Equal(t, "username", errs[0].Field)
	assert.Contains(t, errs[0].Message, "required")
	assert.Equal(t, "title", errs[1].Field)
}

func TestValidateStruct_CustomTags(t *testing.T) {
	tests := []struct {
		name  string
		req   testRequest
		field string
	}{
		{name: "comma in username", req: testRequest{Username: "al,ice", Title: "Dune"}, field: "username"},
		{name: "slash in username", req: testRequest{Username: "../etc", Title: "Dune"}, field: "username"},
		{name: "padded username", req: testRequest{Username: " alice", Title: "Dune"}, field: "username"},
		{name: "comma in title", req: testRequest{Username: "alice", Title: "Dune, Part Two"}, field: "title"},
		{name: "unknown status", req: testRequest{Username: "alice", Title: "Dune", Status: "Abandoned"}, field: "status"},
		{name: "rating too high", req: testRequest{Username: "alice", Title: "Dune", Rating: 6}, field: "rating"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidateStruct(tt.req)
			require.Len(t, errs, 1)
			assert.Equal(t, tt.field, errs[0].Field)
		})
	}
}
