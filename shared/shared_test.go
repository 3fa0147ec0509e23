package shared_test

import (
	"testing"

	"maludy/shared"
	"maludy/shared/constant"
	"maludy/shared/dto"
)

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		limit    int
		expected int
	}{
		{name: "zero total", total: 0, limit: 10, expected: 1},
		{name: "zero limit", total: 25, limit: 0, expected: 1},
		{name: "exact pages", total: 20, limit: 10, expected: 2},
		{name: "partial last page", total: 21, limit: 10, expected: 3},
		{name: "single page", total: 3, limit: 10, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := shared.CalculateTotalPage(tt.total, tt.limit); got != tt.expected {
				t.Errorf("expected %d, got %d", tt.expected, got)
			}
		})
	}
}

func TestTransformFields(t *testing.T) {
	type update struct {
		Schedule string `db:"schedule"`
		Pickup   string `db:"pickup_location"`
		Ignored  string
		Empty    string `db:"empty_field"`
	}

	fields := shared.TransformFields(update{Schedule: "09:00 AM", Pickup: "Hotel lobby"}, "admin")

	if fields["schedule"] != "09:00 AM" {
		t.Errorf("expected schedule to be set, got %v", fields["schedule"])
	}

	if fields["pickup_location"] != "Hotel lobby" {
		t.Errorf("expected pickup_location to be set, got %v", fields["pickup_location"])
	}

	if _, ok := fields["empty_field"]; ok {
		t.Error("zero-value field must not be included")
	}

	if fields[constant.FieldModifiedBy] != "admin" {
		t.Errorf("expected modified_by to be admin, got %v", fields[constant.FieldModifiedBy])
	}

	if _, ok := fields[constant.FieldModifiedAt]; !ok {
		t.Error("modified_at must always be set")
	}
}

func TestFilterByID(t *testing.T) {
	group := shared.FilterByID("abc-123", "id", "bookings")

	where, args := group.GetWhereClause()

	if where != "(bookings.id = :id)" {
		t.Errorf("unexpected where clause: %s", where)
	}

	if args["id"] != "abc-123" {
		t.Errorf("unexpected args: %v", args)
	}
}

func TestBuildCacheKey(t *testing.T) {
	if got := shared.BuildCacheKey("booking:get"); got != "booking:get" {
		t.Errorf("unexpected key: %s", got)
	}

	if got := shared.BuildCacheKey("booking:get", "MT-ABC23456"); got != "booking:get:MT-ABC23456" {
		t.Errorf("unexpected key: %s", got)
	}
}

func TestBuildCacheKeyWithQuery(t *testing.T) {
	params := dto.QueryParams{Page: 2, Limit: 10, SortBy: "created_at", SortDir: "DESC"}

	a := shared.BuildCacheKeyWithQuery("activity:gets", params, dto.FilterGroup{})
	b := shared.BuildCacheKeyWithQuery("activity:gets", dto.QueryParams{Page: 1, Limit: 10}, dto.FilterGroup{})

	if a == b {
		t.Error("different pagination must produce different cache keys")
	}
}
