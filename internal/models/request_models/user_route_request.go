package request_models

import (
	"bytes"
	"encoding/json"
	"time"
)

type CreateUserRouteRequest struct {
	RouteID string `json:"route_id" binding:"required,uuid"`
}

type UserRouteListQuery struct {
	Status     string  `form:"status" binding:"omitempty,user_route_status"`
	IsFavorite *string `form:"is_favorite"`
}

type UpdateUserRouteRequest struct {
	Status        *string      `json:"status" binding:"omitempty,user_route_status"`
	IsFavorite    *bool        `json:"is_favorite"`
	Comment       *string      `json:"comment"`
	DateStarted   NullableTime `json:"date_started"`
	DateCompleted NullableTime `json:"date_completed"`
}

// NullableTime distinguishes an absent JSON field (Set=false) from an explicit
// null (Set=true, Value=nil).
type NullableTime struct {
	Set   bool
	Value *time.Time
}

func (n *NullableTime) UnmarshalJSON(data []byte) error {
	n.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		n.Value = nil
		return nil
	}
	var t time.Time
	if err := json.Unmarshal(data, &t); err != nil {
		return err
	}
	n.Value = &t
	return nil
}
