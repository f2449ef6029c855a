package domain

import (
	"context"
	"errors"
)

type Service interface {
	GetByID(ctx context.Context, id int64) (*Response, error)
	List(ctx context.Context, req ListRequest) ([]Response, error)
}

// ListRequest filters by exact state when State is set.
type ListRequest struct {
	State *string
}

type UseTypeResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type Response struct {
	ID          int64            `json:"id"`
	Name        string           `json:"name"`
	Address     string           `json:"address"`
	City        string           `json:"city"`
	State       string           `json:"state"`
	Zipcode     string           `json:"zipcode"`
	TotalSize   int64            `json:"total_size"`
	PrimaryType *UseTypeResponse `json:"primary_type"`
}

// NewResponse renders an enriched site for the HTTP surface. Site uses are not exposed.
func NewResponse(site EnrichedSite) Response {
	resp := Response{
		ID:        site.ID,
		Name:      site.Name,
		Address:   site.Address,
		City:      site.City,
		State:     site.State,
		Zipcode:   site.Zipcode,
		TotalSize: site.TotalSize,
	}
	if site.PrimaryType != nil {
		resp.PrimaryType = &UseTypeResponse{
			ID:   site.PrimaryType.ID,
			Name: site.PrimaryType.Name,
		}
	}
	return resp
}

var (
	ErrInvalidID = errors.New("invalid_id")
	ErrNotFound  = errors.New("not_found")
)
