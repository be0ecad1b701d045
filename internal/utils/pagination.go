package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type PaginationParams struct {
	Page  int    `json:"page" form:"page"`
	Limit int    `json:"limit" form:"limit"`
	Sort  string `json:"sort_by" form:"sort_by"`
	Order string `json:"sort_order" form:"sort_order"`
}

func GetPaginationParams(c *gin.Context) *PaginationParams {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(DefaultPageSize)))
	sort := c.DefaultQuery("sort_by", "created_at")
	order := c.DefaultQuery("sort_order", "desc")

	if page < 1 {
		page = 1
	}
	if limit < MinPageSize {
		limit = MinPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}
	if order != "asc" && order != "desc" {
		order = "desc"
	}

	return &PaginationParams{
		Page:  page,
		Limit: limit,
		Sort:  sort,
		Order: order,
	}
}

// DefaultPaginationParams returns the first page with default sizing.
func DefaultPaginationParams() *PaginationParams {
	return &PaginationParams{
		Page:  1,
		Limit: DefaultPageSize,
		Sort:  "created_at",
		Order: "desc",
	}
}

func (p *PaginationParams) GetSkip() int {
	return (p.Page - 1) * p.Limit
}

func (p *PaginationParams) GetLimit() int {
	return p.Limit
}

func (p *PaginationParams) GetSortOptions() *options.FindOptions {
	opts := options.Find()
	opts.SetSkip(int64(p.GetSkip()))
	opts.SetLimit(int64(p.GetLimit()))

	sortOrder := 1
	if p.Order == "desc" {
		sortOrder = -1
	}
	opts.SetSort(bson.D{{Key: p.Sort, Value: sortOrder}})

	return opts
}
