package persistence

import (
	"strings"

	"github.com/retail/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// Columns accepted in ORDER BY clauses. Anything else falls back to id,
// which keeps the clause safe from injection.
var sortableColumns = map[string]bool{
	"id":         true,
	"name":       true,
	"price":      true,
	"inventory":  true,
	"status":     true,
	"created_at": true,
	"updated_at": true,
}

// applyFilter applies pagination and ordering from a shared.Filter
func applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	orderBy := strings.ToLower(filter.OrderBy)
	if !sortableColumns[orderBy] {
		orderBy = "id"
	}
	orderDir := "ASC"
	if strings.EqualFold(filter.OrderDir, "desc") {
		orderDir = "DESC"
	}

	return query.Order(orderBy + " " + orderDir)
}
