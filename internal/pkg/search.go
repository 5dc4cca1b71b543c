package pkg

import (
	"regexp"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/rmayuresh772/inflectionzone-reancare-service/internal/domain"
)

const maxItemsPerPage = 100

// validFieldName matches only alphanumeric characters and underscores.
var validFieldName = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// ParseBaseFilters extracts the shared search parameters from query params.
// A negative pageIndex clamps to 0 and itemsPerPage defaults to 25; order
// defaults to ascending unless "descending" is requested.
func ParseBaseFilters(c *gin.Context) domain.BaseSearchFilters {
	pageIndex, _ := strconv.Atoi(c.DefaultQuery("pageIndex", "0"))
	if pageIndex < 0 {
		pageIndex = 0
	}

	itemsPerPage, _ := strconv.Atoi(c.DefaultQuery("itemsPerPage", strconv.Itoa(domain.DefaultItemsPerPage)))
	if itemsPerPage < 1 {
		itemsPerPage = domain.DefaultItemsPerPage
	}
	if itemsPerPage > maxItemsPerPage {
		itemsPerPage = maxItemsPerPage
	}

	order := domain.OrderAscending
	if strings.EqualFold(c.Query("order"), domain.OrderDescending) {
		order = domain.OrderDescending
	}

	return domain.BaseSearchFilters{
		CreatedDateFrom: QueryTime(c, "createdDateFrom"),
		CreatedDateTo:   QueryTime(c, "createdDateTo"),
		OrderBy:         strings.TrimSpace(c.Query("orderBy")),
		Order:           order,
		PageIndex:       pageIndex,
		ItemsPerPage:    itemsPerPage,
	}
}

// QueryTime parses an optional RFC 3339 or date-only query parameter.
// Missing or malformed values resolve to nil.
func QueryTime(c *gin.Context, name string) *time.Time {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return &t
	}
	return nil
}

// QueryString returns a pointer to a non-empty query parameter, else nil.
func QueryString(c *gin.Context, name string) *string {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return nil
	}
	return &raw
}

// QueryFloat parses an optional float query parameter.
func QueryFloat(c *gin.Context, name string) *float64 {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &v
}

// QueryInt parses an optional integer query parameter.
func QueryInt(c *gin.Context, name string) *int {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &v
}

// ResolveOrder picks the ORDER BY column and SQL direction for a search.
// Columns outside the allowed list fall back to the entity's documented
// default column.
func ResolveOrder(f domain.BaseSearchFilters, allowed []string, defaultColumn string) (string, string) {
	column := defaultColumn
	if f.OrderBy != "" && validFieldName.MatchString(f.OrderBy) && slices.Contains(allowed, f.OrderBy) {
		column = f.OrderBy
	}
	direction := "ASC"
	if f.Order == domain.OrderDescending {
		direction = "DESC"
	}
	return column, direction
}

// Order returns a GORM scope applying ORDER BY for a resolved column and
// direction. Callers must resolve through ResolveOrder first so only
// allow-listed columns reach the query.
func Order(column, direction string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if !validFieldName.MatchString(column) {
			return db
		}
		return db.Order(column + " " + direction)
	}
}

// Paginate returns a GORM scope that applies LIMIT and OFFSET based on the
// page index and page size. Offsets are never negative.
func Paginate(f domain.BaseSearchFilters) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		pageIndex := f.PageIndex
		if pageIndex < 0 {
			pageIndex = 0
		}
		itemsPerPage := f.ItemsPerPage
		if itemsPerPage < 1 {
			itemsPerPage = domain.DefaultItemsPerPage
		}
		return db.Offset(pageIndex * itemsPerPage).Limit(itemsPerPage)
	}
}

// Exact returns a GORM scope matching a column exactly when the value is set.
func Exact(column string, value *string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if value == nil || !validFieldName.MatchString(column) {
			return db
		}
		return db.Where(column+" = ?", *value)
	}
}

// Contains returns a GORM scope applying a case-sensitive substring match
// when the value is set.
func Contains(column string, value *string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if value == nil || !validFieldName.MatchString(column) {
			return db
		}
		return db.Where(column+" LIKE ?", "%"+*value+"%")
	}
}

// Range returns a GORM scope applying an inclusive range predicate. Either
// bound may be nil, giving lower-only or upper-only shapes.
func Range[T any](column string, min, max *T) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if !validFieldName.MatchString(column) {
			return db
		}
		if min != nil {
			db = db.Where(column+" >= ?", *min)
		}
		if max != nil {
			db = db.Where(column+" <= ?", *max)
		}
		return db
	}
}

// NewSearchResults assembles the search envelope, echoing the effective
// pagination and ordering back to the caller.
func NewSearchResults[T any](items []T, total int64, f domain.BaseSearchFilters, orderedBy string) *domain.SearchResults[T] {
	if items == nil {
		items = []T{}
	}
	pageIndex := f.PageIndex
	if pageIndex < 0 {
		pageIndex = 0
	}
	itemsPerPage := f.ItemsPerPage
	if itemsPerPage < 1 {
		itemsPerPage = domain.DefaultItemsPerPage
	}
	order := domain.OrderAscending
	if f.Order == domain.OrderDescending {
		order = domain.OrderDescending
	}
	return &domain.SearchResults[T]{
		TotalCount:     total,
		RetrievedCount: len(items),
		PageIndex:      pageIndex,
		ItemsPerPage:   itemsPerPage,
		Order:          order,
		OrderedBy:      orderedBy,
		Items:          items,
	}
}

// SearchMessage builds the standard search response message for a count of
// retrieved records.
func SearchMessage(count int, noun string) string {
	if count == 0 {
		return "No records found!"
	}
	return "Total " + strconv.Itoa(count) + " " + noun + " retrieved successfully!"
}
