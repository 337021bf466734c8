package repositories

import (
	"fmt"

	"gorm.io/gorm"

	"travelling/pkg/filters"
)

var attractionColumns = filters.Columns{
	"name":          filters.Scalar("attractions.name"),
	"pricing":       filters.Scalar("attractions.pricing"),
	"date":          filters.Scalar("attractions.date"),
	"location":      filters.Scalar("attractions.location"),
	"averageRating": filters.Scalar("attractions.average_rating"),
	"categories":    categoriesSome("attraction_categories", "attraction_id", "attractions"),
	"agency":        ownerName("agencies", "attractions", "agency_id"),
}

var establishmentColumns = filters.Columns{
	"name":          filters.Scalar("establishments.name"),
	"minPrice":      filters.Scalar("establishments.min_price"),
	"maxPrice":      filters.Scalar("establishments.max_price"),
	"openHours":     filters.Scalar("establishments.open_hours"),
	"closeHours":    filters.Scalar("establishments.close_hours"),
	"openDays":      filters.Array("establishments.open_days"),
	"averageRating": filters.Scalar("establishments.average_rating"),
	"location":      filters.Scalar("establishments.location"),
	"categories":    categoriesSome("establishment_categories", "establishment_id", "establishments"),
	"business":      ownerName("businesses", "establishments", "business_id"),
}

// categoriesSome matches rows linked to at least one category whose id or
// title is in the list.
func categoriesSome(joinTable, ownerColumn, ownerTable string) filters.Resolver {
	query := fmt.Sprintf(
		`EXISTS (SELECT 1 FROM %s jc JOIN categories c ON c.id = jc.category_id WHERE jc.%s = %s.id AND (CAST(c.id AS TEXT) IN ? OR c.title IN ?))`,
		joinTable, ownerColumn, ownerTable,
	)
	return func(db *gorm.DB, c *filters.Clause) (*gorm.DB, error) {
		for _, op := range c.Operations() {
			values, ok := c.Ops[op].([]string)
			if op != filters.OpSome || !ok {
				return nil, fmt.Errorf("%w: categories expects a list", filters.ErrInvalidFilter)
			}
			db = db.Where(query, values, values)
		}
		return db, nil
	}
}

// ownerName matches rows whose owning agency or business has a user name
// containing Relation["name"], case insensitive.
func ownerName(ownerTable, table, fkColumn string) filters.Resolver {
	query := fmt.Sprintf(
		`%s.%s IN (SELECT o.id FROM %s o JOIN users u ON u.id = o.user_id WHERE LOWER(u.name) LIKE LOWER(?) ESCAPE '\')`,
		table, fkColumn, ownerTable,
	)
	return func(db *gorm.DB, c *filters.Clause) (*gorm.DB, error) {
		name, ok := c.Relation["name"].(string)
		if !ok {
			return nil, fmt.Errorf("%w: owner filter expects a name", filters.ErrInvalidFilter)
		}
		return db.Where(query, "%"+filters.EscapeLike(name)+"%"), nil
	}
}
