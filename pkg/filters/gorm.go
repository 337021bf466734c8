package filters

import (
	"fmt"
	"strings"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Resolver adds the conditions of one clause to a query.
type Resolver func(db *gorm.DB, c *Clause) (*gorm.DB, error)

// Columns maps every filterable field of an entity to its resolver.
type Columns map[string]Resolver

func (w Where) Apply(db *gorm.DB, cols Columns) (*gorm.DB, error) {
	for _, field := range w.Fields() {
		resolve, ok := cols[field]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
		var err error
		if db, err = resolve(db, w[field]); err != nil {
			return nil, err
		}
	}
	return db, nil
}

// Scalar resolves comparisons on a plain column.
func Scalar(column string) Resolver {
	return func(db *gorm.DB, c *Clause) (*gorm.DB, error) {
		for _, op := range c.Operations() {
			v := c.Ops[op]
			switch op {
			case OpEquals:
				if c.Insensitive {
					db = db.Where(fmt.Sprintf("LOWER(%s) = LOWER(?)", column), v)
				} else {
					db = db.Where(fmt.Sprintf("%s = ?", column), v)
				}
			case OpContains:
				s, ok := v.(string)
				if !ok {
					return nil, fmt.Errorf("%w: contains on %s needs text", ErrInvalidFilter, column)
				}
				pattern := "%" + EscapeLike(s) + "%"
				if c.Insensitive {
					db = db.Where(fmt.Sprintf(`LOWER(%s) LIKE LOWER(?) ESCAPE '\'`, column), pattern)
				} else {
					db = db.Where(fmt.Sprintf(`%s LIKE ? ESCAPE '\'`, column), pattern)
				}
			case OpGte:
				db = db.Where(fmt.Sprintf("%s >= ?", column), v)
			case OpLte:
				db = db.Where(fmt.Sprintf("%s <= ?", column), v)
			case OpIn:
				db = db.Where(fmt.Sprintf("%s IN ?", column), v)
			default:
				return nil, fmt.Errorf("filters: operation %s not supported on %s", op, column)
			}
		}
		return db, nil
	}
}

// Array resolves hasSome on a Postgres text[] column with the overlap operator.
func Array(column string) Resolver {
	return func(db *gorm.DB, c *Clause) (*gorm.DB, error) {
		for _, op := range c.Operations() {
			if op != OpHasSome {
				return nil, fmt.Errorf("filters: operation %s not supported on array %s", op, column)
			}
			values, ok := c.Ops[op].([]string)
			if !ok {
				return nil, fmt.Errorf("%w: hasSome on %s needs a list", ErrInvalidFilter, column)
			}
			db = db.Where(fmt.Sprintf("%s && ?", column), pq.Array(values))
		}
		return db, nil
	}
}

// EscapeLike escapes the LIKE wildcards of s using backslash.
func EscapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
