// Package filters turns flat query-string parameters into WHERE clauses.
//
// A QueryConfig maps each accepted parameter to the field it constrains, the
// comparison applied to it and an optional Transform that converts the raw
// string. Several parameters may constrain the same field; their operations are
// merged into a single Clause (minPrice and maxPrice both land on pricing).
package filters

import (
	"errors"
	"fmt"
	"net/url"
	"sort"
	"strings"
)

type Operation string

const (
	OpEquals   Operation = "equals"
	OpContains Operation = "contains"
	OpGte      Operation = "gte"
	OpLte      Operation = "lte"
	OpIn       Operation = "in"
	OpSome     Operation = "some"
	OpHasSome  Operation = "hasSome"
)

var (
	ErrInvalidFilter = errors.New("invalid filter value")
	ErrUnknownField  = errors.New("no column resolver for filter field")
)

// Transform converts the raw parameter into the value stored on the clause.
type Transform func(raw string) (any, error)

type FieldConfig struct {
	Field       string
	Operation   Operation
	Insensitive bool
	Transform   Transform
}

type QueryConfig map[string]FieldConfig

// Relation is what a transform returns for a field configured without an
// operation. Its keys are spread onto the clause of that field.
type Relation map[string]any

type Clause struct {
	Ops         map[Operation]any
	Insensitive bool
	Relation    Relation
}

func (c *Clause) Operations() []Operation {
	ops := make([]Operation, 0, len(c.Ops))
	for op := range c.Ops {
		ops = append(ops, op)
	}
	sort.Slice(ops, func(i, j int) bool { return ops[i] < ops[j] })
	return ops
}

type Where map[string]*Clause

// Fields returns the constrained fields in a stable order.
func (w Where) Fields() []string {
	fields := make([]string, 0, len(w))
	for f := range w {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return fields
}

// Build applies cfg to params. The returned count is the number of distinct
// fields constrained; callers use it to tell "nothing matched the filters"
// apart from "nothing was asked for". Unknown and empty parameters are ignored.
func Build(params map[string]string, cfg QueryConfig) (int, Where, error) {
	where := Where{}

	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		conf, ok := cfg[key]
		raw := params[key]
		if !ok || raw == "" {
			continue
		}

		var value any = raw
		if conf.Transform != nil {
			v, err := conf.Transform(raw)
			if err != nil {
				return 0, nil, fmt.Errorf("%w: %s: %v", ErrInvalidFilter, key, err)
			}
			value = v
		}

		clause, exists := where[conf.Field]
		if !exists {
			clause = &Clause{Ops: map[Operation]any{}}
		}

		if conf.Operation == "" {
			rel, ok := value.(Relation)
			if !ok {
				return 0, nil, fmt.Errorf("filters: %s has no operation and its transform returned %T", key, value)
			}
			if clause.Relation == nil {
				clause.Relation = Relation{}
			}
			for k, v := range rel {
				clause.Relation[k] = v
			}
		} else {
			clause.Ops[conf.Operation] = value
		}

		if conf.Insensitive {
			clause.Insensitive = true
		}
		where[conf.Field] = clause
	}

	return len(where), where, nil
}

// Params flattens a query string, keeping the first value of every key.
func Params(values url.Values) map[string]string {
	out := make(map[string]string, len(values))
	for k, v := range values {
		if len(v) > 0 {
			out[k] = strings.TrimSpace(v[0])
		}
	}
	return out
}
