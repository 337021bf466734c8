package filters

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func ParseFloat(raw string) (any, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return nil, fmt.Errorf("not a number: %q", raw)
	}
	return f, nil
}

func ParseTime(raw string) (any, error) {
	raw = strings.TrimSpace(raw)
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return nil, fmt.Errorf("not a date: %q", raw)
}

// SplitList splits a comma separated list, dropping blanks.
func SplitList(raw string) (any, error) {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("empty list")
	}
	return out, nil
}

// RelationOf builds a transform that places the raw value under key.
func RelationOf(key string) Transform {
	return func(raw string) (any, error) {
		return Relation{key: raw}, nil
	}
}
