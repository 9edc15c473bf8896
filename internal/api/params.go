package api

import (
	"net/url"
	"strconv"
	"time"
)

// Query parameter helpers. Unparseable values are treated as absent.

func queryFloat(q url.Values, key string) *float64 {
	raw := q.Get(key)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &v
}

func queryInt(q url.Values, key string) *int {
	raw := q.Get(key)
	if raw == "" {
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &v
}

func queryInt64(q url.Values, key string) *int64 {
	raw := q.Get(key)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil
	}
	return &v
}

func queryTime(q url.Values, key string) *time.Time {
	raw := q.Get(key)
	if raw == "" {
		return nil
	}
	if v, err := time.Parse(time.RFC3339, raw); err == nil {
		return &v
	}
	if v, err := time.Parse("2006-01-02", raw); err == nil {
		return &v
	}
	return nil
}

func queryDuration(q url.Values, key string) *time.Duration {
	raw := q.Get(key)
	if raw == "" {
		return nil
	}
	if v, err := time.ParseDuration(raw); err == nil {
		return &v
	}
	if secs, err := strconv.ParseInt(raw, 10, 64); err == nil {
		v := time.Duration(secs) * time.Second
		return &v
	}
	return nil
}
