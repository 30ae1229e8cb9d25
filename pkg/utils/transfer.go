package utils

import (
	"strconv"
	"strings"

	"VideoTube.com/pkg/errno"
)

// Transfer converts a loosely typed identity claim into a user id.
// JWT claims decode numbers as float64, so every shape is accepted.
func Transfer(value interface{}) int64 {
	switch v := value.(type) {
	case int64:
		return v
	case int:
		return int64(v)
	case float64:
		return int64(v)
	case string:
		if intValue, err := strconv.ParseInt(v, 10, 64); err == nil {
			return intValue
		}
	}
	return -1
}

func ConvertStringToInt64(v string) (int64, error) {
	if res, err := strconv.ParseInt(v, 10, 64); err != nil {
		return -1, err
	} else {
		return res, nil
	}
}

// ParseId validates an entity id coming from a path, query or body field.
// Only positive base-10 integers are well formed.
func ParseId(raw, field string) (int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, errno.RequestErr.WithMessage(field + " is required")
	}
	id, err := ConvertStringToInt64(raw)
	if err != nil || id <= 0 {
		return 0, errno.InvalidIdErr.WithMessage("Invalid " + field)
	}
	return id, nil
}
