package steamquery

import (
	"fmt"
	"net/url"
	"strconv"
)

// IndexedParams builds the indexed-array parameter shape the remote storage
// endpoints demand: each value becomes publishedfileids[i] in insertion order,
// with countField carrying the total as a string. Lists flatten one level;
// numeric scalars are coerced to strings; anything else is dropped.
func IndexedParams(countField string, values ...any) url.Values {
	params := url.Values{}
	count := 0

	for _, value := range values {
		switch list := value.(type) {
		case []string:
			for _, item := range list {
				count = addIndexed(params, count, item)
			}
		case []int:
			for _, item := range list {
				count = addIndexed(params, count, strconv.Itoa(item))
			}
		case []any:
			for _, item := range list {
				if scalar, ok := coerceScalar(item); ok {
					count = addIndexed(params, count, scalar)
				}
			}
		default:
			if scalar, ok := coerceScalar(value); ok {
				count = addIndexed(params, count, scalar)
			}
		}
	}

	params.Set(countField, strconv.Itoa(count))

	return params
}

func addIndexed(params url.Values, index int, value string) int {
	params.Set(fmt.Sprintf("publishedfileids[%d]", index), value)

	return index + 1
}

func coerceScalar(value any) (string, bool) {
	switch scalar := value.(type) {
	case string:
		return scalar, true
	case int:
		return strconv.Itoa(scalar), true
	case int64:
		return strconv.FormatInt(scalar, 10), true
	case uint64:
		return strconv.FormatUint(scalar, 10), true
	case float64:
		return strconv.FormatFloat(scalar, 'f', -1, 64), true
	default:
		return "", false
	}
}
