package controller

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/jbeshir/newspulse/internal/domain"
)

const maxPageSize = 50

func parsePageSize(q url.Values, defaultPageSize int) (int, error) {
	if !q.Has("page_size") {
		return defaultPageSize, nil
	}

	ps, err := strconv.ParseInt(q.Get("page_size"), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("unable to parse page size from query: %w", err)
	}
	if ps > maxPageSize {
		return 0, fmt.Errorf("page size [%d] exceeds limit [%d]", ps, maxPageSize)
	}
	if ps < 1 {
		return 0, fmt.Errorf("invalid page size value [%d]", ps)
	}
	return int(ps), nil
}

func parseCategory(q url.Values) (string, error) {
	category := q.Get("category")
	if category != "" && !domain.IsValidCategory(category) {
		return "", fmt.Errorf("unrecognised category: %s", category)
	}
	return category, nil
}
