package server

import (
	"strconv"
	"strings"

	productdomain "github.com/smallbiznis/rentcatalog/internal/product/domain"
)

func parseProductID(value string) (int64, error) {
	parsed, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil {
		return 0, productdomain.ErrInvalidID
	}
	return parsed, nil
}
