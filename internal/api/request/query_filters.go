package request

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ndewijer/Real-Estate-Tracker-Backend/internal/finance"
	"github.com/ndewijer/Real-Estate-Tracker-Backend/internal/model"
)

// Query parameter defaults and bounds.
const (
	DefaultHorizonMonths = 120
	DefaultHistoryLimit  = 100
	MaxHistoryLimit      = 1000
	MaxProjectionYear    = 100
)

// ParseProjectionFilter extracts the projection horizon from query parameters.
//
// Validation rules:
//   - years: comma-separated non-negative integers up to MaxProjectionYear
//     (defaults to finance.DefaultProjectionYears)
//   - inflationAdjusted: a boolean (defaults to false)
func ParseProjectionFilter(yearsParam, inflationAdjustedParam string) (*model.ProjectionFilter, error) {
	filter := &model.ProjectionFilter{}

	if yearsParam != "" {
		for _, raw := range strings.Split(yearsParam, ",") {
			year, err := strconv.Atoi(strings.TrimSpace(raw))
			if err != nil {
				return nil, fmt.Errorf("invalid year: %q is not a number", raw)
			}
			if year < 0 || year > MaxProjectionYear {
				return nil, fmt.Errorf("invalid year: %d must be between 0 and %d", year, MaxProjectionYear)
			}
			filter.Years = append(filter.Years, year)
		}
	} else {
		filter.Years = append([]int(nil), finance.DefaultProjectionYears...)
	}

	if inflationAdjustedParam != "" {
		adjusted, err := strconv.ParseBool(inflationAdjustedParam)
		if err != nil {
			return nil, fmt.Errorf("invalid inflationAdjusted: must be true or false")
		}
		filter.InflationAdjusted = adjusted
	}

	return filter, nil
}

// ParseHorizonMonths parses the MIRR horizon, between 1 and
// finance.MaxHorizonMonths (defaults to DefaultHorizonMonths).
func ParseHorizonMonths(horizonParam string) (int, error) {
	if horizonParam == "" {
		return DefaultHorizonMonths, nil
	}

	horizon, err := strconv.Atoi(horizonParam)
	if err != nil {
		return 0, fmt.Errorf("invalid horizonMonths: must be a number")
	}
	if horizon < 1 || horizon > finance.MaxHorizonMonths {
		return 0, fmt.Errorf("invalid horizonMonths: must be between 1 and %d", finance.MaxHorizonMonths)
	}

	return horizon, nil
}

// ParseHistoryLimit parses the snapshot history limit, between 1 and
// MaxHistoryLimit (defaults to DefaultHistoryLimit).
func ParseHistoryLimit(limitParam string) (int, error) {
	if limitParam == "" {
		return DefaultHistoryLimit, nil
	}

	limit, err := strconv.Atoi(limitParam)
	if err != nil {
		return 0, fmt.Errorf("invalid limit: must be a number")
	}
	if limit < 1 || limit > MaxHistoryLimit {
		return 0, fmt.Errorf("invalid limit: must be between 1 and %d", MaxHistoryLimit)
	}

	return limit, nil
}
