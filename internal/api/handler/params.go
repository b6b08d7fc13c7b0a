package handler

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/vfg2006/campaign-performance-api/internal/domain"
	"github.com/vfg2006/campaign-performance-api/pkg/utils"
)

// Parâmetros aceitos como filtro de ad groups. "campaigns" é o nome legado.
var adGroupIDParams = []string{"ad_group_ids", "campaigns"}

// parsePerformanceFilters lê start_date, end_date e a lista de ad groups
func parsePerformanceFilters(query url.Values) (*domain.PerformanceFilters, error) {
	startDate, err := parseDateParam(query, "start_date")
	if err != nil {
		return nil, err
	}

	endDate, err := parseDateParam(query, "end_date")
	if err != nil {
		return nil, err
	}

	adGroupIDs, err := parseAdGroupIDs(query)
	if err != nil {
		return nil, err
	}

	return &domain.PerformanceFilters{
		StartDate:  startDate,
		EndDate:    endDate,
		AdGroupIDs: adGroupIDs,
	}, nil
}

func parseDateParam(query url.Values, name string) (*time.Time, error) {
	date, err := utils.ParseDate(strings.TrimSpace(query.Get(name)))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return date, nil
}

// parseAdGroupIDs aceita valores repetidos (?ad_group_ids=1&ad_group_ids=2)
// e separados por vírgula (?ad_group_ids=1,2)
func parseAdGroupIDs(query url.Values) ([]int64, error) {
	var ids []int64
	seen := make(map[int64]struct{})

	for _, param := range adGroupIDParams {
		for _, value := range query[param] {
			for _, raw := range strings.Split(value, ",") {
				raw = strings.TrimSpace(raw)
				if raw == "" {
					continue
				}

				id, err := strconv.ParseInt(raw, 10, 64)
				if err != nil {
					return nil, fmt.Errorf("%s: identificador inválido %q", param, raw)
				}

				if _, dup := seen[id]; dup {
					continue
				}
				seen[id] = struct{}{}
				ids = append(ids, id)
			}
		}
	}

	return ids, nil
}
