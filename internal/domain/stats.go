package domain

import "time"

// Granularity define o tamanho do bucket de uma série temporal
type Granularity string

const (
	GranularityDay   Granularity = "day"
	GranularityWeek  Granularity = "week"
	GranularityMonth Granularity = "month"
)

// IsValid indica se a granularidade é uma das aceitas (day, week, month)
func (g Granularity) IsValid() bool {
	switch g {
	case GranularityDay, GranularityWeek, GranularityMonth:
		return true
	}
	return false
}

// StatRecord representa uma linha de ad_group_stats (estatística diária por dispositivo)
type StatRecord struct {
	ID          int64     `json:"stats_id"`
	Date        time.Time `json:"date"`
	AdGroupID   int64     `json:"ad_group_id"`
	Device      string    `json:"device"`
	Impressions float64   `json:"impressions"`
	Clicks      int64     `json:"clicks"`
	Conversions float64   `json:"conversions"`
	Cost        float64   `json:"cost"`
}

// StatsQuery descreve uma agregação sobre ad_group_stats. Datas nulas e lista de
// ad groups vazia não restringem a consulta.
type StatsQuery struct {
	StartDate   *time.Time
	EndDate     *time.Time
	AdGroupIDs  []int64
	Granularity Granularity
}

// AggregateSums são as somas brutas de uma agregação (0 quando não há linhas)
type AggregateSums struct {
	Cost        float64
	Clicks      int64
	Conversions float64
	Impressions float64
}

// Add soma outro conjunto de totais a este
func (s AggregateSums) Add(other AggregateSums) AggregateSums {
	return AggregateSums{
		Cost:        s.Cost + other.Cost,
		Clicks:      s.Clicks + other.Clicks,
		Conversions: s.Conversions + other.Conversions,
		Impressions: s.Impressions + other.Impressions,
	}
}

// BucketSums são as somas de um bucket de série temporal
type BucketSums struct {
	Period time.Time
	AggregateSums
}
