package migration

import (
	"context"
	"database/sql"
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/campaign-performance-api/pkg/log"
	"github.com/vfg2006/campaign-performance-api/pkg/utils"
)

const defaultBatchSize = 500

var (
	campaignColumns = []string{"campaign_id", "campaign_name", "campaign_type"}
	adGroupColumns  = []string{"ad_group_id", "ad_group_name", "campaign_id"}
	statsColumns    = []string{"date", "ad_group_id", "device", "impressions", "clicks", "conversions", "cost"}
)

// TxRunner executa uma função dentro de uma transação
type TxRunner interface {
	RunInTransaction(ctx context.Context, fn func(*sql.Tx) error) error
}

// Sources são os CSVs exportados das planilhas campaign, ad_group e ad_group_stats.
// Fontes nulas são ignoradas.
type Sources struct {
	Campaigns io.Reader
	AdGroups  io.Reader
	Stats     io.Reader
}

// LoadResult conta as linhas lidas de cada arquivo
type LoadResult struct {
	Campaigns int `json:"campaigns"`
	AdGroups  int `json:"ad_groups"`
	Stats     int `json:"stats"`
}

type Loader struct {
	conn      TxRunner
	logger    log.Logger
	batchSize int
	builder   squirrel.StatementBuilderType
}

func NewLoader(conn TxRunner, logger log.Logger, batchSize int) *Loader {
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}

	return &Loader{
		conn:      conn,
		logger:    logger,
		batchSize: batchSize,
		builder:   squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Load lê todos os arquivos antes de abrir a transação e grava tudo de uma vez.
// Campanhas e ad groups já existentes são mantidos; estatísticas são sempre inseridas.
func (l *Loader) Load(ctx context.Context, src Sources) (*LoadResult, error) {
	campaigns, err := readTable(src.Campaigns, campaignColumns, parseCampaignRow)
	if err != nil {
		return nil, fmt.Errorf("campaign: %w", err)
	}

	adGroups, err := readTable(src.AdGroups, adGroupColumns, parseAdGroupRow)
	if err != nil {
		return nil, fmt.Errorf("ad_group: %w", err)
	}

	stats, err := readTable(src.Stats, statsColumns, parseStatsRow)
	if err != nil {
		return nil, fmt.Errorf("ad_group_stats: %w", err)
	}

	err = l.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if err := l.insert(ctx, tx, "campaign", campaignColumns, "ON CONFLICT (campaign_id) DO NOTHING", campaigns); err != nil {
			return err
		}
		if err := l.insert(ctx, tx, "ad_group", adGroupColumns, "ON CONFLICT (ad_group_id) DO NOTHING", adGroups); err != nil {
			return err
		}
		return l.insert(ctx, tx, "ad_group_stats", statsColumns, "", stats)
	})
	if err != nil {
		l.logger.WithError(err).Error("Carga de dados revertida")
		return nil, err
	}

	result := &LoadResult{
		Campaigns: len(campaigns),
		AdGroups:  len(adGroups),
		Stats:     len(stats),
	}

	l.logger.WithFields(log.Fields{
		"campaigns": result.Campaigns,
		"ad_groups": result.AdGroups,
		"stats":     result.Stats,
	}).Info("Dados carregados com sucesso")

	return result, nil
}

func (l *Loader) insert(ctx context.Context, tx *sql.Tx, table string, columns []string, suffix string, rows [][]interface{}) error {
	for start := 0; start < len(rows); start += l.batchSize {
		end := min(start+l.batchSize, len(rows))

		builder := l.builder.Insert(table).Columns(columns...)
		for _, row := range rows[start:end] {
			builder = builder.Values(row...)
		}
		if suffix != "" {
			builder = builder.Suffix(suffix)
		}

		query, args, err := builder.ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir insert em %s: %w", table, err)
		}

		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("erro ao inserir em %s (linhas %d-%d): %w", table, start+1, end, err)
		}

		l.logger.WithFields(log.Fields{"table": table, "rows": end - start}).Debug("Lote inserido")
	}

	return nil
}

type rowParser func(get func(column string) string) ([]interface{}, error)

// readTable lê um CSV com cabeçalho. As colunas são localizadas pelo nome,
// então a ordem no arquivo é livre e colunas extras são ignoradas.
func readTable(r io.Reader, required []string, parse rowParser) ([][]interface{}, error) {
	if r == nil {
		return nil, nil
	}

	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao ler cabeçalho: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))] = i
	}
	for _, column := range required {
		if _, ok := index[column]; !ok {
			return nil, fmt.Errorf("coluna %q ausente no cabeçalho", column)
		}
	}

	var rows [][]interface{}
	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("linha %d: %w", line, err)
		}

		row, err := parse(func(column string) string {
			return strings.TrimSpace(record[index[column]])
		})
		if err != nil {
			return nil, fmt.Errorf("linha %d: %w", line, err)
		}
		rows = append(rows, row)
	}

	return rows, nil
}

func parseCampaignRow(get func(string) string) ([]interface{}, error) {
	id, err := parseID(get("campaign_id"))
	if err != nil {
		return nil, fmt.Errorf("campaign_id: %w", err)
	}

	name, err := requireText(get("campaign_name"), 255)
	if err != nil {
		return nil, fmt.Errorf("campaign_name: %w", err)
	}

	campaignType, err := requireText(get("campaign_type"), 50)
	if err != nil {
		return nil, fmt.Errorf("campaign_type: %w", err)
	}

	return []interface{}{id, name, campaignType}, nil
}

func parseAdGroupRow(get func(string) string) ([]interface{}, error) {
	id, err := parseID(get("ad_group_id"))
	if err != nil {
		return nil, fmt.Errorf("ad_group_id: %w", err)
	}

	name, err := requireText(get("ad_group_name"), 255)
	if err != nil {
		return nil, fmt.Errorf("ad_group_name: %w", err)
	}

	campaignID, err := parseID(get("campaign_id"))
	if err != nil {
		return nil, fmt.Errorf("campaign_id: %w", err)
	}

	return []interface{}{id, name, campaignID}, nil
}

func parseStatsRow(get func(string) string) ([]interface{}, error) {
	// exportações de planilha costumam trazer "2024-01-05 00:00:00"
	rawDate := get("date")
	if len(rawDate) > len("2006-01-02") {
		rawDate = rawDate[:len("2006-01-02")]
	}
	date, err := utils.ParseDate(rawDate)
	if err != nil {
		return nil, err
	}
	if date == nil {
		return nil, fmt.Errorf("date: valor obrigatório")
	}

	adGroupID, err := parseID(get("ad_group_id"))
	if err != nil {
		return nil, fmt.Errorf("ad_group_id: %w", err)
	}

	device, err := requireText(get("device"), 50)
	if err != nil {
		return nil, fmt.Errorf("device: %w", err)
	}

	impressions, err := parseNumber(get("impressions"))
	if err != nil {
		return nil, fmt.Errorf("impressions: %w", err)
	}

	clicks, err := parseCount(get("clicks"))
	if err != nil {
		return nil, fmt.Errorf("clicks: %w", err)
	}

	conversions, err := parseNumber(get("conversions"))
	if err != nil {
		return nil, fmt.Errorf("conversions: %w", err)
	}

	cost, err := parseNumber(get("cost"))
	if err != nil {
		return nil, fmt.Errorf("cost: %w", err)
	}

	return []interface{}{utils.FormatDate(*date), adGroupID, device, impressions, clicks, conversions, cost}, nil
}

func parseID(value string) (int64, error) {
	id, err := parseWhole(value)
	if err != nil {
		return 0, err
	}
	if id <= 0 {
		return 0, fmt.Errorf("identificador deve ser positivo: %d", id)
	}
	return id, nil
}

// parseWhole aceita "12" e também "12.0", comum em exportações de planilha
func parseWhole(value string) (int64, error) {
	if value == "" {
		return 0, fmt.Errorf("valor obrigatório")
	}

	if n, err := strconv.ParseInt(value, 10, 64); err == nil {
		return n, nil
	}

	f, err := strconv.ParseFloat(value, 64)
	if err != nil || f != float64(int64(f)) {
		return 0, fmt.Errorf("inteiro inválido %q", value)
	}
	return int64(f), nil
}

// parseCount é um inteiro não negativo
func parseCount(value string) (int64, error) {
	n, err := parseWhole(value)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, fmt.Errorf("valor negativo %q", value)
	}
	return n, nil
}

func parseNumber(value string) (float64, error) {
	if value == "" {
		return 0, fmt.Errorf("valor obrigatório")
	}

	f, err := strconv.ParseFloat(value, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("número inválido %q", value)
	}
	if f < 0 {
		return 0, fmt.Errorf("valor negativo %q", value)
	}
	return f, nil
}

func requireText(value string, maxLength int) (string, error) {
	if value == "" {
		return "", fmt.Errorf("valor obrigatório")
	}
	if len([]rune(value)) > maxLength {
		return "", fmt.Errorf("excede %d caracteres", maxLength)
	}
	return value, nil
}
