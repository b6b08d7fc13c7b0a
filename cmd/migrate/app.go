package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/vfg2006/campaign-performance-api/infrastructure/database/postgres"
	"github.com/vfg2006/campaign-performance-api/infrastructure/migration"
	"github.com/vfg2006/campaign-performance-api/internal/config"
	"github.com/vfg2006/campaign-performance-api/pkg/log"
)

// CLIApp agrupa os comandos de schema e carga de dados
type CLIApp struct {
	rootCmd *cobra.Command
	logger  log.Logger
	connect func(ctx context.Context) (postgres.Conn, error)
}

func NewCLIApp(logger log.Logger, connect func(ctx context.Context) (postgres.Conn, error)) *CLIApp {
	app := &CLIApp{
		logger:  logger,
		connect: connect,
	}

	rootCmd := &cobra.Command{
		Use:           "migrate",
		Short:         "Schema e carga de dados do campaign-performance-api",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	upCmd := &cobra.Command{
		Use:   "up",
		Short: "Cria as tabelas campaign, ad_group e ad_group_stats",
		RunE:  app.runUp,
	}

	loadCmd := &cobra.Command{
		Use:   "load",
		Short: "Carrega exportações CSV em uma única transação",
		RunE:  app.runLoad,
	}
	loadCmd.Flags().String("campaigns", "", "CSV com campaign_id, campaign_name, campaign_type")
	loadCmd.Flags().String("ad-groups", "", "CSV com ad_group_id, ad_group_name, campaign_id")
	loadCmd.Flags().String("stats", "", "CSV com date, ad_group_id, device, impressions, clicks, conversions, cost")
	loadCmd.Flags().Int("batch-size", 500, "Linhas por INSERT")
	loadCmd.Flags().Bool("migrate", false, "Executa o up antes da carga")

	rootCmd.AddCommand(upCmd, loadCmd)

	app.rootCmd = rootCmd
	return app
}

// Execute roda a aplicação com os argumentos informados
func (app *CLIApp) Execute(ctx context.Context, args []string) error {
	app.rootCmd.SetArgs(args)
	return app.rootCmd.ExecuteContext(ctx)
}

func (app *CLIApp) runUp(cmd *cobra.Command, _ []string) error {
	store, err := app.connect(cmd.Context())
	if err != nil {
		return err
	}
	defer store.Close()

	return migration.Up(cmd.Context(), store, app.logger)
}

func (app *CLIApp) runLoad(cmd *cobra.Command, _ []string) error {
	campaignsPath, _ := cmd.Flags().GetString("campaigns")
	adGroupsPath, _ := cmd.Flags().GetString("ad-groups")
	statsPath, _ := cmd.Flags().GetString("stats")
	batchSize, _ := cmd.Flags().GetInt("batch-size")
	runUp, _ := cmd.Flags().GetBool("migrate")

	if campaignsPath == "" && adGroupsPath == "" && statsPath == "" {
		return fmt.Errorf("informe ao menos um arquivo: --campaigns, --ad-groups ou --stats")
	}

	var sources migration.Sources
	var files []io.Closer
	defer func() {
		for _, f := range files {
			_ = f.Close()
		}
	}()

	open := func(path string) (io.Reader, error) {
		if path == "" {
			return nil, nil
		}
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("erro ao abrir %s: %w", path, err)
		}
		files = append(files, f)
		return f, nil
	}

	var err error
	if sources.Campaigns, err = open(campaignsPath); err != nil {
		return err
	}
	if sources.AdGroups, err = open(adGroupsPath); err != nil {
		return err
	}
	if sources.Stats, err = open(statsPath); err != nil {
		return err
	}

	store, err := app.connect(cmd.Context())
	if err != nil {
		return err
	}
	defer store.Close()

	if runUp {
		if err := migration.Up(cmd.Context(), store, app.logger); err != nil {
			return err
		}
	}

	result, err := migration.NewLoader(store, app.logger, batchSize).Load(cmd.Context(), sources)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "campanhas: %d, ad groups: %d, estatísticas: %d\n",
		result.Campaigns, result.AdGroups, result.Stats)
	return nil
}

// connectPostgres abre a conexão usando a mesma configuração da API
func connectPostgres(cfg *config.Config) func(ctx context.Context) (postgres.Conn, error) {
	return func(ctx context.Context) (postgres.Conn, error) {
		conn, err := postgres.NewConnection(ctx, cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("erro ao conectar ao PostgreSQL: %w", err)
		}
		return conn, nil
	}
}
