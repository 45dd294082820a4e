package main

import (
	"fmt"
	"net"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/secnet-tools/nsg-report/pkg/server"
	"github.com/secnet-tools/nsg-report/pkg/services/analysis"
	"github.com/secnet-tools/nsg-report/pkg/services/nsg"
	"github.com/secnet-tools/nsg-report/pkg/store/duckdb"
	duckdbhistory "github.com/secnet-tools/nsg-report/pkg/store/duckdb/history"
)

var (
	analysisCfgPath string
	azureProfile    string
	dbPath          string
)

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the NSG report web server",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&analysisCfgPath, "config", "c", "analysis.yaml",
		"Path to the analysis service config file")
	rootCmd.Flags().StringVar(&azureProfile, "azure-profile", nsg.DefaultProfile,
		"Azure profile used for the NSG inventory")
	rootCmd.Flags().StringVar(&dbPath, "db", "nsg-report.db",
		"Path to the export history database")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	ctx := logger.WithContext(cmd.Context())

	analysisCfg, err := analysis.LoadConfig(analysisCfgPath)
	if err != nil {
		return fmt.Errorf("failed to load analysis service config: %w", err)
	}
	analysisClient := analysis.NewClient(analysisCfg)

	azureCfg, err := nsg.LoadConfig(ctx, azureProfile)
	if err != nil {
		return fmt.Errorf("failed to load Azure config: %w", err)
	}
	inventory, err := nsg.NewExplorer(azureCfg)
	if err != nil {
		return fmt.Errorf("failed to create NSG explorer: %w", err)
	}

	db, err := duckdb.NewDB(duckdb.Settings{DbPath: dbPath})
	if err != nil {
		return fmt.Errorf("failed to create DuckDB instance: %w", err)
	}
	historyStore, err := duckdbhistory.NewStore(db)
	if err != nil {
		return fmt.Errorf("failed to create export history store: %w", err)
	}

	logger.Info().Msgf("Analysis service at `%s`.", analysisCfg.Endpoint)
	logger.Info().Msgf("Azure subscription `%s`.", azureCfg.SubscriptionID)

	host := os.Getenv("SERVER_HOST")
	port := os.Getenv("SERVER_PORT")

	if host == "" || port == "" {
		logger.Error().Msgf("Missing server configuration from .env file")
		os.Exit(1)
	}

	api := server.NewWebAPI(logger, server.Config{
		Addr: net.JoinHostPort(host, port),
		Dependencies: server.Dependencies{
			Analysis:  analysisClient,
			Inventory: inventory,
			History:   historyStore,
		},
	})

	return api.Start()
}
