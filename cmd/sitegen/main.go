package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"

	"sitegen/internal/assembler"
	"sitegen/internal/config"
	"sitegen/internal/content"
	"sitegen/internal/export"
	"sitegen/internal/industry"
	"sitegen/internal/server"
	"sitegen/internal/site"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	rootCmd = &cobra.Command{
		Use:   "sitegen",
		Short: "AI-assisted website generator",
	}
	configPath string
	offline    bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "config.yaml", "Path to the configuration file")
	rootCmd.PersistentFlags().BoolVar(&offline, "offline", false, "Skip the model backend and use fallback content only")

	generateCmd.Flags().StringVar(&genIndustry, "industry", "", "Industry key (restaurant, technology, ...)")
	generateCmd.Flags().StringVar(&genStyle, "style", "", "Style key (modern, classic, bold, minimal)")
	generateCmd.Flags().StringVar(&genName, "name", "", "Business name")
	generateCmd.Flags().StringVar(&genDescription, "description", "", "Business description")
	generateCmd.Flags().StringVar(&genAudience, "audience", "", "Target audience")
	generateCmd.Flags().StringVar(&genSellingPoints, "usp", "", "Unique selling points")
	generateCmd.Flags().StringVarP(&genOut, "out", "o", "website.json", "Output path for the website document")

	exportCmd.Flags().StringVarP(&exportIn, "in", "i", "website.json", "Website document to export")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "dist", "Output directory")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(serveCmd)
}

// newAssembler builds the assembler from configuration. Provider setup
// failures degrade to fallback-only assembly rather than aborting.
func newAssembler(ctx context.Context, cfg *config.Config, logger *zap.Logger) *assembler.Assembler {
	var gen content.Generator
	if !offline {
		var err error
		gen, err = content.NewGenerator(ctx, content.GeneratorOptions{
			Provider: cfg.AI.Provider,
			APIKey:   cfg.AI.APIKey,
			Model:    cfg.AI.Model,
			BaseURL:  cfg.AI.BaseURL,
			Timeout:  cfg.Timeout(),
		})
		if err != nil {
			fmt.Printf("⚠️  Content provider unavailable (%v), using fallback content.\n", err)
			gen = nil
		}
	}
	return assembler.New(gen,
		assembler.WithLogger(logger),
		assembler.WithConcurrency(cfg.AI.Concurrency),
	)
}

var (
	genIndustry      string
	genStyle         string
	genName          string
	genDescription   string
	genAudience      string
	genSellingPoints string
	genOut           string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Assemble a website document from business requirements",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig(configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		logger, _ := zap.NewProduction()
		defer logger.Sync()

		ctx := context.Background()
		a := newAssembler(ctx, cfg, logger)

		req := content.Request{
			Industry:            genIndustry,
			Style:               genStyle,
			WebsiteName:         genName,
			Description:         genDescription,
			TargetAudience:      genAudience,
			UniqueSellingPoints: genSellingPoints,
		}

		if req.Industry != "" && !industry.Known(req.Industry) {
			fmt.Printf("⚠️  Unknown industry %q, using the default section plan.\n", req.Industry)
		}

		fmt.Printf("🚀 Generating website for %q (%s)...\n", req.Name(), req.Industry)
		website := a.AssembleWebsite(ctx, req)

		data, err := json.MarshalIndent(website, "", "  ")
		if err != nil {
			log.Fatalf("Failed to encode website: %v", err)
		}
		if err := os.WriteFile(genOut, data, 0644); err != nil {
			log.Fatalf("Failed to write %s: %v", genOut, err)
		}
		fmt.Printf("✅ Website document with %d sections written to %s\n", len(website.Sections), genOut)
	},
}

var (
	exportIn  string
	exportOut string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a website document to HTML and CSS",
	Run: func(cmd *cobra.Command, args []string) {
		data, err := os.ReadFile(exportIn)
		if err != nil {
			log.Fatalf("Failed to read %s: %v", exportIn, err)
		}

		var website site.Website
		if err := json.Unmarshal(data, &website); err != nil {
			log.Fatalf("Failed to parse website document: %v", err)
		}

		result := export.Export(website, website.Settings)

		if err := os.MkdirAll(exportOut, 0755); err != nil {
			log.Fatalf("Failed to create output directory: %v", err)
		}
		if err := os.WriteFile(filepath.Join(exportOut, "index.html"), []byte(result.HTML), 0644); err != nil {
			log.Fatalf("Failed to write index.html: %v", err)
		}
		if err := os.WriteFile(filepath.Join(exportOut, "styles.css"), []byte(result.CSS), 0644); err != nil {
			log.Fatalf("Failed to write styles.css: %v", err)
		}
		manifest, err := json.MarshalIndent(result.Assets, "", "  ")
		if err != nil {
			log.Fatalf("Failed to encode asset manifest: %v", err)
		}
		if err := os.WriteFile(filepath.Join(exportOut, "assets.json"), manifest, 0644); err != nil {
			log.Fatalf("Failed to write assets.json: %v", err)
		}

		fmt.Printf("✅ Exported to %s (%d assets).\n", exportOut, len(result.Assets))
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the generation HTTP API",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig(configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		logger, _ := zap.NewProduction()
		defer logger.Sync()

		ctx := context.Background()
		a := newAssembler(ctx, cfg, logger)
		srv := server.New(a, logger)

		fmt.Printf("🌐 Listening on %s\n", cfg.Server.Addr)
		if err := http.ListenAndServe(cfg.Server.Addr, srv.Router()); err != nil {
			log.Fatalf("Server stopped: %v", err)
		}
	},
}
