package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"nettree/internal/config"
	"nettree/internal/inventory"
	"nettree/internal/report"
)

// Command flags
var (
	inventoryPath    string   // Path to the inventory definition file
	outputDir        string   // Output directory for reports
	formats          []string // Output formats (text, excel, html)
	htmlTemplatePath string   // Path to a custom HTML template (optional)
	noStdout         bool     // Suppress the tree on stdout
)

// renderCmd represents the render command.
var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render an inventory tree",
	Long: `Load an inventory definition, print the ASCII tree to stdout and
optionally write the inventory as report files.

Examples:
  # Print the tree
  nettree render -i inventory.yaml

  # Print the tree and write text and Excel reports
  nettree render -i inventory.yaml -f text,excel -o ./reports

  # Write reports only
  nettree render -i inventory.yaml -f html --no-stdout`,
	Run: runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().StringVarP(&inventoryPath, "inventory", "i", "inventory.yaml", "inventory definition file path")
	renderCmd.Flags().StringSliceVarP(&formats, "format", "f", nil, "report formats (text,excel,html), comma separated")
	renderCmd.Flags().StringVarP(&outputDir, "output", "o", "", "report output directory")
	renderCmd.Flags().StringVar(&htmlTemplatePath, "html-template", "", "custom HTML template path")
	renderCmd.Flags().BoolVar(&noStdout, "no-stdout", false, "do not print the tree to stdout")
}

// runRender executes the render command logic.
func runRender(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(GetConfigFile())
	if err != nil {
		tmpLogger := setupLogger("error", "console")
		tmpLogger.Error().Err(err).Str("path", GetConfigFile()).Msg("failed to load config")
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Command line --log-level overrides the config file setting
	level := cfg.Logging.Level
	if GetLogLevel() != "info" {
		level = GetLogLevel()
	}
	logger := setupLogger(level, cfg.Logging.Format)

	net, err := config.LoadInventory(inventoryPath)
	if err != nil {
		logger.Error().Err(err).Str("path", inventoryPath).Msg("failed to load inventory")
		fmt.Fprintf(os.Stderr, "failed to load inventory: %v\n", err)
		os.Exit(1)
	}
	logger.Debug().
		Str("network", net.Name()).
		Int("hosts", len(net.Hosts())).
		Msg("inventory loaded")

	if !noStdout {
		fmt.Println(net.String())
	}

	// Reports are written only when a format or output directory is
	// requested; the remaining settings fall back to the config file.
	if len(formats) == 0 && outputDir == "" {
		return
	}
	effectiveFormats := formats
	if len(effectiveFormats) == 0 {
		effectiveFormats = cfg.Report.Formats
	}
	effectiveOutput := outputDir
	if effectiveOutput == "" {
		effectiveOutput = cfg.Report.OutputDir
	}
	templatePath := htmlTemplatePath
	if templatePath == "" {
		templatePath = cfg.Report.HTMLTemplate
	}

	baseName, err := reportBaseName(cfg.Report.FilenameTemplate, net)
	if err != nil {
		logger.Error().Err(err).Msg("invalid filename template")
		fmt.Fprintf(os.Stderr, "invalid filename template: %v\n", err)
		os.Exit(1)
	}

	if err := writeReports(net, effectiveFormats, effectiveOutput, baseName, templatePath); err != nil {
		logger.Error().Err(err).Msg("failed to write reports")
		fmt.Fprintf(os.Stderr, "failed to write reports: %v\n", err)
		os.Exit(1)
	}
	logger.Info().
		Strs("formats", effectiveFormats).
		Str("output_dir", effectiveOutput).
		Msg("reports written")
}

// writeReports fans the requested formats out to their writers. The
// tree is no longer mutated at this point, so the writers can run
// concurrently over it.
func writeReports(net *inventory.Network, formats []string, outputDir, baseName, htmlTemplate string) error {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	registry := report.NewRegistry(htmlTemplate)

	var g errgroup.Group
	for _, format := range formats {
		writer, err := registry.Get(format)
		if err != nil {
			return err
		}
		g.Go(func() error {
			return writer.Write(net, filepath.Join(outputDir, baseName))
		})
	}
	return g.Wait()
}

// reportBaseName renders the configured filename template for the
// network, with spaces in the network name replaced by underscores.
func reportBaseName(tmplText string, net *inventory.Network) (string, error) {
	tmpl, err := template.New("filename").Parse(tmplText)
	if err != nil {
		return "", err
	}

	data := struct{ Network string }{
		Network: strings.ReplaceAll(net.Name(), " ", "_"),
	}
	var sb strings.Builder
	if err := tmpl.Execute(&sb, data); err != nil {
		return "", err
	}
	return sb.String(), nil
}
