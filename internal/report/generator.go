package report

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"fjacquet/vx-finance/internal/fileutils"
	"fjacquet/vx-finance/internal/ledgererror"
	"fjacquet/vx-finance/internal/logging"
	"fjacquet/vx-finance/internal/models"

	"github.com/gocarina/gocsv"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

// Supported render formats.
const (
	FormatJSON = "json"
	FormatXML  = "xml"
	FormatCSV  = "csv"
	FormatYAML = "yaml"
	FormatText = "txt"
)

// FilePrefix starts every exported statement file name.
const FilePrefix = "DRE_VX_Finance_"

// Generator renders statements and transaction listings.
type Generator struct {
	logger    logging.Logger
	delimiter rune
}

// NewGenerator creates a Generator writing CSV with the given delimiter.
func NewGenerator(logger logging.Logger, delimiter rune) *Generator {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	if delimiter == 0 {
		delimiter = ';'
	}
	return &Generator{
		logger:    logger.WithField(logging.FieldComponent, "report"),
		delimiter: delimiter,
	}
}

// Filename returns the export file name for a month filter and format.
func Filename(month, format string) string {
	return FilePrefix + PeriodToken(month) + "." + format
}

// Render encodes the statement in the requested format.
func (g *Generator) Render(statement Statement, format string) ([]byte, error) {
	switch strings.ToLower(format) {
	case FormatJSON:
		return g.renderJSON(statement)
	case FormatXML:
		return g.renderXML(statement)
	case FormatCSV:
		return g.renderCSV(statement.Lines())
	case FormatYAML:
		return g.renderYAML(statement)
	case FormatText:
		return g.renderText(statement), nil
	default:
		return nil, fmt.Errorf("unsupported report format: %s", format)
	}
}

func (g *Generator) renderJSON(statement Statement) ([]byte, error) {
	data, err := json.MarshalIndent(statement, "", "  ")
	if err != nil {
		g.logger.WithError(err).Error("Failed to marshal JSON report")
		return nil, fmt.Errorf("failed to marshal JSON report: %w", err)
	}
	return data, nil
}

func (g *Generator) renderXML(statement Statement) ([]byte, error) {
	data, err := xml.MarshalIndent(statement, "", "  ")
	if err != nil {
		g.logger.WithError(err).Error("Failed to marshal XML report")
		return nil, fmt.Errorf("failed to marshal XML report: %w", err)
	}
	return []byte(xml.Header + string(data)), nil
}

func (g *Generator) renderYAML(statement Statement) ([]byte, error) {
	data, err := yaml.Marshal(statement)
	if err != nil {
		g.logger.WithError(err).Error("Failed to marshal YAML report")
		return nil, fmt.Errorf("failed to marshal YAML report: %w", err)
	}
	return data, nil
}

func (g *Generator) renderCSV(rows interface{}) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.Comma = g.delimiter
	if err := gocsv.MarshalCSV(rows, gocsv.NewSafeCSVWriter(w)); err != nil {
		g.logger.WithError(err).Error("Failed to marshal CSV report")
		return nil, fmt.Errorf("failed to marshal CSV report: %w", err)
	}
	return buf.Bytes(), nil
}

func (g *Generator) renderText(statement Statement) []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "DRE - %s\n\n", statement.PeriodLabel)
	tw := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', tabwriter.AlignRight)
	for _, line := range statement.Lines() {
		fmt.Fprintf(tw, "%s\t%s\t\n", line.Label, line.Formatted)
	}
	_ = tw.Flush()
	return buf.Bytes()
}

// ExportAll renders the statement in every format and writes the files into
// dir concurrently. It returns the written paths in the order of formats.
func (g *Generator) ExportAll(ctx context.Context, statement Statement, dir string, formats []string) ([]string, error) {
	if err := fileutils.EnsureDirectoryExists(dir); err != nil {
		return nil, &ledgererror.CollaboratorError{Collaborator: "report", Operation: "export", Err: err}
	}

	paths := make([]string, len(formats))
	group, ctx := errgroup.WithContext(ctx)
	for i, format := range formats {
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			data, err := g.Render(statement, format)
			if err != nil {
				return err
			}
			path := filepath.Join(dir, Filename(statement.Period, strings.ToLower(format)))
			if err := fileutils.WriteFile(path, data, models.PermissionDataFile); err != nil {
				return err
			}
			paths[i] = path
			g.logger.Info("Report written",
				logging.F(logging.FieldFormat, format),
				logging.F(logging.FieldOutputFile, path))
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		g.logger.WithError(err).Error("Report export failed")
		return nil, &ledgererror.CollaboratorError{Collaborator: "report", Operation: "export", Err: err}
	}
	return paths, nil
}

// TransactionsCSV renders transactions as delimited text with a header row.
func (g *Generator) TransactionsCSV(transactions []models.Transaction) ([]byte, error) {
	if transactions == nil {
		transactions = []models.Transaction{}
	}
	return g.renderCSV(&transactions)
}

// MonthlyCSV renders a monthly breakdown as delimited text.
func (g *Generator) MonthlyCSV(summaries []MonthlySummary) ([]byte, error) {
	if summaries == nil {
		summaries = []MonthlySummary{}
	}
	return g.renderCSV(&summaries)
}
