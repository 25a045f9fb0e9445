package cli

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/readstats/kindle-analytics/internal/clippings"
	"github.com/readstats/kindle-analytics/internal/config"
	"github.com/readstats/kindle-analytics/internal/entities"
	"github.com/readstats/kindle-analytics/internal/exporters"
	"github.com/readstats/kindle-analytics/internal/status"
)

// AnalyzeCommand parses a clippings file and prints the reading report,
// optionally writing the CSV report and the notes bundle to disk.
type AnalyzeCommand struct {
	ClippingsPath  string
	InactivityDays int
	CSVPath        string
	NotesPath      string
	Verbose        bool
}

func NewAnalyzeCommand() *AnalyzeCommand {
	return &AnalyzeCommand{}
}

func (cmd *AnalyzeCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("analyze", flag.ExitOnError)

	fs.StringVar(&cmd.ClippingsPath, "file", "", "Path to the clippings export file (required)")
	fs.IntVar(&cmd.InactivityDays, "inactivity", status.DefaultInactivityDays, "Days without highlights before a book counts as inactive (1-365)")
	fs.StringVar(&cmd.CSVPath, "csv", "", "Write the progress report as CSV to this path")
	fs.StringVar(&cmd.NotesPath, "notes", "", "Write all highlights as a text bundle to this path")
	fs.BoolVar(&cmd.Verbose, "verbose", false, "Enable verbose logging")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s analyze -file <path> [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Analyze a Kindle 'My Clippings.txt' export and print per-book reading status.\n\n")
		fmt.Fprintf(os.Stderr, "The clippings file is typically found at:\n")
		fmt.Fprintf(os.Stderr, "  /Volumes/Kindle/documents/My Clippings.txt\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  # Print the reading report:\n")
		fmt.Fprintf(os.Stderr, "  %s analyze -file \"My Clippings.txt\"\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  # Also export the report and notes:\n")
		fmt.Fprintf(os.Stderr, "  %s analyze -file \"My Clippings.txt\" -csv report.csv -notes notes.txt\n", os.Args[0])
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if cmd.ClippingsPath == "" {
		return fmt.Errorf("required flag -file not provided")
	}

	cmd.InactivityDays = config.ClampInactivityDays(cmd.InactivityDays)

	return nil
}

func (cmd *AnalyzeCommand) Run() error {
	file, err := os.Open(cmd.ClippingsPath)
	if err != nil {
		return fmt.Errorf("failed to open clippings file: %w", err)
	}
	defer file.Close()

	parser := clippings.NewParser()
	records, err := parser.Parse(file)
	if err != nil {
		return fmt.Errorf("failed to read clippings: %w", err)
	}

	if len(records) == 0 {
		fmt.Println("No records found in clippings file")
		return nil
	}

	summaries := status.Reconcile(records, status.Options{
		InactivityDays: cmd.InactivityDays,
	})

	fmt.Printf("Found %d notes across %d books\n\n", len(records), len(summaries))

	printSummaries(summaries)

	if cmd.Verbose {
		completed, reading, inactive := 0, 0, 0
		for _, summary := range summaries {
			switch summary.Status {
			case entities.StatusCompleted:
				completed++
			case entities.StatusReading:
				reading++
			case entities.StatusInactive:
				inactive++
			}
		}
		fmt.Printf("\nCompleted: %d  Reading: %d  Inactive: %d\n", completed, reading, inactive)
	}

	if cmd.CSVPath != "" {
		if err := cmd.writeCSV(summaries); err != nil {
			return err
		}
		fmt.Printf("\nReport written to %s\n", cmd.CSVPath)
	}

	if cmd.NotesPath != "" {
		result, err := cmd.writeNotes(records)
		if err != nil {
			return err
		}
		fmt.Printf("\nNotes bundle written to %s (%d books, %d notes)\n",
			cmd.NotesPath, result.BooksProcessed, result.NotesProcessed)
	}

	return nil
}

func printSummaries(summaries []entities.BookSummary) {
	for _, summary := range summaries {
		fmt.Printf("[%s] \"%s\" by %s\n", summary.Status.DisplayName(), summary.Title, summary.Author)
		fmt.Printf("    %s -> %s | %d days | %d notes | max loc %d\n",
			summary.StartDisplay, summary.EndDisplay,
			summary.ReadingDays, summary.NoteCount, summary.MaxLocation)
	}
}

func (cmd *AnalyzeCommand) writeCSV(summaries []entities.BookSummary) error {
	out, err := os.Create(cmd.CSVPath)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %w", err)
	}
	defer out.Close()

	exporter := exporters.NewCSVReportExporter()
	if err := exporter.Export(out, summaries); err != nil {
		return fmt.Errorf("failed to write CSV report: %w", err)
	}
	return nil
}

func (cmd *AnalyzeCommand) writeNotes(records []entities.ClippingRecord) (exporters.ExportResult, error) {
	out, err := os.Create(cmd.NotesPath)
	if err != nil {
		return exporters.ExportResult{}, fmt.Errorf("failed to create notes file: %w", err)
	}
	defer out.Close()

	exporter := exporters.NewNotesExporter(true)
	exporter.Now = time.Now()
	result, err := exporter.Export(out, records)
	if err != nil {
		return exporters.ExportResult{}, fmt.Errorf("failed to write notes bundle: %w", err)
	}
	return result, nil
}
