// Command timeline renders the availability timeline of one item as SVG.
//
// Spans are read from a JSON or CSV file, or fetched live from the inventory
// backend with -item. Output goes to stdout unless -out is given.
package main

import (
	"context"
	"encoding/csv"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"invrent-service/internal/app/config"
	"invrent-service/internal/app/services/core/availability"
	"invrent-service/internal/app/services/inventory"
	"invrent-service/internal/app/services/shared/events"
	"invrent-service/internal/pkg/constvars"
	"invrent-service/internal/pkg/dto/requests"
	"invrent-service/internal/pkg/timeline"
	"invrent-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type options struct {
	spansFile string
	itemID    int64
	baseURL   string
	pin       string
	start     string
	days      int
	locale    string
	styleFile string
	sorted    bool
	out       string
	debug     bool
}

func main() {
	var opts options
	flag.StringVar(&opts.spansFile, "spans", "", "JSON or CSV file with spans (start,end,type,status,label)")
	flag.Int64Var(&opts.itemID, "item", 0, "fetch spans for this item from the inventory backend")
	flag.StringVar(&opts.baseURL, "base-url", "http://localhost:3000/api", "inventory backend base url")
	flag.StringVar(&opts.pin, "pin", "", "admin PIN forwarded to the backend")
	flag.StringVar(&opts.start, "start", "", "first day, YYYY-MM-DD (default today)")
	flag.IntVar(&opts.days, "days", timeline.DefaultWindowDays, "number of days")
	flag.StringVar(&opts.locale, "locale", timeline.LocaleGerman, "label locale (de|en)")
	flag.StringVar(&opts.styleFile, "style", "", "YAML style file")
	flag.BoolVar(&opts.sorted, "sorted", false, "pack lanes by start date instead of input order")
	flag.StringVar(&opts.out, "out", "", "output file (default stdout)")
	flag.BoolVar(&opts.debug, "debug", false, "log to stderr")
	flag.Parse()

	svg, err := run(context.Background(), opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if opts.out == "" {
		os.Stdout.Write(svg)
		return
	}
	if err := os.WriteFile(opts.out, svg, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, opts options) ([]byte, error) {
	var start time.Time
	if opts.start != "" {
		parsed, err := utils.ParseDateOrDateTime(opts.start, time.Local)
		if err != nil {
			return nil, fmt.Errorf("invalid -start: %w", err)
		}
		start = parsed
	}

	switch {
	case opts.itemID > 0:
		return renderLive(ctx, opts, start)
	case opts.spansFile != "":
		return renderFile(opts, start)
	default:
		return nil, errors.New("either -spans or -item is required")
	}
}

func renderFile(opts options, start time.Time) ([]byte, error) {
	spans, err := loadSpans(opts.spansFile, time.Local)
	if err != nil {
		return nil, err
	}

	style, err := timeline.LoadStyle(opts.styleFile)
	if err != nil {
		return nil, err
	}

	if start.IsZero() {
		start = time.Now()
	}
	packing := timeline.PackInputOrder
	if opts.sorted {
		packing = timeline.PackSortedByStart
	}

	window := timeline.NewWindow(start, opts.days)
	grid := timeline.BuildGrid(window, spans, timeline.GridOptions{Locale: opts.locale, Packing: packing})
	return []byte(timeline.RenderSVG(grid, style, opts.locale)), nil
}

// renderLive runs the same pipeline as the HTTP endpoint, without storage
// or event publishing.
func renderLive(ctx context.Context, opts options, start time.Time) ([]byte, error) {
	logger := zap.NewNop()
	if opts.debug {
		logger, _ = zap.NewDevelopment()
	}

	internalConfig := &config.InternalConfig{}
	internalConfig.Inventory.BaseUrl = opts.baseURL
	internalConfig.Timeline.DefaultDays = opts.days
	internalConfig.Timeline.Locale = opts.locale
	internalConfig.Timeline.SortedPacking = opts.sorted
	internalConfig.Timeline.StyleFile = opts.styleFile

	publisher, err := events.NewEventPublisher(nil, "", logger)
	if err != nil {
		return nil, err
	}

	client := inventory.NewInventoryClient(internalConfig.Inventory, logger)
	usecase, err := availability.NewTimelineUsecase(client, nil, publisher, internalConfig, logger)
	if err != nil {
		return nil, err
	}

	if opts.pin != "" {
		ctx = context.WithValue(ctx, constvars.CONTEXT_ADMIN_PIN_KEY, opts.pin)
	}
	return usecase.RenderSVG(ctx, &requests.Timeline{
		ItemID: opts.itemID,
		Start:  start,
		Days:   opts.days,
		Locale: opts.locale,
	})
}

func loadSpans(path string, loc *time.Location) ([]timeline.Span, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening spans file: %w", err)
	}
	defer file.Close()

	if strings.EqualFold(filepath.Ext(path), ".csv") {
		return readCSVSpans(file, loc)
	}
	return readJSONSpans(file, loc)
}

type spanRecord struct {
	Start  string `json:"start"`
	End    string `json:"end"`
	Type   string `json:"type"`
	Status string `json:"status"`
	Label  string `json:"label"`
}

func readJSONSpans(r io.Reader, loc *time.Location) ([]timeline.Span, error) {
	var records []spanRecord
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("error parsing spans: %w", err)
	}
	return toSpans(records, loc)
}

// readCSVSpans expects a header row naming the columns start, end, type,
// status and label in any order. Only start and end are mandatory.
func readCSVSpans(r io.Reader, loc *time.Location) ([]timeline.Span, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("error reading CSV header: %w", err)
	}
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, required := range []string{"start", "end"} {
		if _, ok := columns[required]; !ok {
			return nil, fmt.Errorf("CSV is missing the %q column", required)
		}
	}

	field := func(row []string, name string) string {
		i, ok := columns[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	var records []spanRecord
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading CSV: %w", err)
		}
		records = append(records, spanRecord{
			Start:  field(row, "start"),
			End:    field(row, "end"),
			Type:   field(row, "type"),
			Status: field(row, "status"),
			Label:  field(row, "label"),
		})
	}
	return toSpans(records, loc)
}

func toSpans(records []spanRecord, loc *time.Location) ([]timeline.Span, error) {
	spans := make([]timeline.Span, 0, len(records))
	for i, record := range records {
		start, err := utils.ParseDateOrDateTime(record.Start, loc)
		if err != nil {
			return nil, fmt.Errorf("span %d: invalid start %q", i+1, record.Start)
		}
		end, err := utils.ParseDateOrDateTime(record.End, loc)
		if err != nil {
			return nil, fmt.Errorf("span %d: invalid end %q", i+1, record.End)
		}

		spanType := timeline.SpanType(strings.ToUpper(record.Type))
		if spanType == "" {
			spanType = timeline.SpanTypeReservation
		}
		spans = append(spans, timeline.Span{
			Start:  start,
			End:    end,
			Type:   spanType,
			Status: timeline.SpanStatus(strings.ToUpper(record.Status)),
			Label:  record.Label,
		})
	}
	return spans, nil
}
