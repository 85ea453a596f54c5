// Command lingoswap translates or proofreads a text selection using AI,
// picking the translation direction from the languages detected in the text.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/glottolabs/lingoswap"
	"github.com/glottolabs/lingoswap/cache"
	"github.com/glottolabs/lingoswap/extract"
	"github.com/glottolabs/lingoswap/provider"
)

// Build-time variables (can be overridden with ldflags)
var (
	version   = lingoswap.Version
	commit    = lingoswap.GitCommit
	buildDate = lingoswap.BuildDate
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("lingoswap", flag.ContinueOnError)
	fs.SetOutput(stderr)

	// Flags
	defaultLang := fs.String("default-lang", "English", "Language the user normally writes in")
	targetLang := fs.String("target-lang", "繁體中文", "Language translations are produced in")
	correct := fs.Bool("correct", false, "Fix grammar instead of translating")
	output := fs.String("output", "", "Output file (default: stdout)")
	outputShort := fs.String("o", "", "Output file (short for --output)")
	apiKey := fs.String("api-key", "", "OpenAI API key (default: OPENAI_API_KEY env)")
	model := fs.String("model", "gpt-4o-mini", "OpenAI model to use")
	hint := fs.String("hint", "", "Extra instruction hint (e.g. 'The text is a commit message')")
	cacheTTL := fs.Int("cache-ttl", 3600, "Cache TTL in seconds (0 to disable)")
	htmlMode := fs.Bool("html", false, "Detect language on the visible text of HTML selections")
	showDiff := fs.Bool("show-diff", false, "With --correct, print a word diff of the changes to stderr")
	showVersion := fs.Bool("version", false, "Show version")
	quiet := fs.Bool("quiet", false, "Suppress progress output")
	dryRun := fs.Bool("dry-run", false, "Show the resolved direction without calling the API")
	jsonOutput := fs.Bool("json", false, "Output result as JSON")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *showVersion {
		fmt.Fprintf(stdout, "%s %s\n", lingoswap.Name, version)
		if commit != "unknown" && commit != "" {
			fmt.Fprintf(stdout, "  commit:  %s\n", commit)
		}
		if buildDate != "unknown" && buildDate != "" {
			fmt.Fprintf(stdout, "  built:   %s\n", buildDate)
		}
		return nil
	}

	// Handle -o alias for --output
	if *outputShort != "" && *output == "" {
		*output = *outputShort
	}

	// Get input
	var input string
	var inputName string

	if fs.NArg() == 0 {
		// Read from stdin
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
		input = string(data)
		inputName = "stdin"
	} else {
		// Read from file - user-provided path is intentional for CLI
		inputPath := fs.Arg(0)
		data, err := os.ReadFile(inputPath) // #nosec G304 - CLI tool reads user-specified files
		if err != nil {
			return fmt.Errorf("reading file: %w", err)
		}
		input = string(data)
		inputName = filepath.Base(inputPath)
	}

	var extractor lingoswap.TextExtractor
	if *htmlMode {
		extractor = extract.NewHTMLExtractor()
	}

	// Handle dry-run mode
	if *dryRun {
		return runDryRun(input, inputName, *defaultLang, *targetLang, extractor, stdout, *jsonOutput)
	}

	// Get API key
	key := *apiKey
	if key == "" {
		key = os.Getenv("OPENAI_API_KEY")
	}
	if key == "" {
		return fmt.Errorf("OpenAI API key required (--api-key or OPENAI_API_KEY env)")
	}

	// Create provider
	p := provider.NewOpenAIProvider(provider.OpenAIConfig{
		APIKey: key,
		Model:  *model,
	})

	// Wrap with retry
	retryable := lingoswap.NewRetryableProvider(p, lingoswap.DefaultRetryConfig())

	// Build options
	var opts []lingoswap.AssistantOption

	if *cacheTTL > 0 {
		opts = append(opts, lingoswap.WithCache(cache.NewInMemoryCache(*cacheTTL)))
	}

	if extractor != nil {
		opts = append(opts, lingoswap.WithExtractor(extractor))
	}

	if *hint != "" {
		opts = append(opts, lingoswap.WithHint(*hint))
	}

	// Create assistant
	assistant := lingoswap.NewAssistant(*defaultLang, *targetLang, retryable, opts...)

	mode := lingoswap.ModeTranslate
	if *correct {
		mode = lingoswap.ModeCorrect
	}

	if !*quiet {
		pair := assistant.Resolve(input)
		if mode == lingoswap.ModeCorrect {
			fmt.Fprintf(stderr, "Correcting %s (%s)...\n", inputName, pair.Source)
		} else {
			fmt.Fprintf(stderr, "Translating %s from %s to %s...\n", inputName, pair.Source, pair.Destination)
		}
	}

	start := time.Now()
	var result *lingoswap.Result
	var err error
	if mode == lingoswap.ModeCorrect {
		result, err = assistant.Correct(context.Background(), input)
	} else {
		result, err = assistant.Translate(context.Background(), input)
	}
	if err != nil {
		return fmt.Errorf("%s failed: %w", mode, err)
	}
	elapsed := time.Since(start)

	// Output
	var out io.Writer = stdout
	if *output != "" {
		f, err := os.Create(*output)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	if *jsonOutput {
		return outputJSON(out, result, elapsed)
	}

	fmt.Fprintln(out, result.Output)

	if *showDiff && mode == lingoswap.ModeCorrect {
		diff := lingoswap.DiffText(input, result.Output)
		if diff.HasChanges() {
			stats := diff.Stats()
			fmt.Fprintf(stderr, "\nChanges (+%d -%d):\n%s\n", stats.Inserted, stats.Deleted, diff.String())
		} else if !*quiet {
			fmt.Fprintln(stderr, "\nNo changes.")
		}
	}

	// Stats
	if !*quiet {
		fmt.Fprintf(stderr, "\nDone in %v\n", elapsed.Round(time.Millisecond))
		fmt.Fprintf(stderr, "  Direction:  %s -> %s\n", result.Source, result.Destination)
		fmt.Fprintf(stderr, "  From cache: %v\n", result.Cached)
	}

	return nil
}

// runDryRun shows the resolved direction without calling the API.
func runDryRun(input, inputName, defaultLang, targetLang string, extractor lingoswap.TextExtractor, stdout io.Writer, jsonOut bool) error {
	detectionText := input
	if extractor != nil {
		if extracted, err := extractor.Text(input); err == nil && extracted != "" {
			detectionText = extracted
		}
	}

	defaultPercent := lingoswap.ScriptPercent(detectionText, defaultLang)
	targetPercent := lingoswap.ScriptPercent(detectionText, targetLang)
	pair := lingoswap.Resolve(detectionText, defaultLang, targetLang)

	if jsonOut {
		type dryRunOutput struct {
			InputFile      string  `json:"input_file"`
			DefaultLang    string  `json:"default_lang"`
			TargetLang     string  `json:"target_lang"`
			DefaultPercent float64 `json:"default_percent"`
			TargetPercent  float64 `json:"target_percent"`
			Source         string  `json:"source"`
			Destination    string  `json:"destination"`
		}

		out := dryRunOutput{
			InputFile:      inputName,
			DefaultLang:    defaultLang,
			TargetLang:     targetLang,
			DefaultPercent: defaultPercent,
			TargetPercent:  targetPercent,
			Source:         pair.Source,
			Destination:    pair.Destination,
		}

		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	fmt.Fprintf(stdout, "Dry run: %s\n", inputName)
	fmt.Fprintf(stdout, "  %s: %.1f%%\n", defaultLang, defaultPercent)
	fmt.Fprintf(stdout, "  %s: %.1f%%\n", targetLang, targetPercent)
	fmt.Fprintf(stdout, "Direction: %s -> %s\n", pair.Source, pair.Destination)

	return nil
}

// outputJSON writes the result as JSON.
func outputJSON(w io.Writer, result *lingoswap.Result, elapsed time.Duration) error {
	type jsonResult struct {
		Output      string `json:"output"`
		Source      string `json:"source"`
		Destination string `json:"destination"`
		Mode        string `json:"mode"`
		Cached      bool   `json:"cached"`
		ElapsedMS   int64  `json:"elapsed_ms"`
	}

	out := jsonResult{
		Output:      result.Output,
		Source:      result.Source,
		Destination: result.Destination,
		Mode:        string(result.Mode),
		Cached:      result.Cached,
		ElapsedMS:   elapsed.Milliseconds(),
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
