package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
	rustlingo "github.com/thadguidry/rustling-go"
	"github.com/thadguidry/rustling-go/rustling/annotations"
	"github.com/thadguidry/rustling-go/rustling/weights"
)

func main() {
	var lang string
	var interactive bool
	var help bool
	var verbose bool
	var textArg string
	var anchorArg string
	var weightsPath string

	flag.StringVar(&lang, "lang", "zh", "grammar language tag")
	flag.BoolVar(&interactive, "i", false, "interactive mode")
	flag.BoolVar(&help, "h", false, "show help")
	flag.BoolVar(&verbose, "verbose", false, "verbose mode (show recognition annotations)")
	flag.StringVar(&textArg, "text", "", "recognize a single string and exit")
	flag.StringVar(&anchorArg, "anchor", "", "anchor time, RFC3339 (default: now)")
	flag.StringVar(&weightsPath, "weights", "", "JSON file of {rule_id: weight} pairs (default: uniform weights)")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] [text]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Extracts structured values (numbers, dates, times, durations, ...) from natural-language text.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s 明天下午三点半            # Recognize a single string\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -i                        # Interactive mode\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -verbose -i               # Interactive mode with annotations\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -anchor 2013-02-12T04:30:00+08:00 三月的最后一个周一\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -weights rule_weights.json 下周三\n", os.Args[0])
	}
	flag.Parse()

	if help {
		flag.Usage()
		os.Exit(0)
	}

	if textArg == "" && flag.NArg() > 0 {
		textArg = strings.Join(flag.Args(), " ")
	}

	anchor := time.Now()
	if anchorArg != "" {
		parsed, err := time.Parse(time.RFC3339, anchorArg)
		if err != nil {
			log.Fatalf("Invalid -anchor: %v", err)
		}
		anchor = parsed
	}

	rs, err := rustlingo.BuildRuleSet(lang)
	if err != nil {
		log.Fatalf("Failed to build rule set: %v", err)
	}
	if weightsPath != "" {
		store, err := weights.LoadFile(weightsPath)
		if err != nil {
			log.Fatalf("Failed to load weights: %v", err)
		}
		rs = rs.WithWeights(store)
	}

	var handler annotations.Handler
	if verbose {
		formatter := annotations.NewOutputFormatter(os.Stderr)
		handler = annotations.Handler(formatter.Handle)
	}

	if textArg != "" {
		runSingle(rs, textArg, anchor, handler)
	} else if interactive {
		runInteractive(rs, anchor, handler)
	} else {
		flag.Usage()
		os.Exit(1)
	}
}

func runSingle(rs rustlingo.RuleSet, text string, anchor time.Time, handler annotations.Handler) {
	results, err := recognize(rs, text, anchor, handler)
	if err != nil {
		fmt.Printf("Recognition error: %v\n", err)
		return
	}
	fmt.Println(resultsTable(text, results))
}

func runInteractive(rs rustlingo.RuleSet, anchor time.Time, handler annotations.Handler) {
	fmt.Println("=== rustling-go Interactive Mode ===")
	fmt.Println("Commands:")
	fmt.Println("  .help          - Show help")
	fmt.Println("  .exit          - Exit")
	fmt.Println("  .anchor <ts>   - Set the anchor time (RFC3339)")
	fmt.Println("  <text>         - Recognize values in text")
	fmt.Println()

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())

		switch {
		case line == "":
			continue
		case line == ".exit":
			return
		case line == ".help":
			fmt.Println("Enter any text to recognize its structured values")
		case strings.HasPrefix(line, ".anchor "):
			ts := strings.TrimSpace(strings.TrimPrefix(line, ".anchor "))
			parsed, err := time.Parse(time.RFC3339, ts)
			if err != nil {
				fmt.Printf("Invalid anchor: %v\n", err)
				continue
			}
			anchor = parsed
			fmt.Printf("Anchor set to %s\n", anchor.Format(time.RFC3339))
		default:
			results, err := recognize(rs, line, anchor, handler)
			if err != nil {
				fmt.Printf("Recognition error: %v\n", err)
				continue
			}
			fmt.Println(resultsTable(line, results))
		}
	}
}

func recognize(rs rustlingo.RuleSet, text string, anchor time.Time, handler annotations.Handler) ([]rustlingo.ResolvedOutput, error) {
	opts := rustlingo.Options{AllowLatent: false}
	if handler == nil {
		return rustlingo.Parse(rs, text, anchor.Unix(), opts, nil)
	}
	collector := annotations.NewCollector(handler)
	return rustlingo.Parse(rs, text, anchor.Unix(), opts, collector.AsTracer())
}

// resultsTable renders recognized spans as a markdown table, the same
// renderer and alignment cmd/datalog's query output uses.
func resultsTable(text string, results []rustlingo.ResolvedOutput) string {
	if len(results) == 0 {
		return fmt.Sprintf("_No values recognized in %q_", text)
	}

	sb := &strings.Builder{}
	alignment := []tw.Align{tw.AlignNone, tw.AlignNone, tw.AlignNone, tw.AlignNone}
	table := tablewriter.NewTable(sb,
		tablewriter.WithRenderer(renderer.NewMarkdown()),
		tablewriter.WithAlignment(alignment),
		tablewriter.WithHeaderAutoFormat(tw.Off),
	)
	table.Header([]string{"span", "dimension", "value", "probability"})
	for _, r := range results {
		table.Append([]string{
			r.Text,
			r.Value.Kind().String(),
			r.Value.String(),
			fmt.Sprintf("%.2f", r.Probability),
		})
	}
	table.Render()
	sb.WriteString(fmt.Sprintf("\n_%d values recognized_\n", len(results)))
	return sb.String()
}
