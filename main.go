package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"

	"guardpatrol/internal/config"
	"guardpatrol/internal/model"
	"guardpatrol/internal/patrol"
	"guardpatrol/internal/tui"
	"guardpatrol/internal/web"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/google/uuid"
	"github.com/spf13/pflag"
	"github.com/tcnksm/go-latest"
)

func checkUpdate(cfg config.Config, currentVer string) {
	owner, repo, ok := cfg.ReleaseOwnerRepo()
	if !ok {
		fmt.Println("Update check is not configured (set GUARD_RELEASE_REPO=owner/repo).")
		return
	}

	githubTag := &latest.GithubTag{
		Owner:      owner,
		Repository: repo,
	}

	res, err := latest.Check(githubTag, currentVer)
	if err != nil {
		return // Silently fail
	}

	if res.Outdated {
		fmt.Printf("\n✨ A new version is available: %s (you have %s)\n", res.Current, currentVer)
		fmt.Printf("👉 Download it from https://github.com/%s/%s/releases\n", owner, repo)
	} else {
		fmt.Printf("✅ You are using the latest version: %s\n", currentVer)
	}
}

func main() {
	cfg := config.Load()

	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: guardpatrol [options]\n\n")
		fmt.Fprintf(os.Stderr, "guardpatrol walks a guard around a map until it leaves, counts the cells it\n")
		fmt.Fprintf(os.Stderr, "visited and lists the obstacle positions that would have trapped it in a loop.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		pflag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  guardpatrol -i map.txt          # Step through the patrol in the TUI\n")
		fmt.Fprintf(os.Stderr, "  guardpatrol -i map.txt -N       # Run headless and print the answers\n")
		fmt.Fprintf(os.Stderr, "  guardpatrol -r -o report.md     # Save a markdown report\n")
		fmt.Fprintf(os.Stderr, "  guardpatrol --json              # Output the report as JSON\n")
	}

	inputFlag := pflag.StringP("input-file", "i", cfg.InputFile, "Map file to load")
	logFlag := pflag.StringP("log-file", "l", cfg.LogFile, "Append debug logs to this file")
	maxFlag := pflag.IntP("max", "m", cfg.ViewMax, "Largest number of rows/columns shown in the TUI (0 = fit terminal)")
	numbersFlag := pflag.BoolP("show-numbers", "s", false, "Show row and column numbers in the TUI")
	headlessFlag := pflag.BoolP("no-visualisation", "n", false, "Run to completion without the TUI and print the answers")
	reportFlag := pflag.BoolP("report", "r", false, "Generate a markdown report (CLI mode)")
	outputFlag := pflag.StringP("output", "o", "", "Save report to the specified file (combined with --report)")
	verboseFlag := pflag.BoolP("verbose", "v", false, "List every inferred obstacle in a table")
	plainFlag := pflag.BoolP("plain", "p", false, "Print the report as raw markdown")
	jsonFlag := pflag.BoolP("json", "j", false, "Output the report as JSON")
	webFlag := pflag.BoolP("web", "w", false, "Serve the report API on "+cfg.WebAddr)
	versionFlag := pflag.BoolP("version", "V", false, "Print version information")
	updateFlag := pflag.BoolP("update", "u", false, "Check for a newer release")
	helpFlag := pflag.BoolP("help", "h", false, "Show this help message")
	pflag.Parse()

	if *helpFlag {
		pflag.Usage()
		return
	}

	if *versionFlag {
		fmt.Printf("guardpatrol version %s\n", model.Version)
		return
	}

	if *updateFlag {
		checkUpdate(cfg, model.Version)
		return
	}

	runID := uuid.NewString()
	closeLog := setupLogging(*logFlag)
	defer closeLog()
	log.Printf("[APP] [INFO] ===================== New Run %s =====================", runID)

	switch {
	case *webFlag:
		runWebMode(cfg.WebAddr, *inputFlag)
	case *reportFlag:
		runReportMode(*inputFlag, runID, *outputFlag, *verboseFlag, *plainFlag)
	case *jsonFlag:
		runJsonMode(*inputFlag, runID)
	case *headlessFlag:
		runHeadlessMode(*inputFlag, runID)
	default:
		runTuiMode(tui.Options{
			InputFile:   *inputFlag,
			RunID:       runID,
			ShowNumbers: *numbersFlag,
			ViewMax:     *maxFlag,
		})
	}
}

// setupLogging sends the standard logger to a file, or nowhere so the TUI is not disturbed.
func setupLogging(path string) func() {
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}
	}
	f, err := tea.LogToFile(model.ExpandTilde(path), "guardpatrol")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening log file %s: %v\n", path, err)
		os.Exit(1)
	}
	return func() { f.Close() }
}

func loadSimulator(path string) *patrol.Simulator {
	text, err := model.ReadMapFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	sim, err := patrol.New(text)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading %s: %v\n", path, err)
		os.Exit(1)
	}
	return sim
}

func runToReport(path, runID string) model.Report {
	sim := loadSimulator(path)
	sim.RunToCompletion()
	report, err := patrol.BuildReport(sim, runID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return report
}

func runHeadlessMode(path, runID string) {
	printAnswers(runToReport(path, runID))
}

func printAnswers(report model.Report) {
	fmt.Println("####### Part 1 #######")
	fmt.Printf("Guard position:       %s\n", report.Guard.Position)
	fmt.Printf("Guard direction:      %s\n", report.Guard.Direction)
	fmt.Printf("Visited Cell Count:   %d\n", report.Guard.VisitedCells)
	fmt.Println()
	fmt.Println("####### Part 2 #######")
	fmt.Printf("New obstacles:        %v\n", report.LoopObstacles)
	fmt.Printf("New obstacles count:  %d\n", report.LoopCount)
}

func runReportMode(path, runID, outputFile string, verbose, plain bool) {
	report := patrol.GenerateReport(runToReport(path, runID), verbose)

	if outputFile != "" {
		err := os.WriteFile(outputFile, []byte(report), 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error writing report to %s: %v\n", outputFile, err)
			os.Exit(1)
		}
		fmt.Printf("Report saved to %s\n", outputFile)
		return
	}

	if plain {
		fmt.Println(report)
		return
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err == nil {
		if out, err := renderer.Render(report); err == nil {
			fmt.Print(out)
			return
		}
	}
	fmt.Println(report)
}

func runJsonMode(path, runID string) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(runToReport(path, runID)); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding report: %v\n", err)
		os.Exit(1)
	}
}

func runWebMode(addr, path string) {
	text, err := model.ReadMapFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	srv, err := web.NewServer(addr, text)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading %s: %v\n", path, err)
		os.Exit(1)
	}
	if err := srv.Run(); err != nil {
		log.Fatal(err)
	}
}

func runTuiMode(opts tui.Options) {
	m := tui.InitialModel(opts)
	p := tea.NewProgram(m, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		fmt.Printf("Alas, there's been an error: %v", err)
		os.Exit(1)
	}

	// Print the answers once the guard has left, as the headless mode does
	if am, ok := final.(tui.AppModel); ok && am.Report != nil {
		printAnswers(*am.Report)
	}
}
