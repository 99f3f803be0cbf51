package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

// ### Start - fixed configs (no change)
// These values define deterministic test data generation and must match expected results.
// DO NOT MODIFY: Changing these will break the test's deterministic behavior.
const (
	runCount         = 8   // Number of distinct application runs
	requestsPerRun   = 500 // Timing records per run
	expectedPathRows = 4   // One CSV row per path, plus the header
)

var (
	paths     = []string{"/", "/about", "/careers", "/contact"}
	durations = []int{40, 90, 250, 1200} // two satisfied, then one tolerant and one frustrated
	versions  = []string{"1.4.0", "1.4.1-3", "1.5.0-SNAPSHOT", "1.5.0"}
)

// ### End - fixed configs

type runToSend struct {
	runIndex   int
	body       []byte
	isOriginal bool
}

type createSummaryResponse struct {
	Stored  bool `json:"stored"`
	Summary struct {
		ID      string `json:"id"`
		Version string `json:"version"`
	} `json:"summary"`
	Rates struct {
		Apdex float64 `json:"apdex"`
	} `json:"rates"`
}

// main runs the e2e scenario: 001_duplicate_runs
//
// This scenario uploads several application logs to the log summary API, each of them
// more than once and concurrently, and then checks the history and the CSV exports.
//
// What it tests:
//   - Log upload via POST /summaries
//   - Duplicate run detection when the same log arrives concurrently
//   - Summary created event production and consumption into CSV exports
//   - History listing via GET /summaries
//
// Expected results:
//   - Each run is stored exactly once (201); every other upload of it returns 200
//   - Every run reports the same Apdex of 0.625
//   - Every stored run eventually serves a paths.csv with one row per path
func main() {
	// these configs can be changed to run the scenario
	baseURL := "http://localhost:8080"    // Base URL of the log summary API server
	server := "e2e-server"                // Server name sent in x-server
	copiesPerRun := 5                     // Uploads per run, the first one counted as original
	parallel := 4                         // Number of concurrent uploads
	fileStorageDir := ".tmp/file-storage" // File storage directory path relative to project root
	wantCleanFileStorage := true          // If true, clean up file storage directory before running scenario

	projectRoot, err := findProjectRoot()
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}
	storagePath := filepath.Join(projectRoot, fileStorageDir)

	// Clean up file storage if requested
	if wantCleanFileStorage {
		fmt.Printf("Cleaning file storage directory: %s\n", storagePath)
		if err := os.RemoveAll(storagePath); err != nil {
			fmt.Fprintf(os.Stderr, "WARNING: Failed to clean file storage directory: %v\n", err)
		}
		fmt.Println()
	}

	fmt.Println("Starting e2e scenario: 001_duplicate_runs")
	fmt.Printf("BASE_URL: %s\n", baseURL)
	fmt.Printf("RUN_COUNT: %d\n", runCount)
	fmt.Printf("COPIES_PER_RUN: %d\n", copiesPerRun)
	fmt.Printf("PARALLEL: %d\n", parallel)
	fmt.Printf("FILE_STORAGE_PATH: %s\n", storagePath)
	fmt.Println()

	runsToSend := make([]runToSend, 0, runCount*copiesPerRun)
	for runIndex := 0; runIndex < runCount; runIndex++ {
		body := generateRunLog(runIndex)
		for copyIndex := 0; copyIndex < copiesPerRun; copyIndex++ {
			runsToSend = append(runsToSend, runToSend{runIndex: runIndex, body: body, isOriginal: copyIndex == 0})
		}
	}

	workerChan := make(chan struct{}, parallel)
	var wg sync.WaitGroup
	var mu sync.Mutex
	var errors []error
	var createdRequest int64 // 201 status code
	var okRequest int64      // 200 status code
	storedIDs := make(map[int]string)

	for _, run := range runsToSend {
		wg.Add(1)
		workerChan <- struct{}{} // Acquire worker slot

		go func(r runToSend) {
			defer wg.Done()
			defer func() { <-workerChan }() // Release worker slot

			statusCode, resp, err := sendRun(baseURL, server, r)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				errors = append(errors, fmt.Errorf("run %d: %w", r.runIndex, err))
				return
			}
			switch statusCode {
			case http.StatusCreated:
				atomic.AddInt64(&createdRequest, 1)
				if prev, ok := storedIDs[r.runIndex]; ok {
					errors = append(errors, fmt.Errorf("run %d stored twice: %s and %s", r.runIndex, prev, resp.Summary.ID))
				}
				storedIDs[r.runIndex] = resp.Summary.ID
			case http.StatusOK:
				atomic.AddInt64(&okRequest, 1)
			}
			if resp.Rates.Apdex != 0.625 {
				errors = append(errors, fmt.Errorf("run %d: apdex %v, want 0.625", r.runIndex, resp.Rates.Apdex))
			}
		}(run)
	}
	wg.Wait()

	if len(storedIDs) != runCount {
		errors = append(errors, fmt.Errorf("stored %d runs, want %d", len(storedIDs), runCount))
	}
	for runIndex, id := range storedIDs {
		if err := waitForExport(baseURL, id, 10*time.Second); err != nil {
			errors = append(errors, fmt.Errorf("run %d export: %w", runIndex, err))
		}
	}

	fmt.Println("=== Statistics ===")
	fmt.Printf("Uploads sent: %d\n", len(runsToSend))
	fmt.Printf("Created request: %d\n", atomic.LoadInt64(&createdRequest))
	fmt.Printf("Duplicate request: %d\n", atomic.LoadInt64(&okRequest))

	if len(errors) > 0 {
		for _, err := range errors {
			fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		}
		os.Exit(1)
	}
	fmt.Println("Scenario completed successfully")
}

func findProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current working directory: %w", err)
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("could not find go.mod, run from the project root")
		}
		dir = parent
	}
}

// generateRunLog renders one run. Runs differ by start time and version, so each is a distinct history entry.
func generateRunLog(runIndex int) []byte {
	start := time.Date(2025, 12, 28, 18, 0, 0, 0, time.UTC).Add(time.Duration(runIndex) * time.Hour)
	version := versions[runIndex%len(versions)]

	var b strings.Builder
	writeLine := func(at time.Time, class, message string) {
		fmt.Fprintf(&b, "%s:%03d  INFO  [http-nio-8080-exec-1] (%s.java:58) - %s\n",
			at.Format("02 Jan 2006 15:04:05"), at.Nanosecond()/int(time.Millisecond), class, message)
	}
	writeLine(start, "Application", fmt.Sprintf("Starting Application [version=%s]", version))
	for i := 0; i < requestsPerRun; i++ {
		at := start.Add(time.Duration(i+1) * 250 * time.Millisecond)
		writeLine(at, "SpringTimerFilter", fmt.Sprintf("Action [GET:%s] took (%d) ms", paths[i%len(paths)], durations[i%len(durations)]))
	}
	return []byte(b.String())
}

func sendRun(baseURL, server string, run runToSend) (int, *createSummaryResponse, error) {
	req, err := http.NewRequest(http.MethodPost, baseURL+"/summaries", bytes.NewReader(run.body))
	if err != nil {
		return 0, nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "text/plain")
	req.Header.Set("x-server", server)
	req.Header.Set("x-clean", "true")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		return resp.StatusCode, nil, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, body)
	}

	var out createSummaryResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return resp.StatusCode, nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return resp.StatusCode, &out, nil
}

// waitForExport polls the CSV export, which is written asynchronously after a run is stored.
func waitForExport(baseURL, summaryID string, timeout time.Duration) error {
	deadline := time.Now().Add(timeout)
	for {
		resp, err := http.Get(baseURL + "/summaries/" + summaryID + "/paths.csv")
		if err != nil {
			return err
		}
		body, readErr := io.ReadAll(resp.Body)
		resp.Body.Close()
		if readErr != nil {
			return readErr
		}
		if resp.StatusCode == http.StatusOK {
			rows := strings.Count(strings.TrimSpace(string(body)), "\n")
			if rows != expectedPathRows {
				return fmt.Errorf("got %d path rows, want %d", rows, expectedPathRows)
			}
			return nil
		}
		if resp.StatusCode != http.StatusNotFound || time.Now().After(deadline) {
			return fmt.Errorf("status %d: %s", resp.StatusCode, body)
		}
		time.Sleep(100 * time.Millisecond)
	}
}
