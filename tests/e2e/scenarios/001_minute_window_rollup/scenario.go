package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"sync"
	"sync/atomic"
	"time"
)

// ### Start - fixed configs (no change)
// These values define deterministic test data generation and must match expected results.
// DO NOT MODIFY: Changing these will break the test's deterministic behavior.
const (
	samplesPerMinute = 6    // Samples per one-minute window (one every 10 seconds)
	hitsPerSample    = 50   // Cumulative hits growth between consecutive samples
	baseHits         = 1000 // Cumulative hits at the first sample
)

var minutes = []string{"18:03", "18:04", "18:05", "18:06"}

// ### End - fixed configs

type samplePayload struct {
	Timestamp string  `json:"timestamp"`
	Hits      int64   `json:"hits"`
	Visits    int64   `json:"visits"`
	Views     int64   `json:"views"`
	Speed     float64 `json:"speed"`
}

type sampleToSend struct {
	index       int
	jsonData    []byte
	isDuplicate bool
}

type windowSummary struct {
	WindowStart     string `json:"windowStart"`
	TotalHits       int64  `json:"totalHits"`
	DataPointsCount int    `json:"dataPointsCount"`
}

// main runs the e2e scenario: 001_minute_window_rollup
//
// This scenario tests the end-to-end flow of manual sample ingestion,
// per-campaign partitioned aggregation, and minute-level window rollup. It
// sends cumulative counter samples spread across four minutes, with duplicate
// samples mixed in to test idempotency on (campaignID, timestamp).
//
// What it tests:
//   - Manual sample ingestion via POST /campaigns/{campaignId}/samples
//   - Duplicate timestamp detection (409 Conflict, no double counting)
//   - Sample recorded event production and consumption
//   - Minute window summary rollup with delta totals against the baseline
//   - Summary history retrieval via GET /campaigns/{campaignId}/summaries/1m
//
// Expected results:
//   - All original samples are accepted (201 Created)
//   - All duplicate samples return 409 Conflict
//   - Four minute windows exist (18:03, 18:04, 18:05, 18:06 UTC)
//   - Each window after the first totals samplesPerMinute*hitsPerSample hits;
//     the first window totals (samplesPerMinute-1)*hitsPerSample because its
//     opening sample is its own baseline
func main() {
	// these configs can be changed to run the scenario
	baseURL := "http://localhost:8080" // Base URL of the traffic metrics API server
	dateUTC := "2026-03-11"            // Date used for generating sample timestamps (UTC)
	campaignID := "cmp-001"            // Campaign ID, must be seeded in configs.yml
	parallel := 2                      // Number of concurrent sample requests to send
	duplicatesPerMinute := 3           // Duplicate samples re-sent per minute window

	fmt.Println("Starting e2e scenario: 001_minute_window_rollup")
	fmt.Printf("BASE_URL: %s\n", baseURL)
	fmt.Printf("DATE_UTC: %s\n", dateUTC)
	fmt.Printf("CAMPAIGN_ID: %s\n", campaignID)
	fmt.Printf("PARALLEL: %d\n", parallel)
	fmt.Printf("DUPLICATES_PER_MINUTE: %d\n", duplicatesPerMinute)
	fmt.Println()

	// Generate all samples: cumulative counters growing by hitsPerSample
	// every 10 seconds across the four minutes.
	samples := make([]sampleToSend, 0, len(minutes)*(samplesPerMinute+duplicatesPerMinute))
	index := 0
	for minuteIdx, minute := range minutes {
		for slot := 0; slot < samplesPerMinute; slot++ {
			sampleIdx := minuteIdx*samplesPerMinute + slot
			payload := samplePayload{
				Timestamp: fmt.Sprintf("%sT%s:%02dZ", dateUTC, minute, slot*10),
				Hits:      baseHits + int64(sampleIdx)*hitsPerSample,
				Visits:    (baseHits + int64(sampleIdx)*hitsPerSample) / 2,
				Views:     (baseHits + int64(sampleIdx)*hitsPerSample) * 2,
				Speed:     2.5,
			}
			jsonData, err := json.Marshal(payload)
			if err != nil {
				fmt.Fprintf(os.Stderr, "ERROR: Failed to marshal sample %d: %v\n", index, err)
				os.Exit(1)
			}
			samples = append(samples, sampleToSend{index: index, jsonData: jsonData})
			index++
			// Duplicates reuse the exact payload of the first few slots
			if slot < duplicatesPerMinute {
				samples = append(samples, sampleToSend{index: index, jsonData: jsonData, isDuplicate: true})
				index++
			}
		}
	}

	fmt.Printf("Generated %d samples to send (%d original + %d duplicates)\n",
		len(samples), len(minutes)*samplesPerMinute, len(samples)-len(minutes)*samplesPerMinute)
	fmt.Println()

	// Send originals first so every duplicate actually conflicts, then the
	// duplicates through a small worker pool.
	var created, conflicted, invalid, internal int64
	sendBatch := func(batch []sampleToSend) {
		workerChan := make(chan struct{}, parallel)
		var wg sync.WaitGroup
		for _, sample := range batch {
			wg.Add(1)
			workerChan <- struct{}{}
			go func(s sampleToSend) {
				defer wg.Done()
				defer func() { <-workerChan }()

				statusCode, err := sendSample(baseURL, campaignID, s.jsonData)
				if err != nil {
					fmt.Fprintf(os.Stderr, "ERROR: Sample %d failed: %v\n", s.index, err)
					os.Exit(1)
				}
				switch statusCode {
				case http.StatusCreated:
					atomic.AddInt64(&created, 1)
				case http.StatusConflict:
					atomic.AddInt64(&conflicted, 1)
				case http.StatusBadRequest:
					atomic.AddInt64(&invalid, 1)
				case http.StatusInternalServerError:
					atomic.AddInt64(&internal, 1)
				}
			}(sample)
		}
		wg.Wait()
	}

	originals := make([]sampleToSend, 0, len(samples))
	duplicates := make([]sampleToSend, 0, len(samples))
	for _, sample := range samples {
		if sample.isDuplicate {
			duplicates = append(duplicates, sample)
		} else {
			originals = append(originals, sample)
		}
	}
	sendBatch(originals)
	sendBatch(duplicates)

	fmt.Println("All samples sent")
	fmt.Println("=== Statistics ===")
	fmt.Printf("Created (201): %d\n", atomic.LoadInt64(&created))
	fmt.Printf("Conflicted (409): %d\n", atomic.LoadInt64(&conflicted))
	fmt.Printf("Invalid (400): %d\n", atomic.LoadInt64(&invalid))
	fmt.Printf("Internal (500): %d\n", atomic.LoadInt64(&internal))
	fmt.Println()

	if atomic.LoadInt64(&created) != int64(len(originals)) {
		fmt.Fprintf(os.Stderr, "ERROR: Expected %d created samples, got %d\n", len(originals), created)
		os.Exit(1)
	}
	if atomic.LoadInt64(&conflicted) != int64(len(duplicates)) {
		fmt.Fprintf(os.Stderr, "ERROR: Expected %d conflicted samples, got %d\n", len(duplicates), conflicted)
		os.Exit(1)
	}

	// Aggregation runs asynchronously behind the partitioned queue; poll the
	// summary history until the four windows settle.
	expectedWindows := len(minutes)
	var summaries []windowSummary
	deadline := time.Now().Add(30 * time.Second)
	for time.Now().Before(deadline) {
		var err error
		summaries, err = fetchSummaryHistory(baseURL, campaignID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: Failed to fetch summary history: %v\n", err)
			os.Exit(1)
		}
		if settled(summaries, expectedWindows) {
			break
		}
		time.Sleep(500 * time.Millisecond)
	}

	if !settled(summaries, expectedWindows) {
		fmt.Fprintf(os.Stderr, "ERROR: Windows never settled, got %d summaries: %+v\n", len(summaries), summaries)
		os.Exit(1)
	}

	fmt.Println("=== Minute windows ===")
	for _, summary := range summaries {
		fmt.Printf("%s totalHits=%d dataPoints=%d\n", summary.WindowStart, summary.TotalHits, summary.DataPointsCount)
	}
	fmt.Println("Scenario completed successfully")
}

// settled reports whether the minute windows match the deterministic
// expectation: the opening window misses one delta because its first sample
// is its own baseline, every later window has a pre-window baseline.
func settled(summaries []windowSummary, expectedWindows int) bool {
	if len(summaries) < expectedWindows {
		return false
	}
	tail := summaries[len(summaries)-expectedWindows:]
	for i, summary := range tail {
		expected := int64(samplesPerMinute * hitsPerSample)
		if i == 0 {
			expected = int64((samplesPerMinute - 1) * hitsPerSample)
		}
		if summary.TotalHits != expected || summary.DataPointsCount != samplesPerMinute {
			return false
		}
	}
	return true
}

func sendSample(baseURL, campaignID string, jsonData []byte) (int, error) {
	req, err := http.NewRequest("POST", fmt.Sprintf("%s/campaigns/%s/samples", baseURL, campaignID), bytes.NewReader(jsonData))
	if err != nil {
		return 0, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{Timeout: 30 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 && resp.StatusCode != http.StatusConflict && resp.StatusCode != http.StatusBadRequest {
		return resp.StatusCode, fmt.Errorf("HTTP %d", resp.StatusCode)
	}
	return resp.StatusCode, nil
}

func fetchSummaryHistory(baseURL, campaignID string) ([]windowSummary, error) {
	resp, err := http.Get(fmt.Sprintf("%s/campaigns/%s/summaries/1m", baseURL, campaignID))
	if err != nil {
		return nil, fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d: %s", resp.StatusCode, body)
	}

	var summaries []windowSummary
	if err := json.Unmarshal(body, &summaries); err != nil {
		return nil, fmt.Errorf("failed to decode summaries: %w", err)
	}
	return summaries, nil
}
