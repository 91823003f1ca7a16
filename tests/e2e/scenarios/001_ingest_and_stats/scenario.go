package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"os"
	"strconv"
	"sync"
	"sync/atomic"
	"time"
)

// ### Start - fixed configs (no change)
// Deterministic data generation; the expected stats are derived from it.
const (
	totalRecords = 24000
	dayMs        = int64(24 * time.Hour / time.Millisecond)
)

var functions = []registerRequest{
	{FuncID: "fn-resize", FuncName: "resize-image", AppName: "images", WarmerOn: "Yes", FuncFreq: "5M"},
	{FuncID: "fn-thumb", FuncName: "thumbnail", AppName: "images", WarmerOn: "No"},
	{FuncID: "fn-checkout", FuncName: "checkout", AppName: "shop", WarmerOn: "Yes", FuncFreq: "1H"},
	{FuncID: "fn-email", FuncName: "send-email", AppName: "shop", WarmerOn: "No", FuncFreq: "10S"},
}

// ### End - fixed configs

type registerRequest struct {
	FuncID   string `json:"funcID"`
	FuncName string `json:"funcName"`
	AppName  string `json:"appName"`
	WarmerOn string `json:"warmerOn,omitempty"`
	FuncFreq string `json:"funcFreq,omitempty"`
}

type invocation struct {
	FuncID      string  `json:"funcID"`
	Timestamp   int64   `json:"timestamp"`
	Latency     float64 `json:"latency"`
	IsColdStart bool    `json:"isColdStart"`
}

type windowReport struct {
	FuncID      string  `json:"id"`
	TotalRuns   int64   `json:"totalRuns"`
	ColdStarts  int64   `json:"coldStarts"`
	AvgLatency  float64 `json:"aveLatency"`
	PercentCold float64 `json:"percentCold"`
}

type dayBucket struct {
	AvgLatencyByFunc map[string]float64 `json:"avgLatencyByFunc"`
}

type batchToSend struct {
	batchIndex int
	body       []byte
	isOriginal bool
}

type expectation struct {
	runs       int64
	cold       int64
	latencySum float64
}

// main runs the e2e scenario: 001_ingest_and_stats
//
// It registers four functions, ingests totalRecords invocations spread over
// the six days before a pinned "now" (plus duplicate batches), then checks the
// current stats and the weekly rollup against values computed locally.
//
// What it tests:
//   - Function registration via POST /api/config
//   - Batch ingestion via POST /api/invocations, idempotency-key conflicts
//   - Index invalidation through the invocation batch stream
//   - GET /api/stats with an explicit window and GET /api/stats/weekly?now=
//
// Expected results:
//   - Duplicate batches return 409, every original returns 202
//   - Per-function totals, cold starts and average latency match the generated data
//   - The rollup has 6 buckets and each bucket's averages match the generated data
func main() {
	baseURL := getEnv("BASE_URL", "http://localhost:8080")
	userID := getEnv("USER_ID", fmt.Sprintf("e2e%d", time.Now().Unix()))
	itemsPerBatch := getEnvInt("ITEMS_PER_BATCH", 40)
	parallel := getEnvInt("PARALLEL", 4)
	totalDuplicates := getEnvInt("TOTAL_DUPLICATES", 100)
	settle := time.Duration(getEnvInt("SETTLE_MS", 500)) * time.Millisecond

	if totalRecords%itemsPerBatch != 0 {
		fail("TOTAL_RECORDS (%d) must be divisible by ITEMS_PER_BATCH (%d)", totalRecords, itemsPerBatch)
	}
	batchCount := totalRecords / itemsPerBatch

	// Pinned to a whole second so the scenario can be rerun against the same data.
	nowMs := time.Now().Truncate(time.Second).UnixMilli()

	fmt.Println("Starting e2e scenario: 001_ingest_and_stats")
	fmt.Printf("BASE_URL: %s\n", baseURL)
	fmt.Printf("USER_ID: %s\n", userID)
	fmt.Printf("ITEMS_PER_BATCH: %d\n", itemsPerBatch)
	fmt.Printf("BATCH_COUNT: %d\n", batchCount)
	fmt.Printf("PARALLEL: %d\n", parallel)
	fmt.Printf("TOTAL_DUPLICATES: %d\n", totalDuplicates)
	fmt.Println()

	client := &http.Client{Timeout: 30 * time.Second}

	for _, fn := range functions {
		body, _ := json.Marshal(fn)
		status, _, err := send(client, http.MethodPost, baseURL+"/api/config", userID, nil, body)
		if err != nil || status != http.StatusCreated {
			fail("register %s: status %d: %v", fn.FuncID, status, err)
		}
	}
	fmt.Printf("Registered %d functions\n", len(functions))

	records := generateRecords(nowMs)
	batches := make([]batchToSend, 0, batchCount+totalDuplicates)
	for batchIndex := 1; batchIndex <= batchCount; batchIndex++ {
		start := (batchIndex - 1) * itemsPerBatch
		body, err := json.Marshal(records[start : start+itemsPerBatch])
		if err != nil {
			fail("marshal batch %d: %v", batchIndex, err)
		}
		batches = append(batches, batchToSend{batchIndex: batchIndex, body: body, isOriginal: true})
	}
	for i := 0; i < totalDuplicates; i++ {
		original := batches[i%batchCount]
		batches = append(batches, batchToSend{batchIndex: original.batchIndex, body: original.body})
	}

	// Duplicates go after their originals finished so the 409 count is exact.
	var accepted, conflicted, unexpected int64
	sendAll := func(group []batchToSend) {
		workerChan := make(chan struct{}, parallel)
		var wg sync.WaitGroup
		for _, batch := range group {
			wg.Add(1)
			workerChan <- struct{}{}
			go func(b batchToSend) {
				defer wg.Done()
				defer func() { <-workerChan }()

				headers := map[string]string{
					"content-type":    "application/json",
					"idempotency-key": fmt.Sprintf("batch-%06d", b.batchIndex),
				}
				status, _, err := send(client, http.MethodPost, baseURL+"/api/invocations", userID, headers, b.body)
				switch {
				case err != nil:
					fmt.Fprintf(os.Stderr, "ERROR: batch %d: %v\n", b.batchIndex, err)
					atomic.AddInt64(&unexpected, 1)
				case status == http.StatusAccepted && b.isOriginal:
					atomic.AddInt64(&accepted, 1)
				case status == http.StatusConflict && !b.isOriginal:
					atomic.AddInt64(&conflicted, 1)
				default:
					fmt.Fprintf(os.Stderr, "ERROR: batch %d (original=%v): status %d\n", b.batchIndex, b.isOriginal, status)
					atomic.AddInt64(&unexpected, 1)
				}
			}(batch)
		}
		wg.Wait()
	}
	sendAll(batches[:batchCount])
	sendAll(batches[batchCount:])

	fmt.Println("=== Ingestion ===")
	fmt.Printf("Accepted request: %d\n", accepted)
	fmt.Printf("Conflicted request: %d\n", conflicted)
	fmt.Printf("Unexpected response: %d\n", unexpected)
	if unexpected > 0 || accepted != int64(batchCount) || conflicted != int64(totalDuplicates) {
		fail("ingestion counts do not match")
	}

	// Index invalidation is asynchronous.
	time.Sleep(settle)

	failures := 0
	failures += checkCurrentStats(client, baseURL, userID, records, nowMs)
	failures += checkWeeklyRollup(client, baseURL, userID, records, nowMs)
	if failures > 0 {
		fail("%d stats mismatches", failures)
	}
	fmt.Println("Scenario completed successfully")
}

// generateRecords spreads records over the six days before nowMs. Every 9th
// record is cold, every 101st reports zero latency.
func generateRecords(nowMs int64) []invocation {
	span := 6 * dayMs
	records := make([]invocation, 0, totalRecords)
	for i := 0; i < totalRecords; i++ {
		latency := float64(20 + (i*37)%180)
		if i%101 == 0 {
			latency = 0
		}
		records = append(records, invocation{
			FuncID:      functions[i%len(functions)].FuncID,
			Timestamp:   nowMs - 1 - int64(i)*span/totalRecords,
			Latency:     latency,
			IsColdStart: i%9 == 0,
		})
	}
	return records
}

func expect(records []invocation, start, end int64) map[string]*expectation {
	out := make(map[string]*expectation, len(functions))
	for _, fn := range functions {
		out[fn.FuncID] = &expectation{}
	}
	for _, r := range records {
		if r.Timestamp < start || r.Timestamp >= end {
			continue
		}
		e := out[r.FuncID]
		e.runs++
		if r.IsColdStart {
			e.cold++
		}
		e.latencySum += r.Latency
	}
	return out
}

func (e *expectation) avgLatency() float64 {
	if e.runs == 0 {
		return 0
	}
	return e.latencySum / float64(e.runs)
}

func checkCurrentStats(client *http.Client, baseURL, userID string, records []invocation, nowMs int64) int {
	start := nowMs - 3*dayMs
	url := fmt.Sprintf("%s/api/stats?start=%d&end=%d", baseURL, start, nowMs)
	status, body, err := send(client, http.MethodGet, url, userID, nil, nil)
	if err != nil || status != http.StatusOK {
		fail("GET /api/stats: status %d: %v", status, err)
	}
	var reports []windowReport
	if err := json.Unmarshal(body, &reports); err != nil {
		fail("decode stats: %v", err)
	}
	if len(reports) != len(functions) {
		fail("stats rows: want %d, got %d", len(functions), len(reports))
	}

	fmt.Println("=== Current stats (last 3 days) ===")
	want := expect(records, start, nowMs)
	failures := 0
	for i, report := range reports {
		e := want[functions[i].FuncID]
		ok := report.FuncID == functions[i].FuncID &&
			report.TotalRuns == e.runs &&
			report.ColdStarts == e.cold &&
			almostEqual(report.AvgLatency, e.avgLatency())
		fmt.Printf("%-12s runs=%d cold=%d avg=%.3f ok=%v\n", report.FuncID, report.TotalRuns, report.ColdStarts, report.AvgLatency, ok)
		if !ok {
			failures++
		}
	}
	return failures
}

func checkWeeklyRollup(client *http.Client, baseURL, userID string, records []invocation, nowMs int64) int {
	url := fmt.Sprintf("%s/api/stats/weekly?now=%d", baseURL, nowMs)
	status, body, err := send(client, http.MethodGet, url, userID, nil, nil)
	if err != nil || status != http.StatusOK {
		fail("GET /api/stats/weekly: status %d: %v", status, err)
	}
	var series []dayBucket
	if err := json.Unmarshal(body, &series); err != nil {
		fail("decode rollup: %v", err)
	}
	if len(series) != 6 {
		fail("rollup buckets: want 6, got %d", len(series))
	}

	fmt.Println("=== Weekly rollup ===")
	failures := 0
	for i, bucket := range series {
		end := nowMs - int64(i)*dayMs
		want := expect(records, end-dayMs, end)
		for _, fn := range functions {
			got := bucket.AvgLatencyByFunc[fn.FuncID]
			if !almostEqual(got, want[fn.FuncID].avgLatency()) {
				fmt.Printf("bucket %d %s: want %.3f, got %.3f\n", i, fn.FuncID, want[fn.FuncID].avgLatency(), got)
				failures++
			}
		}
	}
	fmt.Printf("Buckets checked: %d, mismatches: %d\n", len(series), failures)
	return failures
}

func send(client *http.Client, method, url, userID string, headers map[string]string, body []byte) (int, []byte, error) {
	req, err := http.NewRequest(method, url, bytes.NewReader(body))
	if err != nil {
		return 0, nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("x-user-id", userID)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := client.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, fmt.Errorf("failed to read response: %w", err)
	}
	return resp.StatusCode, respBody, nil
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) <= 1e-9*math.Max(1, math.Abs(b))
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "ERROR: "+format+"\n", args...)
	os.Exit(1)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
