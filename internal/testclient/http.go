package testclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"sync"
	"sync/atomic"
	"time"
)

// HTTPClient wraps http.Client with timeout
type HTTPClient struct {
	client  *http.Client
	timeout time.Duration
}

// newHTTPClient creates a new HTTP client with timeout
func newHTTPClient(timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		client: &http.Client{
			Timeout: timeout,
		},
		timeout: timeout,
	}
}

// Get performs a GET request
func (c *HTTPClient) Get(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	return c.client.Do(req)
}

// Post performs a POST request with JSON body
func (c *HTTPClient) Post(ctx context.Context, url string, body interface{}) (*http.Response, error) {
	jsonData, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	return c.client.Do(req)
}

// readResponseBody reads and closes the response body
func readResponseBody(resp *http.Response) ([]byte, error) {
	defer resp.Body.Close()
	return io.ReadAll(resp.Body)
}

// submitTranscripts scores transcripts concurrently using a worker pool
func submitTranscripts(ctx context.Context, config *Config, transcripts []Transcript, stats *Stats) ([]Result, error) {
	log.Printf("📤 Scoring %d transcripts with %d workers...", len(transcripts), config.Workers)

	client := newHTTPClient(config.Timeout)
	url := config.BaseURL + "/score"

	// Counters for statistics
	var (
		successful int64
		failed     int64
		submitted  int64
	)

	// Progress reporting
	var lastReport time.Time
	reportInterval := 1 * time.Second

	results := make([]Result, len(transcripts))

	type job struct {
		index      int
		transcript Transcript
	}

	jobChan := make(chan job, config.Workers*WorkerChannelMultiplier)
	var wg sync.WaitGroup

	// Start workers
	for i := 0; i < config.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for j := range jobChan {
				select {
				case <-ctx.Done():
					return
				default:
					results[j.index] = scoreSingleTranscript(ctx, client, url, j.transcript)

					atomic.AddInt64(&submitted, 1)
					if results[j.index].Err != nil {
						atomic.AddInt64(&failed, 1)
					} else {
						atomic.AddInt64(&successful, 1)
					}

					if time.Since(lastReport) >= reportInterval {
						lastReport = time.Now()
						total := atomic.LoadInt64(&submitted)
						succ := atomic.LoadInt64(&successful)
						fail := atomic.LoadInt64(&failed)

						if config.Verbose {
							log.Printf("📊 Progress: %d/%d scored (success: %d, failed: %d)",
								total, len(transcripts), succ, fail)
						} else {
							fmt.Printf("\r📤 Scored: %d/%d (success: %d, failed: %d)",
								total, len(transcripts), succ, fail)
						}
					}
				}
			}
		}()
	}

	// Send transcripts to workers
	go func() {
		defer close(jobChan)
		for i, tr := range transcripts {
			select {
			case <-ctx.Done():
				return
			case jobChan <- job{index: i, transcript: tr}:
			}
		}
	}()

	wg.Wait()

	if !config.Verbose {
		fmt.Println() // New line after progress indicator
	}

	stats.RequestsSubmitted = int(atomic.LoadInt64(&submitted))
	stats.RequestsSuccessful = int(atomic.LoadInt64(&successful))
	stats.RequestsFailed = int(atomic.LoadInt64(&failed))

	log.Printf(`✅ Transcript scoring completed:
   Successful: %d
   Failed: %d
`, stats.RequestsSuccessful, stats.RequestsFailed)

	return results, nil
}

// scoreSingleTranscript posts one transcript and decodes its report
func scoreSingleTranscript(ctx context.Context, client *HTTPClient, url string, tr Transcript) Result {
	result := Result{Transcript: tr}

	start := time.Now()
	resp, err := client.Post(ctx, url, ScoreRequest{
		Transcript:      tr.Text,
		DurationMinutes: tr.DurationMinutes,
	})
	result.Latency = time.Since(start)
	if err != nil {
		result.Err = err
		return result
	}

	body, err := readResponseBody(resp)
	if err != nil {
		result.Err = err
		return result
	}

	if resp.StatusCode != StatusOK {
		result.Err = fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(body))
		return result
	}

	if err := json.Unmarshal(body, &result.Report); err != nil {
		result.Err = fmt.Errorf("failed to decode report: %w", err)
	}
	return result
}
