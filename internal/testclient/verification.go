package testclient

import (
	"fmt"
	"log"
	"sort"
	"time"
)

// verifyResults checks every successful report for internal consistency.
func verifyResults(config *Config, results []Result, stats *Stats) error {
	log.Println("🔍 Verifying results...")

	var (
		verified  int
		latencies []time.Duration
	)

	for _, res := range results {
		if res.Err != nil {
			continue
		}
		latencies = append(latencies, res.Latency)

		if err := verifyReport(res); err != nil {
			stats.VerificationFailures++
			log.Printf("⚠️  Report verification failed for transcript %s (%s): %v",
				res.Transcript.ID, res.Transcript.Quality, err)
			continue
		}
		if res.Report.Degraded {
			stats.ReportsDegraded++
		}
		verified++
	}

	if verified == 0 {
		return fmt.Errorf("no reports to verify")
	}

	displayLatencyStats(latencies)
	displayQualityBreakdown(results, config.Verbose)

	log.Printf("✅ Result verification completed: %d reports verified, %d failures",
		verified, stats.VerificationFailures)
	return nil
}

// verifyReport checks a single report's invariants.
func verifyReport(res Result) error {
	report := res.Report

	if report.OverallScore < 0 || report.OverallScore > 100 {
		return fmt.Errorf("overall score %.2f out of range", report.OverallScore)
	}
	if len(report.Criteria) == 0 {
		return fmt.Errorf("report has no criteria")
	}
	if res.Transcript.Text == "" && report.WordCount != 0 {
		return fmt.Errorf("empty transcript reported %d words", report.WordCount)
	}

	var degraded bool
	for _, c := range report.Criteria {
		if c.NormalizedScore < 0 || c.NormalizedScore > 1 {
			return fmt.Errorf("criterion %s normalized score %.2f out of range", c.CriterionID, c.NormalizedScore)
		}
		if c.Weight <= 0 {
			return fmt.Errorf("criterion %s has non-positive weight", c.CriterionID)
		}
		if c.Feedback == "" {
			return fmt.Errorf("criterion %s has no feedback", c.CriterionID)
		}
		if c.Degraded {
			degraded = true
		}
	}
	if degraded && !report.Degraded {
		return fmt.Errorf("degraded criterion without degraded report flag")
	}

	return nil
}

// displayLatencyStats prints request latency percentiles.
func displayLatencyStats(latencies []time.Duration) {
	if len(latencies) == 0 {
		return
	}

	sorted := make([]time.Duration, len(latencies))
	copy(sorted, latencies)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	var sum time.Duration
	for _, l := range sorted {
		sum += l
	}

	p50 := sorted[len(sorted)/2]
	p95 := sorted[len(sorted)*95/100]

	log.Printf(`📊 Latency statistics:
   Average: %s
   P50: %s
   P95: %s
   Max: %s
`, sum/time.Duration(len(sorted)), p50, p95, sorted[len(sorted)-1])
}

// displayQualityBreakdown shows average overall scores per quality band.
func displayQualityBreakdown(results []Result, verbose bool) {
	type bandStats struct {
		count int
		sum   float64
	}
	bands := map[string]*bandStats{}

	for _, res := range results {
		if res.Err != nil {
			continue
		}
		b, ok := bands[res.Transcript.Quality]
		if !ok {
			b = &bandStats{}
			bands[res.Transcript.Quality] = b
		}
		b.count++
		b.sum += res.Report.OverallScore
	}

	names := make([]string, 0, len(bands))
	for name := range bands {
		names = append(names, name)
	}
	sort.Strings(names)

	log.Println("🏆 Average score by quality band:")
	for _, name := range names {
		b := bands[name]
		log.Printf("   %-10s %6.2f (%d transcripts)", name, b.sum/float64(b.count), b.count)
	}

	if verbose {
		for _, res := range results {
			if res.Err != nil {
				continue
			}
			log.Printf("   %s [%s] score: %.2f words: %d degraded: %t",
				res.Transcript.ID, res.Transcript.Quality,
				res.Report.OverallScore, res.Report.WordCount, res.Report.Degraded)
		}
	}
}
