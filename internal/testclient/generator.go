package testclient

import (
	"context"
	"crypto/rand"
	"math/big"
	"strings"

	"github.com/google/uuid"

	"github.com/chaithu10000/Nirmaan-AI-Scorer/pkg/logger"
)

// Quality band names.
const (
	qualityExcellent = "excellent"
	qualityAverage   = "average"
	qualityPoor      = "poor"
	qualityEmpty     = "empty"
)

// Quality distribution cases.
const (
	qualityBandCount   = 10
	caseEmpty          = 0
	casePoorHigh       = 2 // cases 1-2 are poor
	caseAverageHigh    = 5 // cases 3-5 are average
	durationJitterBase = 100
)

// Fragments assembled into self-introduction transcripts.
var (
	openings = []string{
		"hello everyone my name is %s and i am happy to introduce myself",
		"good morning my name is %s and i am excited to be here today",
		"hi my name is %s and i would like to tell you about myself",
	}
	names = []string{
		"Ravi", "Priya", "Arjun", "Meena", "Kiran", "Asha", "Vikram", "Divya",
	}
	details = []string{
		"i am nineteen years old and i study computer science at a college in Hyderabad",
		"i am from a small town and i moved to the city for my studies last year",
		"my hobbies are reading books playing cricket and learning new languages",
		"my family has four members and we enjoy travelling together during holidays",
		"a fun fact about me is that i can solve a rubiks cube in under two minutes",
		"in my free time i volunteer at a local library and teach children mathematics",
		"my goal is to become a software engineer and build products that help people",
	}
	fillers = []string{"um", "uh", "like", "you know", "basically", "actually"}
)

// getRandomInt returns a random int in [0, n) using crypto/rand.
func getRandomInt(n int) int {
	v, _ := rand.Int(rand.Reader, big.NewInt(int64(n)))
	return int(v.Int64())
}

// generateTranscripts creates the requested number of transcripts across
// quality bands so the service sees both strong and weak responses.
func generateTranscripts(ctx context.Context, config *Config, stats *Stats) ([]Transcript, error) {
	logger.Get().Info(ctx, "generating transcripts", logger.Int("numTranscripts", config.NumTranscripts))

	transcripts := make([]Transcript, config.NumTranscripts)
	for i := range transcripts {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		transcripts[i] = generateSingleTranscript()
	}

	stats.TranscriptsGenerated = len(transcripts)
	logger.Get().Info(ctx, "generated transcripts successfully", logger.Int("count", len(transcripts)))

	return transcripts, nil
}

// generateSingleTranscript builds one transcript in a randomly chosen
// quality band.
func generateSingleTranscript() Transcript {
	band := getRandomInt(qualityBandCount)

	var (
		quality string
		text    string
	)
	switch {
	case band == caseEmpty:
		// Rare: empty response
		quality = qualityEmpty
		text = ""
	case band <= casePoorHigh:
		// Poor: short, heavy on fillers, repeated words
		quality = qualityPoor
		text = buildText(1, 3)
	case band <= caseAverageHigh:
		// Average: covers some topics with moderate fillers
		quality = qualityAverage
		text = buildText(3, 1)
	default:
		// Excellent: covers most topics, clean delivery
		quality = qualityExcellent
		text = buildText(6, 0)
	}

	// Duration 0.5 - 1.5 minutes with jitter
	duration := 0.5 + float64(getRandomInt(durationJitterBase))/float64(durationJitterBase)

	return Transcript{
		ID:              uuid.New().String(),
		Text:            text,
		DurationMinutes: duration,
		Quality:         quality,
	}
}

// buildText assembles an opening plus numDetails detail sentences, salting
// each sentence with fillersPerSentence filler words.
func buildText(numDetails, fillersPerSentence int) string {
	var sb strings.Builder

	opening := openings[getRandomInt(len(openings))]
	name := names[getRandomInt(len(names))]
	sb.WriteString(strings.Replace(opening, "%s", name, 1))

	used := map[int]bool{}
	for i := 0; i < numDetails && i < len(details); i++ {
		idx := getRandomInt(len(details))
		for used[idx] {
			idx = (idx + 1) % len(details)
		}
		used[idx] = true

		for f := 0; f < fillersPerSentence; f++ {
			sb.WriteString(" ")
			sb.WriteString(fillers[getRandomInt(len(fillers))])
		}
		sb.WriteString(" ")
		sb.WriteString(details[idx])
	}

	return sb.String()
}
