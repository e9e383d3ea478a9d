package lexical

// Detector is a pluggable grammar-error strategy. The default is a
// deliberately minimal lexical detector; a real grammar checker can be
// injected without touching the scoring engine.
type Detector interface {
	// Count returns the number of error signatures found in the tokens.
	Count(tokens []string) int
}

// errorSignatures are token bigrams that read as common lexically
// detectable mistakes.
var errorSignatures = [][2]string{
	{"could", "of"},
	{"should", "of"},
	{"would", "of"},
	{"he", "don't"},
	{"she", "don't"},
	{"it", "don't"},
	{"they", "was"},
	{"we", "was"},
	{"you", "was"},
	{"more", "better"},
	{"most", "best"},
}

// SignatureDetector counts adjacent repeated words plus a fixed signature
// list. It implements Detector.
type SignatureDetector struct{}

// NewSignatureDetector returns the default grammar detector.
func NewSignatureDetector() SignatureDetector {
	return SignatureDetector{}
}

// Count scans the tokens once for repeated words and error signatures.
func (SignatureDetector) Count(tokens []string) int {
	count := 0
	for i := 1; i < len(tokens); i++ {
		if tokens[i] == tokens[i-1] {
			count++
			continue
		}
		for _, sig := range errorSignatures {
			if tokens[i-1] == sig[0] && tokens[i] == sig[1] {
				count++
				break
			}
		}
	}
	return count
}
