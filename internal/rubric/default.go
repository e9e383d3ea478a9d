package rubric

// Upper sentinels for tier ranges that are open-ended in practice. Values
// beyond them clamp to the boundary tier anyway.
const (
	ratioCeil = 1.1
	openCeil  = 1e9
)

// idealFlowText describes the target structure of a spoken
// self-introduction; semantic similarity against it scores organization.
const idealFlowText = "A self-introduction must follow a logical order: " +
	"Salutation or greeting, stating name, age, and mandatory details such " +
	"as class and school, followed by optional details like family, hobbies " +
	"and a fun fact or unique point, concluding with a polite closing and " +
	"thank you."

// Default returns the built-in self-introduction rubric. It is used when
// no rubric file is configured and doubles as a reference for authoring
// rubric YAML files.
func Default() *Rubric {
	return &Rubric{
		Name: "self-introduction",
		Criteria: []Criterion{
			{
				ID:          "content",
				DisplayName: "Key Content Presence",
				Weight:      30,
				Kind:        KindRule,
				Metric:      MetricKeywordPresence,
				KeywordGroups: [][]string{
					{"name"},
					{"age", "years old"},
					{"class", "grade", "standard"},
					{"school", "college"},
					{"family", "parents", "father", "mother"},
					{"hobbies", "hobby", "interests"},
					{"goals", "goal", "ambition", "dream"},
					{"subject", "subjects"},
					{"unique", "special", "fun fact"},
				},
				Tiers: []Tier{
					{Low: 0.0, High: 0.2, Score: 0.1, Label: "Very low coverage"},
					{Low: 0.2, High: 0.4, Score: 0.3, Label: "Low coverage"},
					{Low: 0.4, High: 0.6, Score: 0.5, Label: "Partial coverage"},
					{Low: 0.6, High: 0.8, Score: 0.7, Label: "Good coverage"},
					{Low: 0.8, High: 0.9, Score: 0.85, Label: "Strong coverage"},
					{Low: 0.9, High: ratioCeil, Score: 1.0, Label: "Excellent content coverage"},
				},
			},
			{
				ID:          "flow",
				DisplayName: "Flow & Organization",
				Weight:      5,
				Kind:        KindSemantic,
				IdealText:   idealFlowText,
				// Raw cosine between a decent transcript and the ideal text
				// rarely exceeds ~0.8, so stretch the usable band.
				Remap: &Remap{Scale: 1.25, Offset: -0.5},
			},
			{
				ID:          "vocabulary",
				DisplayName: "Vocabulary Richness (TTR)",
				Weight:      10,
				Kind:        KindRule,
				Metric:      MetricTypeTokenRatio,
				Tiers: []Tier{
					{Low: 0.0, High: 0.3, Score: 0.2, Label: "Very limited vocabulary"},
					{Low: 0.3, High: 0.5, Score: 0.4, Label: "Limited vocabulary"},
					{Low: 0.5, High: 0.7, Score: 0.6, Label: "Average vocabulary"},
					{Low: 0.7, High: 0.9, Score: 0.8, Label: "Good vocabulary"},
					{Low: 0.9, High: ratioCeil, Score: 1.0, Label: "Excellent vocabulary"},
				},
			},
			{
				ID:          "grammar",
				DisplayName: "Language & Grammar",
				Weight:      10,
				Kind:        KindRule,
				Metric:      MetricGrammarErrors,
				Tiers: []Tier{
					{Low: 0.0, High: 1.0, Score: 1.0, Label: "Excellent grammar"},
					{Low: 1.0, High: 3.0, Score: 0.8, Label: "Minor grammatical issues"},
					{Low: 3.0, High: 5.0, Score: 0.6, Label: "Noticeable grammatical issues"},
					{Low: 5.0, High: 10.0, Score: 0.3, Label: "Significant grammar issues"},
					{Low: 10.0, High: openCeil, Score: 0.0, Label: "Severe grammar issues"},
				},
			},
			{
				ID:          "clarity",
				DisplayName: "Clarity (Filler Word Rate)",
				Weight:      5,
				Kind:        KindRule,
				Metric:      MetricFillerRate,
				Tiers: []Tier{
					{Low: 0.00, High: 0.01, Score: 1.0, Label: "Excellent clarity"},
					{Low: 0.01, High: 0.03, Score: 0.8, Label: "Good clarity"},
					{Low: 0.03, High: 0.05, Score: 0.6, Label: "Moderate clarity"},
					{Low: 0.05, High: 0.10, Score: 0.4, Label: "Low clarity"},
					{Low: 0.10, High: ratioCeil, Score: 0.2, Label: "Very low clarity"},
				},
			},
			{
				ID:          "speech_rate",
				DisplayName: "Speech Rate",
				Weight:      10,
				Kind:        KindRule,
				Metric:      MetricSpeechRate,
				Tiers: []Tier{
					{Low: 0, High: 80, Score: 0.4, Label: "Speech rate too slow"},
					{Low: 80, High: 100, Score: 0.7, Label: "Slightly slow speech rate"},
					{Low: 100, High: 150, Score: 1.0, Label: "Ideal speech rate"},
					{Low: 150, High: 180, Score: 0.7, Label: "Slightly fast speech rate"},
					{Low: 180, High: openCeil, Score: 0.4, Label: "Speech rate too fast"},
				},
			},
		},
	}
}
