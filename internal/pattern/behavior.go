package pattern

import (
	"regexp"
	"strings"
)

// maxBehaviorPatterns caps each list returned by ExtractBehaviorPatterns.
const maxBehaviorPatterns = 10

var (
	sentenceSplit = regexp.MustCompile(`[.!?\n]+`)

	// Causal connectives mark a sentence as describing a trigger.
	triggerPattern = regexp.MustCompile(`(?i)\b(because|since|whenever|every time|when|after|so that|due to)\b`)

	// Reactive verbs mark a sentence as describing the parent's response.
	responsePattern = regexp.MustCompile(`(?i)\b(yell(ed)?|shout(ed)?|scream(ed)?|snapped|lost my temper|raised my voice|cried|walked away|spanked|hit|threatened|punished|ignored|gave in|took away)\b`)
)

// BehaviorPatterns groups sentences describing what set a parent off
// (triggers) and how they reacted (responses).
type BehaviorPatterns struct {
	Triggers  []string `json:"triggers"`
	Responses []string `json:"responses"`
}

// ExtractBehaviorPatterns splits texts into sentences and classifies each as
// a trigger, a response, both, or neither. Lists are deduplicated and capped
// at ten entries each.
func ExtractBehaviorPatterns(texts []string) BehaviorPatterns {
	bp := BehaviorPatterns{Triggers: []string{}, Responses: []string{}}
	seenTrigger := make(map[string]bool)
	seenResponse := make(map[string]bool)

	for _, text := range texts {
		for _, sentence := range sentenceSplit.Split(text, -1) {
			sentence = strings.TrimSpace(sentence)
			if sentence == "" {
				continue
			}
			if len(bp.Triggers) < maxBehaviorPatterns && !seenTrigger[sentence] && triggerPattern.MatchString(sentence) {
				seenTrigger[sentence] = true
				bp.Triggers = append(bp.Triggers, sentence)
			}
			if len(bp.Responses) < maxBehaviorPatterns && !seenResponse[sentence] && responsePattern.MatchString(sentence) {
				seenResponse[sentence] = true
				bp.Responses = append(bp.Responses, sentence)
			}
		}
	}
	return bp
}
