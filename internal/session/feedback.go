package session

import "fmt"

// FeedbackKind classifies the reaction to the last action.
type FeedbackKind int

const (
	FeedbackNone    FeedbackKind = iota
	FeedbackCorrect              // Answer matched
	FeedbackRetry                // Wrong, but another try is left
	FeedbackWrong                // Wrong and out of tries, answer revealed
	FeedbackInvalid              // Input was not a number
)

// Category is the presentation bucket for feedback coloring.
type Category string

const (
	CategoryNeutral Category = "neutral"
	CategoryCorrect Category = "correct"
	CategoryWrong   Category = "wrong"
)

// Feedback is the message shown under the question.
type Feedback struct {
	Kind    FeedbackKind
	Message string
}

// Category maps the feedback kind onto neutral/correct/wrong.
func (f Feedback) Category() Category {
	switch f.Kind {
	case FeedbackCorrect:
		return CategoryCorrect
	case FeedbackRetry, FeedbackWrong, FeedbackInvalid:
		return CategoryWrong
	default:
		return CategoryNeutral
	}
}

// Display strings. The game speaks German.
const (
	msgCorrect = "Korrekt!"
	msgRetry   = "Falsch. Versuch es nochmal!"
	msgWrong   = "Falsch. Die richtige Antwort war %d."
	msgInvalid = "Bitte gib eine Zahl ein."
)

func correctFeedback() Feedback {
	return Feedback{Kind: FeedbackCorrect, Message: msgCorrect}
}

func retryFeedback() Feedback {
	return Feedback{Kind: FeedbackRetry, Message: msgRetry}
}

func wrongFeedback(answer int) Feedback {
	return Feedback{Kind: FeedbackWrong, Message: fmt.Sprintf(msgWrong, answer)}
}

func invalidFeedback() Feedback {
	return Feedback{Kind: FeedbackInvalid, Message: msgInvalid}
}
