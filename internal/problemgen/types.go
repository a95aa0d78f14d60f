package problemgen

import "fmt"

// Operation is the arithmetic operation of a question.
type Operation string

const (
	OpAddition    Operation = "addition"
	OpSubtraction Operation = "subtraction"
)

// Symbol returns the operator as displayed in question text.
func (o Operation) Symbol() string {
	if o == OpSubtraction {
		return "-"
	}
	return "+"
}

// Question represents a generated arithmetic problem ready for display.
// A Question is never mutated after the generator returns it.
type Question struct {
	// Text is the prompt shown to the player, e.g. "23 - 7 = ?".
	Text string

	// Operation is addition or subtraction.
	Operation Operation

	// Left and Right are the operands in display order: addends for
	// addition, minuend and subtrahend for subtraction.
	Left  int
	Right int

	// Answer is the correct numeric result.
	Answer int
}

// NewQuestion builds a Question and derives its text and answer from the operands.
func NewQuestion(op Operation, left, right int) *Question {
	answer := left + right
	if op == OpSubtraction {
		answer = left - right
	}
	return &Question{
		Text:      fmt.Sprintf("%d %s %d = ?", left, op.Symbol(), right),
		Operation: op,
		Left:      left,
		Right:     right,
		Answer:    answer,
	}
}

// Check reports whether n is the correct answer to q.
func (q *Question) Check(n int) bool {
	return n == q.Answer
}
