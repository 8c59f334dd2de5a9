package scoring

// Outcome classifies a scored round.
type Outcome int

const (
	// TryAgain means the round should be reset and retried.
	TryAgain Outcome = iota
	// Good means accuracy is at least 90%.
	Good
	// CapitalizationOnly means the only mistake is the case of the first letter.
	CapitalizationOnly
	// Perfect means an exact match.
	Perfect
)

// ClassifyOutcome maps accuracy and the capitalization check to an outcome.
// Perfect takes priority over CapitalizationOnly, which takes priority over Good.
func ClassifyOutcome(accuracy float64, capitalizationOnly bool) Outcome {
	switch {
	case accuracy == 100:
		return Perfect
	case capitalizationOnly:
		return CapitalizationOnly
	case accuracy >= goodThreshold:
		return Good
	default:
		return TryAgain
	}
}

// RequiresRetry reports whether the round must be reset before moving on.
func (o Outcome) RequiresRetry() bool {
	return o == TryAgain
}

func (o Outcome) String() string {
	switch o {
	case Perfect:
		return "perfect"
	case CapitalizationOnly:
		return "capitalization-only"
	case Good:
		return "good"
	case TryAgain:
		return "try-again"
	default:
		return "unknown"
	}
}
