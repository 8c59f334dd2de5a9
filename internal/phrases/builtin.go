package phrases

var easyPhrases = []string{
	"The cat sat on the mat",
	"A dog runs in the park",
	"The sun is very bright today",
	"I like to eat pizza",
	"Birds fly high in the sky",
	"The red car is fast",
	"She has a nice smile",
	"We play games at home",
	"The book is on the table",
	"Rain falls from the clouds",
}

var intermediatePhrases = []string{
	"Technology has revolutionized the way we communicate",
	"The quick brown fox jumps over the lazy dog",
	"Success comes to those who work hard and never give up",
	"Learning new skills requires patience and dedication",
	"The beautiful sunset painted the sky in vibrant colors",
	"Programming languages help us create amazing applications",
	"Exercise and healthy eating contribute to a better lifestyle",
	"Music has the power to influence our emotions deeply",
	"Environmental conservation is crucial for future generations",
	"Creativity and innovation drive progress in every field",
}

var hardPhrases = []string{
	"Extraordinarily sophisticated algorithms can optimize complex computational processes efficiently",
	"The juxtaposition of contemporary philosophical paradigms creates unprecedented intellectual discourse",
	"Quantum entanglement phenomena demonstrate the inexplicable interconnectedness of subatomic particles",
	"Bioengineering methodologies facilitate revolutionary breakthroughs in pharmaceutical development strategies",
	"Psycholinguistic research illuminates the intricate relationships between cognition and language acquisition",
	"Entrepreneurial ventures necessitate comprehensive market analysis and strategic risk assessment protocols",
	"Meteorological fluctuations significantly impact agricultural productivity and economic sustainability patterns",
	"Cryptocurrency blockchain technologies revolutionize decentralized financial transaction verification systems",
	"Neuroplasticity mechanisms enable adaptive cognitive restructuring throughout human developmental stages",
	"Geopolitical ramifications of international trade agreements influence macroeconomic stability indicators",
}

// Builtin returns a copy of the built-in phrases for a tier.
func Builtin(d Difficulty) []string {
	var src []string
	switch d {
	case Easy:
		src = easyPhrases
	case Intermediate:
		src = intermediatePhrases
	case Hard:
		src = hardPhrases
	}
	return append([]string(nil), src...)
}
