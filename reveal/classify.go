package reveal

// Class is the reveal classification of a key identity.
type Class int

const (
	// Ignored keys never change the session.
	Ignored Class = iota
	// Advance keys reveal one more code point.
	Advance
	// Retreat hides the most recently revealed code point.
	Retreat
)

func (c Class) String() string {
	switch c {
	case Advance:
		return "advance"
	case Retreat:
		return "retreat"
	default:
		return "ignored"
	}
}

// Key identities for the named keys the engine knows about.
const (
	KeyEnter     = "Enter"
	KeySpace     = " "
	KeyBackspace = "Backspace"
)

const advancePunct = "!@#$%^&*()-_=+[]{}\\|;:'\",.<>/?`~"

var advanceKeys = buildAdvanceKeys()

func buildAdvanceKeys() map[string]struct{} {
	keys := make(map[string]struct{}, 2+26*2+10+len(advancePunct))
	add := func(s string) { keys[s] = struct{}{} }

	add(KeyEnter)
	add(KeySpace)
	for r := 'a'; r <= 'z'; r++ {
		add(string(r))
		add(string(r - 'a' + 'A'))
	}
	for r := '0'; r <= '9'; r++ {
		add(string(r))
	}
	for _, r := range advancePunct {
		add(string(r))
	}
	return keys
}

// Classify maps a key identity string to its reveal class.
//
// Matching is by exact identity. Anything outside the enumerated Advance set
// and Backspace is Ignored, including non-ASCII characters and multi-character
// input such as paste.
func Classify(key string) Class {
	if key == KeyBackspace {
		return Retreat
	}
	if _, ok := advanceKeys[key]; ok {
		return Advance
	}
	return Ignored
}
