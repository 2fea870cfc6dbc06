package generator

const (
	// DefaultMinimumLength is used when no minimum is configured.
	DefaultMinimumLength = 12

	// minimumFloor is the smallest minimum length ever targeted.
	minimumFloor = 5
)

// Options controls the shape of a generated passphrase.
type Options struct {
	// MinimumLength is the target minimum length. Values below 5 are raised
	// to 5, and the result is clamped to MaximumLength when that is set.
	MinimumLength int

	// MaximumLength caps the length. 0 means unbounded.
	MaximumLength int

	// AllowNumbers permits digits: a leading digit, digit separators and
	// dictionary words containing digits.
	AllowNumbers bool

	// AllowPunctuation permits punctuation and spaces: separators, a
	// terminal punctuation mark and punctuation inside words.
	AllowPunctuation bool
}

// DefaultOptions returns minimum length 12, no maximum, numbers and
// punctuation allowed.
func DefaultOptions() Options {
	return Options{
		MinimumLength:    DefaultMinimumLength,
		MaximumLength:    0,
		AllowNumbers:     true,
		AllowPunctuation: true,
	}
}

// bounds returns the effective minimum and maximum lengths used while
// appending words. When punctuation is allowed one slot is reserved for the
// terminal punctuation mark.
func (o Options) bounds() (minLength, maxLength int) {
	minLength = max(minimumFloor, o.MinimumLength)
	if o.MaximumLength > 0 && minLength > o.MaximumLength {
		minLength = o.MaximumLength
	}

	maxLength = unbounded
	if o.MaximumLength > 0 {
		maxLength = max(o.MaximumLength, minLength)
	}
	if o.AllowPunctuation {
		maxLength--
	}

	return minLength, maxLength
}

// mode is the subset of Options that decides which words are usable.
type mode struct {
	numbers     bool
	punctuation bool
}

func (o Options) mode() mode {
	return mode{numbers: o.AllowNumbers, punctuation: o.AllowPunctuation}
}
