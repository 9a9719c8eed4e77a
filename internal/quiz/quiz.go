package quiz

// OptionKind is how a question's options are presented.
type OptionKind int

const (
	KindDefault      OptionKind = iota // Plain text options
	KindImage                          // Options carry an image reference
	KindSingleSelect                   // Radio-button style options
)

// ParseOptionKind resolves a wire discriminator. Unknown or empty values
// fall back to KindDefault.
func ParseOptionKind(s string) OptionKind {
	switch s {
	case "IMAGE":
		return KindImage
	case "SINGLE_SELECT":
		return KindSingleSelect
	default:
		return KindDefault
	}
}

// String returns the wire name of the kind.
func (k OptionKind) String() string {
	switch k {
	case KindImage:
		return "IMAGE"
	case KindSingleSelect:
		return "SINGLE_SELECT"
	default:
		return "DEFAULT"
	}
}

// Option is a single answer choice.
type Option struct {
	ID       string
	Text     string
	ImageURL string
	Correct  bool
}

// Question is a quiz question with its options.
type Question struct {
	ID      string
	Text    string
	Kind    OptionKind
	Options []Option
}

// Option returns the option with the given ID.
func (q Question) Option(id string) (Option, bool) {
	for _, o := range q.Options {
		if o.ID == id {
			return o, true
		}
	}
	return Option{}, false
}

// CorrectOptions returns every option marked correct, in display order.
func (q Question) CorrectOptions() []Option {
	var out []Option
	for _, o := range q.Options {
		if o.Correct {
			out = append(out, o)
		}
	}
	return out
}
