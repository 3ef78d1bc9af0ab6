package trace

// Kind represents the type of event
type Kind uint8

const (
	KindStart Kind = iota + 1
	KindFinish
	KindFail
)

func (k Kind) String() string {
	switch k {
	case KindStart:
		return "start"
	case KindFinish:
		return "finish"
	case KindFail:
		return "fail"
	default:
		return "unknown"
	}
}

// Event represents a single step of a demo run
type Event struct {
	Seq    int    `json:"seq"`
	Demo   string `json:"demo"`
	Kind   Kind   `json:"kind"`
	Detail string `json:"detail,omitempty"` // Error text for fail events
}
