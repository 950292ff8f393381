package widget

type State int

const (
	Idle State = iota
	Uploading
	Done
	Error
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Uploading:
		return "uploading"
	case Done:
		return "done"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}
