package runtime

const (
	UserMessage       = "user_message"
	InvalidateContext = "invalidate_context"
)

// Event is one unit of work for the runtime loop. Reply, when set, receives
// the assistant's final text for the originating surface.
type Event struct {
	ID    string
	Type  string
	Text  string
	Reply func(string)
}
