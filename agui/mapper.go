package agui

import (
	"encoding/json"

	"github.com/ag-ui-protocol/ag-ui/sdks/community/go/pkg/core/events"

	"github.com/harborai/oxbridge/interrupt"
)

// Mapper converts pending interruptions to AG-UI events for one
// event stream. The threadID and runID are used in lifecycle events
// (RUN_STARTED, RUN_FINISHED).
type Mapper struct {
	threadID string
	runID    string
}

// NewMapper creates a Mapper for a single stream. Empty IDs are
// generated.
func NewMapper(threadID, runID string) *Mapper {
	if threadID == "" {
		threadID = events.GenerateThreadID()
	}
	if runID == "" {
		runID = events.GenerateRunID()
	}
	return &Mapper{
		threadID: threadID,
		runID:    runID,
	}
}

// ThreadID returns the thread ID for this mapper.
func (m *Mapper) ThreadID() string {
	return m.threadID
}

// RunID returns the run ID for this mapper.
func (m *Mapper) RunID() string {
	return m.runID
}

// RunStarted returns a RUN_STARTED event.
func (m *Mapper) RunStarted() events.Event {
	return events.NewRunStartedEvent(m.threadID, m.runID)
}

// RunFinished returns a RUN_FINISHED event.
func (m *Mapper) RunFinished() events.Event {
	return events.NewRunFinishedEvent(m.threadID, m.runID)
}

// RunError returns a RUN_ERROR event.
func (m *Mapper) RunError(err error) events.Event {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	return events.NewRunErrorEvent(msg)
}

// AuthorizationEvents converts a pending interruption to AG-UI events.
// Each interrupt in the payload becomes a TOOL_CALL_START,
// TOOL_CALL_ARGS, TOOL_CALL_END sequence. The tool call ID is the
// pending interrupt ID and the tool call name is the requested action,
// so a frontend acceptance can be routed back to the broker by ID. The
// args content is the full interrupt payload as JSON, including the
// authorization URL and the response policy.
func (m *Mapper) AuthorizationEvents(p interrupt.Pending) []events.Event {
	result := make([]events.Event, 0, 3*len(p.Interrupts))
	for _, hi := range p.Interrupts {
		args, err := json.Marshal(hi)
		if err != nil {
			// The payload is plain data; this cannot happen in practice.
			continue
		}
		result = append(result,
			events.NewToolCallStartEvent(p.ID, hi.ActionRequest.Action),
			events.NewToolCallArgsEvent(p.ID, string(args)),
			events.NewToolCallEndEvent(p.ID),
		)
	}
	return result
}
