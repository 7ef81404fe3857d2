// Package agui surfaces authorization interruptions to AG-UI frontends.
//
// AG-UI (Agent-User Interface) is an open, lightweight, event-based
// protocol that standardizes how AI agents connect to user-facing
// applications. This package maps the bridge's human-in-the-loop
// authorization interrupts onto AG-UI events so that AG-UI-compatible
// frontends can show the authorization URL and collect the user's
// acknowledgement.
//
// The package does NOT provide HTTP handlers or transport
// implementations. Users are responsible for implementing their own
// server using the AG-UI SDK's SSE writer or their preferred transport
// mechanism.
//
// # Surfacing Interrupts
//
// Create a Mapper per stream and convert each pending interruption to
// an event sequence:
//
//	mapper := agui.NewMapper(threadID, runID)
//	writeEvent(mapper.RunStarted())
//
//	broker := interrupt.NewBroker(interrupt.WithOnSubmit(func(p interrupt.Pending) {
//	    for _, ev := range mapper.AuthorizationEvents(p) {
//	        writeEvent(ev)
//	    }
//	}))
//
// Each interruption becomes a TOOL_CALL_START / TOOL_CALL_ARGS /
// TOOL_CALL_END sequence whose tool call ID is the pending interrupt
// ID, so the frontend's response can be routed back to the broker.
//
// # Accepting
//
// When the user completes the authorization flow, the frontend posts
// an acceptance that is routed to the broker:
//
//	if err := agui.HandleAcceptJSON(broker, body); err != nil { ... }
//
// # Thread Safety
//
// The Mapper is stateless after construction and safe for concurrent
// use. The accept helpers delegate concurrency to the broker.
package agui
