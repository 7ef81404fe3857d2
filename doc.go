// Package oxbridge provides the shared types for bridging an OXP
// tool-execution service into a prebuilt agent engine.
//
// The library is configuration and adaptation logic, not an engine: the
// reasoning loop that interleaves model calls, tool calls, and human
// interruptions is an external collaborator. What lives here is the
// catalog of remotely executable tools, the category filter that selects
// a subset of them for one agent configuration, the call adapter that
// forwards arguments to the remote execution endpoint, and the
// authorization interruption raised when a remote call reports a missing
// credential.
//
// # Packages
//
//   - [github.com/harborai/oxbridge/oxp]: HTTP client for the remote
//     tool-execution service (list, call, health).
//   - [github.com/harborai/oxbridge/catalog]: process-lifetime catalog
//     snapshot, service categories, and tool filtering.
//   - [github.com/harborai/oxbridge/tool]: tool registry and the bridge
//     that turns catalog entries into callable handlers.
//   - [github.com/harborai/oxbridge/interrupt]: the suspension primitive
//     used to ask a human to complete an authorization flow.
//   - [github.com/harborai/oxbridge/model]: chat-model handle loading for
//     the openai, anthropic, and google providers.
//   - [github.com/harborai/oxbridge/agent]: assembly of model, prompt, and
//     filtered tool set into an engine-ready configuration.
//   - [github.com/harborai/oxbridge/mcp]: expose a bridged tool set as an
//     MCP server.
//   - [github.com/harborai/oxbridge/agui]: surface authorization
//     interrupts to AG-UI frontends.
//
// # Basic Usage
//
// Build an agent configuration over the remote catalog:
//
//	client, err := oxp.NewFromEnv(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	cat := catalog.New(client)
//	broker := interrupt.NewBroker()
//	bridge := tool.NewBridge(client, broker)
//
//	builder := agent.NewBuilder(cat, bridge)
//	runnable, err := builder.Build(ctx, agent.InvocationConfig{
//	    Tools:  []string{"gmail", "search"},
//	    UserID: "user-123",
//	}, myEngineConstructor)
//
// The engine constructor receives the model handle, rendered system
// prompt, and bridged tool registrations, and owns execution from there.
package oxbridge
