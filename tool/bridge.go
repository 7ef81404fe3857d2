package tool

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	ai "github.com/harborai/oxbridge"
	"github.com/harborai/oxbridge/interrupt"
	"github.com/harborai/oxbridge/oxp"
)

// Caller executes tools on the remote service. *oxp.Client satisfies
// this interface.
type Caller interface {
	CallTool(ctx context.Context, call oxp.CallRequest) (*oxp.CallResponse, error)
}

// Bridge wraps remote catalog tools in locally callable handlers. Each
// handler forwards the arguments verbatim to the execution endpoint,
// attaches the caller identity, and translates the missing-credential
// error into an authorization interruption.
type Bridge struct {
	caller      Caller
	interrupter interrupt.Interrupter
}

// NewBridge creates a Bridge over the given caller and suspension
// mechanism. The interrupter may be nil, in which case authorization
// errors are re-raised without a human-in-the-loop side channel.
func NewBridge(caller Caller, interrupter interrupt.Interrupter) *Bridge {
	return &Bridge{
		caller:      caller,
		interrupter: interrupter,
	}
}

// Registration binds one catalog tool to an invocation handler executing
// on behalf of userID. The identity is bound at assembly time and
// validated on every call, before any network I/O.
func (b *Bridge) Registration(t ai.Tool, userID string) Registration {
	return Registration{
		Tool:    t,
		Handler: b.handler(t.Name, userID),
	}
}

// Registrations binds a selected tool set, preserving its order.
func (b *Bridge) Registrations(tools []ai.Tool, userID string) []Registration {
	regs := make([]Registration, 0, len(tools))
	for _, t := range tools {
		regs = append(regs, b.Registration(t, userID))
	}
	return regs
}

// Registry builds a populated registry from a selected tool set.
func (b *Bridge) Registry(tools []ai.Tool, userID string) *Registry {
	return NewRegistry().Add(b.Registrations(tools, userID)...)
}

func (b *Bridge) handler(toolID, userID string) Handler {
	return func(ctx context.Context, call ai.ToolCall) (string, error) {
		if userID == "" {
			slog.Error("missing caller identity for tool call", "tool", toolID)
			return "", &ai.Error{Msg: "tool call rejected", Cat: ai.ErrorValidation, Cause: ErrMissingIdentity}
		}

		input := map[string]any{}
		if call.Arguments != "" {
			if err := json.Unmarshal([]byte(call.Arguments), &input); err != nil {
				return "", ai.NewValidationError(fmt.Sprintf("invalid arguments for tool %s: %v", toolID, err))
			}
		}

		slog.Debug("calling remote tool", "tool", toolID, "user", userID)

		resp, err := b.caller.CallTool(ctx, oxp.CallRequest{
			ToolID:  toolID,
			Context: oxp.CallContext{UserID: userID},
			Input:   input,
		})
		if err != nil {
			b.classify(ctx, toolID, userID, err)
			return "", err
		}

		if !resp.Success {
			msg := resp.Error
			if msg == "" {
				msg = "unknown error occurred"
			}
			slog.Error("tool call failed", "tool", toolID, "error", msg)
			return "", ai.NewRemoteError(fmt.Sprintf("tool call to %s failed: %s", toolID, msg), nil)
		}

		return string(resp.Value), nil
	}
}

// classify inspects a remote API error and, when it reports exactly one
// outstanding authorization requirement with a URL, submits an
// authorization interruption. The interruption is a side channel to
// notify a human: the original error is always re-raised by the caller,
// and a fresh invocation must be issued after authorization completes.
func (b *Bridge) classify(ctx context.Context, toolID, userID string, err error) {
	var se *oxp.StatusError
	if !errors.As(err, &se) {
		slog.Error("unexpected error calling tool", "tool", toolID, "error", err)
		return
	}

	slog.Error("API error calling tool", "tool", toolID, "status", se.StatusCode, "error", err)

	url, ok := se.Body.PendingAuthorization()
	if !ok || b.interrupter == nil {
		return
	}

	slog.Info("authorization required, initiating auth flow", "tool", toolID, "user", userID)
	payload := []ai.HumanInterrupt{ai.NewAuthInterrupt(url)}
	if ierr := b.interrupter.Interrupt(ctx, payload); ierr != nil {
		slog.Warn("authorization interrupt not acknowledged", "tool", toolID, "error", ierr)
	}
}
