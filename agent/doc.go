// Package agent assembles the pieces an external agent engine needs to
// run: a chat-model handle, a rendered system prompt, and the bridged
// tool set selected for one invocation.
//
// The engine itself is an opaque collaborator. A [Constructor] supplied
// by the engine binding receives the finished [Assembly] and returns the
// engine's runnable object, which is passed through unmodified.
package agent
