package renderctx

import (
	"context"

	"go.uber.org/zap"
)

// Stack tracks the render contexts of nested rendering scopes. The most
// recently pushed context is the current one.
//
// A Stack is owned by whoever created it and is not safe for concurrent use:
// give each request or goroutine its own stack, or serialize access.
// The zero value is an empty stack that does not log.
type Stack struct {
	contexts []*RenderContext
	logger   *zap.Logger
}

// NewStack creates a stack holding the given contexts, bottom first.
// A nil logger disables logging.
func NewStack(logger *zap.Logger, initial ...*RenderContext) *Stack {
	if logger == nil {
		logger = zap.NewNop()
	}
	contexts := make([]*RenderContext, len(initial))
	copy(contexts, initial)
	return &Stack{
		contexts: contexts,
		logger:   logger,
	}
}

// Push makes rc the current context. rc is not validated.
func (s *Stack) Push(rc *RenderContext) {
	s.contexts = append(s.contexts, rc)
	s.log().Debug(LogMsgContextPushed,
		zap.Stringer(LogFieldPreset, rc),
		zap.Int(LogFieldDepth, len(s.contexts)))
}

// Pop removes and returns the current context.
// Returns nil and false when the stack is empty; that is not an error.
func (s *Stack) Pop() (*RenderContext, bool) {
	n := len(s.contexts)
	if n == 0 {
		s.log().Debug(LogMsgStackUnderflow)
		return nil, false
	}
	rc := s.contexts[n-1]
	s.contexts[n-1] = nil
	s.contexts = s.contexts[:n-1]
	s.log().Debug(LogMsgContextPopped,
		zap.Stringer(LogFieldPreset, rc),
		zap.Int(LogFieldDepth, len(s.contexts)))
	return rc, true
}

// Current returns the top context without removing it.
// Returns nil and false when the stack is empty.
func (s *Stack) Current() (*RenderContext, bool) {
	n := len(s.contexts)
	if n == 0 {
		return nil, false
	}
	return s.contexts[n-1], true
}

// SetGlobal replaces the whole stack with a single context. Used by setup
// code to pin a deterministic context.
func (s *Stack) SetGlobal(rc *RenderContext) {
	for i := range s.contexts {
		s.contexts[i] = nil
	}
	s.contexts = append(s.contexts[:0], rc)
	s.log().Debug(LogMsgStackReset, zap.Stringer(LogFieldPreset, rc))
}

func (s *Stack) log() *zap.Logger {
	if s.logger == nil {
		return zap.NewNop()
	}
	return s.logger
}

// Len returns the number of contexts on the stack.
func (s *Stack) Len() int {
	return len(s.contexts)
}

// Scope pushes rc, runs fn and pops rc again, even if fn panics.
// This keeps pushes and pops strictly nested.
func (s *Stack) Scope(rc *RenderContext, fn func() error) error {
	s.Push(rc)
	defer s.Pop()
	return fn()
}

type stackContextKey struct{}

// WithStack returns a copy of ctx carrying the stack.
func WithStack(ctx context.Context, s *Stack) context.Context {
	return context.WithValue(ctx, stackContextKey{}, s)
}

// StackFrom returns the stack carried by ctx, if any.
func StackFrom(ctx context.Context) (*Stack, bool) {
	s, ok := ctx.Value(stackContextKey{}).(*Stack)
	return s, ok && s != nil
}

// CurrentFrom returns the current render context of the stack carried by ctx.
func CurrentFrom(ctx context.Context) (*RenderContext, bool) {
	s, ok := StackFrom(ctx)
	if !ok {
		return nil, false
	}
	return s.Current()
}
