package mediator

import (
	"context"
	"fmt"
	"reflect"
)

// mediator is the concrete implementation
type mediator struct {
	handlers    map[reflect.Type]RequestHandler
	middlewares []Middleware
}

// NewMediator creates a new mediator instance
func NewMediator() Mediator {
	return &mediator{
		handlers: make(map[reflect.Type]RequestHandler),
	}
}

// Register registers a handler for a specific request type
func (m *mediator) Register(requestType reflect.Type, handler RequestHandler) error {
	if requestType == nil {
		return fmt.Errorf("request type cannot be nil")
	}

	if handler == nil {
		return fmt.Errorf("handler cannot be nil")
	}

	if _, exists := m.handlers[requestType]; exists {
		return fmt.Errorf("handler already registered for type %s", requestType)
	}

	m.handlers[requestType] = handler
	return nil
}

// Use appends a middleware. Middlewares run in registration order, the first
// registered being the outermost.
func (m *mediator) Use(middleware Middleware) {
	m.middlewares = append(m.middlewares, middleware)
}

// Send dispatches a request to its registered handler
func (m *mediator) Send(ctx context.Context, request Request) (Response, error) {
	if request == nil {
		return nil, fmt.Errorf("request cannot be nil")
	}

	requestType := reflect.TypeOf(request)
	handler, ok := m.handlers[requestType]

	if !ok {
		return nil, fmt.Errorf("no handler registered for type %s", requestType)
	}

	next := HandlerFunc(handler.Handle)
	for i := len(m.middlewares) - 1; i >= 0; i-- {
		next = wrap(m.middlewares[i], next)
	}
	return next(ctx, request)
}

func wrap(mw Middleware, next HandlerFunc) HandlerFunc {
	return func(ctx context.Context, request Request) (Response, error) {
		return mw(ctx, request, next)
	}
}

// RegisterHandler registers handlers with type inference
func RegisterHandler[T Request](m Mediator, handler RequestHandler) error {
	var zero T
	requestType := reflect.TypeOf(zero)
	return m.Register(requestType, handler)
}
