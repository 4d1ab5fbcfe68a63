package mediator

import (
	"context"
	"fmt"
	"time"

	"github.com/andrescamacho/kinestep/internal/application/logging"
)

// LoggingMiddleware logs every dispatched request with its duration and outcome
// using the logger carried in the context.
func LoggingMiddleware(ctx context.Context, request Request, next HandlerFunc) (Response, error) {
	logger := logging.LoggerFromContext(ctx)
	requestType := fmt.Sprintf("%T", request)
	start := time.Now()

	response, err := next(ctx, request)

	metadata := map[string]interface{}{
		"request":     requestType,
		"duration_us": time.Since(start).Microseconds(),
	}
	if err != nil {
		metadata["error"] = err.Error()
		logger.Log("WARN", "request failed", metadata)
		return nil, err
	}

	logger.Log("DEBUG", "request handled", metadata)
	return response, nil
}
