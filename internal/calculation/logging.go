package calculation

import (
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"github.com/rpgo/numutil/internal/domain"
)

// loggingService decorates a Service with structured logging
type loggingService struct {
	logger log.Logger
	next   Service
}

// NewLoggingService returns a Service that logs every evaluation to logger.
// Failures are logged at error level, everything else at debug.
func NewLoggingService(logger log.Logger, s Service) Service {
	if logger == nil {
		logger = log.NewNopLogger()
	}
	return &loggingService{
		next:   s,
		logger: logger,
	}
}

func (s *loggingService) Evaluate(req domain.Request) (res domain.Result, err error) {
	defer func(begin time.Time) {
		l := level.Debug(s.logger)
		if err != nil {
			l = level.Error(s.logger)
		}
		l.Log(
			"method", "evaluate",
			"name", req.Label(),
			"op", req.Operation,
			"args", domain.FormatArgs(req.Args),
			"value", res.Value,
			"took", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Evaluate(req)
}
