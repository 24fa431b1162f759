package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/noah-isme/hours-api/pkg/events"
	appErrors "github.com/noah-isme/hours-api/pkg/errors"
	"github.com/noah-isme/hours-api/pkg/telemetry"
)

const (
	pqSerializationFailure = "40001"
	pqDeadlockDetected     = "40P01"
	pqUniqueViolation      = "23505"
)

type txProvider interface {
	BeginTxx(ctx context.Context, opts *sql.TxOptions) (*sqlx.Tx, error)
}

type txMetrics interface {
	ObserveTransaction(operation, outcome string, duration time.Duration)
	ObserveEvents(n int)
}

// Scope is the unit of work handed to a workflow. All reads and appends go
// through Exec so they share one transaction.
type Scope struct {
	tx     *sqlx.Tx
	now    time.Time
	actor  int64
	events []events.Event
}

// Exec returns the scope's transaction.
func (s *Scope) Exec() sqlx.ExtContext {
	return s.tx
}

// Now is the scope's clock reading in unix milliseconds. It is fixed for
// the lifetime of the scope.
func (s *Scope) Now() int64 {
	return s.now.UnixMilli()
}

// Emit queues an event for dispatch once the scope commits.
func (s *Scope) Emit(name string, payload interface{}) {
	s.events = append(s.events, events.New(name, s.actor, s.now, payload))
}

// Coordinator runs workflows inside a single database transaction.
type Coordinator struct {
	tx         txProvider
	isolation  sql.IsolationLevel
	dispatcher events.Dispatcher
	metrics    txMetrics
	tracer     trace.Tracer
	logger     *zap.Logger
	now        func() time.Time
}

// CoordinatorOption customises a Coordinator.
type CoordinatorOption func(*Coordinator)

// WithIsolation sets the isolation level of mutating scopes.
func WithIsolation(level sql.IsolationLevel) CoordinatorOption {
	return func(c *Coordinator) {
		if level != sql.LevelDefault {
			c.isolation = level
		}
	}
}

// WithDispatcher sets the receiver of committed events.
func WithDispatcher(d events.Dispatcher) CoordinatorOption {
	return func(c *Coordinator) {
		if d != nil {
			c.dispatcher = d
		}
	}
}

// WithMetrics records scope outcomes.
func WithMetrics(m txMetrics) CoordinatorOption {
	return func(c *Coordinator) { c.metrics = m }
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) CoordinatorOption {
	return func(c *Coordinator) {
		if now != nil {
			c.now = now
		}
	}
}

// NewCoordinator constructs a Coordinator. Mutating scopes default to
// serializable isolation.
func NewCoordinator(tx txProvider, logger *zap.Logger, opts ...CoordinatorOption) *Coordinator {
	if logger == nil {
		logger = zap.NewNop()
	}
	c := &Coordinator{
		tx:         tx,
		isolation:  sql.LevelSerializable,
		dispatcher: events.Nop{},
		tracer:     otel.Tracer(telemetry.TracerName),
		logger:     logger,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Mutate runs fn in a read-write transaction. The transaction commits only
// when fn succeeds; events emitted by fn are dispatched after the commit.
func (c *Coordinator) Mutate(ctx context.Context, operation string, actor int64, fn func(context.Context, *Scope) error) error {
	return c.run(ctx, operation, actor, &sql.TxOptions{Isolation: c.isolation}, fn)
}

// View runs fn in a read-only snapshot.
func (c *Coordinator) View(ctx context.Context, operation string, actor int64, fn func(context.Context, *Scope) error) error {
	return c.run(ctx, operation, actor, &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true}, fn)
}

func (c *Coordinator) run(ctx context.Context, operation string, actor int64, opts *sql.TxOptions, fn func(context.Context, *Scope) error) (err error) {
	if c.tx == nil {
		return appErrors.Clone(appErrors.ErrInternal, "transaction provider missing")
	}
	started := c.now()
	ctx, span := c.tracer.Start(ctx, "tx."+operation, trace.WithAttributes(
		attribute.String("hours.operation", operation),
		attribute.String("db.isolation", opts.Isolation.String()),
		attribute.Bool("db.read_only", opts.ReadOnly),
		attribute.Int64("hours.actor", actor),
	))
	outcome := OutcomeCommit
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, appErrors.FromError(err).Code)
		}
		span.SetAttributes(attribute.String("hours.outcome", outcome))
		span.End()
		if c.metrics != nil {
			c.metrics.ObserveTransaction(operation, outcome, c.now().Sub(started))
		}
	}()

	tx, err := c.tx.BeginTxx(ctx, opts)
	if err != nil {
		outcome = OutcomeFailed
		return c.translate(operation, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to begin transaction"))
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	scope := &Scope{tx: tx, now: started, actor: actor}
	if err = fn(ctx, scope); err != nil {
		err = c.translate(operation, err)
		outcome = outcomeFor(err)
		return err
	}
	if err = tx.Commit(); err != nil {
		err = c.translate(operation, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to commit transaction"))
		outcome = outcomeFor(err)
		return err
	}

	if len(scope.events) > 0 {
		c.dispatcher.Dispatch(scope.events...)
		if c.metrics != nil {
			c.metrics.ObserveEvents(len(scope.events))
		}
	}
	return nil
}

// translate maps driver failures onto the taxonomy and logs storage errors.
// Domain errors pass through unchanged.
func (c *Coordinator) translate(operation string, err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case pqSerializationFailure, pqDeadlockDetected:
			c.logger.Info("transaction conflict", zap.String("operation", operation), zap.String("pq_code", string(pqErr.Code)))
			return appErrors.Wrap(err, appErrors.ErrTransactionConflict.Code, appErrors.ErrTransactionConflict.Status, appErrors.ErrTransactionConflict.Message)
		}
	}
	appErr := appErrors.FromError(err)
	if appErrors.KindOf(appErr) == appErrors.KindStorage {
		c.logger.Error("storage failure", zap.String("operation", operation), zap.Error(err))
	}
	return appErr
}

func outcomeFor(err error) string {
	if appErrors.FromError(err).Code == appErrors.ErrTransactionConflict.Code {
		return OutcomeConflict
	}
	return OutcomeRollback
}

// isUniqueViolation reports whether err carries a unique constraint failure.
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation
}

// storage wraps a repository failure as an opaque internal error.
func storage(err error, message string) error {
	return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, message)
}
