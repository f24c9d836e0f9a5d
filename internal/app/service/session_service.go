package service

import (
	"context"
	"log/slog"

	"github.com/mrops-br/shopwave-api/internal/app/dto"
	"github.com/mrops-br/shopwave-api/internal/app/session"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// SessionService exposes and resets the shopper's session
type SessionService struct {
	session *session.Session
	tracer  trace.Tracer
	logger  *slog.Logger
	resets  metric.Int64Counter
}

func NewSessionService(sess *session.Session, tracer trace.Tracer, meter metric.Meter, logger *slog.Logger) *SessionService {
	resets, _ := meter.Int64Counter(
		"storefront.session.resets",
		metric.WithDescription("Number of session resets"),
	)

	return &SessionService{
		session: sess,
		tracer:  tracer,
		logger:  logger,
		resets:  resets,
	}
}

func (s *SessionService) GetSession(ctx context.Context) *dto.SessionResponse {
	_, span := s.tracer.Start(ctx, "SessionService.GetSession")
	defer span.End()

	return dto.ToSessionResponse(s.session.Snapshot())
}

// ResetSession empties the cart and wishlist under a new session id
func (s *SessionService) ResetSession(ctx context.Context) *dto.SessionResponse {
	ctx, span := s.tracer.Start(ctx, "SessionService.ResetSession")
	defer span.End()

	previous := s.session.Snapshot().ID
	state := s.session.Reset()
	s.resets.Add(ctx, 1)

	span.SetAttributes(attribute.String("session.id", state.ID.String()))
	s.logger.InfoContext(ctx, "Session reset",
		slog.String("previous_session_id", previous.String()),
		slog.String("session_id", state.ID.String()),
	)

	return dto.ToSessionResponse(state)
}
