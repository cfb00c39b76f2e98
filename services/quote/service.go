package quote

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"earec/models"
	"earec/services/geo"
	"earec/services/pricing"
)

// QuoteService sequences a client through configuration, summary and signing.
// Every configuration mutation recomputes the breakdown before the session is
// saved; a stored total is never reused.
type QuoteService interface {
	InitiateSession(ctx context.Context, client models.ClientData) (*models.QuoteSession, error)
	GetSession(ctx context.Context, sessionID string) (*models.QuoteSession, error)
	UpdateConfiguration(ctx context.Context, sessionID string, update models.ConfigUpdate) (*models.QuoteSession, error)
	RefreshDistance(ctx context.Context, sessionID, address string) (*models.QuoteSession, error)
	MoveToSummary(ctx context.Context, sessionID string) (*models.QuoteSession, error)
	ReturnToConfiguration(ctx context.Context, sessionID string) (*models.QuoteSession, error)
	Sign(ctx context.Context, sessionID, signature string) (*models.QuoteSession, error)
	CancelSession(ctx context.Context, sessionID string) error
}

// DefaultQuoteService is the standard implementation.
type DefaultQuoteService struct {
	Store      SessionStore
	Catalog    *pricing.Catalog
	Overrides  *pricing.OverrideStore
	Geo        geo.Resolver
	PricePerKm float64
	Logger     *zap.Logger
}

// InitiateSession opens a session with the social category defaults and
// resolves travel distance from the client's address. Geocoding is fail-open:
// an unresolvable address simply zero-rates travel.
func (s *DefaultQuoteService) InitiateSession(ctx context.Context, client models.ClientData) (*models.QuoteSession, error) {
	cfg, err := NewConfiguration(s.Catalog, models.CategorySocial)
	if err != nil {
		return nil, err
	}
	cfg.DistanceKm = s.Geo.Resolve(ctx, client.Location)

	now := time.Now().UTC()
	id := uuid.New()
	session := &models.QuoteSession{
		SessionID: id.String(),
		Client:    client,
		Document: models.QuoteDocument{
			Reference:  fmt.Sprintf("EAREC-%d-%s", now.Year(), strings.ToUpper(id.String()[:4])),
			IssuedAt:   now,
			ValidUntil: now.Add(7 * 24 * time.Hour),
			PricePerKm: s.PricePerKm,
			Scalars:    s.Overrides.Snapshot(),
		},
		Config:    cfg,
		State:     models.StateConfiguring,
		CreatedAt: now,
	}
	if err := s.reprice(session); err != nil {
		return nil, err
	}
	if err := s.Store.Save(ctx, session); err != nil {
		return nil, err
	}
	s.Logger.Info("quote session initiated",
		zap.String("sessionID", session.SessionID),
		zap.Int("distanceKm", cfg.DistanceKm))
	return session, nil
}

func (s *DefaultQuoteService) GetSession(ctx context.Context, sessionID string) (*models.QuoteSession, error) {
	return s.Store.Get(ctx, sessionID)
}

// UpdateConfiguration applies a partial mutation through the reducer and
// reprices the session.
func (s *DefaultQuoteService) UpdateConfiguration(ctx context.Context, sessionID string, update models.ConfigUpdate) (*models.QuoteSession, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.State == models.StateSigned {
		return nil, fmt.Errorf("quote session %s is already signed", sessionID)
	}

	next, err := ApplyUpdate(s.Catalog, session.Config, update)
	if err != nil {
		return nil, err
	}
	session.Config = next
	if err := s.reprice(session); err != nil {
		return nil, err
	}
	if err := s.Store.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// RefreshDistance re-resolves travel distance for an edited address. Each
// lookup carries a stamp minted atomically by the store, so concurrent lookups
// never share one; if a newer stamp exists by the time this lookup completes,
// the stale result is discarded instead of overwriting the newer one.
func (s *DefaultQuoteService) RefreshDistance(ctx context.Context, sessionID, address string) (*models.QuoteSession, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.State == models.StateSigned {
		return nil, fmt.Errorf("quote session %s is already signed", sessionID)
	}

	seq, err := s.Store.NextDistanceSeq(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	session.DistanceSeq = seq
	session.Client.Location = address
	if err := s.Store.Save(ctx, session); err != nil {
		return nil, err
	}

	distance := s.Geo.Resolve(ctx, address)

	// Re-read: a later lookup may have won while we were resolving.
	session, err = s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	latest, err := s.Store.DistanceSeq(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if latest != seq {
		s.Logger.Debug("quote: discarding stale distance resolution",
			zap.String("sessionID", sessionID),
			zap.Int64("seq", seq),
			zap.Int64("latestSeq", latest))
		return session, nil
	}

	session.Config.DistanceKm = distance
	if err := s.reprice(session); err != nil {
		return nil, err
	}
	if err := s.Store.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// MoveToSummary advances a configuring session to the summary step and
// refreshes the document scalars, so an admin edit made mid-session shows up
// in the proposal the client reviews.
func (s *DefaultQuoteService) MoveToSummary(ctx context.Context, sessionID string) (*models.QuoteSession, error) {
	session, err := s.transition(ctx, sessionID, models.StateConfiguring, models.StateSummary)
	if err != nil {
		return nil, err
	}
	session.Document.Scalars = s.Overrides.Snapshot()
	if err := s.Store.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// ReturnToConfiguration steps back from the summary without losing anything.
func (s *DefaultQuoteService) ReturnToConfiguration(ctx context.Context, sessionID string) (*models.QuoteSession, error) {
	return s.transition(ctx, sessionID, models.StateSummary, models.StateConfiguring)
}

// Sign accepts the signature artifact and closes the session. The payload is
// opaque; it is only checked for non-emptiness.
func (s *DefaultQuoteService) Sign(ctx context.Context, sessionID, signature string) (*models.QuoteSession, error) {
	if strings.TrimSpace(signature) == "" {
		return nil, fmt.Errorf("signature must not be empty")
	}
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.State != models.StateSummary {
		return nil, fmt.Errorf("quote session %s cannot be signed from state %q", sessionID, session.State)
	}

	now := time.Now().UTC()
	session.State = models.StateSigned
	session.Signature = signature
	session.SignedAt = &now
	if err := s.Store.Save(ctx, session); err != nil {
		return nil, err
	}
	s.Logger.Info("quote signed",
		zap.String("sessionID", sessionID),
		zap.Float64("total", session.Breakdown.Total))
	return session, nil
}

func (s *DefaultQuoteService) CancelSession(ctx context.Context, sessionID string) error {
	return s.Store.Delete(ctx, sessionID)
}

func (s *DefaultQuoteService) transition(ctx context.Context, sessionID string, from, to models.SessionState) (*models.QuoteSession, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.State != from {
		return nil, fmt.Errorf("quote session %s cannot move to %q from state %q", sessionID, to, session.State)
	}
	session.State = to
	if err := s.Store.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *DefaultQuoteService) reprice(session *models.QuoteSession) error {
	breakdown, err := pricing.ComputeBreakdown(session.Config, s.Catalog, s.PricePerKm)
	if err != nil {
		return fmt.Errorf("failed to compute breakdown: %w", err)
	}
	session.Breakdown = breakdown
	return nil
}
