// Package sessions implements per-user chat transcripts: session lifecycle,
// append-only messages, and the send flow through the chat relay.
package sessions

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/dmitrijs2005/voxkeeper/internal/common"
	"github.com/dmitrijs2005/voxkeeper/internal/logging"
	"github.com/dmitrijs2005/voxkeeper/internal/server/models"
	"github.com/dmitrijs2005/voxkeeper/internal/server/store"
)

// idBytes gives 128-bit session identifiers.
const idBytes = 16

// Relay forwards a human message to the chat bot and returns its reply.
type Relay interface {
	Send(ctx context.Context, username, sessionID, message string) (string, error)
}

// Summary describes a session without its messages.
type Summary struct {
	ID           string
	Name         string
	CreatedAt    time.Time
	MessageCount int
}

type Service struct {
	store  *store.Store
	relay  Relay
	logger logging.Logger
	now    func() time.Time
}

func NewService(st *store.Store, relay Relay, logger logging.Logger) *Service {
	return &Service{
		store:  st,
		relay:  relay,
		logger: logger.With("module", "sessions"),
		now:    time.Now,
	}
}

// CreateSession adds an empty session for username and returns its id.
func (s *Service) CreateSession(ctx context.Context, username, name string) (string, error) {
	var id string
	err := s.store.Update(ctx, func(doc *models.Document) error {
		u, err := lookupUser(doc, username)
		if err != nil {
			return err
		}
		if u.Sessions == nil {
			u.Sessions = map[string]*models.Session{}
		}
		for id == "" || u.Sessions[id] != nil {
			if id, err = common.MakeRandHexString(idBytes); err != nil {
				return fmt.Errorf("generate session id: %w", err)
			}
		}
		u.Sessions[id] = &models.Session{
			Name:      name,
			CreatedAt: s.now().UTC(),
			Messages:  []models.ChatMessage{},
		}
		return nil
	})
	if err != nil {
		return "", err
	}

	s.logger.Info(ctx, "Session created", "username", username, "session_id", id)
	return id, nil
}

// AppendMessage appends a message stamped by the server. Timestamps never
// go backwards within a session, even if the wall clock does.
func (s *Service) AppendMessage(ctx context.Context, username, sessionID string, role models.Role, text string) (models.ChatMessage, error) {
	if !role.Valid() {
		return models.ChatMessage{}, fmt.Errorf("unknown role %q: %w", role, common.ErrorValidation)
	}

	var msg models.ChatMessage
	err := s.store.Update(ctx, func(doc *models.Document) error {
		sess, err := lookupSession(doc, username, sessionID)
		if err != nil {
			return err
		}
		ts := s.now().UTC()
		if n := len(sess.Messages); n > 0 && ts.Before(sess.Messages[n-1].Timestamp) {
			ts = sess.Messages[n-1].Timestamp
		}
		msg = models.ChatMessage{Timestamp: ts, Role: role, Message: text}
		sess.Messages = append(sess.Messages, msg)
		return nil
	})
	if err != nil {
		return models.ChatMessage{}, err
	}
	return msg, nil
}

// ListMessages returns the whole transcript in append order.
func (s *Service) ListMessages(ctx context.Context, username, sessionID string) ([]models.ChatMessage, error) {
	sess, err := s.GetSession(ctx, username, sessionID)
	if err != nil {
		return nil, err
	}
	return sess.Messages, nil
}

// ListSessions returns every session of username ordered by creation time.
func (s *Service) ListSessions(ctx context.Context, username string) ([]Summary, error) {
	var out []Summary
	err := s.store.View(func(doc *models.Document) error {
		u, err := lookupUser(doc, username)
		if err != nil {
			return err
		}
		out = make([]Summary, 0, len(u.Sessions))
		for id, sess := range u.Sessions {
			out = append(out, Summary{ID: id, Name: sess.Name, CreatedAt: sess.CreatedAt, MessageCount: len(sess.Messages)})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slices.SortFunc(out, func(a, b Summary) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return out, nil
}

// GetSession returns a copy of one session with its messages.
func (s *Service) GetSession(ctx context.Context, username, sessionID string) (*models.Session, error) {
	var out *models.Session
	err := s.store.View(func(doc *models.Document) error {
		sess, err := lookupSession(doc, username, sessionID)
		if err != nil {
			return err
		}
		out = sess.Clone()
		return nil
	})
	return out, err
}

// DeleteSession removes a session and all of its messages.
func (s *Service) DeleteSession(ctx context.Context, username, sessionID string) error {
	err := s.store.Update(ctx, func(doc *models.Document) error {
		if _, err := lookupSession(doc, username, sessionID); err != nil {
			return err
		}
		delete(doc.Users[username].Sessions, sessionID)
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info(ctx, "Session deleted", "username", username, "session_id", sessionID)
	return nil
}

// Send records the human message, asks the relay for a reply and records
// that as well. When the relay fails the human message stays recorded and
// the error wraps common.ErrRelayUnavailable.
func (s *Service) Send(ctx context.Context, username, sessionID, text string) (string, error) {
	if _, err := s.AppendMessage(ctx, username, sessionID, models.RoleHuman, text); err != nil {
		return "", err
	}

	if s.relay == nil {
		return "", fmt.Errorf("no relay configured: %w", common.ErrRelayUnavailable)
	}

	reply, err := s.relay.Send(ctx, username, sessionID, text)
	if err != nil {
		s.logger.Error(ctx, "Chat relay failed", "username", username, "session_id", sessionID, "error", err)
		if !errors.Is(err, common.ErrRelayUnavailable) {
			err = fmt.Errorf("%w: %v", common.ErrRelayUnavailable, err)
		}
		return "", err
	}

	if _, err := s.AppendMessage(ctx, username, sessionID, models.RoleBot, reply); err != nil {
		return "", err
	}
	return reply, nil
}

func lookupUser(doc *models.Document, username string) (*models.User, error) {
	u, ok := doc.Users[username]
	if !ok {
		return nil, fmt.Errorf("%s: %w", username, common.ErrorNotFound)
	}
	return u, nil
}

func lookupSession(doc *models.Document, username, sessionID string) (*models.Session, error) {
	u, err := lookupUser(doc, username)
	if err != nil {
		return nil, err
	}
	sess, ok := u.Sessions[sessionID]
	if !ok {
		return nil, fmt.Errorf("%s: %w", sessionID, common.ErrSessionNotFound)
	}
	return sess, nil
}
