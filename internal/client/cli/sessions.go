package cli

import (
	"context"
	"errors"
	"strings"
	"time"

	pb "github.com/dmitrijs2005/voxkeeper/internal/proto"
)

var errNoSession = errors.New("no session selected: use newsession or use <id>")

func (a *App) sessionID(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if a.currentSession == "" {
		return "", errNoSession
	}
	return a.currentSession, nil
}

// NewSession creates a chat session and makes it current.
func (a *App) NewSession(ctx context.Context, args []string) error {
	name := strings.Join(args, " ")
	id, err := a.backend.CreateSession(ctx, name)
	if err != nil {
		return err
	}
	a.currentSession = id
	a.println("Session", id, "created")
	return nil
}

// Sessions lists the verified user's sessions.
func (a *App) Sessions(ctx context.Context, args []string) error {
	list, err := a.backend.ListSessions(ctx)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		a.println("No sessions")
		return nil
	}
	for _, s := range list {
		marker := " "
		if s.SessionId == a.currentSession {
			marker = "*"
		}
		a.println(marker, s.SessionId, s.CreatedAt.AsTime().Local().Format(time.DateTime), s.MessageCount, "msg", s.Name)
	}
	return nil
}

// Use selects the current session after checking it exists.
func (a *App) Use(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errors.New("usage: use <session id>")
	}
	s, err := a.backend.GetSession(ctx, args[0])
	if err != nil {
		return err
	}
	a.currentSession = s.SessionId
	return nil
}

// Session prints the metadata and transcript of a session.
func (a *App) Session(ctx context.Context, args []string) error {
	id, err := a.sessionID(args)
	if err != nil {
		return err
	}
	s, err := a.backend.GetSession(ctx, id)
	if err != nil {
		return err
	}
	a.println("Session", s.SessionId, s.Name)
	a.println("Created", s.CreatedAt.AsTime().Local().Format(time.DateTime))
	a.printMessages(s.Messages...)
	return nil
}

// History prints the transcript of a session.
func (a *App) History(ctx context.Context, args []string) error {
	id, err := a.sessionID(args)
	if err != nil {
		return err
	}
	msgs, err := a.backend.ListMessages(ctx, id)
	if err != nil {
		return err
	}
	if len(msgs) == 0 {
		a.println("No messages")
		return nil
	}
	a.printMessages(msgs...)
	return nil
}

// Send posts a message to the current session and prints the bot reply.
func (a *App) Send(ctx context.Context, args []string) error {
	id, err := a.sessionID(nil)
	if err != nil {
		return err
	}

	text := strings.Join(args, " ")
	if text == "" {
		text, err = getSimpleText(a.reader, "Message", a.out)
		if err != nil {
			return err
		}
	}
	if strings.TrimSpace(text) == "" {
		return errors.New("message is empty")
	}

	reply, err := a.backend.SendMessage(ctx, id, text)
	if err != nil {
		return err
	}
	a.println("bot:", reply)
	return nil
}

// DeleteSession removes a session. Deleting the current one clears it.
func (a *App) DeleteSession(ctx context.Context, args []string) error {
	id, err := a.sessionID(args)
	if err != nil {
		return err
	}
	if err := a.backend.DeleteSession(ctx, id); err != nil {
		return err
	}
	if id == a.currentSession {
		a.currentSession = ""
	}
	a.println("Session", id, "deleted")
	return nil
}

func (a *App) printMessages(msgs ...*pb.Message) {
	for _, m := range msgs {
		a.println(m.Timestamp.AsTime().Local().Format(time.TimeOnly), m.Role+":", m.Message)
	}
}
