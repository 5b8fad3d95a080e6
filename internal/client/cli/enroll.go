package cli

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/voxkeeper/internal/common"
)

// getSimpleText, getPassword and getAudio are indirections used to
// facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword
var getAudio = GetAudio

var errUsernameRequired = errors.New("username is required")

func (a *App) username(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	u, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return "", err
	}
	if u == "" {
		return "", errUsernameRequired
	}
	return u, nil
}

func (a *App) password() (string, error) {
	pw, err := getPassword(a.out)
	if err != nil {
		return "", err
	}
	defer common.WipeByteArray(pw)
	return string(pw), nil
}

type credentials struct {
	username string
	password string
	audio    []byte
}

func (a *App) collectEnrollment(args []string) (*credentials, error) {
	u, err := a.username(args)
	if err != nil {
		return nil, err
	}
	pw, err := a.password()
	if err != nil {
		return nil, err
	}
	audio, err := getAudio(a.reader, "Path to a WAV recording of your voice", a.out)
	if err != nil {
		return nil, err
	}
	return &credentials{username: u, password: pw, audio: audio}, nil
}

// Enroll registers a new user with a password and a voice sample.
func (a *App) Enroll(ctx context.Context, args []string) error {
	c, err := a.collectEnrollment(args)
	if err != nil {
		return err
	}
	if err := a.backend.Enroll(ctx, c.username, c.password, c.audio); err != nil {
		return err
	}
	a.println("Enrolled", c.username)
	return nil
}

// Reenroll replaces the voice signature of an existing user.
func (a *App) Reenroll(ctx context.Context, args []string) error {
	c, err := a.collectEnrollment(args)
	if err != nil {
		return err
	}
	if err := a.backend.Reenroll(ctx, c.username, c.password, c.audio); err != nil {
		return err
	}
	a.println("Voice signature updated for", c.username)
	return nil
}

// SpoofCheck classifies a recording as bona fide or spoofed.
func (a *App) SpoofCheck(ctx context.Context, args []string) error {
	audio, err := getAudio(a.reader, "Path to a WAV recording", a.out)
	if err != nil {
		return err
	}
	resp, err := a.backend.SpoofCheck(ctx, audio)
	if err != nil {
		return err
	}
	a.println(resp.Result+":", resp.Description)
	return nil
}

// Users prints the enrolled usernames.
func (a *App) Users(ctx context.Context, args []string) error {
	users, err := a.backend.ListUsers(ctx)
	if err != nil {
		return err
	}
	if len(users) == 0 {
		a.println("No users enrolled")
		return nil
	}
	a.println(len(users), "user(s):")
	for _, u := range users {
		a.println(" ", u)
	}
	return nil
}
