package cli

import (
	"context"
	"fmt"
)

type factors struct {
	password bool
	voice    bool
}

// Verify checks both password and voice.
func (a *App) Verify(ctx context.Context, args []string) error {
	return a.verify(ctx, args, factors{password: true, voice: true})
}

// VerifyPassword checks the password only.
func (a *App) VerifyPassword(ctx context.Context, args []string) error {
	return a.verify(ctx, args, factors{password: true})
}

// VerifyVoice checks the voice sample only.
func (a *App) VerifyVoice(ctx context.Context, args []string) error {
	return a.verify(ctx, args, factors{voice: true})
}

func (a *App) verify(ctx context.Context, args []string, f factors) error {
	u, err := a.username(args)
	if err != nil {
		return err
	}

	var pw *string
	if f.password {
		p, err := a.password()
		if err != nil {
			return err
		}
		pw = &p
	}

	var audio []byte
	if f.voice {
		audio, err = getAudio(a.reader, "Path to a WAV recording of your voice", a.out)
		if err != nil {
			return err
		}
	}

	prev, _ := a.backend.Identity()

	resp, err := a.backend.Verify(ctx, u, pw, audio)
	if err != nil {
		return err
	}

	verb := "Rejected"
	if resp.AccessToken != "" {
		verb = "Verified"
		if prev != resp.Username {
			a.currentSession = ""
		}
	}

	line := fmt.Sprintf("%s %s (%s)", verb, resp.Username, resp.Method)
	if resp.Score != nil {
		line += fmt.Sprintf(" score=%.4f threshold=%.4f", resp.GetScore(), resp.Threshold)
	}
	if resp.Liveness != "" {
		line += " liveness=" + resp.Liveness
	}
	a.println(line)
	return nil
}

// Logout forgets the verified identity.
func (a *App) Logout(ctx context.Context, args []string) error {
	a.backend.Forget()
	a.currentSession = ""
	a.println("Logged out")
	return nil
}
