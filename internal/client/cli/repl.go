package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the command surface the REPL dispatches to.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isVerified() bool
	Enroll(ctx context.Context, args []string) error
	Reenroll(ctx context.Context, args []string) error
	Verify(ctx context.Context, args []string) error
	VerifyPassword(ctx context.Context, args []string) error
	VerifyVoice(ctx context.Context, args []string) error
	SpoofCheck(ctx context.Context, args []string) error
	Users(ctx context.Context, args []string) error
	Logout(ctx context.Context, args []string) error
	NewSession(ctx context.Context, args []string) error
	Sessions(ctx context.Context, args []string) error
	Use(ctx context.Context, args []string) error
	Session(ctx context.Context, args []string) error
	History(ctx context.Context, args []string) error
	Send(ctx context.Context, args []string) error
	DeleteSession(ctx context.Context, args []string) error
}

type command func(ctx context.Context, args []string) error

// sessionCommands only make sense after an accepted verification.
var sessionCommands = map[string]bool{
	"newsession": true, "sessions": true, "use": true, "session": true,
	"history": true, "send": true, "deletesession": true, "logout": true,
}

func commands(a execIface) map[string]command {
	return map[string]command{
		"enroll":          a.Enroll,
		"reenroll":        a.Reenroll,
		"verify":          a.Verify,
		"verify-password": a.VerifyPassword,
		"verify-voice":    a.VerifyVoice,
		"spoofcheck":      a.SpoofCheck,
		"users":           a.Users,
		"logout":          a.Logout,
		"newsession":      a.NewSession,
		"sessions":        a.Sessions,
		"use":             a.Use,
		"session":         a.Session,
		"history":         a.History,
		"send":            a.Send,
		"deletesession":   a.DeleteSession,
	}
}

// runREPL reads commands from reader until EOF, "exit" or "quit".
//
// The first token is the command and the rest are its arguments. Prompts
// issued by a command read from the same reader, so piped scripts work.
//
//	Always:
//	  - help                          show available commands
//	  - enroll [user]                 register password + voice
//	  - reenroll [user]               replace the voice signature
//	  - verify [user]                 password and voice
//	  - verify-password [user]        password only
//	  - verify-voice [user]           voice only
//	  - spoofcheck                    liveness check of a recording
//	  - users                         list enrolled users
//	  - exit | quit                   leave the program
//
//	After verification:
//	  - newsession [name]             create and select a session
//	  - sessions                      list sessions
//	  - use <id>                      select a session
//	  - session [id]                  show a session
//	  - history [id]                  show messages
//	  - send [text]                   message the bot in the current session
//	  - deletesession [id]            delete a session
//	  - logout                        forget the verified identity
//
// Command errors are printed and the loop continues.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	table := commands(a)

	for {
		printlnFn(fmt.Sprintf("vk %s> ", statusFn()))

		line, err := reader.ReadString('\n')
		if err != nil && !(errors.Is(err, io.EOF) && line != "") {
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			if a.isVerified() {
				printlnFn("Available commands: enroll, reenroll, verify, verify-password, verify-voice, spoofcheck, users, newsession, sessions, use, session, history, send, deletesession, logout, exit")
			} else {
				printlnFn("Available commands: enroll, reenroll, verify, verify-password, verify-voice, spoofcheck, users, exit")
			}
			continue

		case "exit", "quit":
			printlnFn("Bye!")
			return
		}

		fn, ok := table[cmd]
		if !ok {
			printlnFn("Unknown command:", cmd)
			continue
		}
		if sessionCommands[cmd] && !a.isVerified() {
			printlnFn("Verify first (verify, verify-password or verify-voice)")
			continue
		}
		if err := fn(ctx, args); err != nil {
			printlnFn("Error:", err)
		}
	}
}
