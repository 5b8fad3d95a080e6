// Package cli provides the interactive VoxKeeper command-line client.
//
// The REPL enrolls and verifies users against the server (password, voice,
// or both), runs standalone spoof checks, and, once a verification has been
// accepted, manages that user's chat sessions. Audio is supplied as a path
// to a WAV file which is read and sent as raw bytes.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
