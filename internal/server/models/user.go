package models

import "slices"

// User is one enrolled identity. Username is the primary key and never
// changes after creation.
//
// CredentialSecret holds a salted one-way hash (PHC string), never the
// plain secret. VoiceSignature has the same dimensionality for every record
// in a deployment.
type User struct {
	Username         string              `json:"username"`
	CredentialSecret string              `json:"credential_secret"`
	VoiceSignature   []float64           `json:"voice_signature"`
	Sessions         map[string]*Session `json:"sessions"`
}

// Clone returns a deep copy of u.
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	c := &User{
		Username:         u.Username,
		CredentialSecret: u.CredentialSecret,
		VoiceSignature:   slices.Clone(u.VoiceSignature),
		Sessions:         make(map[string]*Session, len(u.Sessions)),
	}
	for id, s := range u.Sessions {
		c.Sessions[id] = s.Clone()
	}
	return c
}
