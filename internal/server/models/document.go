package models

// SchemaVersion is the layout version written into every persisted document.
const SchemaVersion = 1

// Document is the whole persisted store: every user keyed by username.
type Document struct {
	SchemaVersion int              `json:"schema_version"`
	Users         map[string]*User `json:"users"`
}

// NewDocument returns an empty document at the current schema version.
func NewDocument() *Document {
	return &Document{SchemaVersion: SchemaVersion, Users: map[string]*User{}}
}

// Clone returns a deep copy of d.
func (d *Document) Clone() *Document {
	c := &Document{SchemaVersion: d.SchemaVersion, Users: make(map[string]*User, len(d.Users))}
	for name, u := range d.Users {
		c.Users[name] = u.Clone()
	}
	return c
}
