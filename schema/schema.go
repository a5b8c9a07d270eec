package schema

import "encoding/json"

// Schema is message schema interface
type Schema interface {
	// Attachement returns schema attachement
	Attachement() *Attachement
}

type SchemaPointer interface {
	Schema
	SetAttachement(*Attachement)
}

// Stringify renders a schema for the wire. Plain strings pass through
// untouched, everything else is marshaled as JSON.
func Stringify(s Schema) string {
	if v, ok := s.(String); ok {
		return string(v)
	}
	if v, ok := s.(*String); ok {
		return string(*v)
	}
	bs, _ := json.Marshal(s)
	return string(bs)
}

func ToBytes(s Schema) []byte {
	if v, ok := s.(String); ok {
		return []byte(v)
	}
	bs, _ := json.Marshal(s)
	return bs
}
