package schema

// String is a plain text schema
type String string

// NewString returns a new String schema pointer
func NewString(s string) *String {
	v := String(s)
	return &v
}

func (s String) Attachement() *Attachement {
	return nil
}

func (s String) SetAttachement(v *Attachement) {
}

func (s String) String() string {
	return string(s)
}

func (s *String) Unmarshal(bs []byte) error {
	*s = String(bs)
	return nil
}
