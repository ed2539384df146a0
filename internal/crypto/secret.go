package crypto

import "github.com/awnumar/memguard"

// Secret is a sensitive value kept in a memguard locked buffer: the pages are
// excluded from swap and surrounded by guard pages, and Destroy overwrites
// them before release.
//
// Secret deliberately has no String method so it never ends up in a log
// line by accident. Use [Secret.Reveal] when a plain string is required.
type Secret struct {
	buf *memguard.LockedBuffer
}

// NewSecret moves b into locked memory. b is wiped in the process and must
// not be used afterwards.
func NewSecret(b []byte) *Secret {
	return &Secret{buf: memguard.NewBufferFromBytes(b)}
}

// NewSecretString copies s into locked memory. The string itself is
// immutable and cannot be wiped; callers should drop it as soon as possible.
func NewSecretString(s string) *Secret {
	return NewSecret([]byte(s))
}

// Bytes returns the secret's backing memory. The slice becomes invalid after
// Destroy and must not be retained.
func (s *Secret) Bytes() []byte {
	if s == nil || s.buf == nil {
		return nil
	}
	return s.buf.Bytes()
}

// Reveal returns a copy of the secret as a string.
func (s *Secret) Reveal() string {
	return string(s.Bytes())
}

// Len returns the size of the secret in bytes.
func (s *Secret) Len() int {
	if s == nil || s.buf == nil {
		return 0
	}
	return s.buf.Size()
}

// Destroy wipes and releases the secret. It is safe to call more than once
// and on a nil Secret.
func (s *Secret) Destroy() {
	if s == nil || s.buf == nil {
		return
	}
	s.buf.Destroy()
}

// Wipe overwrites b with zeroes.
func Wipe(b []byte) {
	memguard.WipeBytes(b)
}
