package models

// Credential is a plaintext login on its way into the store.
//
// Password is owned by the store once handed over: it is wiped as soon as
// it has been encrypted.
type Credential struct {
	Path     string
	Username string
	Password []byte
	Extra    *ExtraFields
}

// ImportRow is one parsed row of a password-manager export. Rows missing
// any of the three fields are skipped on import.
type ImportRow struct {
	Site     string
	Username string
	Password string
}

// Path returns the entry path an imported row is stored under:
// "<site>/<username>".
func (r ImportRow) Path() string {
	return r.Site + PathSeparator + r.Username
}

// Complete reports whether the row carries every required field.
func (r ImportRow) Complete() bool {
	return r.Site != "" && r.Username != "" && r.Password != ""
}
