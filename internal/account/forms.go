// Package account validates the sign-up, sign-in and profile forms and
// keeps a local session marker. There is no account backend: a valid
// sign-in form is all it takes to be "signed in".
package account

import (
	"sort"
	"strings"
)

// Field names used as FieldErrors keys.
const (
	FieldID              = "id"
	FieldNickname        = "nickname"
	FieldPassword        = "password"
	FieldConfirmPassword = "confirm_password"
)

// FieldErrors maps a form field to the message shown under it.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	keys := make([]string, 0, len(e))
	for k := range e {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e[k])
	}
	return strings.Join(parts, "; ")
}

func (e FieldErrors) orNil() error {
	if len(e) == 0 {
		return nil
	}
	return e
}

type SignUpForm struct {
	ID              string
	Nickname        string
	Password        string
	ConfirmPassword string
}

func (f SignUpForm) Validate() error {
	errs := FieldErrors{}
	if strings.TrimSpace(f.ID) == "" {
		errs[FieldID] = "enter an id"
	}
	if strings.TrimSpace(f.Nickname) == "" {
		errs[FieldNickname] = "enter a nickname"
	}
	if f.Password == "" {
		errs[FieldPassword] = "enter a password"
	}
	if f.Password != f.ConfirmPassword {
		errs[FieldConfirmPassword] = "passwords do not match"
	}
	return errs.orNil()
}

type SignInForm struct {
	ID       string
	Password string
}

func (f SignInForm) Validate() error {
	errs := FieldErrors{}
	if strings.TrimSpace(f.ID) == "" {
		errs[FieldID] = "enter an id"
	}
	if f.Password == "" {
		errs[FieldPassword] = "enter a password"
	}
	return errs.orNil()
}

// ProfileForm is the profile page's edit form. Leaving both password
// fields empty keeps the current password.
type ProfileForm struct {
	Nickname        string
	Password        string
	ConfirmPassword string
}

func (f ProfileForm) Validate() error {
	errs := FieldErrors{}
	if strings.TrimSpace(f.Nickname) == "" {
		errs[FieldNickname] = "nickname cannot be empty"
	}
	if f.Password != f.ConfirmPassword {
		errs[FieldConfirmPassword] = "passwords do not match"
	}
	return errs.orNil()
}
