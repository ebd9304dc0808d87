// Package user exposes the user directory as consumed by checklist
// operations: lightweight summaries for assignee and completer references.
package user

import "fmt"

type User struct {
	id          uint
	sid         string
	email       string
	displayName string
	firstName   string
	lastName    string
	avatarURL   string
}

// ReconstructUser rehydrates a user summary from persistence.
func ReconstructUser(
	userID uint,
	sid string,
	email string,
	displayName string,
	firstName string,
	lastName string,
	avatarURL string,
) (*User, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if sid == "" {
		return nil, fmt.Errorf("user SID is required")
	}

	return &User{
		id:          userID,
		sid:         sid,
		email:       email,
		displayName: displayName,
		firstName:   firstName,
		lastName:    lastName,
		avatarURL:   avatarURL,
	}, nil
}

func (u *User) ID() uint {
	return u.id
}

func (u *User) SID() string {
	return u.sid
}

func (u *User) Email() string {
	return u.email
}

func (u *User) DisplayName() string {
	return u.displayName
}

func (u *User) FirstName() string {
	return u.firstName
}

func (u *User) LastName() string {
	return u.lastName
}

func (u *User) AvatarURL() string {
	return u.avatarURL
}
