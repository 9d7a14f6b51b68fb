// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package settings

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// UserRecord is one entry of the editor's admin access list.
type UserRecord struct {
	// Username identifies the account. Uniqueness is not enforced.
	Username string `json:"username" yaml:"username" toml:"username"`

	// PasswordHash is the bcrypt hash of the account password.
	PasswordHash string `json:"password" yaml:"password" toml:"password"`

	// Permissions is the permission scope, "*" for full access and "read"
	// for read-only.
	Permissions string `json:"permissions" yaml:"permissions" toml:"permissions"`
}

// DefaultHashCost matches the cost of the bundled demo account hash.
const DefaultHashCost = 8

const (
	demoUsername     = "demo"
	demoPasswordHash = "$2a$08$dxKDMZrgCSSJuiKW2gxZoeas6AjmWi5oV1GM4pXis9z8p54p4/Xiq"
)

// DefaultUsers returns the access list used when no project configuration
// supplies one: a single demo account with full permissions.
func DefaultUsers() []UserRecord {
	return []UserRecord{
		{
			Username:     demoUsername,
			PasswordHash: demoPasswordHash,
			Permissions:  "*",
		},
	}
}

// NewUserRecord hashes password with bcrypt at the given cost.
func NewUserRecord(username, password, permissions string, cost int) (UserRecord, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return UserRecord{}, fmt.Errorf("error hashing password for %q: %w", username, err)
	}

	return UserRecord{
		Username:     username,
		PasswordHash: string(hash),
		Permissions:  permissions,
	}, nil
}

// CheckPassword reports whether password matches the stored hash.
func (u UserRecord) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

func (u UserRecord) toValue() map[string]any {
	return map[string]any{
		"username":    u.Username,
		"password":    u.PasswordHash,
		"permissions": u.Permissions,
	}
}

// usersValue converts users into the Fragment list representation.
func usersValue(users []UserRecord) []any {
	out := make([]any, len(users))
	for i, u := range users {
		out[i] = u.toValue()
	}

	return out
}

// usersFromValue reads a Fragment list back into UserRecords. Entries that
// are not mappings are reported as errors; missing fields stay empty.
func usersFromValue(v any) ([]UserRecord, error) {
	if v == nil {
		return []UserRecord{}, nil
	}

	list, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("users: expected a list, got %T", v)
	}

	users := make([]UserRecord, 0, len(list))
	for i, item := range list {
		m, ok := asMap(item)
		if !ok {
			return nil, fmt.Errorf("users[%d]: expected a mapping, got %T", i, item)
		}

		users = append(users, UserRecord{
			Username:     stringField(m, "username"),
			PasswordHash: stringField(m, "password"),
			Permissions:  stringField(m, "permissions"),
		})
	}

	return users, nil
}

func stringField(m map[string]any, key string) string {
	if s, ok := m[key].(string); ok {
		return s
	}

	return ""
}
