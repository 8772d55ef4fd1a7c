package store

import "context"

// Memory is a [Users] implementation backed by a fixed slice of records. The
// slice is never mutated after construction, so a Memory is safe for
// concurrent use without locking.
type Memory struct {
	users []User
}

// NewMemory creates a Memory holding the given records. The records are
// copied; later changes to the argument slice are not observed.
func NewMemory(users ...User) *Memory {
	records := make([]User, len(users))
	copy(records, users)
	return &Memory{users: records}
}

// FindByName satisfies the [Users] interface. Lookup is a linear scan
// returning the first match, which is fine at the scale of the seeded list.
func (m *Memory) FindByName(_ context.Context, name string) (User, error) {
	for _, user := range m.users {
		if user.Username == name {
			return user, nil
		}
	}
	return User{}, ErrNotFound
}

// Seed returns the fixed user list the service is provisioned with.
func Seed() []User {
	return []User{
		{Username: "user1", Password: "pass1"},
		{Username: "user2", Password: "pass2"},
		{Username: "user3", Password: "pass3"},
		{Username: "user4", Password: "pass4"},
		{Username: "user5", Password: "pass5"},
	}
}
