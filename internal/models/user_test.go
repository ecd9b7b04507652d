package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUser_Validate(t *testing.T) {
	tests := []struct {
		name    string
		user    User
		wantErr bool
		errMsg  string
	}{
		{
			name: "valid user",
			user: User{
				Email:     "test@example.com",
				FirstName: "John",
				LastName:  "Doe",
				Role:      RoleUser,
			},
			wantErr: false,
		},
		{
			name: "valid admin",
			user: User{
				Email:     "admin@example.com",
				FirstName: "Jane",
				LastName:  "Admin",
				Role:      RoleAdmin,
			},
			wantErr: false,
		},
		{
			name: "invalid email",
			user: User{
				Email:     "invalid-email",
				FirstName: "John",
				LastName:  "Doe",
				Role:      RoleUser,
			},
			wantErr: true,
			errMsg:  "invalid email format",
		},
		{
			name: "empty email",
			user: User{
				FirstName: "John",
				LastName:  "Doe",
				Role:      RoleUser,
			},
			wantErr: true,
			errMsg:  "email is required",
		},
		{
			name: "unknown role",
			user: User{
				Email:     "test@example.com",
				FirstName: "John",
				LastName:  "Doe",
				Role:      "Superuser",
			},
			wantErr: true,
			errMsg:  "invalid role: Superuser",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.user.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.errMsg, err.Error())
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestUser_LockingBehavior(t *testing.T) {
	user := User{
		Email:     "test@example.com",
		FirstName: "John",
		LastName:  "Doe",
		Role:      RoleUser,
	}

	require.False(t, user.IsLocked())

	for i := 0; i < MaxFailedLoginAttempts-1; i++ {
		user.IncrementFailedAttempts()
		assert.False(t, user.IsLocked())
	}

	user.IncrementFailedAttempts()
	assert.True(t, user.IsLocked())

	user.Unlock()
	assert.False(t, user.IsLocked())
	assert.Equal(t, 0, user.FailedLoginAttempts)
}

func TestUser_FullName(t *testing.T) {
	user := User{FirstName: "John", LastName: "Doe"}
	assert.Equal(t, "John Doe", user.FullName())
}

func TestUser_IsAdmin(t *testing.T) {
	assert.True(t, (&User{Role: RoleAdmin}).IsAdmin())
	assert.False(t, (&User{Role: RoleUser}).IsAdmin())
}
