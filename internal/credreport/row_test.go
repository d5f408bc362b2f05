package credreport

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleReport = `user,arn,user_creation_time,password_enabled,access_key_1_active,access_key_1_last_rotated,access_key_2_active,access_key_2_last_rotated
<root_account>,arn:aws:iam::123456789012:root,2020-01-01T00:00:00+00:00,not_supported,false,N/A,false,N/A
alice,arn:aws:iam::123456789012:user/alice,2024-02-10T08:00:00+00:00,true,true,2025-03-01T10:00:00+00:00,false,N/A
bob,arn:aws:iam::123456789012:user/bob,2024-05-01T08:00:00+00:00,false,true,2025-01-05T09:30:00+00:00,TRUE,2026-01-05T09:30:00+00:00
`

func TestParse(t *testing.T) {
	rows, err := Parse([]byte(sampleReport))
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "<root_account>", rows[0].User)
	assert.False(t, rows[0].Slots[0].Active)
	assert.Equal(t, "N/A", rows[0].Slots[0].LastRotated)

	alice := rows[1]
	assert.Equal(t, "alice", alice.User)
	assert.Equal(t, "arn:aws:iam::123456789012:user/alice", alice.ARN)
	assert.True(t, alice.Slots[0].Active)
	assert.Equal(t, "2025-03-01T10:00:00+00:00", alice.Slots[0].LastRotated)
	assert.False(t, alice.Slots[1].Active)
	assert.Equal(t, "N/A", alice.Slots[1].LastRotated)

	bob := rows[2]
	assert.True(t, bob.Slots[1].Active)
	assert.Equal(t, "2026-01-05T09:30:00+00:00", bob.Slots[1].LastRotated)
}

func TestParse_KeepsAllColumns(t *testing.T) {
	rows, err := Parse([]byte(sampleReport))
	require.NoError(t, err)

	v, ok := rows[1].Field("password_enabled")
	assert.True(t, ok)
	assert.Equal(t, "true", v)

	v, ok = rows[1].Field("user_creation_time")
	assert.True(t, ok)
	assert.Equal(t, "2024-02-10T08:00:00+00:00", v)

	_, ok = rows[1].Field("mfa_active")
	assert.False(t, ok)
}

func TestParse_RowsAreIndependent(t *testing.T) {
	rows, err := Parse([]byte(sampleReport))
	require.NoError(t, err)

	rows[1].Fields["user"] = "mallory"
	assert.Equal(t, "bob", rows[2].Fields["user"])
	assert.Equal(t, "<root_account>", rows[0].Fields["user"])
}

func TestParse_ShortRecord(t *testing.T) {
	content := "user,arn,access_key_1_last_rotated,access_key_2_last_rotated\ncarol,arn:aws:iam::1:user/carol\n"
	rows, err := Parse([]byte(content))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "carol", rows[0].User)
	assert.Equal(t, "", rows[0].Slots[0].LastRotated)
	assert.Equal(t, "", rows[0].Slots[1].LastRotated)
}

func TestParse_HeaderOnly(t *testing.T) {
	rows, err := Parse([]byte("user,arn\n"))
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"empty", ""},
		{"no user column", "name,arn\nalice,arn\n"},
		{"bad quoting", "user,arn\n\"alice,arn\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.content))
			assert.Error(t, err)
		})
	}
}
