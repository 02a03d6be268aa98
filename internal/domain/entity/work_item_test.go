package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWorkItem(t *testing.T) {
	item, err := NewWorkItem("alice", "2024-01-15", "d", "g", "open")
	require.NoError(t, err)

	_, parseErr := uuid.Parse(item.ID)
	assert.NoError(t, parseErr)
	assert.Equal(t, "alice", item.Owner)
	assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), item.Date)
	assert.Equal(t, "2024-01-15", item.DateString())
	assert.False(t, item.Archived)
}

func TestNewWorkItem_GeneratesDistinctIDs(t *testing.T) {
	a, err := NewWorkItem("alice", "2024-01-15", "d", "g", "open")
	require.NoError(t, err)
	b, err := NewWorkItem("alice", "2024-01-15", "d", "g", "open")
	require.NoError(t, err)

	assert.NotEqual(t, a.ID, b.ID)
}

func TestNewWorkItem_Validation(t *testing.T) {
	tests := []struct {
		name  string
		owner string
		date  string
		want  error
	}{
		{"missing owner", " ", "2024-01-15", ErrOwnerRequired},
		{"wrong layout", "alice", "15/01/2024", ErrInvalidDate},
		{"impossible date", "alice", "2024-02-30", ErrInvalidDate},
		{"empty date", "alice", "", ErrInvalidDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewWorkItem(tt.owner, tt.date, "d", "g", "open")
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestWorkItem_ArchiveIsIdempotent(t *testing.T) {
	item := &WorkItem{}

	item.Archive()
	item.Archive()

	assert.True(t, item.Archived)
}
