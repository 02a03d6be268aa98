package report

import (
	"bytes"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wekeepgrowing/workitem-tracker/internal/domain/entity"
	"github.com/xuri/excelize/v2"
)

func readRows(t *testing.T, data []byte) [][]string {
	t.Helper()
	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{SheetName}, f.GetSheetList())
	rows, err := f.GetRows(SheetName)
	require.NoError(t, err)
	return rows
}

func TestBuild_RowCount(t *testing.T) {
	for _, n := range []int{0, 1, 5} {
		t.Run(fmt.Sprintf("%d items", n), func(t *testing.T) {
			items := make([]*entity.WorkItem, 0, n)
			for i := 0; i < n; i++ {
				items = append(items, &entity.WorkItem{
					ID:    fmt.Sprintf("id-%d", i),
					Owner: "alice",
					Date:  time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
				})
			}

			data, err := Build(items)
			require.NoError(t, err)

			assert.Len(t, readRows(t, data), n+1)
		})
	}
}

func TestBuild_Content(t *testing.T) {
	data, err := Build([]*entity.WorkItem{{
		ID:          "id-1",
		Owner:       "alice",
		Date:        time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		Description: "d",
		Guide:       "g",
		Status:      "open",
	}})
	require.NoError(t, err)

	rows := readRows(t, data)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"Id", "Name", "Date", "Description", "Guide", "Status", "Archived"}, rows[0])
	assert.Equal(t, []string{"id-1", "alice", "2024-01-15", "d", "g", "open", "FALSE"}, rows[1])
}
