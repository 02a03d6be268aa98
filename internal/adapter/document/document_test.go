package document

import (
	"encoding/xml"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wekeepgrowing/workitem-tracker/internal/domain/entity"
)

type parsedItems struct {
	XMLName xml.Name `xml:"Items"`
	Items   []struct {
		Fields []struct {
			XMLName xml.Name
			Value   string `xml:",chardata"`
		} `xml:",any"`
	} `xml:"Item"`
}

func fieldNames(t *testing.T, rendered string) [][]string {
	t.Helper()
	var parsed parsedItems
	require.NoError(t, xml.Unmarshal([]byte(rendered), &parsed))

	names := make([][]string, 0, len(parsed.Items))
	for _, item := range parsed.Items {
		row := make([]string, 0, len(item.Fields))
		for _, f := range item.Fields {
			row = append(row, f.XMLName.Local)
		}
		names = append(names, row)
	}
	return names
}

func sampleItems() []*entity.WorkItem {
	return []*entity.WorkItem{
		{ID: "id-1", Owner: "alice", Date: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), Description: "d1", Guide: "g1", Status: "open"},
		{ID: "id-2", Owner: "alice", Date: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), Description: "d2 & <more>", Guide: "g2", Status: "done"},
	}
}

func TestFromWorkItems_FieldOrder(t *testing.T) {
	rendered, err := FromWorkItems(sampleItems()).Render()
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(rendered, xml.Header))
	expected := []string{"Id", "Name", "Date", "Description", "Guide", "Status"}
	assert.Equal(t, [][]string{expected, expected}, fieldNames(t, rendered))
}

func TestFromWorkItems_Values(t *testing.T) {
	doc := FromWorkItems(sampleItems())

	require.Len(t, doc.Items, 2)
	date, ok := doc.Items[0].Value("Date")
	assert.True(t, ok)
	assert.Equal(t, "2024-01-15", date)
	name, _ := doc.Items[1].Value("Name")
	assert.Equal(t, "alice", name)

	rendered, err := doc.Render()
	require.NoError(t, err)
	assert.Contains(t, rendered, "<Description>d2 &amp; &lt;more&gt;</Description>")
}

func TestFromWorkItems_Empty(t *testing.T) {
	rendered, err := FromWorkItems(nil).Render()
	require.NoError(t, err)

	assert.Equal(t, xml.Header+"<Items></Items>", rendered)
}

func TestFromSummary(t *testing.T) {
	rendered, err := FromSummary(&entity.WorkItemSummary{ID: "id-1", Description: "d", Status: "open"}).Render()
	require.NoError(t, err)

	assert.Equal(t, [][]string{{"Id", "Description", "Status"}}, fieldNames(t, rendered))
	assert.Contains(t, rendered, "<Item><Id>id-1</Id><Description>d</Description><Status>open</Status></Item>")
}
