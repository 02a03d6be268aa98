// Package document는 작업 항목을 XML 문서로 변환합니다.
package document

import (
	"bytes"
	"encoding/xml"
	"fmt"

	"github.com/wekeepgrowing/workitem-tracker/internal/domain/entity"
)

const (
	rootElement = "Items"
	itemElement = "Item"
)

// Field 항목의 스칼라 필드. 순서대로 출력됩니다.
type Field struct {
	Name  string
	Value string
}

// Node 문서의 한 항목
type Node struct {
	Fields []Field
}

// Value 필드 값 조회
func (n Node) Value(name string) (string, bool) {
	for _, f := range n.Fields {
		if f.Name == name {
			return f.Value, true
		}
	}
	return "", false
}

// Document 루트 아래 항목 목록을 가진 트리
type Document struct {
	Items []Node
}

// FromWorkItems 작업 항목 목록을 전체 필드 문서로 변환
func FromWorkItems(items []*entity.WorkItem) *Document {
	doc := &Document{Items: make([]Node, 0, len(items))}
	for _, item := range items {
		doc.Items = append(doc.Items, Node{Fields: []Field{
			{Name: "Id", Value: item.ID},
			{Name: "Name", Value: item.Owner},
			{Name: "Date", Value: item.DateString()},
			{Name: "Description", Value: item.Description},
			{Name: "Guide", Value: item.Guide},
			{Name: "Status", Value: item.Status},
		}})
	}
	return doc
}

// FromSummary 수정 화면용 단일 항목 문서 생성
func FromSummary(summary *entity.WorkItemSummary) *Document {
	return &Document{Items: []Node{{Fields: []Field{
		{Name: "Id", Value: summary.ID},
		{Name: "Description", Value: summary.Description},
		{Name: "Status", Value: summary.Status},
	}}}}
}

// MarshalXML 필드 순서를 유지하며 Items/Item 구조로 출력
func (d *Document) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	root := xml.StartElement{Name: xml.Name{Local: rootElement}}
	if err := e.EncodeToken(root); err != nil {
		return err
	}
	for _, node := range d.Items {
		item := xml.StartElement{Name: xml.Name{Local: itemElement}}
		if err := e.EncodeToken(item); err != nil {
			return err
		}
		for _, f := range node.Fields {
			if err := e.EncodeElement(f.Value, xml.StartElement{Name: xml.Name{Local: f.Name}}); err != nil {
				return err
			}
		}
		if err := e.EncodeToken(item.End()); err != nil {
			return err
		}
	}
	return e.EncodeToken(root.End())
}

// Render XML 선언을 포함한 문서 텍스트 생성
func (d *Document) Render() (string, error) {
	var buf bytes.Buffer
	buf.WriteString(xml.Header)

	enc := xml.NewEncoder(&buf)
	if err := enc.Encode(d); err != nil {
		return "", fmt.Errorf("XML 문서 생성 실패: %w", err)
	}
	if err := enc.Flush(); err != nil {
		return "", fmt.Errorf("XML 문서 생성 실패: %w", err)
	}
	return buf.String(), nil
}
