// Package report는 작업 항목 목록으로 엑셀 리포트를 생성합니다.
package report

import (
	"fmt"

	"github.com/wekeepgrowing/workitem-tracker/internal/domain/entity"
	"github.com/xuri/excelize/v2"
)

// SheetName 리포트 시트 이름
const SheetName = "WorkItems"

// Header 리포트 헤더 행
var Header = []interface{}{"Id", "Name", "Date", "Description", "Guide", "Status", "Archived"}

func row(item *entity.WorkItem) []interface{} {
	return []interface{}{
		item.ID,
		item.Owner,
		item.DateString(),
		item.Description,
		item.Guide,
		item.Status,
		item.Archived,
	}
}

// Build 헤더 한 행과 항목당 한 행으로 구성된 xlsx 바이트를 생성합니다.
func Build(items []*entity.WorkItem) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return nil, fmt.Errorf("시트 이름 설정 실패: %w", err)
	}

	sw, err := f.NewStreamWriter(SheetName)
	if err != nil {
		return nil, fmt.Errorf("스트림 writer 생성 실패: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("헤더 스타일 생성 실패: %w", err)
	}
	header := make([]interface{}, 0, len(Header))
	for _, h := range Header {
		header = append(header, excelize.Cell{StyleID: headerStyle, Value: h})
	}
	if err := sw.SetRow("A1", header); err != nil {
		return nil, fmt.Errorf("헤더 행 작성 실패: %w", err)
	}

	for i, item := range items {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := sw.SetRow(cell, row(item)); err != nil {
			return nil, fmt.Errorf("%d번째 행 작성 실패: %w", i+2, err)
		}
	}

	if err := sw.Flush(); err != nil {
		return nil, fmt.Errorf("시트 저장 실패: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("엑셀 파일 생성 실패: %w", err)
	}
	return buf.Bytes(), nil
}
