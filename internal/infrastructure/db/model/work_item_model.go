package model

import (
	"gorm.io/datatypes"
)

// WorkItemModel work 테이블 매핑. 컬럼 이름은 기존 스키마를 따릅니다.
type WorkItemModel struct {
	ID          string         `gorm:"column:idwork;primaryKey;size:36"`
	Owner       string         `gorm:"column:username;size:255;not null;index:idx_work_owner_archive"`
	Date        datatypes.Date `gorm:"column:date;not null"`
	Description string         `gorm:"column:description;type:text"`
	Guide       string         `gorm:"column:guide;type:text"`
	Status      string         `gorm:"column:status;size:255"`
	Archived    bool           `gorm:"column:archive;not null;index:idx_work_owner_archive"`
}

// TableName 테이블 이름 지정
func (WorkItemModel) TableName() string {
	return "work"
}
