package entity

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DateLayout 작업 항목 날짜 입력 형식
const DateLayout = "2006-01-02"

var (
	ErrOwnerRequired = errors.New("작업 항목 소유자는 필수입니다")
	ErrInvalidDate   = errors.New("날짜 형식이 올바르지 않습니다 (YYYY-MM-DD)")
	ErrIDRequired    = errors.New("작업 항목 ID는 필수입니다")
)

// WorkItem 사용자가 기록한 작업 항목
type WorkItem struct {
	ID          string
	Owner       string
	Date        time.Time
	Description string
	Guide       string
	Status      string
	// Archived는 false → true로만 바뀝니다
	Archived bool
}

// NewWorkItem 새 작업 항목 생성 팩토리 함수. ID는 생성 시점에 부여됩니다.
func NewWorkItem(owner, date, description, guide, status string) (*WorkItem, error) {
	if strings.TrimSpace(owner) == "" {
		return nil, ErrOwnerRequired
	}

	parsed, err := ParseDate(date)
	if err != nil {
		return nil, err
	}

	return &WorkItem{
		ID:          uuid.NewString(),
		Owner:       owner,
		Date:        parsed,
		Description: description,
		Guide:       guide,
		Status:      status,
		Archived:    false,
	}, nil
}

// ParseDate YYYY-MM-DD 문자열을 UTC 자정 기준 날짜로 변환
func ParseDate(value string) (time.Time, error) {
	parsed, err := time.Parse(DateLayout, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return parsed, nil
}

// DateString 날짜를 YYYY-MM-DD 형식으로 반환
func (w *WorkItem) DateString() string {
	return w.Date.Format(DateLayout)
}

// Archive 보관 처리. 이미 보관된 경우 변화 없음
func (w *WorkItem) Archive() {
	w.Archived = true
}

// WorkItemSummary 수정 화면용 경량 조회 결과
type WorkItemSummary struct {
	ID          string
	Description string
	Status      string
}
