package dto

// SubmitWorkItemInput 작업 항목 등록 입력
type SubmitWorkItemInput struct {
	Date        string
	Description string
	Guide       string
	Status      string
}

// ModifyWorkItemInput 작업 항목 수정 입력
type ModifyWorkItemInput struct {
	ID          string
	Description string
	Status      string
}

// RetrieveType 목록 조회 범위
type RetrieveType string

const (
	RetrieveActive   RetrieveType = "active"
	RetrieveArchived RetrieveType = "other"
)

// Archived active 외의 값은 보관 목록으로 취급합니다.
func (t RetrieveType) Archived() bool {
	return t != RetrieveActive
}
