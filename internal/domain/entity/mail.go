package entity

// MailAttachment 메일 첨부 파일
type MailAttachment struct {
	Name        string
	ContentType string
	Data        []byte
}

// Mail 텍스트/HTML 대안 본문과 첨부 파일을 가진 메일
type Mail struct {
	From        string
	To          []string
	Subject     string
	TextBody    string
	HTMLBody    string
	Attachments []MailAttachment
}
