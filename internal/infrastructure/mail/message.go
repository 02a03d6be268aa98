package mail

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/gomail.v2"
)

// XLSXContentType 엑셀 첨부 파일 MIME 타입
const XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Attachment 첨부 파일
type Attachment struct {
	Name        string
	ContentType string
	Data        []byte
}

// Message 발송할 메일 내용. 본문은 text/plain과 text/html 대안으로 구성됩니다.
type Message struct {
	From        string
	To          []string
	Subject     string
	TextBody    string
	HTMLBody    string
	Attachments []Attachment
}

// Build multipart/mixed 원본 MIME 메시지를 생성합니다.
func (m Message) Build() ([]byte, error) {
	if m.From == "" {
		return nil, errors.New("발신자 주소가 없습니다")
	}
	if len(m.To) == 0 {
		return nil, errors.New("수신자 주소가 없습니다")
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.From)
	msg.SetHeader("To", m.To...)
	msg.SetHeader("Subject", m.Subject)
	msg.SetBody("text/plain", m.TextBody)
	if m.HTMLBody != "" {
		msg.AddAlternative("text/html", m.HTMLBody)
	}

	for _, a := range m.Attachments {
		data := a.Data
		contentType := a.ContentType
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		msg.Attach(a.Name,
			gomail.SetCopyFunc(func(w io.Writer) error {
				_, err := w.Write(data)
				return err
			}),
			gomail.SetHeader(map[string][]string{
				"Content-Type": {fmt.Sprintf("%s; name=%q", contentType, a.Name)},
			}),
		)
	}

	var buf bytes.Buffer
	if _, err := msg.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("MIME 메시지 생성 실패: %w", err)
	}
	return buf.Bytes(), nil
}
