package services

import (
	"fmt"
	"net/smtp"
	"strings"

	"cutlist-optimizer/config"

	"golang.org/x/net/html"
)

// convertHTMLToText converts HTML content to plain text for email sending.
func convertHTMLToText(htmlContent string) string {
	doc, err := html.Parse(strings.NewReader(htmlContent))
	if err != nil {
		return htmlContent
	}

	var text strings.Builder
	var extractText func(*html.Node)
	extractText = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			text.WriteString(n.Data)
		case html.ElementNode:
			switch n.Data {
			case "p", "div", "br", "h1", "h2", "h3", "h4", "h5", "h6":
				text.WriteString("\n")
			case "li":
				text.WriteString("- ")
			}
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			extractText(child)
		}
	}
	extractText(doc)

	result := text.String()
	result = strings.ReplaceAll(result, "\n\n\n", "\n\n")
	result = strings.TrimSpace(result)
	return result
}

// EmailService sends plain-text notification emails over SMTP.
type EmailService struct {
	cfg config.Config
}

// NewEmailService creates an email service bound to the configured SMTP
// credentials.
func NewEmailService(cfg config.Config) *EmailService {
	return &EmailService{cfg: cfg}
}

// SendHTML converts htmlBody to plain text and sends it.
func (es *EmailService) SendHTML(to, subject, htmlBody string) error {
	return es.send(to, subject, convertHTMLToText(htmlBody))
}

// send dispatches one plain-text email over SMTP using the configured
// host, port, and credentials.
func (es *EmailService) send(to, subject, body string) error {
	if es.cfg.SMTPHost == "" {
		return fmt.Errorf("smtp not configured")
	}

	auth := smtp.PlainAuth("", es.cfg.SMTPUser, es.cfg.SMTPPass, es.cfg.SMTPHost)

	msg := []byte(strings.Join([]string{
		"From: " + es.cfg.SMTPUser,
		"To: " + to,
		"Subject: " + subject,
		"",
		body,
	}, "\r\n") + "\r\n")

	addr := fmt.Sprintf("%s:%s", es.cfg.SMTPHost, es.cfg.SMTPPort)
	return smtp.SendMail(addr, auth, es.cfg.SMTPUser, []string{to}, msg)
}

// SendOptimizationReadyEmail notifies a user that a persisted optimization
// run has finished processing.
func (es *EmailService) SendOptimizationReadyEmail(to, projectName string, panelCount int) error {
	body := fmt.Sprintf("<p>Your optimization for <strong>%s</strong> is ready.</p><p>%d panel(s) required.</p>", projectName, panelCount)
	return es.SendHTML(to, "Optimization ready", body)
}
