package utils

import (
	"fmt"
	"net/smtp"
	"strings"

	"voxquiz/config"
)

// Generic Send Email
func SendEmail(to []string, subject string, htmlBody string) error {
	smtpHost := "smtp.gmail.com"
	smtpPort := "587"

	from := config.AppConfig.EmailSender
	password := config.AppConfig.Password

	// MIME basics
	msg := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n"
	msg += fmt.Sprintf("From: VoxQuiz <%s>\r\n", from)
	msg += fmt.Sprintf("To: %s\r\n", strings.Join(to, ","))
	msg += fmt.Sprintf("Subject: %s\r\n\r\n", subject)
	msg += htmlBody

	auth := smtp.PlainAuth("", from, password, smtpHost)

	err := smtp.SendMail(smtpHost+":"+smtpPort, auth, from, to, []byte(msg))
	if err != nil {
		fmt.Println("Error sending email:", err)
		return err
	}
	return nil
}

// ParentSummary is the weekly progress digest sent to a student's parent
type ParentSummary struct {
	StudentName   string
	TotalItems    int
	Mastered      int
	InReview      int
	CurrentStreak int
	Level         int
	XP            int
}

// SendParentSummaryEmail sends the weekly progress summary to a parent
func SendParentSummaryEmail(parentEmail string, summary ParentSummary) error {
	subject := fmt.Sprintf("Weekly progress for %s", summary.StudentName)

	body := fmt.Sprintf(`
		<html>
			<body style="font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px;">
				<div style="max-width: 500px; margin: auto; background-color: #ffffff; border-radius: 8px; padding: 30px; box-shadow: 0 2px 8px rgba(0, 0, 0, 0.1);">
					<h2 style="color: #333333; text-align: center;">%s's week on VoxQuiz</h2>
					<p style="font-size: 16px; color: #555555;">Items practised: <b>%d</b></p>
					<p style="font-size: 16px; color: #555555;">Mastered: <b>%d</b> &nbsp;&middot;&nbsp; Still in review: <b>%d</b></p>
					<p style="font-size: 16px; color: #555555;">Current streak: <b>%d day(s)</b></p>
					<p style="font-size: 16px; color: #555555;">Level %d &mdash; %d XP</p>
					<p style="text-align: center; font-size: 12px; color: #bbbbbb; margin-top: 30px;">Keep the streak going!</p>
				</div>
			</body>
		</html>
	`, summary.StudentName, summary.TotalItems, summary.Mastered, summary.InReview,
		summary.CurrentStreak, summary.Level, summary.XP)

	return SendEmail([]string{parentEmail}, subject, body)
}
