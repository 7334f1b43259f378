package utils

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"aurora/config"
)

// SendTeamInviteEmail notifies a user that a head added them to a team.
// Callers treat failures as best-effort: the membership is already saved.
func SendTeamInviteEmail(to, memberName, headName string) error {
	cfg := config.AppConfig.SMTP
	if cfg.Host == "" {
		return fmt.Errorf("SMTP is not configured")
	}

	body := fmt.Sprintf(`
		<html>
		<body>
			<h2>You've been added to a team</h2>
			<p>Hi %s,</p>
			<p>%s added you to their team on Aurora. Log in to see the
			team board and your assigned tasks.</p>
		</body>
		</html>
	`, memberName, headName)

	m := gomail.NewMessage()
	m.SetHeader("From", cfg.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", fmt.Sprintf("%s added you to their team", headName))
	m.SetBody("text/html", body)

	d := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	return d.DialAndSend(m)
}
