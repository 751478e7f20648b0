package mailer

import "log"

// Console writes outgoing mail to the application log. Used in local
// development and tests in place of a real delivery backend.
type Console struct {
	From string
}

func NewConsole(from string) *Console {
	if from == "" {
		from = "no-reply@pluggedin.app"
	}
	return &Console{From: from}
}

func (m *Console) SendPasswordReset(to, resetURL string) error {
	log.Printf(
		"mail from=%s to=%s subject=%q body=%q",
		m.From, to, "Reset your PluggedIn password",
		"Follow this link to reset your password: "+resetURL,
	)
	return nil
}
