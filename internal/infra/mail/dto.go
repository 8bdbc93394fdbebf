package mail

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string

	// enabled is the explicit channel switch. The bot collects no email
	// addresses yet, so the channel ships off by default instead of
	// silently no-op'ing.
	enabled bool
}

type FollowupEmailData struct {
	Name string
}
