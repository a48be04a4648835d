package mail

type LeadConvertedEmailData struct {
	OwnerName string
	LeadName  string
}

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}
