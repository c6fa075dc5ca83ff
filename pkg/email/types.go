package email

type Message struct {
	To       []string
	Subject  string
	TextBody string
	HTMLBody string
	Headers  map[string]string
}
