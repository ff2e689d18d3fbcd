package email

// SendSimpleEmail delivers a one-line message. The message doubles as
// the subject.
func (c *Client) SendSimpleEmail(to, message string) error {
	data := map[string]string{
		"Subject": message,
		"Message": message,
		"Sender":  c.sender,
	}

	return c.SendEmail(
		to,
		message,
		TemplateSimple,
		data,
	)
}
