package email

// SendWelcomeEmail greets a newly registered employee.
func (c *Client) SendWelcomeEmail(to, name string) error {
	data := map[string]string{
		"EmployeeName": name,
	}

	return c.SendEmail(
		to,
		"Welcome aboard!",
		TemplateWelcome,
		data,
	)
}
