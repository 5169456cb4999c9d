package email

// Template names an embedded templates/<name>.html file.
type Template string

const (
	TemplateWelcome Template = "welcome"
)
