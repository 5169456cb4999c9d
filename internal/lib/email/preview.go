package email

// PreviewData holds sample variables for every template, keyed by
// template name, for local previews and tests.
var PreviewData = map[Template]map[string]string{
	TemplateWelcome: {
		"EmployeeName": "Alice",
	},
}
