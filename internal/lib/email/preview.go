package email

import "fmt"

// PreviewData contains sample data for every template, keyed by template
// name.
var PreviewData = map[Template]map[string]string{
	TemplateSimple: {
		"Subject": "Hello John",
		"Message": "Hello John",
		"Sender":  "Posts",
	},
}

// Preview renders a template with its PreviewData.
func Preview(name Template) (string, error) {
	data, ok := PreviewData[name]
	if !ok {
		return "", fmt.Errorf("no preview data for email template %q", name)
	}
	return RenderTemplate(name, data)
}
