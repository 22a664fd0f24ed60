// internal/service/template_service.go
package service

import (
	"strings"
)

// RenderTemplate fills {placeholder} tokens in an SMS template with order
// details (customer name, order id, outfit, status). Unknown tokens are
// left in place.
func RenderTemplate(template string, data map[string]string) string {
	result := template
	for k, v := range data {
		result = strings.ReplaceAll(result, "{"+k+"}", v)
	}
	return result
}
