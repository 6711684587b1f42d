package config

import (
	"reflect"
	"strings"
)

// GetSettingsExample uses reflection to generate example settings
// This automatically stays in sync when new fields are added to Settings
func GetSettingsExample() map[string]any {
	t := reflect.TypeOf(Settings{})
	example := make(map[string]any, t.NumField())

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		jsonTag := field.Tag.Get("json")
		if jsonTag == "" || jsonTag == "-" {
			continue
		}
		jsonName := strings.Split(jsonTag, ",")[0]
		example[jsonName] = generateExampleValue(field.Type, jsonName)
	}
	return example
}

// generateExampleValue creates appropriate example values based on type and field name
func generateExampleValue(t reflect.Type, fieldName string) any {
	if t.Name() == "KeyBindingsConfig" {
		return map[string]any{
			"start_work": "w",
			"quit":       []string{"q", "ctrl+c"},
		}
	}

	if t.Kind() == reflect.Ptr {
		switch t.Elem().Kind() {
		case reflect.Bool:
			return fieldName == "debug"
		case reflect.Int:
			switch fieldName {
			case "max_log_files":
				return 1000
			case "work_minutes":
				return DefaultWorkMinutes
			case "break_minutes":
				return DefaultBreakMinutes
			}
			return 10
		}
	}

	if t.Kind() == reflect.String {
		switch fieldName {
		case "http_addr":
			return ":8080"
		case "ssh_addr":
			return ":2222"
		case "language":
			return "ja"
		case "user":
			return DefaultUser
		default:
			return "example"
		}
	}

	return nil
}
