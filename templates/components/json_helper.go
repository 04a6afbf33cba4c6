package components

import (
	"encoding/json"
	"log"
)

// JSON marshals an object to a JSON string, returning "{}" on error
func JSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		log.Printf("[ERROR] Failed to marshal JSON attribute: %v", err)
		return "{}"
	}
	return string(b)
}
