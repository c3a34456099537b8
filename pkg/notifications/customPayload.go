package notifications

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
	"sigs.k8s.io/yaml"
)

const customPayloadSchema = `{
  "type": "object",
  "properties": {
    "text": {"type": "string"},
    "username": {"type": "string"},
    "icon_emoji": {"type": "string"},
    "icon_url": {"type": "string"},
    "channel": {"type": "string"},
    "attachments": {"type": "array", "items": {"type": "object"}},
    "blocks": {"type": "array", "items": {"type": "object"}}
  }
}`

// ParseCustomPayload validates a user supplied webhook payload.
// Besides JSON, flow style object literals like {text: 'hello'} are accepted.
func ParseCustomPayload(payload string) (json.RawMessage, error) {
	if strings.TrimSpace(payload) == "" {
		return nil, fmt.Errorf("custom_payload is required with the custom status")
	}

	raw := []byte(payload)
	if !json.Valid(raw) {
		converted, err := yaml.YAMLToJSON(raw)
		if err != nil {
			return nil, fmt.Errorf("cannot parse custom_payload: %s", err)
		}
		raw = converted
	}

	schemaLoader := gojsonschema.NewStringLoader(customPayloadSchema)
	documentLoader := gojsonschema.NewBytesLoader(raw)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return nil, fmt.Errorf("cannot validate custom_payload: %s", err)
	}

	if !result.Valid() {
		errs := strings.Builder{}
		for _, desc := range result.Errors() {
			errs.WriteString(fmt.Sprintf("- %s\n", desc))
		}
		return nil, fmt.Errorf("custom_payload is not a valid message: \n%s", errs.String())
	}

	compacted := new(bytes.Buffer)
	err = json.Compact(compacted, raw)
	if err != nil {
		return nil, fmt.Errorf("cannot compact custom_payload: %s", err)
	}

	return json.RawMessage(compacted.Bytes()), nil
}
