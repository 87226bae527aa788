package settings

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/xeipuuv/gojsonschema"
)

// Refer to http://json-schema.org/ on how to use JSON Schemas.

const hostSettingsSchema = `{
  "$schema": "http://json-schema.org/draft-04/schema#",
  "title": "Build Launch - Host Settings",
  "type": "object",
  "properties": {
    "solutionDir": {
      "description": "Solution directory, checked first for launch.json",
      "type": "string"
    },
    "projectDir": {
      "description": "Project directory, checked after the solution directory",
      "type": "string"
    },
    "buildCommand": {
      "description": "Executable invoked to build the armed target",
      "type": "string"
    },
    "buildArgs": {
      "description": "Extra arguments passed to the build command before the target",
      "type": "array",
      "items": {
        "type": "string"
      }
    },
    "configuration": {
      "description": "Active configuration name reported with build events",
      "type": "string"
    },
    "platform": {
      "description": "Platform name reported with build events",
      "type": "string"
    },
    "debugCommand": {
      "description": "Executable that accepts the launch config path and engine identifier",
      "type": "string"
    },
    "engineId": {
      "description": "Debug engine identifier override; must be a GUID",
      "type": "string"
    },
    "prelaunchTimeoutInSeconds": {
      "description": "Time limit for the prelaunch script; zero waits forever",
      "type": "integer"
    },
    "normalizePrelaunchScript": {
      "description": "Fix BOM and DOS line endings in text prelaunch scripts before execution",
      "type": "boolean"
    }
  },
  "additionalProperties": false
}`

// validateObjectJSON validates the specified json with schemaJSON.
// If json is empty string, it will be converted into an empty JSON object
// before being validated.
func validateObjectJSON(schema *gojsonschema.Schema, json string) error {
	if json == "" {
		json = "{}"
	}

	doc := gojsonschema.NewStringLoader(json)
	res, err := schema.Validate(doc)
	if err != nil {
		return err
	}
	if !res.Valid() {
		for _, err := range res.Errors() {
			// return with the first error
			return fmt.Errorf("%s", err)
		}
	}
	return nil
}

func validateHostSettings(json string) error {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(hostSettingsSchema))
	if err != nil {
		return errors.Wrap(err, "failed to load host settings schema")
	}
	if err := validateObjectJSON(schema, json); err != nil {
		return errors.Wrap(err, "invalid host settings JSON")
	}
	return nil
}
