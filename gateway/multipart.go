package gateway

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"

	"farmereats/models"
)

// buildRegisterForm encodes the composite registration payload as
// multipart/form-data. Each nested section is JSON-stringified into its
// own field, mirroring what the gateway expects; plain strings are
// written as-is.
func buildRegisterForm(req models.RegisterRequest) (*bytes.Buffer, string, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	sections := map[string]any{
		"user":          req.User,
		"formInfo":      req.FormInfo,
		"verification":  req.Verification,
		"businessHours": req.BusinessHours,
	}
	for field, section := range sections {
		encoded, err := json.Marshal(section)
		if err != nil {
			return nil, "", fmt.Errorf("failed to encode %s section: %w", field, err)
		}
		if err := writer.WriteField(field, string(encoded)); err != nil {
			return nil, "", fmt.Errorf("failed to write %s field: %w", field, err)
		}
	}

	if err := writer.WriteField("social_id", req.SocialID); err != nil {
		return nil, "", fmt.Errorf("failed to write social_id field: %w", err)
	}

	if err := writer.Close(); err != nil {
		return nil, "", fmt.Errorf("failed to finalize form body: %w", err)
	}
	return body, writer.FormDataContentType(), nil
}
