package auth

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/FACorreiaa/influencer-hub/internal/app/models"
)

// SchemaVersion is the version written into every mirrored session.
// Records carrying any other version are rejected.
const SchemaVersion = 1

type envelope struct {
	Version int `json:"version"`
	models.SessionRecord
}

// EncodeRecord serializes a session record into the mirrored JSON form.
func EncodeRecord(rec models.SessionRecord) ([]byte, error) {
	if err := validateRecord(rec); err != nil {
		return nil, err
	}
	data, err := json.Marshal(envelope{Version: SchemaVersion, SessionRecord: rec})
	if err != nil {
		return nil, fmt.Errorf("failed to encode session: %w", err)
	}
	return data, nil
}

// DecodeRecord parses and validates mirrored session data.
func DecodeRecord(data []byte) (models.SessionRecord, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return models.SessionRecord{}, fmt.Errorf("%w: %v", models.ErrMalformedSession, err)
	}
	if env.Version != SchemaVersion {
		return models.SessionRecord{}, fmt.Errorf("%w: unsupported version %d", models.ErrMalformedSession, env.Version)
	}
	if err := validateRecord(env.SessionRecord); err != nil {
		return models.SessionRecord{}, err
	}
	return env.SessionRecord, nil
}

func validateRecord(rec models.SessionRecord) error {
	if _, err := uuid.Parse(rec.SessionID); err != nil {
		return fmt.Errorf("%w: invalid session id", models.ErrMalformedSession)
	}
	if rec.IssuedAt.IsZero() {
		return fmt.Errorf("%w: missing issue time", models.ErrMalformedSession)
	}
	if rec.Identity.ID == "" || rec.Identity.Email == "" {
		return fmt.Errorf("%w: incomplete identity", models.ErrMalformedSession)
	}
	if !rec.Identity.Role.Valid() {
		return fmt.Errorf("%w: unknown role %q", models.ErrMalformedSession, rec.Identity.Role)
	}
	return nil
}
