package draft

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"docdraft/internal/model"
)

var ErrUnknownAction = errors.New("unknown draft action")

type wireAction struct {
	Type    Kind            `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// DecodeAction parses {"type": kind, "payload": value}.
// List kinds whose payload is not a JSON array of strings decode to an empty list.
func DecodeAction(data []byte) (Action, error) {
	var w wireAction
	if err := json.Unmarshal(data, &w); err != nil {
		return Action{}, fmt.Errorf("decode action: %w", err)
	}

	switch w.Type {
	case KindSetSelectedFaculties, KindSetSelectedSubjects, KindSetSelectedLists, KindSetSelectedImages:
		return Action{Kind: w.Type, Items: coerceList(w.Payload)}, nil
	case KindSetTitle, KindSetDescription:
		var s string
		if !isNull(w.Payload) {
			if err := json.Unmarshal(w.Payload, &s); err != nil {
				return Action{}, fmt.Errorf("decode %s payload: %w", w.Type, err)
			}
		}
		return Action{Kind: w.Type, Text: s}, nil
	case KindSetDocumentFile:
		if isNull(w.Payload) {
			return SetDocumentFile(nil), nil
		}
		var f model.DocumentFile
		if err := json.Unmarshal(w.Payload, &f); err != nil {
			return Action{}, fmt.Errorf("decode %s payload: %w", w.Type, err)
		}
		return SetDocumentFile(&f), nil
	case KindSetCoverImage:
		if isNull(w.Payload) {
			return SetCoverImage(nil), nil
		}
		var s string
		if err := json.Unmarshal(w.Payload, &s); err != nil {
			return Action{}, fmt.Errorf("decode %s payload: %w", w.Type, err)
		}
		return SetCoverImage(&s), nil
	case KindClearUploadState:
		return ClearUploadState(), nil
	default:
		return Action{}, fmt.Errorf("%w: %q", ErrUnknownAction, w.Type)
	}
}

func coerceList(raw json.RawMessage) []string {
	var items []string
	if err := json.Unmarshal(raw, &items); err != nil || items == nil {
		return []string{}
	}
	return items
}

func isNull(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}
