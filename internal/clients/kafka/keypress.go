package kafka

import (
	"time"

	"github.com/pkg/errors"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
	"max.ks1230/khqr-bot/internal/entity/keypress"
)

const (
	fieldKey       = "key"
	fieldSource    = "source"
	fieldPressedAt = "pressed_at"
)

func encodePress(press keypress.Press) ([]byte, error) {
	msg, err := structpb.NewStruct(map[string]interface{}{
		fieldKey:       press.Key,
		fieldSource:    press.Source,
		fieldPressedAt: press.PressedAt.UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return nil, errors.Wrap(err, "build key press")
	}

	raw, err := proto.Marshal(msg)
	return raw, errors.Wrap(err, "marshal key press")
}

func decodePress(raw []byte) (keypress.Press, error) {
	var msg structpb.Struct
	if err := proto.Unmarshal(raw, &msg); err != nil {
		return keypress.Press{}, errors.Wrap(err, "unmarshal key press")
	}

	fields := msg.GetFields()
	key, ok := fields[fieldKey]
	if !ok {
		return keypress.Press{}, errors.New("key press without key")
	}

	press := keypress.Press{
		Key:    key.GetStringValue(),
		Source: fields[fieldSource].GetStringValue(),
	}
	if at := fields[fieldPressedAt].GetStringValue(); at != "" {
		pressedAt, err := time.Parse(time.RFC3339Nano, at)
		if err != nil {
			return keypress.Press{}, errors.Wrap(err, "parse pressed_at")
		}
		press.PressedAt = pressedAt
	}
	return press, nil
}
