package pubsub

import (
	"encoding/json"

	cloudevents "github.com/cloudevents/sdk-go/v2"
)

// NewCloudEvent creates a standardized CloudEvent v1.0. Payloads are plain
// Go structs (see pkg/types/pb), so they're encoded with encoding/json like
// everything else on the wire; no protobuf codegen is involved.
func NewCloudEvent(source, eventType string, data interface{}) (cloudevents.Event, error) {
	e := cloudevents.NewEvent()
	e.SetSpecVersion("1.0")
	e.SetType(eventType)
	e.SetSource(source)

	bytes, err := json.Marshal(data)
	if err != nil {
		return e, err
	}
	if err := e.SetData(cloudevents.ApplicationJSON, json.RawMessage(bytes)); err != nil {
		return e, err
	}

	return e, nil
}
