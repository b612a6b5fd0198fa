package event

import "fmt"

var typeToName = map[EventType]string{
	EventTick:          "Tick",
	EventPlayerSpawned: "EventPlayerSpawned",
	EventPlayerDied:    "EventPlayerDied",
	EventScoreAwarded:  "EventScoreAwarded",
	EventRoundOver:     "EventRoundOver",
	EventGameReset:     "EventGameReset",
	EventGameStart:     "EventGameStart",
	EventSoundRequest:  "EventSoundRequest",
}

var nameToType = func() map[string]EventType {
	m := make(map[string]EventType, len(typeToName))
	for t, n := range typeToName {
		m[n] = t
	}
	return m
}()

// GetEventName returns the string name for an EventType
func GetEventName(et EventType) string {
	if n, ok := typeToName[et]; ok {
		return n
	}
	return fmt.Sprintf("Event(%d)", int(et))
}

// GetEventType returns the EventType for a given name
func GetEventType(name string) (EventType, bool) {
	et, ok := nameToType[name]
	return et, ok
}

func (et EventType) String() string {
	return GetEventName(et)
}
