package nrpn

import "gitlab.com/gomidi/midi/v2"

// FromMessage converts a gomidi channel-voice message into an Event.
// The second return value is false for message kinds the decoder has no
// use for (SysEx, program change, clock and so on).
func FromMessage(msg midi.Message) (Event, bool) {
	var channel, controller, value uint8

	switch {
	case msg.GetControlChange(&channel, &controller, &value):
		return Event{Kind: ControlChange, Channel: channel, Controller: controller, Value: value}, true
	case msg.GetNoteOn(&channel, &controller, &value):
		return Event{Kind: NoteOn, Channel: channel, Controller: controller, Value: value}, true
	case msg.GetNoteOff(&channel, &controller, &value):
		return Event{Kind: NoteOff, Channel: channel, Controller: controller, Value: value}, true
	}

	return Event{Kind: Other}, false
}

// Messages renders the NRPN wire sequence for a 14-bit controller/value
// pair as Control Change messages on the given channel, ready to hand to
// a sender.
func Messages(channel uint8, controller int, value int) []midi.Message {
	events := Sequence(controller, value)
	msgs := make([]midi.Message, len(events))

	for i, e := range events {
		msgs[i] = midi.ControlChange(channel, e.Controller, e.Value)
	}

	return msgs
}
