package nrpn

// Controller numbers of the four Control Change messages that make up an
// NRPN sequence.
const (
	CCNumberMSB uint8 = 99
	CCNumberLSB uint8 = 98
	CCValueMSB  uint8 = 6
	CCValueLSB  uint8 = 38
)

type Kind uint8

const (
	Other Kind = iota
	ControlChange
	NoteOn
	NoteOff
)

// Event is a single channel-voice message, decoupled from any MIDI
// library's message representation. Controller and Value are 7-bit.
// For note events Controller holds the key and Value the velocity.
type Event struct {
	Kind       Kind
	Channel    uint8
	Controller uint8
	Value      uint8
}

// CC returns a Control Change event on channel 0.
func CC(controller uint8, value uint8) Event {
	return Event{Kind: ControlChange, Controller: controller, Value: value}
}

// Sequence returns the four Control Change events that encode a 14-bit
// controller/value pair, in CC99, CC98, CC6, CC38 order.
func Sequence(controller int, value int) []Event {
	return []Event{
		CC(CCNumberMSB, uint8(controller>>7)&0x7f),
		CC(CCNumberLSB, uint8(controller)&0x7f),
		CC(CCValueMSB, uint8(value>>7)&0x7f),
		CC(CCValueLSB, uint8(value)&0x7f),
	}
}
