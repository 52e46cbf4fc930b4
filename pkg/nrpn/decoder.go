package nrpn

import "fmt"

// None is returned by Controller and Value while the corresponding
// MSB/LSB pair is still incomplete.
const None = -1

type field struct {
	value uint8
	set   bool
}

func (f *field) store(v uint8) {
	f.value = v & 0x7f
	f.set = true
}

// Decoder accumulates the four Control Change messages of an NRPN
// sequence into a single (controller, value) reading. Each byte
// overwrites its slot as it arrives; nothing is ever cleared, so a value
// pair left over from an earlier sequence persists after a new parameter
// number begins. Callers that need strict pairing start a fresh Decoder
// per parameter.
//
// A Decoder is not safe for concurrent use.
type Decoder struct {
	numberMSB field
	numberLSB field
	valueMSB  field
	valueLSB  field
}

func NewDecoder() *Decoder {
	return &Decoder{}
}

// Consume feeds one event into the accumulator and reports whether it
// was relevant to NRPN decoding, i.e. a Control Change on controller
// 99, 98, 6 or 38. Irrelevant events leave the state untouched, so
// mixed traffic can be routed through a Decoder unchanged.
func (d *Decoder) Consume(e Event) bool {
	if e.Kind != ControlChange {
		return false
	}

	switch e.Controller {
	case CCNumberMSB:
		d.numberMSB.store(e.Value)
	case CCNumberLSB:
		d.numberLSB.store(e.Value)
	case CCValueMSB:
		d.valueMSB.store(e.Value)
	case CCValueLSB:
		d.valueLSB.store(e.Value)
	default:
		return false
	}

	return true
}

// Controller returns the 14-bit parameter number, or None until both
// number bytes have been seen.
func (d *Decoder) Controller() int {
	return compose(d.numberMSB, d.numberLSB)
}

// Value returns the 14-bit parameter value, or None until both value
// bytes have been seen.
func (d *Decoder) Value() int {
	return compose(d.valueMSB, d.valueLSB)
}

// Complete reports whether all four bytes of the sequence have arrived.
func (d *Decoder) Complete() bool {
	return d.Controller() != None && d.Value() != None
}

func compose(msb field, lsb field) int {
	if !msb.set || !lsb.set {
		return None
	}
	return int(msb.value)<<7 | int(lsb.value)
}

// String summarizes the decode state. It is safe to call at any point.
func (d *Decoder) String() string {
	controller, value := d.Controller(), d.Value()

	switch {
	case controller != None && value != None:
		return fmt.Sprintf("NRPN %d value %d", controller, value)
	case controller != None:
		return fmt.Sprintf("NRPN %d value pending", controller)
	case value != None:
		return fmt.Sprintf("NRPN ? value %d", value)
	}

	return "NRPN incomplete"
}
