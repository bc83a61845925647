package transcode

import (
	"encoding/binary"
	"io"
)

// utf16Decoder decodes a UTF-16 byte stream into runes. It implements
// io.RuneReader; size is the number of source bytes consumed. A clean end
// of input yields io.EOF; input ending mid code unit or mid surrogate
// pair yields io.ErrUnexpectedEOF.
type utf16Decoder struct {
	src   io.Reader
	order binary.ByteOrder
	pos   int64

	// Retained trail unit from a broken surrogate pair, decoded as the
	// next lead candidate (resynchronization without byte skipping).
	lead    uint16
	hasLead bool

	unit [2]byte
}

func (d *utf16Decoder) readUnit() (uint16, error) {
	if _, err := io.ReadFull(d.src, d.unit[:]); err != nil {
		return 0, err
	}
	d.pos += 2
	return d.order.Uint16(d.unit[:]), nil
}

func (d *utf16Decoder) ReadRune() (rune, int, error) {
	pos := d.pos
	var lead uint16
	if d.hasLead {
		d.hasLead = false
		lead = d.lead
		pos -= 2
	} else {
		u, err := d.readUnit()
		if err != nil {
			return 0, 0, err
		}
		lead = u
	}
	if lead < 0xD800 || lead > 0xDFFF {
		return rune(lead), 2, nil
	}
	if lead >= 0xDC00 {
		// A trailing surrogate with no leading surrogate.
		return 0, 0, &UnitError{Unit: uint32(lead), Offset: pos, Bits: 16}
	}
	trailPos := d.pos
	trail, err := d.readUnit()
	if err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return 0, 0, err
	}
	if trail < 0xDC00 || trail > 0xDFFF {
		// We needed a trailing surrogate and didn't get one. The unit is
		// kept and decoded as a lead on the next call.
		d.lead = trail
		d.hasLead = true
		return 0, 0, &UnitError{Unit: uint32(trail), Offset: trailPos, Bits: 16}
	}
	r := 0x10000 + (rune(lead-0xD800)<<10 | rune(trail-0xDC00))
	return r, 4, nil
}

// utf32Decoder decodes a UTF-32 byte stream into runes, rejecting the
// surrogate range and values above 0x10FFFF. Same contract as
// utf16Decoder.
type utf32Decoder struct {
	src   io.Reader
	order binary.ByteOrder
	pos   int64
	unit  [4]byte
}

func (d *utf32Decoder) ReadRune() (rune, int, error) {
	pos := d.pos
	if _, err := io.ReadFull(d.src, d.unit[:]); err != nil {
		return 0, 0, err
	}
	d.pos += 4
	u := d.order.Uint32(d.unit[:])
	if u > 0x10FFFF || (u >= 0xD800 && u <= 0xDFFF) {
		return 0, 0, &UnitError{Unit: u, Offset: pos, Bits: 32}
	}
	return rune(u), 4, nil
}
