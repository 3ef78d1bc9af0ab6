package records

import "unicode/utf8"

// Data is one of IntData, FloatData, StringData or ColorData.
type Data interface {
	isData()
}

type IntData int32

type FloatData float32

// StringData holds at most MaxStringData bytes of whole runes.
type StringData string

// MaxStringData matches a 20-byte buffer with room for a terminator.
const MaxStringData = 19

type ColorData struct {
	R, G, B, A uint8
}

func (IntData) isData()    {}
func (FloatData) isData()  {}
func (StringData) isData() {}
func (ColorData) isData()  {}

// Slot stores a single Data value. Only the most recent Set is observable.
type Slot struct {
	v Data
}

// Set replaces the stored value. StringData longer than MaxStringData is
// truncated at the last rune boundary that fits.
func (s *Slot) Set(d Data) {
	if str, ok := d.(StringData); ok && len(str) > MaxStringData {
		n := MaxStringData
		for n > 0 && !utf8.RuneStart(str[n]) {
			n--
		}
		d = str[:n]
	}
	s.v = d
}

func (s *Slot) Get() Data {
	return s.v
}

func (s *Slot) Int() (int32, bool) {
	v, ok := s.v.(IntData)
	return int32(v), ok
}

func (s *Slot) Float() (float32, bool) {
	v, ok := s.v.(FloatData)
	return float32(v), ok
}

func (s *Slot) Text() (string, bool) {
	v, ok := s.v.(StringData)
	return string(v), ok
}

func (s *Slot) Color() (ColorData, bool) {
	v, ok := s.v.(ColorData)
	return v, ok
}
