package countfilter

import "encoding/binary"

// BytesFunnel writes an element's raw bytes unchanged.
type BytesFunnel struct{}

func (BytesFunnel) Funnel(element []byte, sink Sink) { sink.Write(element) }
func (BytesFunnel) Identity() string                 { return "countfilter.BytesFunnel" }

// StringFunnel writes a string's UTF-8 bytes unchanged.
type StringFunnel struct{}

func (StringFunnel) Funnel(element string, sink Sink) { sink.Write([]byte(element)) }
func (StringFunnel) Identity() string                 { return "countfilter.StringFunnel" }

// Uint64Funnel writes a uint64 as 8 little-endian bytes.
type Uint64Funnel struct{}

func (Uint64Funnel) Funnel(element uint64, sink Sink) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], element)
	sink.Write(buf[:])
}
func (Uint64Funnel) Identity() string { return "countfilter.Uint64Funnel" }
