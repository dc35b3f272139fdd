package metaindex

import (
	"errors"
	"fmt"
	"io"
)

// NodeType tags a page of the two-tier metadata index tree. The device tier
// resolves device prefixes, the measurement tier resolves measurement names
// within a device; each tier has internal pages and leaf pages.
//
// A lookup starts at an internal device page (the tree root), reaches a leaf
// device page whose entries hand over to the measurement tier, and ends at a
// leaf measurement page resolving to a timeseries metadata record.
//
// The wire form is exactly one byte. A byte outside the four defined codes
// is rejected on decode: defaulting would silently misread a corrupted page.
type NodeType byte

const (
	// NodeTypeInternalDevice is an internal page of the device tier.
	NodeTypeInternalDevice NodeType = 0x00
	// NodeTypeLeafDevice is a leaf page of the device tier; its entries
	// point into the measurement tier.
	NodeTypeLeafDevice NodeType = 0x01
	// NodeTypeInternalMeasurement is an internal page of the measurement tier.
	NodeTypeInternalMeasurement NodeType = 0x02
	// NodeTypeLeafMeasurement is a leaf page of the measurement tier; its
	// entries resolve to timeseries metadata records.
	NodeTypeLeafMeasurement NodeType = 0x03
)

// NodeTypeSerializedSize is the wire size of a NodeType in bytes.
const NodeTypeSerializedSize = 1

// InvalidEncodingError reports a byte that is not a defined NodeType code.
// It always carries the offending byte.
type InvalidEncodingError struct {
	Code byte
}

func (e *InvalidEncodingError) Error() string {
	return fmt.Sprintf("invalid metadata index node type: 0x%02x", e.Code)
}

// IsInvalidEncodingError checks if an error is an InvalidEncodingError.
func IsInvalidEncodingError(err error) bool {
	var encErr *InvalidEncodingError
	return errors.As(err, &encErr)
}

// NodeTypeFromByte decodes a NodeType from its wire code. Every byte outside
// the defined code set fails; there is no fallback variant.
func NodeTypeFromByte(b byte) (NodeType, error) {
	switch t := NodeType(b); t {
	case NodeTypeInternalDevice, NodeTypeLeafDevice, NodeTypeInternalMeasurement, NodeTypeLeafMeasurement:
		return t, nil
	}
	return 0, &InvalidEncodingError{Code: b}
}

// ReadNodeType reads and decodes a single NodeType byte from r, advancing it
// by NodeTypeSerializedSize.
func ReadNodeType(r io.Reader) (NodeType, error) {
	var buf [NodeTypeSerializedSize]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, fmt.Errorf("failed to read node type byte: %w", err)
	}
	return NodeTypeFromByte(buf[0])
}

// Serialize returns the fixed one-byte wire code.
func (t NodeType) Serialize() byte {
	return byte(t)
}

// SerializeTo writes the wire code to w.
func (t NodeType) SerializeTo(w io.Writer) error {
	if _, err := w.Write([]byte{byte(t)}); err != nil {
		return fmt.Errorf("failed to write node type: %w", err)
	}
	return nil
}

// IsLeaf reports whether the page terminates its tier's search. Internal
// pages continue the descent within the same tier.
func (t NodeType) IsLeaf() bool {
	return t == NodeTypeLeafDevice || t == NodeTypeLeafMeasurement
}

// IsDeviceTier reports whether the page belongs to the device tier. Tier is
// never inferred from the leaf/internal role alone; traversal code must
// check it explicitly.
func (t NodeType) IsDeviceTier() bool {
	return t == NodeTypeInternalDevice || t == NodeTypeLeafDevice
}

func (t NodeType) String() string {
	switch t {
	case NodeTypeInternalDevice:
		return "INTERNAL_DEVICE"
	case NodeTypeLeafDevice:
		return "LEAF_DEVICE"
	case NodeTypeInternalMeasurement:
		return "INTERNAL_MEASUREMENT"
	case NodeTypeLeafMeasurement:
		return "LEAF_MEASUREMENT"
	default:
		return fmt.Sprintf("UNKNOWN(0x%02x)", byte(t))
	}
}
