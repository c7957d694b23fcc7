// Package leaptool reads and writes leap second catalogs in the formats
// understood by the leap-table-tool command.
package leaptool

import (
	"fmt"
	"io"
	"os"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/encoding/prototext"
	"google.golang.org/protobuf/proto"

	smear "github.com/holoplot/go-smear"
	"github.com/holoplot/go-smear/leaptablepb"
)

// Format selects a catalog encoding.  It implements pflag.Value so it can
// be used directly as a command line flag.
type Format int

const (
	FormatProto Format = iota
	FormatTextProto
	FormatJSON
	FormatDebug
)

// String returns the flag spelling of f.
func (f Format) String() string {
	switch f {
	case FormatProto:
		return "proto"
	case FormatTextProto:
		return "textproto"
	case FormatJSON:
		return "json"
	case FormatDebug:
		return "debug"
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// Set parses a flag value into f.
func (f *Format) Set(s string) error {
	switch s {
	case "proto":
		*f = FormatProto
	case "textproto":
		*f = FormatTextProto
	case "json":
		*f = FormatJSON
	case "debug":
		*f = FormatDebug
	default:
		return fmt.Errorf("unknown format %q; must be proto, textproto, json, or debug", s)
	}
	return nil
}

// Type returns the flag type name shown in usage text.
func (f *Format) Type() string { return "format" }

// ReadCatalog reads a leap second catalog from a file.  Only FormatProto
// and FormatTextProto are readable.
func ReadCatalog(path string, format Format) (*leaptablepb.LeapTableProto, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	pb := &leaptablepb.LeapTableProto{}
	switch format {
	case FormatProto:
		if err := proto.Unmarshal(data, pb); err != nil {
			return nil, fmt.Errorf("parsing proto from %s: %w", path, err)
		}
	case FormatTextProto:
		if err := prototext.Unmarshal(data, pb); err != nil {
			return nil, fmt.Errorf("parsing text proto from %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("format %s is not readable", format)
	}
	return pb, nil
}

// WriteCatalog writes a leap second catalog in the given format.
// FormatDebug constructs the full leap table and writes its DebugString, so
// it fails on catalogs that do not validate.
func WriteCatalog(w io.Writer, pb *leaptablepb.LeapTableProto, format Format) error {
	switch format {
	case FormatProto:
		data, err := proto.Marshal(pb)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	case FormatTextProto:
		data, err := prototext.MarshalOptions{Multiline: true}.Marshal(pb)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	case FormatJSON:
		data, err := protojson.Marshal(pb)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	case FormatDebug:
		lt, err := smear.NewLeapTableFromProto(pb)
		if err != nil {
			return fmt.Errorf("constructing leap table: %w", err)
		}
		_, err = io.WriteString(w, lt.DebugString())
		return err
	}
	return fmt.Errorf("format %s is not writable", format)
}
