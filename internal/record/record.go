// Copyright (c) 2026 ALH477
// SPDX-License-Identifier: MIT

// Package record implements a binary session log for the TEA runtime,
// carrying forward the wire shape of the teacher's logger/metrics package
// pair (magic header, then length-prefixed protobuf records) with a
// schema that fits runtime messages and rendered frames instead of CPU/mem
// samples.
//
// File layout:
//
//	[0:8]   Magic bytes: "BIJOUREC"
//	Then N records, each structured as:
//	  [0]     Record type byte (RecordTypeMsg=0x01 | RecordTypeFrame=0x02)
//	  [1:5]   uint32 big-endian payload length
//	  [5:5+N] protobuf-encoded payload (MsgRecord or FrameRecord)
//
// Writer is safe to use from a single goroutine only, matching the
// runtime's own single-threaded Update loop.
package record

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"io"

	"google.golang.org/protobuf/encoding/protowire"
)

var magic = [8]byte{'B', 'I', 'J', 'O', 'U', 'R', 'E', 'C'}

const maxPayloadBytes = 10 * 1024 * 1024 // 10 MiB

// RecordType discriminates the two record kinds in a session log.
type RecordType byte

const (
	RecordTypeMsg   RecordType = 0x01
	RecordTypeFrame RecordType = 0x02
)

const (
	mfSeq       protowire.Number = 1
	mfElapsedMs protowire.Number = 2
	mfKind      protowire.Number = 3
	mfDetail    protowire.Number = 4

	ffSeq       protowire.Number = 1
	ffElapsedMs protowire.Number = 2
	ffHash      protowire.Number = 3
	ffLength    protowire.Number = 4
)

// MsgRecord captures one message dispatched through the bus.
type MsgRecord struct {
	Seq       uint64
	ElapsedMs int64
	Kind      string // e.g. "KeyMsg", "ResizeMsg", or a user message's %T
	Detail    string // %+v of the message, best-effort
}

// Marshal serialises m to protobuf binary, omitting zero-valued fields per
// proto3 default-omit behaviour.
func (m MsgRecord) Marshal() []byte {
	var b []byte
	if m.Seq != 0 {
		b = protowire.AppendTag(b, mfSeq, protowire.VarintType)
		b = protowire.AppendVarint(b, m.Seq)
	}
	if m.ElapsedMs != 0 {
		b = protowire.AppendTag(b, mfElapsedMs, protowire.VarintType)
		b = protowire.AppendVarint(b, uint64(m.ElapsedMs))
	}
	if m.Kind != "" {
		b = protowire.AppendTag(b, mfKind, protowire.BytesType)
		b = protowire.AppendString(b, m.Kind)
	}
	if m.Detail != "" {
		b = protowire.AppendTag(b, mfDetail, protowire.BytesType)
		b = protowire.AppendString(b, m.Detail)
	}
	return b
}

// UnmarshalMsgRecord deserialises a MsgRecord from protobuf binary.
func UnmarshalMsgRecord(b []byte) (MsgRecord, error) {
	var m MsgRecord
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return m, fmt.Errorf("record: msg: consume tag: %w", protowire.ParseError(n))
		}
		b = b[n:]
		switch {
		case num == mfSeq && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(b)
			if n < 0 {
				return m, fmt.Errorf("record: msg: seq: %w", protowire.ParseError(n))
			}
			m.Seq = v
			b = b[n:]
		case num == mfElapsedMs && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(b)
			if n < 0 {
				return m, fmt.Errorf("record: msg: elapsed_ms: %w", protowire.ParseError(n))
			}
			m.ElapsedMs = int64(v)
			b = b[n:]
		case num == mfKind && typ == protowire.BytesType:
			v, n := protowire.ConsumeString(b)
			if n < 0 {
				return m, fmt.Errorf("record: msg: kind: %w", protowire.ParseError(n))
			}
			m.Kind = v
			b = b[n:]
		case num == mfDetail && typ == protowire.BytesType:
			v, n := protowire.ConsumeString(b)
			if n < 0 {
				return m, fmt.Errorf("record: msg: detail: %w", protowire.ParseError(n))
			}
			m.Detail = v
			b = b[n:]
		default:
			n := protowire.ConsumeFieldValue(num, typ, b)
			if n < 0 {
				return m, fmt.Errorf("record: msg: skip field %d: %w", num, protowire.ParseError(n))
			}
			b = b[n:]
		}
	}
	return m, nil
}

// FrameRecord captures one rendered frame as an FNV-1a hash plus length,
// cheap enough to record every frame without storing full view text.
type FrameRecord struct {
	Seq       uint64
	ElapsedMs int64
	Hash      uint64
	Length    int64
}

// Marshal serialises f to protobuf binary.
func (f FrameRecord) Marshal() []byte {
	var b []byte
	if f.Seq != 0 {
		b = protowire.AppendTag(b, ffSeq, protowire.VarintType)
		b = protowire.AppendVarint(b, f.Seq)
	}
	if f.ElapsedMs != 0 {
		b = protowire.AppendTag(b, ffElapsedMs, protowire.VarintType)
		b = protowire.AppendVarint(b, uint64(f.ElapsedMs))
	}
	if f.Hash != 0 {
		b = protowire.AppendTag(b, ffHash, protowire.VarintType)
		b = protowire.AppendVarint(b, f.Hash)
	}
	if f.Length != 0 {
		b = protowire.AppendTag(b, ffLength, protowire.VarintType)
		b = protowire.AppendVarint(b, uint64(f.Length))
	}
	return b
}

// UnmarshalFrameRecord deserialises a FrameRecord from protobuf binary.
func UnmarshalFrameRecord(b []byte) (FrameRecord, error) {
	var f FrameRecord
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return f, fmt.Errorf("record: frame: consume tag: %w", protowire.ParseError(n))
		}
		b = b[n:]
		switch {
		case num == ffSeq && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(b)
			if n < 0 {
				return f, fmt.Errorf("record: frame: seq: %w", protowire.ParseError(n))
			}
			f.Seq = v
			b = b[n:]
		case num == ffElapsedMs && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(b)
			if n < 0 {
				return f, fmt.Errorf("record: frame: elapsed_ms: %w", protowire.ParseError(n))
			}
			f.ElapsedMs = int64(v)
			b = b[n:]
		case num == ffHash && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(b)
			if n < 0 {
				return f, fmt.Errorf("record: frame: hash: %w", protowire.ParseError(n))
			}
			f.Hash = v
			b = b[n:]
		case num == ffLength && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(b)
			if n < 0 {
				return f, fmt.Errorf("record: frame: length: %w", protowire.ParseError(n))
			}
			f.Length = int64(v)
			b = b[n:]
		default:
			n := protowire.ConsumeFieldValue(num, typ, b)
			if n < 0 {
				return f, fmt.Errorf("record: frame: skip field %d: %w", num, protowire.ParseError(n))
			}
			b = b[n:]
		}
	}
	return f, nil
}

// HashFrame returns the FNV-1a hash of a rendered view string, the value
// stored in FrameRecord.Hash.
func HashFrame(view string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(view))
	return h.Sum64()
}

// Writer appends Msg/Frame records to an underlying io.Writer.
type Writer struct {
	w      *bufio.Writer
	seq    uint64
	header bool
}

// NewWriter wraps w, ready to accept records after the magic header is
// written on the first call to WriteMsg or WriteFrame.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriterSize(w, 32*1024)}
}

func (rw *Writer) ensureHeader() error {
	if rw.header {
		return nil
	}
	if _, err := rw.w.Write(magic[:]); err != nil {
		return fmt.Errorf("record: write magic: %w", err)
	}
	rw.header = true
	return nil
}

// WriteMsg appends msg as a MsgRecord, assigning the next sequence number.
func (rw *Writer) WriteMsg(elapsedMs int64, kind, detail string) error {
	if err := rw.ensureHeader(); err != nil {
		return err
	}
	rw.seq++
	return rw.appendRecord(RecordTypeMsg, MsgRecord{Seq: rw.seq, ElapsedMs: elapsedMs, Kind: kind, Detail: detail}.Marshal())
}

// WriteFrame appends a FrameRecord summarizing a rendered view.
func (rw *Writer) WriteFrame(elapsedMs int64, view string) error {
	if err := rw.ensureHeader(); err != nil {
		return err
	}
	rw.seq++
	rec := FrameRecord{Seq: rw.seq, ElapsedMs: elapsedMs, Hash: HashFrame(view), Length: int64(len(view))}
	return rw.appendRecord(RecordTypeFrame, rec.Marshal())
}

// Flush flushes any buffered data to the underlying writer.
func (rw *Writer) Flush() error {
	if rw.w == nil {
		return nil
	}
	return rw.w.Flush()
}

func (rw *Writer) appendRecord(rt RecordType, payload []byte) error {
	if err := rw.w.WriteByte(byte(rt)); err != nil {
		return err
	}
	var lenBuf [4]byte
	binary.BigEndian.PutUint32(lenBuf[:], uint32(len(payload)))
	if _, err := rw.w.Write(lenBuf[:]); err != nil {
		return err
	}
	_, err := rw.w.Write(payload)
	return err
}

// Entry is one decoded record from a session log; for a known Type exactly
// one of Msg or Frame is non-nil, matching Type, and for an unknown Type
// both are nil.
type Entry struct {
	Type  RecordType
	Msg   *MsgRecord
	Frame *FrameRecord
}

// Reader reads Entry values sequentially from a session log.
type Reader struct {
	r        *bufio.Reader
	sawMagic bool
}

// NewReader wraps r; the magic header is validated on the first Next call.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: bufio.NewReaderSize(r, 32*1024)}
}

// Next reads and decodes the next record, returning (nil, io.EOF) once
// the stream is exhausted.
func (rr *Reader) Next() (*Entry, error) {
	if !rr.sawMagic {
		var got [8]byte
		if _, err := io.ReadFull(rr.r, got[:]); err != nil {
			if err == io.EOF {
				return nil, io.EOF
			}
			return nil, fmt.Errorf("record: read magic: %w", err)
		}
		if got != magic {
			return nil, fmt.Errorf("record: not a valid session log (bad magic bytes)")
		}
		rr.sawMagic = true
	}

	typByte, err := rr.r.ReadByte()
	if err != nil {
		if err == io.EOF {
			return nil, io.EOF
		}
		return nil, fmt.Errorf("record: read type: %w", err)
	}
	rt := RecordType(typByte)

	var lenBuf [4]byte
	if _, err := io.ReadFull(rr.r, lenBuf[:]); err != nil {
		return nil, fmt.Errorf("record: read length: %w", err)
	}
	payloadLen := binary.BigEndian.Uint32(lenBuf[:])
	if payloadLen > maxPayloadBytes {
		return nil, fmt.Errorf("record: payload too large (%d bytes); possible corruption", payloadLen)
	}

	payload := make([]byte, payloadLen)
	if _, err := io.ReadFull(rr.r, payload); err != nil {
		return nil, fmt.Errorf("record: read payload: %w", err)
	}

	entry := &Entry{Type: rt}
	switch rt {
	case RecordTypeMsg:
		m, err := UnmarshalMsgRecord(payload)
		if err != nil {
			return nil, fmt.Errorf("record: unmarshal msg: %w", err)
		}
		entry.Msg = &m
	case RecordTypeFrame:
		f, err := UnmarshalFrameRecord(payload)
		if err != nil {
			return nil, fmt.Errorf("record: unmarshal frame: %w", err)
		}
		entry.Frame = &f
	default:
		// Unknown record type, skip — forward compatible.
	}
	return entry, nil
}
