/*
Package codec serializes the protobuf models and messages of this
application.

Types declare their wire layout with protobuf struct tags. Each persistent
type converts itself to a method-less wire type before encoding, because the
table driven protobuf marshaler delegates to any Marshal method it finds and
would otherwise call back into the type that is being encoded.
*/
package codec

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/weave/errors"
)

// Marshal returns the deterministic protobuf encoding of given message.
func Marshal(m proto.Message) ([]byte, error) {
	var info proto.InternalMessageInfo
	b := make([]byte, 0, info.Size(m))
	b, err := info.Marshal(b, m, true)
	if err != nil {
		return nil, errors.Wrap(errors.ErrInput, err.Error())
	}
	return b, nil
}

// Unmarshal resets given message and loads its state from raw.
func Unmarshal(raw []byte, m proto.Message) error {
	m.Reset()
	var info proto.InternalMessageInfo
	if err := info.Unmarshal(m, raw); err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}
	return nil
}

// String returns a compact text representation of given message.
func String(m proto.Message) string {
	return proto.CompactTextString(m)
}
