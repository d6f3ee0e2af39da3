// Package customid round-trips small tagged payloads through opaque strings
// suitable for interactive-control identifiers: a compact tagged binary
// encoding wrapped in unpadded URL-safe base64.
//
// Decode only accepts tokens produced by Encode in this codebase. Tokens are
// not signed; the round-trip guarantee is the only defense, so a decode
// failure is a programming error rather than user input to recover from.
package customid

import (
	"encoding/base64"
	"encoding/binary"
	"fmt"

	"github.com/miruku-dev/clow-discord-bot-go/pkg/errors"
)

// Kind tags the payload variant.
type Kind byte

const (
	// KindCardInfo references a clow card by name; activating the control
	// requests the card's full reading.
	KindCardInfo Kind = 0
)

// CustomID is the decoded form of a component token.
type CustomID struct {
	Kind Kind
	// CardName is set for KindCardInfo.
	CardName string
}

// CardInfo builds a card-reference payload.
func CardInfo(name string) CustomID {
	return CustomID{Kind: KindCardInfo, CardName: name}
}

// Encode serializes the payload into an opaque token string.
func (c CustomID) Encode() string {
	buf := make([]byte, 0, 1+binary.MaxVarintLen64+len(c.CardName))
	buf = append(buf, byte(c.Kind))
	buf = binary.AppendUvarint(buf, uint64(len(c.CardName)))
	buf = append(buf, c.CardName...)
	return base64.RawURLEncoding.EncodeToString(buf)
}

// Decode is the exact inverse of Encode.
func Decode(token string) (CustomID, error) {
	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return CustomID{}, errors.NewCodecError("component token is not base64url", token, err)
	}
	if len(raw) == 0 {
		return CustomID{}, errors.NewCodecError("component token is empty", token, nil)
	}

	kind := Kind(raw[0])
	rest := raw[1:]
	switch kind {
	case KindCardInfo:
		size, n := binary.Uvarint(rest)
		if n <= 0 || uint64(len(rest[n:])) != size {
			return CustomID{}, errors.NewCodecError("component token has a malformed card name", token, nil)
		}
		return CustomID{Kind: kind, CardName: string(rest[n:])}, nil
	default:
		return CustomID{}, errors.NewCodecError(fmt.Sprintf("unknown component token kind %d", kind), token, nil)
	}
}
