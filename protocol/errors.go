package protocol

import "errors"

// Sentinel errors returned by Session.Run. The caller is expected to log
// and exit non-zero for all of these except ErrQuit, which signals a
// clean shutdown requested by the referee.
var (
	ErrQuit                = errors.New("protocol: received Quit")
	ErrUnexpectedEOF       = errors.New("protocol: unexpected end of input")
	ErrParseSecretColor    = errors.New("protocol: could not parse secret color")
	ErrParseTile           = errors.New("protocol: could not parse tile")
	ErrParseMove           = errors.New("protocol: could not parse move")
	ErrIllegalOpponentMove = errors.New("protocol: opponent's move is invalid")
	ErrBadConfig           = errors.New("protocol: bad configuration")
	ErrInvariant           = errors.New("protocol: invariant violation")
)
